package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/image-mosaic-mcp/internal/imaging"
	"github.com/ironsheep/image-mosaic-mcp/internal/mosaic"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "mosaic_create").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	if s.debug {
		log.Printf("tool %s: %d bytes of arguments", params.Name, len(params.Arguments))
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return s.resultResponse(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the source from the cache and caps its width
//  4. Calls into the mosaic or imaging packages
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Source Images
	case "image_load":
		return s.handleImageLoad(args)

	// Mosaic Operations
	case "mosaic_create":
		return s.handleMosaicCreate(args)
	case "mosaic_sample_grid":
		return s.handleMosaicSampleGrid(args)
	case "mosaic_sample_overlay":
		return s.handleMosaicSampleOverlay(args)
	case "mosaic_shapes":
		return s.handleMosaicShapes()

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// loadSource returns the cached image at path, capped to maxWidth.
// Failures to read or decode are reported as mosaic.ErrInvalidImage.
func (s *Server) loadSource(path string, maxWidth int) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", mosaic.ErrInvalidImage)
	}
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mosaic.ErrInvalidImage, err)
	}
	return imaging.Downscale(img, maxWidth), nil
}

// maxWidthOrDefault resolves an optional max_width argument. An explicit 0
// is kept and disables the cap.
func maxWidthOrDefault(v *int) int {
	if v == nil {
		return imaging.DefaultMaxWidth
	}
	return *v
}

// === Source Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

type imageLoadResult struct {
	*imaging.ImageInfo

	// MosaicWidth and MosaicHeight are the source dimensions after the
	// default width cap.
	MosaicWidth  int `json:"mosaic_width"`
	MosaicHeight int `json:"mosaic_height"`

	// Rows and Cols are the sample grid at SampleSize.
	SampleSize int `json:"sample_size"`
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}

	w, h := imaging.CappedSize(info.Width, info.Height, imaging.DefaultMaxWidth)
	rows, cols := mosaic.GridSize(w, h, mosaic.DefaultSampleSize)
	return &imageLoadResult{
		ImageInfo:    info,
		MosaicWidth:  w,
		MosaicHeight: h,
		SampleSize:   mosaic.DefaultSampleSize,
		Rows:         rows,
		Cols:         cols,
	}, nil
}

// === Mosaic Operation Handlers ===

type mosaicCreateArgs struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
	Shape       string `json:"shape"`
	SampleSize  int    `json:"sample_size"`
	ShapeSize   int    `json:"shape_size"`
	ShapeMargin *int   `json:"shape_margin"`
	MaxWidth    *int   `json:"max_width"`
	Save        bool   `json:"save"`
	SaveAs      string `json:"save_as"`
	OutputDir   string `json:"output_dir"`
}

type mosaicCreateResult struct {
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Rows         int          `json:"rows"`
	Cols         int          `json:"cols"`
	SourceWidth  int          `json:"source_width"`
	SourceHeight int          `json:"source_height"`
	Shape        mosaic.Shape `json:"shape"`
	SampleSize   int          `json:"sample_size"`
	ShapeSize    int          `json:"shape_size"`
	ShapeMargin  int          `json:"shape_margin"`
	ImageBase64  string       `json:"image_base64"`
	MimeType     string       `json:"mime_type"`
	SavedPath    string       `json:"saved_path,omitempty"`
}

func (a *mosaicCreateArgs) config() mosaic.Config {
	cfg := mosaic.DefaultConfig()
	if a.Shape != "" {
		cfg.Shape = mosaic.Shape(a.Shape)
	}
	if a.SampleSize != 0 {
		cfg.SampleSize = a.SampleSize
	}
	if a.ShapeSize != 0 {
		cfg.ShapeSize = a.ShapeSize
	}
	if a.ShapeMargin != nil {
		cfg.ShapeMargin = *a.ShapeMargin
	}
	return cfg
}

func (s *Server) handleMosaicCreate(args json.RawMessage) (interface{}, error) {
	var a mosaicCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	cfg := a.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		img image.Image
		err error
	)
	maxWidth := maxWidthOrDefault(a.MaxWidth)
	switch {
	case a.Path != "" && a.ImageBase64 != "":
		err = fmt.Errorf("%w: path and image_base64 are mutually exclusive", mosaic.ErrInvalidImage)
	case a.Path != "":
		img, err = s.loadSource(a.Path, maxWidth)
	case a.ImageBase64 != "":
		img, err = decodeBase64Source(a.ImageBase64, maxWidth)
	default:
		err = fmt.Errorf("%w: one of path or image_base64 is required", mosaic.ErrInvalidImage)
	}
	if err != nil {
		return nil, err
	}

	cv, err := mosaic.Build(img, cfg)
	if err != nil {
		return nil, err
	}

	encoded, err := imaging.EncodeBase64PNG(cv.Image())
	if err != nil {
		return nil, err
	}

	src := img.Bounds()
	rows, cols := mosaic.GridSize(src.Dx(), src.Dy(), cfg.SampleSize)
	result := &mosaicCreateResult{
		Width:        cv.Width(),
		Height:       cv.Height(),
		Rows:         rows,
		Cols:         cols,
		SourceWidth:  src.Dx(),
		SourceHeight: src.Dy(),
		Shape:        cfg.Shape,
		SampleSize:   cfg.SampleSize,
		ShapeSize:    cfg.ShapeSize,
		ShapeMargin:  cfg.ShapeMargin,
		ImageBase64:  encoded,
		MimeType:     imaging.PNGMimeType,
	}

	if a.Save || a.SaveAs != "" {
		name := imaging.MosaicFileName(string(cfg.Shape), a.SaveAs, s.now())
		saved, err := imaging.SavePNG(cv.Image(), a.OutputDir, name)
		if err != nil {
			return nil, err
		}
		result.SavedPath = saved
		if s.debug {
			log.Printf("saved %s mosaic to %s", cfg.Shape, saved)
		}
	}

	return result, nil
}

func decodeBase64Source(data string, maxWidth int) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %w", mosaic.ErrInvalidImage, err)
	}
	img, _, err := imaging.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mosaic.ErrInvalidImage, err)
	}
	return imaging.Downscale(img, maxWidth), nil
}

type mosaicSampleGridArgs struct {
	Path       string `json:"path"`
	SampleSize int    `json:"sample_size"`
	MaxWidth   *int   `json:"max_width"`
}

type mosaicSampleGridResult struct {
	SourceWidth  int        `json:"source_width"`
	SourceHeight int        `json:"source_height"`
	SampleSize   int        `json:"sample_size"`
	Rows         int        `json:"rows"`
	Cols         int        `json:"cols"`
	Colors       [][]string `json:"colors"`
}

func (s *Server) handleMosaicSampleGrid(args json.RawMessage) (interface{}, error) {
	var a mosaicSampleGridArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SampleSize == 0 {
		a.SampleSize = mosaic.DefaultSampleSize
	}
	img, err := s.loadSource(a.Path, maxWidthOrDefault(a.MaxWidth))
	if err != nil {
		return nil, err
	}

	grid, err := mosaic.Sample(img, a.SampleSize)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &mosaicSampleGridResult{
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
		SampleSize:   a.SampleSize,
		Rows:         grid.Rows,
		Cols:         grid.Cols,
		Colors:       grid.Hex(),
	}, nil
}

type mosaicSampleOverlayArgs struct {
	Path       string `json:"path"`
	SampleSize int    `json:"sample_size"`
	MaxWidth   *int   `json:"max_width"`
	GridColor  string `json:"grid_color"`
}

func (s *Server) handleMosaicSampleOverlay(args json.RawMessage) (interface{}, error) {
	var a mosaicSampleOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SampleSize == 0 {
		a.SampleSize = mosaic.DefaultSampleSize
	}
	if a.GridColor == "" {
		a.GridColor = "#FF000080"
	}
	img, err := s.loadSource(a.Path, maxWidthOrDefault(a.MaxWidth))
	if err != nil {
		return nil, err
	}
	return imaging.SampleOverlay(img, a.SampleSize, a.GridColor)
}

type shapeInfo struct {
	Name        mosaic.Shape `json:"name"`
	Description string       `json:"description"`
}

func (s *Server) handleMosaicShapes() (interface{}, error) {
	shapes := mosaic.Shapes()
	infos := make([]shapeInfo, len(shapes))
	for i, shape := range shapes {
		infos[i] = shapeInfo{Name: shape, Description: shape.Description()}
	}
	return map[string]interface{}{
		"shapes":  infos,
		"default": mosaic.DefaultShape,
	}, nil
}
