package server

import "github.com/ironsheep/image-mosaic-mcp/internal/mosaic"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool that reads an image file.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var sampleSizeProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Distance in source pixels between sample points (default 20)",
	"default":     20,
}

var maxWidthProperty = map[string]interface{}{
	"type":        "integer",
	"description": "Sources wider than this are downscaled first, keeping aspect ratio. 0 disables (default 1024)",
	"default":     1024,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Source Images
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and dominant color, the size it is reduced to before building a mosaic, and the mosaic grid it yields at the default sample size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Mosaic Operations
		{
			Name:        "mosaic_create",
			Description: "Turn an image into a mosaic: the image is sampled on a regular grid and every sample is drawn as a shape of that color on a white canvas. Returns the mosaic as base64-encoded PNG and optionally saves it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"image_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded source image. Give either path or image_base64, not both",
					},
					"shape": map[string]interface{}{
						"type":        "string",
						"enum":        shapeNames(),
						"description": "Shape drawn for every sample (default circle)",
						"default":     "circle",
					},
					"sample_size": sampleSizeProperty,
					"shape_size": map[string]interface{}{
						"type":        "integer",
						"description": "Shape footprint in output pixels (default 40)",
						"default":     40,
					},
					"shape_margin": map[string]interface{}{
						"type":        "integer",
						"description": "Empty gap after each shape in output pixels (default 3)",
						"default":     3,
					},
					"max_width": maxWidthProperty,
					"save": map[string]interface{}{
						"type":        "boolean",
						"description": "Also write the mosaic to a PNG file named mosaic_<shape>_<yyMMddHHmmss>.png",
						"default":     false,
					},
					"save_as": map[string]interface{}{
						"type":        "string",
						"description": "File name to save the mosaic under; implies save. \".png\" is appended when missing",
					},
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory for saved mosaics (default: working directory)",
					},
				},
			},
		},
		{
			Name:        "mosaic_sample_grid",
			Description: "Return the colors a mosaic would be built from, as rows of #RRGGBB values, one per sample point.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty,
					"sample_size": sampleSizeProperty,
					"max_width":   maxWidthProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_sample_overlay",
			Description: "Draw the sampling grid over the source image and mark every sampled pixel. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty,
					"sample_size": sampleSizeProperty,
					"max_width":   maxWidthProperty,
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex (#RRGGBB or #RRGGBBAA). Default: #FF000080",
						"default":     "#FF000080",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "mosaic_shapes",
			Description: "List the shapes a mosaic can be drawn with.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

func shapeNames() []string {
	shapes := mosaic.Shapes()
	names := make([]string, len(shapes))
	for i, shape := range shapes {
		names[i] = string(shape)
	}
	return names
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return s.resultResponse(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
