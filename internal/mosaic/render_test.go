package mosaic

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/image-mosaic-mcp/internal/imaging"
)

func TestDrawShape(t *testing.T) {
	c := imaging.RGBColor{R: 1, G: 2, B: 3}
	opaque := color.NRGBA{1, 2, 3, 255}

	t.Run("square", func(t *testing.T) {
		s := &recordingSurface{}
		DrawShape(s, ShapeSquare, 5, 7, 10, 3, c)
		if len(s.rects) != 1 || s.calls() != 1 {
			t.Fatalf("expected a single FillRect, got %+v", s)
		}
		if want := image.Rect(5, 7, 15, 17); s.rects[0].r != want {
			t.Errorf("rect: got %v, want %v", s.rects[0].r, want)
		}
		if s.rects[0].col != opaque {
			t.Errorf("color: got %v", s.rects[0].col)
		}
	})

	t.Run("circle", func(t *testing.T) {
		s := &recordingSurface{}
		DrawShape(s, ShapeCircle, 5, 7, 10, 3, c)
		if len(s.ellipses) != 1 || s.calls() != 1 {
			t.Fatalf("expected a single FillEllipse, got %+v", s)
		}
		want := ellipseCall{10, 12, 5, 5, opaque}
		if s.ellipses[0] != want {
			t.Errorf("got %+v, want %+v", s.ellipses[0], want)
		}
	})

	t.Run("smoothcircle", func(t *testing.T) {
		s := &recordingSurface{}
		DrawShape(s, ShapeSmoothCircle, 5, 7, 10, 3, c)
		if len(s.lines) == 0 || len(s.pixels) == 0 {
			t.Fatal("expected spans and edge pixels")
		}
		if len(s.rects)+len(s.ellipses)+len(s.polygons) != 0 {
			t.Error("smoothcircle must not use the surface's own shapes")
		}
		// First seed is at the right end of the horizontal axis.
		if s.pixels[0].x != 15 || s.pixels[0].y != 12 {
			t.Errorf("first seed at (%d,%d), want (15,12)", s.pixels[0].x, s.pixels[0].y)
		}
	})

	t.Run("star", func(t *testing.T) {
		s := &recordingSurface{}
		DrawShape(s, ShapeStar, 5, 7, 10, 3, c)
		if len(s.polygons) != 1 || s.calls() != 1 {
			t.Fatalf("expected a single FillPolygon, got %+v", s)
		}
		points := s.polygons[0].points
		if len(points) != 10 {
			t.Fatalf("got %d vertices, want 10", len(points))
		}
		// Radius is (size+margin)/2.
		if math.Abs(points[0][0]-10) > epsilon || math.Abs(points[0][1]-5.5) > epsilon {
			t.Errorf("top vertex: got (%f, %f), want (10, 5.5)", points[0][0], points[0][1])
		}
		if s.polygons[0].col != opaque {
			t.Errorf("color: got %v", s.polygons[0].col)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		s := &recordingSurface{}
		DrawShape(s, Shape("triangle"), 5, 7, 10, 3, c)
		if s.calls() != 0 {
			t.Errorf("expected no drawing, got %d calls", s.calls())
		}
	})
}

func TestRender_OneShapePerCell(t *testing.T) {
	grid := &SampleGrid{
		Rows: 2,
		Cols: 3,
		Colors: [][]imaging.RGBColor{
			{{R: 0}, {R: 1}, {R: 2}},
			{{R: 10}, {R: 11}, {R: 12}},
		},
	}
	cfg := Config{SampleSize: 5, ShapeSize: 4, ShapeMargin: 2, Shape: ShapeSquare}

	s := &recordingSurface{}
	Render(s, grid, cfg)

	if len(s.rects) != 6 {
		t.Fatalf("got %d shapes, want 6", len(s.rects))
	}
	i := 0
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			call := s.rects[i]
			want := image.Rect(col*6, row*6, col*6+4, row*6+4)
			if call.r != want {
				t.Errorf("cell (%d,%d): rect %v, want %v", row, col, call.r, want)
			}
			if call.col.R != uint8(row*10+col) {
				t.Errorf("cell (%d,%d): red %d, want %d", row, col, call.col.R, row*10+col)
			}
			i++
		}
	}
}
