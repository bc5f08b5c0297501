package viz

import (
	"math"

	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
)

// CanvasSurface draws the square logical window into a Braille canvas,
// letterboxed to the largest centred square of sub-pixels. Line width is
// ignored at this resolution.
type CanvasSurface struct {
	canvas  *Canvas
	logical float64
	front   []string
	bg, fg  config.RGB
	lines   int
}

func NewCanvasSurface(cols, rows, logicalSize int) *CanvasSurface {
	s := &CanvasSurface{canvas: NewCanvas(cols, rows), logical: float64(logicalSize)}
	s.front = s.canvas.Rows()
	return s
}

// Resize replaces the back buffer; the presented frame is kept until the
// next Present.
func (s *CanvasSurface) Resize(cols, rows int) {
	s.canvas = NewCanvas(cols, rows)
}

func (s *CanvasSurface) Canvas() *Canvas { return s.canvas }

// Map converts a logical point to sub-pixel coordinates.
func (s *CanvasSurface) Map(p geom.ScreenPoint) (int, int) {
	return s.subpixel(p).Round()
}

func (s *CanvasSurface) subpixel(p geom.ScreenPoint) geom.ScreenPoint {
	sw, sh := float64(s.canvas.SubWidth()), float64(s.canvas.SubHeight())
	side := math.Min(sw, sh)
	k := side / s.logical
	ox, oy := (sw-side)/2, (sh-side)/2
	return geom.ScreenPoint{X: ox + p.X*k, Y: oy + p.Y*k}
}

func (s *CanvasSurface) Clear(bg config.RGB) {
	s.canvas.Clear()
	s.bg = bg
	s.lines = 0
}

func (s *CanvasSurface) DrawLine(p1, p2 geom.ScreenPoint, c config.RGB, _ float64) {
	s.fg = c
	s.lines++
	a, b, ok := geom.ClipSegment(s.subpixel(p1), s.subpixel(p2), s.canvas.bounds())
	if !ok {
		return
	}
	x0, y0 := a.Round()
	x1, y1 := b.Round()
	s.canvas.DrawLine(x0, y0, x1, y1)
}

func (s *CanvasSurface) Present() {
	s.front = s.canvas.Rows()
}

// Frame returns the last presented rows.
func (s *CanvasSurface) Frame() []string { return s.front }

// Colors returns the background and line colours of the last frame.
func (s *CanvasSurface) Colors() (bg, fg config.RGB) { return s.bg, s.fg }

// LineCount is the number of lines drawn since the last Clear.
func (s *CanvasSurface) LineCount() int { return s.lines }
