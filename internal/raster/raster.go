// Package raster is an in-memory image surface for headless rendering. It
// draws into a two-colour paletted image and can record presented frames
// as an animated GIF or write the last one as a PNG.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"math"

	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
)

// ErrNoFrames is returned when encoding before anything was presented.
var ErrNoFrames = errors.New("raster: no frames presented")

func toColor(c config.RGB) color.RGBA { return color.RGBA{c.R, c.G, c.B, 0xff} }

type Surface struct {
	size    int
	k       float64
	palette color.Palette
	back    *image.Paletted
	last    *image.Paletted
	frames  []*image.Paletted
	record  bool
}

// New creates a size×size surface for a logicalSize×logicalSize window.
// The palette is fixed to bg and fg at construction.
func New(size, logicalSize int, bg, fg config.RGB) *Surface {
	if size < 1 {
		size = 1
	}
	p := color.Palette{toColor(bg), toColor(fg)}
	return &Surface{
		size:    size,
		k:       float64(size) / float64(logicalSize),
		palette: p,
		back:    image.NewPaletted(image.Rect(0, 0, size, size), p),
	}
}

// Record toggles keeping every presented frame.
func (s *Surface) Record(on bool) { s.record = on }

func (s *Surface) Clear(bg config.RGB) {
	idx := uint8(s.palette.Index(toColor(bg)))
	for i := range s.back.Pix {
		s.back.Pix[i] = idx
	}
}

// DrawLine stamps a square brush of the scaled width, at least one pixel,
// along a Bresenham path between the two points.
func (s *Surface) DrawLine(p1, p2 geom.ScreenPoint, c config.RGB, width float64) {
	idx := uint8(s.palette.Index(toColor(c)))
	w := max(1, int(math.Round(width*s.k)))
	lo, hi := (w-1)/2, w/2

	// keep the whole brush footprint, drop what can never touch a pixel
	bounds := geom.Rect{MinX: float64(-hi - 1), MinY: float64(-hi - 1), MaxX: float64(s.size + lo), MaxY: float64(s.size + lo)}
	a, b, ok := geom.ClipSegment(s.scale(p1), s.scale(p2), bounds)
	if !ok {
		return
	}
	x0, y0 := a.Round()
	x1, y1 := b.Round()

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		s.stamp(x0, y0, lo, hi, idx)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (s *Surface) Present() {
	frame := image.NewPaletted(s.back.Rect, s.palette)
	copy(frame.Pix, s.back.Pix)
	s.last = frame
	if s.record {
		s.frames = append(s.frames, frame)
	}
}

// Last returns the most recently presented frame, or nil.
func (s *Surface) Last() *image.Paletted { return s.last }

// Frames returns the recorded frames.
func (s *Surface) Frames() []*image.Paletted { return s.frames }

// WriteGIF encodes the recorded frames at fps, looping forever.
func (s *Surface) WriteGIF(w io.Writer, fps int) error {
	if len(s.frames) == 0 {
		return ErrNoFrames
	}
	delay := 2
	if fps > 0 {
		delay = max(1, int(math.Round(100/float64(fps))))
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range s.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// WritePNG encodes the last presented frame.
func (s *Surface) WritePNG(w io.Writer) error {
	if s.last == nil {
		return ErrNoFrames
	}
	return png.Encode(w, s.last)
}

func (s *Surface) scale(p geom.ScreenPoint) geom.ScreenPoint {
	return geom.ScreenPoint{X: p.X * s.k, Y: p.Y * s.k}
}

func (s *Surface) stamp(x, y, lo, hi int, idx uint8) {
	for py := y - lo; py <= y+hi; py++ {
		if py < 0 || py >= s.size {
			continue
		}
		for px := x - lo; px <= x+hi; px++ {
			if px < 0 || px >= s.size {
				continue
			}
			s.back.Pix[py*s.back.Stride+px] = idx
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
