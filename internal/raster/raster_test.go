package raster

import (
	"bytes"
	"image/gif"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
)

var (
	bg = config.DefaultBackground
	fg = config.DefaultLineColor
)

func TestDrawLineScalesToPixels(t *testing.T) {
	s := New(100, 800, bg, fg)
	s.Clear(bg)
	s.DrawLine(geom.ScreenPoint{X: 0, Y: 400}, geom.ScreenPoint{X: 800, Y: 400}, fg, 1)
	s.Present()

	img := s.Last()
	for x := 0; x < 100; x++ {
		require.EqualValues(t, 1, img.ColorIndexAt(x, 50), "pixel (%d,50) not drawn", x)
	}
	assert.EqualValues(t, 0, img.ColorIndexAt(10, 10), "background pixel overwritten")
}

func TestLineWidth(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  int
	}{
		{"hairline", 1, 1},
		{"default", 2, 2},
		{"thick", 3, 3},
		{"wide", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(100, 100, bg, fg)
			s.Clear(bg)
			s.DrawLine(geom.ScreenPoint{X: 10, Y: 50}, geom.ScreenPoint{X: 90, Y: 50}, fg, tt.width)
			s.Present()

			got := 0
			for y := 0; y < 100; y++ {
				if s.Last().ColorIndexAt(50, y) == 1 {
					got++
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClipping(t *testing.T) {
	s := New(10, 10, bg, fg)
	s.Clear(bg)
	s.DrawLine(geom.ScreenPoint{X: -50, Y: -50}, geom.ScreenPoint{X: 50, Y: 50}, fg, 4)
	s.Present()
	assert.EqualValues(t, 1, s.Last().ColorIndexAt(5, 5), "visible part of line drawn")
}

func TestDrawLineFarOffSurface(t *testing.T) {
	s := New(50, 800, bg, fg)
	s.Clear(bg)

	start := time.Now()
	s.DrawLine(geom.ScreenPoint{X: 0, Y: 0}, geom.ScreenPoint{X: 1e9, Y: 1e9}, fg, 2)
	s.DrawLine(geom.ScreenPoint{X: -1e12, Y: 400}, geom.ScreenPoint{X: 1e12, Y: 400}, fg, 2)
	s.DrawLine(geom.ScreenPoint{X: 5e8, Y: 5e8}, geom.ScreenPoint{X: 6e8, Y: 5e8}, fg, 2)
	assert.Less(t, time.Since(start), time.Second)
	s.Present()

	img := s.Last()
	for i := 0; i < 50; i++ {
		require.EqualValues(t, 1, img.ColorIndexAt(i, i), "diagonal pixel (%d,%d)", i, i)
		require.EqualValues(t, 1, img.ColorIndexAt(i, 25), "horizontal pixel (%d,25)", i)
	}
}

func TestPresentSnapshotsBackBuffer(t *testing.T) {
	s := New(20, 20, bg, fg)
	s.Record(true)

	s.Clear(bg)
	s.DrawLine(geom.ScreenPoint{X: 0, Y: 0}, geom.ScreenPoint{X: 19, Y: 0}, fg, 1)
	s.Present()
	s.Clear(bg)
	s.Present()

	frames := s.Frames()
	require.Len(t, frames, 2)
	assert.EqualValues(t, 1, frames[0].ColorIndexAt(5, 0), "first frame lost its line after later Clear")
	assert.EqualValues(t, 0, frames[1].ColorIndexAt(5, 0), "second frame should be empty")
}

func TestWriteGIF(t *testing.T) {
	s := New(16, 16, bg, fg)
	var buf bytes.Buffer
	assert.ErrorIs(t, s.WriteGIF(&buf, 60), ErrNoFrames)

	s.Record(true)
	for i := 0; i < 3; i++ {
		s.Clear(bg)
		s.Present()
	}
	require.NoError(t, s.WriteGIF(&buf, 50))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, 2, g.Delay[0], "2cs at 50fps")
}

func TestWritePNG(t *testing.T) {
	s := New(16, 16, bg, fg)
	var buf bytes.Buffer
	assert.ErrorIs(t, s.WritePNG(&buf), ErrNoFrames)

	s.Clear(bg)
	s.Present()
	require.NoError(t, s.WritePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, bg, config.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
}
