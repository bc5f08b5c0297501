package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
)

func TestSVGSurface(t *testing.T) {
	s := NewSVGSurface(800)
	s.Clear(config.DefaultBackground)
	s.DrawLine(geom.ScreenPoint{X: 1, Y: 2}, geom.ScreenPoint{X: 650, Y: 650}, config.DefaultLineColor, 2)
	s.Present()

	// drawing the next frame must not leak into the presented one
	s.Clear(config.DefaultBackground)
	s.DrawLine(geom.ScreenPoint{}, geom.ScreenPoint{}, config.DefaultLineColor, 2)
	s.DrawLine(geom.ScreenPoint{}, geom.ScreenPoint{}, config.DefaultLineColor, 2)

	svg := s.SVG()
	assert.Equal(t, 1, strings.Count(svg, "<line "), svg)
	for _, want := range []string{
		`width="800"`,
		`fill="#0a0a28"`,
		`x1="1.00" y1="2.00" x2="650.00" y2="650.00"`,
		`stroke="#c8dcff" stroke-width="2"`,
	} {
		assert.Contains(t, svg, want)
	}
	assert.Equal(t, 1, s.Frames())
}

func TestTraceToSVG(t *testing.T) {
	assert.Empty(t, TraceToSVG([]geom.ScreenPoint{{X: 1, Y: 1}}, 100, 100, config.DefaultBackground, "#fff"),
		"single point gives no path")

	pts := []geom.ScreenPoint{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	svg := TraceToSVG(pts, 120, 120, config.DefaultBackground, "#ffffff")
	assert.Contains(t, svg, `d="M10.0,10.0 L110.0,110.0 L110.0,10.0"`)
}
