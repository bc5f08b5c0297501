package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
)

type svgLine struct {
	p1, p2 geom.ScreenPoint
	color  config.RGB
	width  float64
}

// SVGSurface records the lines of each frame and renders the last
// presented one as an SVG document in logical pixel space.
type SVGSurface struct {
	size    int
	bg      config.RGB
	pending []svgLine
	shown   []svgLine
	shownBg config.RGB
	frames  int
}

func NewSVGSurface(size int) *SVGSurface {
	return &SVGSurface{size: size}
}

func (s *SVGSurface) Clear(bg config.RGB) {
	s.bg = bg
	s.pending = s.pending[:0]
}

func (s *SVGSurface) DrawLine(p1, p2 geom.ScreenPoint, c config.RGB, width float64) {
	s.pending = append(s.pending, svgLine{p1, p2, c, width})
}

func (s *SVGSurface) Present() {
	s.shown = append(s.shown[:0], s.pending...)
	s.shownBg = s.bg
	s.frames++
}

// Frames is the number of Present calls.
func (s *SVGSurface) Frames() int { return s.frames }

// SVG renders the last presented frame.
func (s *SVGSurface) SVG() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke-linecap="round">
`, s.size, s.size, s.size, s.size, s.shownBg.Hex()))

	for _, l := range s.shown {
		sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%g"/>
`, l.p1.X, l.p1.Y, l.p2.X, l.p2.Y, l.color.Hex(), l.width))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TraceToSVG draws a screen-space path, such as one vertex followed over
// many ticks, fitted into a width×height document.
func TraceToSVG(points []geom.ScreenPoint, width, height int, bg config.RGB, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	// Find bounds
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, bg.Hex(), strokeColor))

	// screen y already grows downward
	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := (p.Y - minY) / rangeY * float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
