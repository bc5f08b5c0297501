package analysis

import (
	"context"
	"fmt"

	"github.com/san-kum/tesseract/internal/anim"
	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
	"github.com/san-kum/tesseract/internal/hypercube"
)

// TraceResult holds one sample per tick. Skipped counts ticks where the
// vertex was degenerate; those ticks repeat the previous sample.
type TraceResult struct {
	Vertex  int
	Points  []geom.ScreenPoint
	Depth   []float64
	Skipped int
}

func (r TraceResult) X() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.X
	}
	return out
}

func (r TraceResult) Y() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Y
	}
	return out
}

type nullSurface struct{}

func (nullSurface) Clear(config.RGB)                                                 {}
func (nullSurface) DrawLine(geom.ScreenPoint, geom.ScreenPoint, config.RGB, float64) {}
func (nullSurface) Present()                                                         {}

// Trace runs a headless loop for n ticks and samples the projected
// position and rotated w coordinate of one vertex on every frame.
func Trace(ctx context.Context, cfg config.Config, vertex, n int) (TraceResult, error) {
	if vertex < 0 || vertex >= hypercube.VertexCount {
		return TraceResult{}, fmt.Errorf("vertex %d out of range [0,%d)", vertex, hypercube.VertexCount)
	}
	if n < 0 {
		return TraceResult{}, fmt.Errorf("ticks must not be negative, got %d", n)
	}
	model, err := hypercube.New()
	if err != nil {
		return TraceResult{}, err
	}
	loop, err := anim.New(cfg, model, nullSurface{}, nil, nil)
	if err != nil {
		return TraceResult{}, err
	}

	res := TraceResult{
		Vertex: vertex,
		Points: make([]geom.ScreenPoint, 0, n),
		Depth:  make([]float64, 0, n),
	}
	var prev geom.ScreenPoint
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		f := loop.Step()
		p := f.Points[vertex]
		if !f.Visible[vertex] {
			p = prev
			res.Skipped++
		}
		res.Points = append(res.Points, p)
		res.Depth = append(res.Depth, f.Rotated[vertex].W)
		prev = p
	}
	return res, nil
}
