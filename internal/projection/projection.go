// Package projection maps 4D points to screen space through two chained
// perspective divisions: 4D→3D along w, then 3D→2D along z. Both stages use
// the same projection distance.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/tesseract/internal/geom"
)

// Epsilon is the smallest |distance - depth| accepted as a divisor.
const Epsilon = 1e-9

// ErrDegenerateProjection indicates a depth coordinate at the projection
// distance, where the perspective factor is undefined.
var ErrDegenerateProjection = errors.New("projection: degenerate projection (depth equals distance)")

// ProjectionError wraps ErrDegenerateProjection with the failing stage.
type ProjectionError struct {
	Stage    string
	Depth    float64
	Distance float64
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("%s: %s stage depth %g, distance %g", ErrDegenerateProjection, e.Stage, e.Depth, e.Distance)
}

func (e *ProjectionError) Unwrap() error { return ErrDegenerateProjection }

func factor(stage string, distance, depth float64) (float64, error) {
	den := distance - depth
	if math.Abs(den) < Epsilon || math.IsNaN(den) {
		return 0, &ProjectionError{Stage: stage, Depth: depth, Distance: distance}
	}
	return distance / den, nil
}

// ProjectTo3D scales (x, y, z) by distance/(distance - w).
func ProjectTo3D(p geom.Vector4, distance float64) (geom.Vector3, error) {
	f, err := factor("4d", distance, p.W)
	if err != nil {
		return geom.Vector3{}, err
	}
	return geom.Vector3{X: p.X, Y: p.Y, Z: p.Z}.Scale(f), nil
}

// ProjectTo2D scales (x, y) by distance/(distance - z), then by scale, and
// offsets both by center.
func ProjectTo2D(p geom.Vector3, distance, scale, center float64) (geom.ScreenPoint, error) {
	f, err := factor("3d", distance, p.Z)
	if err != nil {
		return geom.ScreenPoint{}, err
	}
	return geom.ScreenPoint{
		X: p.X*f*scale + center,
		Y: p.Y*f*scale + center,
	}, nil
}

// Projector bundles the constants of both stages.
type Projector struct {
	Distance float64
	Scale    float64
	Center   float64
}

func New(distance, scale, center float64) Projector {
	return Projector{Distance: distance, Scale: scale, Center: center}
}

// Project runs both stages.
func (p Projector) Project(v geom.Vector4) (geom.ScreenPoint, error) {
	p3, err := ProjectTo3D(v, p.Distance)
	if err != nil {
		return geom.ScreenPoint{}, err
	}
	return ProjectTo2D(p3, p.Distance, p.Scale, p.Center)
}

// ProjectAll projects every vertex. ok[i] is false where the point was
// degenerate; its ScreenPoint is then the zero value. The first error seen is
// returned alongside the partial result.
func (p Projector) ProjectAll(vs []geom.Vector4) ([]geom.ScreenPoint, []bool, error) {
	pts := make([]geom.ScreenPoint, len(vs))
	ok := make([]bool, len(vs))
	var first error
	for i, v := range vs {
		sp, err := p.Project(v)
		if err != nil {
			if first == nil {
				first = err
			}
			continue
		}
		pts[i], ok[i] = sp, true
	}
	return pts, ok, first
}
