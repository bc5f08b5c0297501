package anim

import (
	"math"

	"github.com/san-kum/tesseract/internal/config"
	"github.com/san-kum/tesseract/internal/geom"
)

const twoPi = 2 * math.Pi

// AngleState holds one angle per rotation plane, in composition order.
type AngleState struct {
	planes []config.PlaneSpeed
	angles []float64
}

func NewAngleState(planes []config.PlaneSpeed) *AngleState {
	p := make([]config.PlaneSpeed, len(planes))
	copy(p, planes)
	return &AngleState{planes: p, angles: make([]float64, len(p))}
}

// Angle returns the current angle of plane p, or 0 if p is not scheduled.
func (s *AngleState) Angle(p geom.Plane) float64 {
	for i, ps := range s.planes {
		if ps.Plane == p {
			return s.angles[i]
		}
	}
	return 0
}

// Set overrides the angle of plane p if it is scheduled.
func (s *AngleState) Set(p geom.Plane, angle float64) {
	for i, ps := range s.planes {
		if ps.Plane == p {
			s.angles[i] = wrap(angle)
		}
	}
}

// Advance adds each plane's speed to its angle, wrapping into [0, 2π).
func (s *AngleState) Advance() {
	for i, ps := range s.planes {
		s.angles[i] = wrap(s.angles[i] + ps.Speed)
	}
}

// Transform composes the plane rotations in schedule order.
func (s *AngleState) Transform() geom.Matrix4 {
	ms := make([]geom.Matrix4, len(s.planes))
	for i, ps := range s.planes {
		ms[i] = geom.PlaneRotation(ps.Plane, s.angles[i])
	}
	return geom.Compose(ms...)
}

func wrap(a float64) float64 {
	if a >= 0 && a < twoPi {
		return a
	}
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
