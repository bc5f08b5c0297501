package geom

import "math"

type Vector4 struct {
	X, Y, Z, W float64
}

func (v Vector4) Dot(o Vector4) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }
func (v Vector4) Norm() float64         { return math.Sqrt(v.Dot(v)) }

// Coords returns the components in axis order, indexable by Axis.
func (v Vector4) Coords() [4]float64 { return [4]float64{v.X, v.Y, v.Z, v.W} }

// ManhattanDistance is the sum of absolute per-coordinate differences.
func (v Vector4) ManhattanDistance(o Vector4) float64 {
	return math.Abs(v.X-o.X) + math.Abs(v.Y-o.Y) + math.Abs(v.Z-o.Z) + math.Abs(v.W-o.W)
}

// ApproxEqual reports whether every coordinate is within tol.
func (v Vector4) ApproxEqual(o Vector4, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol &&
		math.Abs(v.Z-o.Z) <= tol && math.Abs(v.W-o.W) <= tol
}

type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// ScreenPoint is a position in pixel space.
type ScreenPoint struct {
	X, Y float64
}

// Round returns the nearest integer pixel.
func (p ScreenPoint) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (p ScreenPoint) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
