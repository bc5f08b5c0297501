package geom

// Rect is an axis-aligned rectangle in pixel space, bounds inclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// ClipSegment trims the segment p1-p2 to r with Liang-Barsky. ok is false
// when no part of the segment lies inside r or an endpoint is not finite.
// Endpoints already inside r are returned unchanged.
func ClipSegment(p1, p2 ScreenPoint, r Rect) (ScreenPoint, ScreenPoint, bool) {
	if !p1.finite() || !p2.finite() {
		return p1, p2, false
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, p1.X - r.MinX},
		{dx, r.MaxX - p1.X},
		{-dy, p1.Y - r.MinY},
		{dy, r.MaxY - p1.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p1, p2, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return p1, p2, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return p1, p2, false
			}
			t1 = min(t1, t)
		}
	}

	a, b := p1, p2
	if t0 > 0 {
		a = ScreenPoint{p1.X + t0*dx, p1.Y + t0*dy}
	}
	if t1 < 1 {
		b = ScreenPoint{p1.X + t1*dx, p1.Y + t1*dy}
	}
	return a, b, true
}
