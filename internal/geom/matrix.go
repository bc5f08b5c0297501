package geom

// Matrix4 is a 4×4 transform. Points are row vectors: v' = v·M.
type Matrix4 [4][4]float64

func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns m·o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m[i][k] * o[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// Transpose returns the transpose of m. For a rotation it is the inverse.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Compose multiplies ms left to right, so with row vectors the first
// transform is applied first. An empty call yields the identity.
func Compose(ms ...Matrix4) Matrix4 {
	r := Identity()
	for _, m := range ms {
		r = r.Mul(m)
	}
	return r
}

// Transform returns v·m.
func (v Vector4) Transform(m Matrix4) Vector4 {
	c := v.Coords()
	var out [4]float64
	for j := 0; j < 4; j++ {
		out[j] = c[0]*m[0][j] + c[1]*m[1][j] + c[2]*m[2][j] + c[3]*m[3][j]
	}
	return Vector4{out[0], out[1], out[2], out[3]}
}

// Apply transforms every vertex into a new slice, preserving order.
func Apply(m Matrix4, vertices []Vector4) []Vector4 {
	out := make([]Vector4, len(vertices))
	for i, v := range vertices {
		out[i] = v.Transform(m)
	}
	return out
}
