package projection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tesseract/internal/geom"
)

const tol = 1e-9

func TestProjectTo3DAtWZeroIsUnscaled(t *testing.T) {
	got, err := ProjectTo3D(geom.Vector4{X: 1, Y: 2, Z: 3, W: 0}, 5)
	require.NoError(t, err)
	assert.Equal(t, geom.Vector3{X: 1, Y: 2, Z: 3}, got)
}

func TestProjectTo3DFactor(t *testing.T) {
	got, err := ProjectTo3D(geom.Vector4{X: 1, Y: 1, Z: 1, W: 1}, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, got.X, tol)
	assert.InDelta(t, 1.25, got.Y, tol)
	assert.InDelta(t, 1.25, got.Z, tol)

	got, err = ProjectTo3D(geom.Vector4{X: 2, Y: -1, Z: 0, W: -5}, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.X, tol)
	assert.InDelta(t, -0.5, got.Y, tol)
}

func TestProjectTo2D(t *testing.T) {
	got, err := ProjectTo2D(geom.Vector3{X: 1, Y: -1, Z: 0}, 5, 150, 400)
	require.NoError(t, err)
	assert.InDelta(t, 550.0, got.X, tol)
	assert.InDelta(t, 250.0, got.Y, tol)
}

func TestProjectCornerVertex(t *testing.T) {
	// (1,1,1,1): w-factor 5/4 gives (1.25,1.25,1.25); z-factor 5/3.75 = 4/3.
	p := New(5, 150, 400)
	got, err := p.Project(geom.Vector4{X: 1, Y: 1, Z: 1, W: 1})
	require.NoError(t, err)
	assert.InDelta(t, 650.0, got.X, tol)
	assert.InDelta(t, 650.0, got.Y, tol)

	p3, err := ProjectTo3D(geom.Vector4{X: 1, Y: 1, Z: 1, W: 1}, 5)
	require.NoError(t, err)
	p2, err := ProjectTo2D(p3, 5, 150, 400)
	require.NoError(t, err)
	assert.Equal(t, got, p2)
}

func TestDegenerateProjection(t *testing.T) {
	tests := []struct {
		name  string
		run   func() error
		stage string
	}{
		{
			name: "w at distance",
			run: func() error {
				_, err := ProjectTo3D(geom.Vector4{X: 1, W: 5}, 5)
				return err
			},
			stage: "4d",
		},
		{
			name: "z at distance",
			run: func() error {
				_, err := ProjectTo2D(geom.Vector3{X: 1, Z: 2}, 2, 150, 400)
				return err
			},
			stage: "3d",
		},
		{
			name: "z reaches distance after first stage",
			run: func() error {
				// w-factor 2/(2-1)=2 pushes z from 1 to 2.
				_, err := New(2, 150, 400).Project(geom.Vector4{Z: 1, W: 1})
				return err
			},
			stage: "3d",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDegenerateProjection))
			var pe *ProjectionError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.stage, pe.Stage)
		})
	}
}

func TestProjectAllSkipsDegeneratePoints(t *testing.T) {
	p := New(1, 100, 0)
	vs := []geom.Vector4{
		{X: 0.5},
		{X: 1, W: 1},
		{Y: 0.25},
	}
	pts, ok, err := p.ProjectAll(vs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateProjection))
	assert.Equal(t, []bool{true, false, true}, ok)
	assert.InDelta(t, 50.0, pts[0].X, tol)
	assert.Equal(t, geom.ScreenPoint{}, pts[1])
	assert.InDelta(t, 25.0, pts[2].Y, tol)
}

func TestProjectAllDefaultGeometryNeverDegenerates(t *testing.T) {
	p := New(5, 150, 400)
	vs := []geom.Vector4{}
	for _, x := range []float64{-1, 1} {
		for _, w := range []float64{-1, 1} {
			vs = append(vs, geom.Vector4{X: x, Y: x, Z: x, W: w})
		}
	}
	_, ok, err := p.ProjectAll(vs)
	require.NoError(t, err)
	for i := range ok {
		assert.True(t, ok[i])
	}
}
