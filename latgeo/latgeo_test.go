package latgeo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hetbuilder/latgeo"
	"github.com/stretchr/testify/require"
)

func TestApplyIdentity(t *testing.T) {
	m := latgeo.Mat2{{1, 0}, {0, 1}}
	v := latgeo.Apply(m, latgeo.IVec2{I: 3, J: -2})
	require.Equal(t, latgeo.Vec2{X: 3, Y: -2}, v)
}

func TestRotate90(t *testing.T) {
	v := latgeo.Rotate(latgeo.Vec2{X: 1, Y: 0}, math.Pi/2)
	require.InDelta(t, 0, v.X, 1e-12)
	require.InDelta(t, 1, v.Y, 1e-12)
}

func TestDistance(t *testing.T) {
	d := latgeo.Distance(latgeo.Vec2{X: 3, Y: 4}, latgeo.Vec2{})
	require.InDelta(t, 5, d, 1e-12)
}

func TestRotationIsometry(t *testing.T) {
	// Rotation preserves pairwise distances.
	a := latgeo.Vec2{X: 1.3, Y: -2.7}
	b := latgeo.Vec2{X: -0.4, Y: 5.1}
	before := latgeo.Distance(a, b)
	theta := 37.0 * math.Pi / 180
	after := latgeo.Distance(latgeo.Rotate(a, theta), latgeo.Rotate(b, theta))
	require.InDelta(t, before, after, 1e-10)
}

func TestDegToRad(t *testing.T) {
	require.InDelta(t, math.Pi, latgeo.DegToRad(180), 1e-12)
}
