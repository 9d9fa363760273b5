package atoms_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hetbuilder/atoms"
	"github.com/katalvlaran/hetbuilder/intutil"
	"github.com/stretchr/testify/require"
)

func identityAtoms() atoms.Atoms {
	return atoms.Atoms{
		Cell: [3]atoms.Vec3{
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 20},
		},
		Positions: []atoms.Vec3{{X: 0, Y: 0, Z: 0}},
		Species:   []string{"C"},
		PBC:       [3]bool{true, true, false},
	}
}

func TestMakeSupercellCount(t *testing.T) {
	// |atoms_out| = |det M| * |atoms_in|.
	a := identityAtoms()
	m3 := intutil.Mat3{{2, 0, 0}, {0, 2, 0}, {0, 0, 1}}
	out, err := atoms.MakeSupercell(a, m3)
	require.NoError(t, err)
	require.Len(t, out.Positions, 4)
	require.Len(t, out.Species, 4)
}

func TestMakeSupercellDegenerate(t *testing.T) {
	a := identityAtoms()
	m3 := intutil.Mat3{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	_, err := atoms.MakeSupercell(a, m3)
	require.ErrorIs(t, err, atoms.ErrDegenerateCell)
}

func TestMakeSupercellNonDiagonal(t *testing.T) {
	a := identityAtoms()
	m3 := intutil.Mat3{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}}
	out, err := atoms.MakeSupercell(a, m3)
	require.NoError(t, err)
	require.Len(t, out.Positions, 1)
}

func TestRotateAroundZIsometry(t *testing.T) {
	a := atoms.Atoms{
		Cell: [3]atoms.Vec3{{X: 1}, {Y: 1}, {Z: 20}},
		Positions: []atoms.Vec3{
			{X: 0.1, Y: 0.2, Z: 0},
			{X: 0.7, Y: 0.3, Z: 0},
		},
		Species: []string{"A", "B"},
	}
	before := dist(a.Positions[0], a.Positions[1])
	rotated := atoms.RotateAroundZ(a, 41*math.Pi/180)
	after := dist(rotated.Positions[0], rotated.Positions[1])
	require.InDelta(t, before, after, 1e-10)
}

func dist(u, v atoms.Vec3) float64 {
	return math.Hypot(u.X-v.X, u.Y-v.Y)
}

func TestStackCountsAndDistance(t *testing.T) {
	bottom := identityAtoms()
	top := identityAtoms()
	out, err := atoms.Stack(bottom, top, 0.5, 4)
	require.NoError(t, err)
	require.Len(t, out.Positions, 2)
	require.Equal(t, [3]bool{true, true, false}, out.PBC)
	require.Equal(t, atoms.Vec3{X: 1, Y: 0, Z: 0}, out.Cell[0])
	require.GreaterOrEqual(t, out.Positions[1].Z-out.Positions[0].Z, 4.0-1e-9)
}

func TestStackIncompatibleLayers(t *testing.T) {
	degenerate := identityAtoms()
	degenerate.Cell[1] = atoms.Vec3{X: 0, Y: 0, Z: 0}
	_, err := atoms.Stack(degenerate, identityAtoms(), 0.5, 4)
	require.ErrorIs(t, err, atoms.ErrIncompatibleLayers)
}
