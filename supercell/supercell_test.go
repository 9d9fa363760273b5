package supercell_test

import (
	"testing"

	"github.com/katalvlaran/hetbuilder/atoms"
	"github.com/katalvlaran/hetbuilder/intutil"
	"github.com/katalvlaran/hetbuilder/pairreduce"
	"github.com/katalvlaran/hetbuilder/supercell"
	"github.com/katalvlaran/hetbuilder/symmetry"
	"github.com/stretchr/testify/require"
)

func trivialLayer() atoms.Atoms {
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

func TestBuildStacksTwoIdenticalLayers(t *testing.T) {
	pair := pairreduce.Pair{
		M: intutil.Mat2{{1, 0}, {0, 1}},
		N: intutil.Mat2{{1, 0}, {0, 1}},
	}
	iface, ok, err := supercell.Build(
		trivialLayer(), trivialLayer(), 0, pair, 0.5, 4,
		symmetry.Default{}, true, 1e-5, 5,
	)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, iface.AtomCount())
	require.Equal(t, [3]bool{true, true, false}, iface.Stacked.PBC)
	require.InDelta(t, 1, iface.Stacked.Cell[0].X, 1e-12)
	require.InDelta(t, 1, iface.Stacked.Cell[1].Y, 1e-12)
	require.GreaterOrEqual(t, iface.Stacked.Positions[1].Z-iface.Stacked.Positions[0].Z, 4.0-1e-9)
	require.NotZero(t, iface.SpaceGroup)
	require.InDelta(t, 1.0, iface.Area(), 1e-9)
}

func TestBuildDropsOnStandardizationFailure(t *testing.T) {
	pair := pairreduce.Pair{
		M: intutil.Mat2{{1, 0}, {0, 1}},
		N: intutil.Mat2{{1, 0}, {0, 1}},
	}
	_, ok, err := supercell.Build(
		trivialLayer(), trivialLayer(), 0, pair, 0.5, 4,
		symmetry.Default{}, true, -1, 5, // symprec <= 0 forces Default to fail
	)
	require.NoError(t, err)
	require.False(t, ok)
}
