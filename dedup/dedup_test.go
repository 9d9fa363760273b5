package dedup_test

import (
	"testing"

	"github.com/katalvlaran/hetbuilder/atoms"
	"github.com/katalvlaran/hetbuilder/dedup"
	"github.com/katalvlaran/hetbuilder/supercell"
	"github.com/stretchr/testify/require"
)

func ifaceWith(spaceGroup int, atomCount int, area float64, angle float64) supercell.Interface {
	positions := make([]atoms.Vec3, atomCount)
	return supercell.Interface{
		AngleDeg:   angle,
		SpaceGroup: spaceGroup,
		Stacked: atoms.Atoms{
			Cell:      [3]atoms.Vec3{{X: area}, {Y: 1}, {Z: 20}},
			Positions: positions,
		},
	}
}

func TestDedupIdenticalCollapse(t *testing.T) {
	// Three identical records collapse to one.
	in := []supercell.Interface{
		ifaceWith(191, 4, 10, 0),
		ifaceWith(191, 4, 10, 0),
		ifaceWith(191, 4, 10, 0),
	}
	require.Len(t, dedup.Dedup(in), 1)
}

func TestDedupDistinctSpaceGroups(t *testing.T) {
	// Three distinct space groups stay distinct.
	in := []supercell.Interface{
		ifaceWith(1, 4, 10, 0),
		ifaceWith(2, 4, 10, 0),
		ifaceWith(3, 4, 10, 0),
	}
	require.Len(t, dedup.Dedup(in), 3)
}

func TestDedupIdempotent(t *testing.T) {
	in := []supercell.Interface{
		ifaceWith(191, 4, 10, 0),
		ifaceWith(191, 4, 10.00001, 1),
		ifaceWith(47, 2, 5, 3),
	}
	once := dedup.Dedup(in)
	twice := dedup.Dedup(once)
	require.ElementsMatch(t, once, twice)
}

func TestDedupQuantizedAreaWithinEpsilonMerges(t *testing.T) {
	in := []supercell.Interface{
		ifaceWith(191, 4, 10.0, 0),
		ifaceWith(191, 4, 10.0+dedup.AreaEpsilon/10, 1),
	}
	require.Len(t, dedup.Dedup(in), 1)
}

func TestSortDeterministic(t *testing.T) {
	in := []supercell.Interface{
		ifaceWith(191, 4, 10, 0),
		ifaceWith(47, 2, 5, 0),
		ifaceWith(47, 2, 1, 0),
	}
	dedup.SortDeterministic(in)
	require.Equal(t, 47, in[0].SpaceGroup)
	require.InDelta(t, 1, in[0].Area(), 1e-9)
	require.Equal(t, 47, in[1].SpaceGroup)
	require.InDelta(t, 5, in[1].Area(), 1e-9)
	require.Equal(t, 191, in[2].SpaceGroup)
}
