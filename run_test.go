package hetbuilder_test

import (
	"testing"

	"github.com/katalvlaran/hetbuilder"
	"github.com/katalvlaran/hetbuilder/atoms"
	"github.com/stretchr/testify/require"
)

func squareLayer() atoms.Atoms {
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

func TestRunIdenticalSquareLayersAtZero(t *testing.T) {
	bottom, top := squareLayer(), squareLayer()
	res, err := hetbuilder.Run(bottom, top,
		hetbuilder.WithAngles(0),
		hetbuilder.WithNRange(0, 1),
		hetbuilder.WithTolerance(1e-6),
	)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	require.Equal(t, 123, res.Interfaces[0].SpaceGroup) // square cell, Default standardizer
	require.Equal(t, 2, res.Interfaces[0].AtomCount())
}

func TestRunEmptyAnglesYieldsEmptyResult(t *testing.T) {
	// An angle where bases cannot coincide within tolerance produces no
	// interfaces without being an error.
	bottom, top := squareLayer(), squareLayer()
	res, err := hetbuilder.Run(bottom, top,
		hetbuilder.WithAngles(37),
		hetbuilder.WithNRange(0, 1),
		hetbuilder.WithTolerance(1e-9),
	)
	require.NoError(t, err)
	require.Equal(t, 0, res.Len())
	require.Nil(t, res.Interfaces)
}

func TestRunInvalidNRange(t *testing.T) {
	bottom, top := squareLayer(), squareLayer()
	_, err := hetbuilder.Run(bottom, top, hetbuilder.WithNRange(5, 2))
	require.ErrorIs(t, err, hetbuilder.ErrInvalidParameter)
}

func TestRunInvalidWeight(t *testing.T) {
	bottom, top := squareLayer(), squareLayer()
	_, err := hetbuilder.Run(bottom, top, hetbuilder.WithWeight(1.5))
	require.ErrorIs(t, err, hetbuilder.ErrInvalidParameter)
}

func TestRunInvalidTolerance(t *testing.T) {
	bottom, top := squareLayer(), squareLayer()
	_, err := hetbuilder.Run(bottom, top, hetbuilder.WithTolerance(0))
	require.ErrorIs(t, err, hetbuilder.ErrInvalidParameter)
}

func TestRunDegenerateCell(t *testing.T) {
	bottom := squareLayer()
	bottom.Cell[1] = atoms.Vec3{}
	_, err := hetbuilder.Run(bottom, squareLayer())
	require.ErrorIs(t, err, hetbuilder.ErrInvalidParameter)
	require.ErrorIs(t, err, atoms.ErrDegenerateCell)
}

func TestRunAngleLimitsSweep(t *testing.T) {
	bottom, top := squareLayer(), squareLayer()
	res, err := hetbuilder.Run(bottom, top,
		hetbuilder.WithAngleLimits(0, 2),
		hetbuilder.WithAngleStepsize(1),
		hetbuilder.WithNRange(0, 1),
		hetbuilder.WithTolerance(1e-6),
	)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len()) // only theta=0 coincides for an axis-aligned square cell
}

func TestResultSortedIsDeterministic(t *testing.T) {
	bottom, top := squareLayer(), squareLayer()
	res, err := hetbuilder.Run(bottom, top,
		hetbuilder.WithAngles(0),
		hetbuilder.WithNRange(0, 1),
		hetbuilder.WithTolerance(1e-6),
	)
	require.NoError(t, err)
	first := res.Sorted()
	second := res.Sorted()
	require.Equal(t, first, second)
}
