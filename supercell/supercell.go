package supercell

import (
	"math"

	"github.com/katalvlaran/hetbuilder/atoms"
	"github.com/katalvlaran/hetbuilder/intutil"
	"github.com/katalvlaran/hetbuilder/latgeo"
	"github.com/katalvlaran/hetbuilder/pairreduce"
	"github.com/katalvlaran/hetbuilder/symmetry"
)

// Interface is the immutable record of one accepted heterostructure match:
// the bottom and rotated top supercells, the stacked and standardized
// atoms, the rotation angle in degrees (the public-interface convention;
// radians are used only internally), the 3x3-lifted supercell matrices, and
// the resulting space-group number.
//
// A zero-value Interface is never produced by Build; once constructed an
// Interface is owned by its caller and never mutated in place.
type Interface struct {
	Bottom     atoms.Atoms
	Top        atoms.Atoms
	Stacked    atoms.Atoms
	AngleDeg   float64
	M          intutil.Mat3
	N          intutil.Mat3
	SpaceGroup int
}

// Area returns the magnitude of the cross product of the stacked cell's two
// in-plane lattice vectors.
func (iface Interface) Area() float64 {
	a, b := iface.Stacked.Cell[0], iface.Stacked.Cell[1]
	return math.Abs(a.X*b.Y - a.Y*b.X)
}

// AtomCount returns the number of atoms in the stacked interface.
func (iface Interface) AtomCount() int {
	return iface.Stacked.Len()
}

// Build applies (M, N, angleDeg) to bottom and top, stacks the results at
// distance with the given weight, standardizes the stack, and reports
// whether a valid Interface was produced. ok is false, with a nil error,
// when the standardizer returns space group 0: the candidate is dropped,
// not an error. A non-nil error signals a fatal geometry failure
// (DegenerateCell / IncompatibleLayers) that should abort the whole run.
func Build(
	bottom, top atoms.Atoms,
	angleDeg float64,
	pair pairreduce.Pair,
	weight, distance float64,
	std symmetry.Standardizer,
	noIdealize bool,
	symprec, angleTolerance float64,
) (iface Interface, ok bool, err error) {
	m3 := intutil.Lift2To3(pair.M)
	n3 := intutil.Lift2To3(pair.N)

	bottomLayer, err := atoms.MakeSupercell(bottom, m3)
	if err != nil {
		return Interface{}, false, err
	}
	topLayer, err := atoms.MakeSupercell(top, n3)
	if err != nil {
		return Interface{}, false, err
	}

	topRot := atoms.RotateAroundZ(topLayer, latgeo.DegToRad(angleDeg))

	stacked, err := atoms.Stack(bottomLayer, topRot, weight, distance)
	if err != nil {
		return Interface{}, false, err
	}

	sg, standardized := std.Standardize(stacked, true, noIdealize, symprec, angleTolerance)
	if sg == 0 {
		return Interface{}, false, nil
	}

	return Interface{
		Bottom:     bottomLayer,
		Top:        topRot,
		Stacked:    standardized,
		AngleDeg:   angleDeg,
		M:          m3,
		N:          n3,
		SpaceGroup: sg,
	}, true, nil
}
