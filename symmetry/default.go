package symmetry

import (
	"math"

	"github.com/katalvlaran/hetbuilder/atoms"
)

// Default is a dependency-free stand-in for an external space-group
// standardization routine. It classifies the in-plane cell's metric (edge
// lengths and included angle) into one of four 2D lattice shapes and maps
// each to a representative international space-group number; it never
// consults atomic species or positions, so it is not a substitute for a
// real standardization library — it exists so the engine is runnable and
// testable without one (see DESIGN.md).
//
// Default holds no state and is safe for concurrent use by multiple
// workers.
type Default struct{}

// space-group numbers returned for each recognized 2D lattice shape,
// chosen as commonly-cited representatives for that shape's layer
// symmetry (hexagonal graphene-like cells are P6/mmm #191, square cells
// P4/mmm #123, rectangular cells Pmmm #47, oblique cells P-1 #2).
const (
	sgHexagonal    = 191
	sgSquare       = 123
	sgRectangular  = 47
	sgOblique      = 2
	sgFailed       = 0
	minCellLength  = 1e-8
	rightAngleDeg  = 90
	hexAngleDegA   = 60
	hexAngleDegB   = 120
)

// Standardize implements Standardizer.
func (Default) Standardize(a atoms.Atoms, toPrimitive, noIdealize bool, symprec, angleToleranceDeg float64) (int, atoms.Atoms) {
	if symprec <= 0 || angleToleranceDeg < 0 {
		return sgFailed, a
	}

	v0, v1 := a.Cell[0], a.Cell[1]
	lenA, lenB := math.Hypot(v0.X, v0.Y), math.Hypot(v1.X, v1.Y)
	if lenA < minCellLength || lenB < minCellLength {
		return sgFailed, a
	}

	gamma := angleBetweenDeg(v0, v1)
	lengthTol := symprec * math.Max(lenA, lenB)
	equalLengths := math.Abs(lenA-lenB) <= lengthTol

	sg := sgOblique
	switch {
	case equalLengths && angleWithin(gamma, rightAngleDeg, angleToleranceDeg):
		sg = sgSquare
	case !equalLengths && angleWithin(gamma, rightAngleDeg, angleToleranceDeg):
		sg = sgRectangular
	case equalLengths && (angleWithin(gamma, hexAngleDegA, angleToleranceDeg) || angleWithin(gamma, hexAngleDegB, angleToleranceDeg)):
		sg = sgHexagonal
	}

	out := a
	if !noIdealize {
		out = idealize(a, v0)
	}
	return sg, out
}

func angleBetweenDeg(u, v atoms.Vec3) float64 {
	dot := u.X*v.X + u.Y*v.Y
	lenU, lenV := math.Hypot(u.X, u.Y), math.Hypot(v.X, v.Y)
	cos := dot / (lenU * lenV)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

func angleWithin(gamma, target, tolDeg float64) bool {
	return math.Abs(gamma-target) <= tolDeg
}

// idealize rotates a rigidly so its first in-plane lattice vector lies
// along +x, the standard orientation convention for a standardized cell.
func idealize(a atoms.Atoms, v0 atoms.Vec3) atoms.Atoms {
	theta := math.Atan2(v0.Y, v0.X)
	return atoms.RotateAroundZ(a, -theta)
}
