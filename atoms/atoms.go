// Package atoms: core types and sentinel errors.
package atoms

import (
	"errors"

	"github.com/katalvlaran/hetbuilder/latgeo"
)

// Sentinel errors for the atoms package. Callers should compare with
// errors.Is, never by message.
var (
	// ErrDegenerateCell indicates a non-invertible lattice basis, or a
	// supercell matrix with non-positive determinant.
	ErrDegenerateCell = errors.New("atoms: degenerate cell")

	// ErrIncompatibleLayers indicates stacking inputs whose in-plane cells
	// are singular.
	ErrIncompatibleLayers = errors.New("atoms: incompatible layers")

	// ErrLengthMismatch indicates Positions and Species are not the same
	// length.
	ErrLengthMismatch = errors.New("atoms: position/species/pbc length mismatch")
)

// Vec3 is a real 3D Cartesian vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns u + v.
func (u Vec3) Add(v Vec3) Vec3 {
	return Vec3{u.X + v.X, u.Y + v.Y, u.Z + v.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Atoms is a finite, equal-length collection of atomic positions and species
// labels, together with a 3x3 cell whose rows are the lattice vectors (the
// third row conventionally along z for 2D layers) and a single cell-level
// periodic-boundary triple. PBC is not stored per atom.
type Atoms struct {
	Cell      [3]Vec3
	Positions []Vec3
	Species   []string
	PBC       [3]bool
}

// Len returns the atom count.
func (a Atoms) Len() int {
	return len(a.Positions)
}

// Validate checks that Positions and Species have equal length. PBC is a
// single cell-level triple, not one flag per atom, so it is not part of
// this check.
//
// Complexity: O(1).
func (a Atoms) Validate() error {
	if len(a.Positions) != len(a.Species) {
		return ErrLengthMismatch
	}
	return nil
}

// Basis2 returns the top-left 2x2 submatrix of Cell as the real basis A/B
// used throughout the coincidence search, with lattice vectors as columns
// so latgeo.Apply(Basis2(), (m,n)) = m*a1 + n*a2.
func (a Atoms) Basis2() latgeo.Mat2 {
	return latgeo.Mat2{
		{a.Cell[0].X, a.Cell[1].X},
		{a.Cell[0].Y, a.Cell[1].Y},
	}
}

// Clone returns a deep, independent copy of a.
func (a Atoms) Clone() Atoms {
	positions := make([]Vec3, len(a.Positions))
	copy(positions, a.Positions)
	species := make([]string, len(a.Species))
	copy(species, a.Species)

	return Atoms{
		Cell:      a.Cell,
		Positions: positions,
		Species:   species,
		PBC:       a.PBC,
	}
}
