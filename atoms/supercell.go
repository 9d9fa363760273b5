package atoms

import (
	"math"

	"github.com/katalvlaran/hetbuilder/intutil"
)

// boundaryEps is the tolerance applied to fractional-coordinate membership
// tests, absorbing floating-point round-off at supercell boundaries.
const boundaryEps = 1e-8

// MakeSupercell applies the integer cell transformation M3 (new_cell =
// M3 * old_cell) to a, keeping every image atom whose fractional
// coordinate in the new cell lies in [0, 1) (within boundaryEps).
//
// Returns ErrDegenerateCell if det(M3) <= 0. On success the output atom
// count equals |det(M3)| * a.Len(), up to the boundary epsilon.
//
// Complexity: O(det(M3) * a.Len()).
func MakeSupercell(a Atoms, m3 intutil.Mat3) (Atoms, error) {
	det := intutil.Det3(m3)
	if det <= 0 {
		return Atoms{}, ErrDegenerateCell
	}

	oldCell := a.Cell
	newCell := transformCell(m3, oldCell)
	invNew, ok := invert3(newCell)
	if !ok {
		return Atoms{}, ErrDegenerateCell
	}

	minI, maxI := boundingOffsets(m3)

	out := Atoms{
		Cell: newCell,
		PBC:  [3]bool{true, true, false},
	}
	for n0 := minI[0]; n0 <= maxI[0]; n0++ {
		for n1 := minI[1]; n1 <= maxI[1]; n1++ {
			for n2 := minI[2]; n2 <= maxI[2]; n2++ {
				offset := oldCell[0].Scale(float64(n0)).
					Add(oldCell[1].Scale(float64(n1))).
					Add(oldCell[2].Scale(float64(n2)))

				for i, pos := range a.Positions {
					cand := pos.Add(offset)
					frac := applyMat3(invNew, cand)
					if !inUnitCell(frac) {
						continue
					}
					out.Positions = append(out.Positions, cand)
					out.Species = append(out.Species, a.Species[i])
				}
			}
		}
	}

	return out, nil
}

// RotateAroundZ rotates both the in-plane cell vectors and every Cartesian
// position of a by theta radians about the z axis, leaving z coordinates
// and the out-of-plane cell vector's z component fixed.
//
// Complexity: O(a.Len()).
func RotateAroundZ(a Atoms, theta float64) Atoms {
	sin, cos := math.Sincos(theta)
	rot := func(v Vec3) Vec3 {
		return Vec3{
			X: v.X*cos - v.Y*sin,
			Y: v.X*sin + v.Y*cos,
			Z: v.Z,
		}
	}

	out := a.Clone()
	out.Cell = [3]Vec3{rot(a.Cell[0]), rot(a.Cell[1]), rot(a.Cell[2])}
	for i, pos := range a.Positions {
		out.Positions[i] = rot(pos)
	}
	return out
}

// Stack concatenates bottom and top into a single layer: the new in-plane
// cell blends bottom's and top's in-plane vectors by weight (weight in
// [0,1]; 0 is pure bottom, 1 is pure top), the out-of-plane vector is
// bottom's, and top is shifted along +z so its lowest atom sits distance
// above bottom's highest atom.
//
// Returns ErrIncompatibleLayers if either layer's in-plane cell is singular.
//
// Complexity: O(bottom.Len() + top.Len()).
func Stack(bottom, top Atoms, weight, distance float64) (Atoms, error) {
	if !invertible2(bottom.Basis2()) || !invertible2(top.Basis2()) {
		return Atoms{}, ErrIncompatibleLayers
	}

	blend := func(b, t Vec3) Vec3 {
		return Vec3{
			X: b.X + weight*(t.X-b.X),
			Y: b.Y + weight*(t.Y-b.Y),
			Z: b.Z + weight*(t.Z-b.Z),
		}
	}

	newCell := [3]Vec3{
		blend(bottom.Cell[0], top.Cell[0]),
		blend(bottom.Cell[1], top.Cell[1]),
		bottom.Cell[2],
	}

	bottomMaxZ := math.Inf(-1)
	for _, p := range bottom.Positions {
		bottomMaxZ = math.Max(bottomMaxZ, p.Z)
	}
	topMinZ := math.Inf(1)
	for _, p := range top.Positions {
		topMinZ = math.Min(topMinZ, p.Z)
	}
	shift := 0.0
	if len(bottom.Positions) > 0 && len(top.Positions) > 0 {
		shift = (bottomMaxZ + distance) - topMinZ
	}

	out := Atoms{
		Cell: newCell,
		PBC:  [3]bool{true, true, false},
	}
	out.Positions = append(out.Positions, bottom.Positions...)
	out.Species = append(out.Species, bottom.Species...)
	for _, p := range top.Positions {
		out.Positions = append(out.Positions, Vec3{X: p.X, Y: p.Y, Z: p.Z + shift})
	}
	out.Species = append(out.Species, top.Species...)

	return out, nil
}

// transformCell returns m3 * cell, treating cell's rows as basis vectors.
func transformCell(m3 intutil.Mat3, cell [3]Vec3) [3]Vec3 {
	rowOf := func(i int) Vec3 {
		return cell[0].Scale(float64(m3[i][0])).
			Add(cell[1].Scale(float64(m3[i][1]))).
			Add(cell[2].Scale(float64(m3[i][2])))
	}
	return [3]Vec3{rowOf(0), rowOf(1), rowOf(2)}
}

// boundingOffsets returns, per axis, the inclusive integer range of lattice
// translations (expressed against the *old* cell) needed to cover every
// image of the unit cube under m3, widened by one unit cell on each side as
// a conservative margin.
func boundingOffsets(m3 intutil.Mat3) (min, max [3]int64) {
	min = [3]int64{math.MaxInt64, math.MaxInt64, math.MaxInt64}
	max = [3]int64{math.MinInt64, math.MinInt64, math.MinInt64}
	for _, corner := range [8][3]int64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	} {
		for j := 0; j < 3; j++ {
			var y int64
			for k := 0; k < 3; k++ {
				y += corner[k] * m3[k][j]
			}
			if y < min[j] {
				min[j] = y
			}
			if y > max[j] {
				max[j] = y
			}
		}
	}
	for j := 0; j < 3; j++ {
		min[j]--
		max[j]++
	}
	return min, max
}

// applyMat3 returns m * v (m's rows form the basis v is expressed against'
// dual), used here as the fractional-coordinate map v * inverse(cell).
func applyMat3(m [3][3]float64, v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func inUnitCell(frac Vec3) bool {
	in := func(x float64) bool {
		return x >= -boundaryEps && x < 1-boundaryEps
	}
	return in(frac.X) && in(frac.Y) && in(frac.Z)
}

// invert3 returns the inverse of the 3x3 matrix whose rows are cell, as a
// matrix M such that M * cartesian = fractional (cartesian = frac * cell).
func invert3(cell [3]Vec3) (inv [3][3]float64, ok bool) {
	m := [3][3]float64{
		{cell[0].X, cell[0].Y, cell[0].Z},
		{cell[1].X, cell[1].Y, cell[1].Z},
		{cell[2].X, cell[2].Y, cell[2].Z},
	}
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	if det == 0 {
		return inv, false
	}
	invDet := 1 / det

	cof := [3][3]float64{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[1][2]*m[2][0] - m[1][0]*m[2][2], m[1][0]*m[2][1] - m[1][1]*m[2][0]},
		{m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1]},
		{m[0][1]*m[1][2] - m[0][2]*m[1][1], m[0][2]*m[1][0] - m[0][0]*m[1][2], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
	// inverse(cell) is transpose(cof) * invDet, and frac = cart * inverse(cell)
	// for row vectors; as a matrix applied to a column vector that map is
	// transpose(inverse(cell)) = cof * invDet, so that inv * cart = frac.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = cof[i][j] * invDet
		}
	}
	return inv, true
}

func invertible2(m [2][2]float64) bool {
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	return math.Abs(det) > 1e-12
}
