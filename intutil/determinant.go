package intutil

// Mat2 is a row-major 2x2 integer matrix: [[A, B], [C, D]].
type Mat2 [2][2]int64

// Mat3 is a row-major 3x3 integer matrix.
type Mat3 [3][3]int64

// Det2 returns the exact determinant of a 2x2 integer matrix.
//
// Complexity: O(1).
func Det2(m Mat2) int64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Det3 returns the exact determinant of a 3x3 integer matrix via cofactor
// expansion along the first row.
//
// Complexity: O(1).
func Det3(m Mat3) int64 {
	minor0 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	minor1 := m[1][0]*m[2][2] - m[1][2]*m[2][0]
	minor2 := m[1][0]*m[2][1] - m[1][1]*m[2][0]

	return m[0][0]*minor0 - m[0][1]*minor1 + m[0][2]*minor2
}

// Lift2To3 embeds a 2x2 integer matrix in the upper-left block of a 3x3
// matrix with 1 at (2,2) and zeros elsewhere in the third row/column, the
// standard lift used to turn an in-plane supercell matrix into a cell
// transformation matrix for a 2D (z-periodic-free) layer.
//
// Complexity: O(1).
func Lift2To3(m Mat2) Mat3 {
	return Mat3{
		{m[0][0], m[0][1], 0},
		{m[1][0], m[1][1], 0},
		{0, 0, 1},
	}
}
