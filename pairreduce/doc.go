// Package pairreduce reduces a set of coincidence tuples found for one
// angle to primitive supercell pairs: it produces every ordered pair of
// tuples (i<j in the input's natural order) whose combined 2x2 integer
// matrices M and N are both orientation-preserving (positive determinant)
// and together primitive (their eight entries' GCD is 1).
package pairreduce
