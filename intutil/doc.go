// Package intutil provides exact integer arithmetic helpers shared by the
// primitive-pair reduction and supercell construction stages: greatest common
// divisor over a list of signed integers, and 2x2/3x3 integer determinants.
//
// Every operation here is exact (no floating-point intermediate) and uses
// int64 throughout so that products of supercell-matrix entries (bounded by
// Nmax on the order of tens) never overflow.
package intutil
