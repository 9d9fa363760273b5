// Package latgeo provides the small set of 2D lattice-geometry primitives
// the coincidence search and supercell builder are built from: applying a
// real 2x2 matrix to an integer lattice vector, rotating a real 2-vector,
// and Euclidean distance between two 2-vectors.
//
// Nothing here validates its inputs — a degenerate basis propagates NaN or
// zero vectors unchecked; callers that need to reject degenerate lattices
// do so at their own boundary (see atoms.ErrDegenerateCell).
package latgeo
