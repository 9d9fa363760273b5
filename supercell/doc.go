// Package supercell implements: given an accepted (angle, primitive pair),
// build the bottom and rotated-top supercells, stack them, and invoke the
// symmetry standardizer, producing an Interface record.
//
// Build is independent across (angle, pair) combinations and has no shared
// mutable state beyond the read-only bottom and top layers and the
// caller-supplied Standardizer.
package supercell
