// Package atoms implements the core crystal-layer data model: a finite,
// logically-immutable collection of atoms (a 3x3 cell, parallel position /
// species sequences, and one cell-level periodic-boundary triple; there is
// no per-atom periodic-boundary flag) plus the three structural
// operations the supercell builder composes — supercell expansion, rigid
// rotation about z, and vertical stacking of two layers.
//
// Every operation returns a new Atoms value; none mutates its receiver or
// arguments, so a single Atoms value (e.g. the caller's bottom or top layer)
// can be shared read-only across concurrent workers for the lifetime of an
// orchestration run.
package atoms
