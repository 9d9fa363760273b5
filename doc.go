// Package hetbuilder enumerates coincidence superlattices between two
// crystalline 2D layers and builds the resulting heterostructure interfaces.
//
// Given two layers (a bottom and a top Atoms value) it searches, for each
// candidate rotation angle, integer supercell matrix pairs (M, N) whose
// lattice images coincide within a tolerance, reduces them to primitive,
// orientation-preserving pairs, builds the stacked supercell for each,
// standardizes its symmetry through a pluggable Standardizer, and returns a
// de-duplicated list of Interface records.
//
// Package layout:
//
//	latgeo/      — 2D lattice vector algebra (apply, rotate, distance)
//	intutil/     — exact integer GCD and 2x2/3x3 determinants
//	atoms/       — the Atoms data model: supercell expansion, rotation, stacking
//	coincidence/ — the 4D coincidence search
//	pairreduce/  — primitive-pair reduction
//	supercell/   — supercell construction and the Interface record
//	symmetry/    — the external standardization contract and a fallback
//	dedup/       — equivalence classing of Interface values
//	sweep/       — a tolerance/window sweep helper built on Run
//
// Run is the package's single entry point; everything else is exported so
// callers needing a custom pipeline (a different Standardizer, or direct
// access to the coincidence search) can assemble it from the parts above.
package hetbuilder
