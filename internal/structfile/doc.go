// Package structfile reads the minimal VASP POSCAR subset needed to build
// an atoms.Atoms value for cmd/hetbuild: a comment line, a uniform scale
// factor, three lattice-vector lines, a species line, a counts line, a
// coordinate-mode line ("Direct" or "Cartesian"), and one coordinate line
// per atom.
//
// This is not a full POSCAR parser (no selective-dynamics flags, no
// velocities block) — it reads exactly what the demo CLI needs and rejects
// anything that does not fit that shape.
package structfile
