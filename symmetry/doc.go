// Package symmetry adapts an external crystallographic standardization
// routine, deliberately kept outside this engine's core: the core only
// needs a narrow contract — given atoms, a symmetry precision, an angle
// tolerance and a no-idealize flag, return an international space-group
// number (1..230) or 0 on failure, optionally replacing the atoms with
// their idealized standardized cell.
//
// No space-group library is available in this module's dependency
// ecosystem (see DESIGN.md), so Standardizer is a pluggable interface:
// callers that have a real standardization routine (e.g. a cgo binding to
// an external library, the way go-chem binds Indigo) implement it
// directly; Default is a deterministic, dependency-free geometric
// classifier used when no such routine is wired in.
package symmetry
