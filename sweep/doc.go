// Package sweep supplies a "lowest-stress sweep" driver: a thin loop over
// the core engine that scans a list of candidate search windows and picks
// the most productive one, the kind of sweep a match-style CLI subcommand
// would run without ever settling on one clear accumulation rule of its
// own.
//
// Lowest resolves that ambiguity the way a library function must: it loops
// hetbuilder.Run over a caller-supplied list of (tolerance, Nmin, Nmax)
// windows and deterministically returns the window producing the most
// interfaces (see DESIGN.md).
package sweep
