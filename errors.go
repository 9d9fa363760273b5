package hetbuilder

import "errors"

// Sentinel errors for Run. A degenerate or incompatible lattice basis is
// surfaced as atoms.ErrDegenerateCell or atoms.ErrIncompatibleLayers
// (wrapped here with %w); a standardization failure is recovered locally
// inside supercell.Build and never reaches Run's caller as an error; a
// search that simply finds nothing is not an error at all — Run returns a
// Result with a nil Interfaces slice.
var (
	// ErrInvalidParameter indicates a malformed Run configuration: Nmax <
	// Nmin, an empty angle set, weight outside [0,1], or a non-positive
	// tolerance or distance.
	ErrInvalidParameter = errors.New("hetbuilder: invalid parameter")
)
