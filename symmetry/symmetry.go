package symmetry

import "github.com/katalvlaran/hetbuilder/atoms"

// Standardizer is the external space-group standardization contract.
// Implementations must be either reentrant or internally synchronized: the
// orchestrator calls Standardize concurrently from multiple workers.
type Standardizer interface {
	// Standardize classifies a's space group. When noIdealize is false and
	// the call succeeds, the returned Atoms is the idealized standardized
	// cell; otherwise it is a's own value unchanged. spaceGroup is 0 on
	// failure: the candidate is silently dropped by the caller, not treated
	// as an error.
	Standardize(a atoms.Atoms, toPrimitive, noIdealize bool, symprec, angleToleranceDeg float64) (spaceGroup int, out atoms.Atoms)
}
