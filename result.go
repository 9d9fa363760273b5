package hetbuilder

import (
	"github.com/katalvlaran/hetbuilder/dedup"
	"github.com/katalvlaran/hetbuilder/supercell"
)

// Result is the de-duplicated catalogue Run returns. A Result with a nil
// Interfaces slice means no angle produced a primitive pair, which is a
// normal return value, not an error.
type Result struct {
	Interfaces []supercell.Interface
}

// Len returns the number of interfaces in the result.
func (r Result) Len() int {
	return len(r.Interfaces)
}

// Sorted returns a copy of r.Interfaces ordered by (space_group,
// atom_count, area), for callers (e.g. tests) that need reproducible
// output regardless of the concurrent build order.
func (r Result) Sorted() []supercell.Interface {
	out := make([]supercell.Interface, len(r.Interfaces))
	copy(out, r.Interfaces)
	dedup.SortDeterministic(out)
	return out
}
