package dedup

import (
	"sort"

	"github.com/katalvlaran/hetbuilder/supercell"
)

// AreaEpsilon is the absolute tolerance used to quantize area for the
// equivalence relation.
const AreaEpsilon = 1e-4

type bucketKey struct {
	spaceGroup int
	atomCount  int
	areaBucket int64
}

func keyOf(iface supercell.Interface) bucketKey {
	return bucketKey{
		spaceGroup: iface.SpaceGroup,
		atomCount:  iface.AtomCount(),
		areaBucket: int64(iface.Area() / AreaEpsilon),
	}
}

// Dedup groups ifaces into equivalence classes keyed by
// (space_group, quantized area, atom_count) and returns exactly one
// deterministically-chosen representative per class: the candidate with
// smallest angle, tie-broken by its M then N matrix entries, so the choice
// does not depend on the unspecified input order.
//
// Dedup is idempotent: Dedup(Dedup(x)) == Dedup(x), since every
// representative is alone in its own bucket on a second pass.
//
// Complexity: O(n log n).
func Dedup(ifaces []supercell.Interface) []supercell.Interface {
	best := make(map[bucketKey]supercell.Interface, len(ifaces))
	for _, iface := range ifaces {
		k := keyOf(iface)
		cur, seen := best[k]
		if !seen || lessRepresentative(iface, cur) {
			best[k] = iface
		}
	}

	out := make([]supercell.Interface, 0, len(best))
	for _, iface := range best {
		out = append(out, iface)
	}
	return out
}

// lessRepresentative reports whether a should be preferred over b as the
// class representative: smallest angle first, then lexicographically
// smallest M, then N.
func lessRepresentative(a, b supercell.Interface) bool {
	if a.AngleDeg != b.AngleDeg {
		return a.AngleDeg < b.AngleDeg
	}
	if cmp := cmpMat3(a.M, b.M); cmp != 0 {
		return cmp < 0
	}
	return cmpMat3(a.N, b.N) < 0
}

func cmpMat3(a, b [3][3]int64) int {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a[i][j] != b[i][j] {
				if a[i][j] < b[i][j] {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}

// SortDeterministic sorts ifaces in place by (space_group, atom_count,
// area), for callers that need deterministic output regardless of the
// concurrent build or bucket-map iteration order.
func SortDeterministic(ifaces []supercell.Interface) {
	sort.Slice(ifaces, func(i, j int) bool {
		a, b := ifaces[i], ifaces[j]
		if a.SpaceGroup != b.SpaceGroup {
			return a.SpaceGroup < b.SpaceGroup
		}
		if a.AtomCount() != b.AtomCount() {
			return a.AtomCount() < b.AtomCount()
		}
		return a.Area() < b.Area()
	})
}
