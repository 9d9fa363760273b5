package pairreduce

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/hetbuilder/coincidence"
	"github.com/katalvlaran/hetbuilder/intutil"
)

// Pair is a primitive, orientation-preserving supercell-matrix pair (M, N).
type Pair struct {
	M, N intutil.Mat2
}

// Reduce returns every primitive pair derivable from tuples, preserving
// tuples' natural order as the i<j enumeration order.
//
// Complexity: O(k^2) in len(tuples); the outer index is parallelized across
// runtime.NumCPU() workers.
func Reduce(tuples []coincidence.Tuple) []Pair {
	k := len(tuples)
	if k < 2 {
		return nil
	}

	workers := runtime.NumCPU()
	if workers > k {
		workers = k
	}
	if workers < 1 {
		workers = 1
	}

	results := make([][]Pair, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			var local []Pair
			for i := w; i < k; i += workers {
				for j := i + 1; j < k; j++ {
					if p, ok := combine(tuples[i], tuples[j]); ok {
						local = append(local, p)
					}
				}
			}
			results[w] = local
		}(w)
	}
	wg.Wait()

	var merged []Pair
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// combine builds the candidate pair from tuples ti, tj (ti first, as in the
// input order) and reports whether it is primitive and orientation-preserving.
func combine(ti, tj coincidence.Tuple) (Pair, bool) {
	m := intutil.Mat2{{ti.M1, ti.M2}, {tj.M1, tj.M2}}
	n := intutil.Mat2{{ti.N1, ti.N2}, {tj.N1, tj.N2}}

	if intutil.Det2(m) <= 0 || intutil.Det2(n) <= 0 {
		return Pair{}, false
	}
	gcd := intutil.GCDList(m[0][0], m[0][1], m[1][0], m[1][1], n[0][0], n[0][1], n[1][0], n[1][1])
	if gcd != 1 {
		return Pair{}, false
	}
	return Pair{M: m, N: n}, true
}
