package coincidence

import (
	"runtime"
	"sync"

	"github.com/katalvlaran/hetbuilder/latgeo"
)

// Tuple is an accepted coincidence: (M1,M2) index the bottom basis, (N1,N2)
// the rotated top basis.
type Tuple struct {
	M1, M2, N1, N2 int64
}

// allEqual reports whether a tuple's four entries are identical. This
// degenerate case (which subsumes the null tuple) is excluded from results:
// it trivially coincides with itself and never represents a real lattice
// match.
func (t Tuple) allEqual() bool {
	return t.M1 == t.M2 && t.M2 == t.N1 && t.N1 == t.N2
}

// Search returns every tuple (m1,m2,n1,n2) in [nmin,nmax]^4, excluding any
// tuple whose four entries are all equal, such that
//
//	distance(A*(m1,m2), rotate(B*(n1,n2), theta)) < tol.
//
// theta is in radians. The returned order is unspecified.
//
// Complexity: O((nmax-nmin+1)^4) distance evaluations, parallelized over the
// outer (m1) index.
func Search(a, b latgeo.Mat2, theta float64, nmin, nmax int64, tol float64) []Tuple {
	if nmax < nmin {
		return nil
	}
	span := nmax - nmin + 1

	workers := runtime.NumCPU()
	if int64(workers) > span {
		workers = int(span)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([][]Tuple, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			lo, hi := workerSlice(nmin, nmax, workers, w)
			results[w] = searchRange(a, b, theta, nmin, nmax, tol, lo, hi)
		}(w)
	}
	wg.Wait()

	var merged []Tuple
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// workerSlice splits [nmin,nmax] into `workers` contiguous, roughly-equal
// chunks and returns the [lo,hi] (inclusive) chunk owned by worker w.
func workerSlice(nmin, nmax int64, workers, w int) (lo, hi int64) {
	span := nmax - nmin + 1
	base := span / int64(workers)
	rem := span % int64(workers)

	lo = nmin
	for i := 0; i < w; i++ {
		chunk := base
		if int64(i) < rem {
			chunk++
		}
		lo += chunk
	}
	chunk := base
	if int64(w) < rem {
		chunk++
	}
	return lo, lo + chunk - 1
}

// searchRange runs the full 4D enumeration with the outer (m1) loop
// restricted to [lo,hi], appending to a private slice.
func searchRange(a, b latgeo.Mat2, theta float64, nmin, nmax int64, tol float64, lo, hi int64) []Tuple {
	var local []Tuple
	for m1 := lo; m1 <= hi; m1++ {
		for m2 := nmin; m2 <= nmax; m2++ {
			av := latgeo.Apply(a, latgeo.IVec2{I: m1, J: m2})
			for n1 := nmin; n1 <= nmax; n1++ {
				for n2 := nmin; n2 <= nmax; n2++ {
					t := Tuple{M1: m1, M2: m2, N1: n1, N2: n2}
					if t.allEqual() {
						continue
					}
					bv := latgeo.Rotate(latgeo.Apply(b, latgeo.IVec2{I: n1, J: n2}), theta)
					if latgeo.Distance(av, bv) < tol {
						local = append(local, t)
					}
				}
			}
		}
	}
	return local
}
