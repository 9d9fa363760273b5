// Package coincidence implements, for a fixed rotation angle theta, the
// brute-force 4D search over integer pairs (m1,m2,n1,n2) whose real images
// under the bottom and rotated-top bases coincide within a tolerance.
//
// The search is the hot loop of the whole engine: its cost is
// (Nmax-Nmin+1)^4 distance evaluations per angle. The outer index is
// data-parallel, so Search splits it across runtime.NumCPU() workers, each
// of which appends to a private slice that is concatenated after the
// parallel region, so the result order is unspecified and callers must not
// depend on it.
package coincidence
