package hetbuilder

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/hetbuilder/atoms"
	"github.com/katalvlaran/hetbuilder/coincidence"
	"github.com/katalvlaran/hetbuilder/dedup"
	"github.com/katalvlaran/hetbuilder/latgeo"
	"github.com/katalvlaran/hetbuilder/pairreduce"
	"github.com/katalvlaran/hetbuilder/supercell"
)

// Run is the top-level orchestrator: it drives the coincidence search and
// primitive-pair reduction across every candidate angle, builds and
// standardizes a supercell for every surviving (angle, pair), and returns
// the de-duplicated result.
//
// Run returns ErrInvalidParameter for a malformed configuration, an error
// wrapping atoms.ErrDegenerateCell/atoms.ErrIncompatibleLayers if bottom or
// top cannot be used to build a supercell, and a Result with a nil
// Interfaces slice (not an error) if no angle yields a primitive pair.
func Run(bottom, top atoms.Atoms, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	if err := validate(cfg, bottom, top); err != nil {
		return Result{}, err
	}

	angles := angleSet(cfg)
	bottomBasis := bottom.Basis2()
	topBasis := top.Basis2()

	type angleWork struct {
		angleDeg float64
		pairs    []pairreduce.Pair
	}
	var work []angleWork
	for _, angleDeg := range angles {
		theta := latgeo.DegToRad(angleDeg)
		tuples := coincidence.Search(bottomBasis, topBasis, theta, cfg.nmin, cfg.nmax, cfg.tolerance)
		// Search's order is unspecified and Reduce only pairs i<j, so reduce
		// the tuples in both orders. Swapping two tuples negates both
		// determinants, so each unordered pair is accepted at most once.
		pairs := pairreduce.Reduce(tuples)
		reversed := make([]coincidence.Tuple, len(tuples))
		for i, t := range tuples {
			reversed[len(tuples)-1-i] = t
		}
		pairs = append(pairs, pairreduce.Reduce(reversed)...)
		if len(pairs) == 0 {
			continue
		}
		work = append(work, angleWork{angleDeg: angleDeg, pairs: pairs})
	}
	if len(work) == 0 {
		return Result{}, nil // no angle produced a pair: normal, not an error.
	}

	type job struct {
		angleDeg float64
		pair     pairreduce.Pair
	}
	var jobs []job
	for _, w := range work {
		for _, p := range w.pairs {
			jobs = append(jobs, job{angleDeg: w.angleDeg, pair: p})
		}
	}

	// Every (angle, pair) job is independent; bounded by a worker semaphore
	// the way gonum's fd.Derivative bounds its concurrent stencil
	// evaluation, with one result slot per job rather than appending to a
	// shared slice under lock.
	built := make([]supercell.Interface, len(jobs))
	accepted := make([]bool, len(jobs))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for i, j := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, j job) {
			defer wg.Done()
			defer func() { <-sem }()

			iface, ok, err := supercell.Build(
				bottom, top, j.angleDeg, j.pair,
				cfg.weight, cfg.distance,
				cfg.standardizer, cfg.noIdealize, cfg.symprec, cfg.angleTolerance,
			)
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				return
			}
			if ok {
				built[i] = iface
				accepted[i] = true
			}
		}(i, j)
	}
	wg.Wait()

	if firstErr != nil {
		return Result{}, firstErr
	}

	var survivors []supercell.Interface
	for i, ok := range accepted {
		if ok {
			survivors = append(survivors, built[i])
		}
	}

	return Result{Interfaces: dedup.Dedup(survivors)}, nil
}

// validate rejects a malformed configuration or a degenerate input basis
// up front, before any search work is done.
func validate(cfg config, bottom, top atoms.Atoms) error {
	if cfg.nmax < cfg.nmin {
		return fmt.Errorf("%w: Nmax (%d) < Nmin (%d)", ErrInvalidParameter, cfg.nmax, cfg.nmin)
	}
	if cfg.weight < 0 || cfg.weight > 1 {
		return fmt.Errorf("%w: weight %g not in [0,1]", ErrInvalidParameter, cfg.weight)
	}
	if cfg.tolerance <= 0 {
		return fmt.Errorf("%w: tolerance %g must be positive", ErrInvalidParameter, cfg.tolerance)
	}
	if cfg.distance <= 0 {
		return fmt.Errorf("%w: distance %g must be positive", ErrInvalidParameter, cfg.distance)
	}
	if len(cfg.angles) == 0 {
		if cfg.angleStepsize <= 0 {
			return fmt.Errorf("%w: angle_stepsize %g must be positive", ErrInvalidParameter, cfg.angleStepsize)
		}
		if cfg.angleHigh < cfg.angleLow {
			return fmt.Errorf("%w: angle_limits high (%g) < low (%g)", ErrInvalidParameter, cfg.angleHigh, cfg.angleLow)
		}
	}
	if !latgeo.IsInvertible(bottom.Basis2()) || !latgeo.IsInvertible(top.Basis2()) {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, atoms.ErrDegenerateCell)
	}
	return nil
}

// angleSet resolves the configured angle list: angles overrides
// angle_limits entirely when non-empty; otherwise sweep [low, high] by
// stepsize inclusive of the endpoint.
func angleSet(cfg config) []float64 {
	if len(cfg.angles) > 0 {
		return cfg.angles
	}
	const endpointEps = 1e-9
	var out []float64
	for a := cfg.angleLow; a <= cfg.angleHigh+endpointEps; a += cfg.angleStepsize {
		out = append(out, a)
	}
	return out
}
