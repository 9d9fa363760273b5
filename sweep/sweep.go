package sweep

import (
	"github.com/katalvlaran/hetbuilder"
	"github.com/katalvlaran/hetbuilder/atoms"
)

// Window is one (tolerance, Nmin, Nmax) point of the sweep.
type Window struct {
	Tolerance  float64
	Nmin, Nmax int64
}

// Lowest runs hetbuilder.Run once per window (baseOpts applied first, then
// the window's tolerance and N-range, so baseOpts may still set angles,
// weight, distance, etc.) and returns the window that produced the most
// interfaces, along with that run's Result. Ties are broken by the smallest
// window index, so Lowest is deterministic for a fixed windows slice.
//
// Lowest returns hetbuilder.ErrInvalidParameter if windows is empty, and
// aborts on the first window whose Run call returns a fatal error.
func Lowest(bottom, top atoms.Atoms, windows []Window, baseOpts ...hetbuilder.Option) (Window, hetbuilder.Result, error) {
	if len(windows) == 0 {
		return Window{}, hetbuilder.Result{}, hetbuilder.ErrInvalidParameter
	}

	var bestWindow Window
	var bestResult hetbuilder.Result
	haveBest := false

	for _, w := range windows {
		opts := append(append([]hetbuilder.Option{}, baseOpts...),
			hetbuilder.WithTolerance(w.Tolerance),
			hetbuilder.WithNRange(w.Nmin, w.Nmax),
		)
		res, err := hetbuilder.Run(bottom, top, opts...)
		if err != nil {
			return Window{}, hetbuilder.Result{}, err
		}
		if !haveBest || res.Len() > bestResult.Len() {
			bestWindow, bestResult, haveBest = w, res, true
		}
	}
	return bestWindow, bestResult, nil
}
