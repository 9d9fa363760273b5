package hetbuilder

import "github.com/katalvlaran/hetbuilder/symmetry"

// Default parameter values, shared by the library entry point and the
// hetbuild command-line driver so both agree on one source of truth.
const (
	DefaultNmax           int64   = 10
	DefaultNmin           int64   = 0
	DefaultAngleStepsize  float64 = 1
	DefaultAngleLimitLow  float64 = 0
	DefaultAngleLimitHigh float64 = 90
	DefaultTolerance      float64 = 0.1
	DefaultWeight         float64 = 0.5
	DefaultDistance       float64 = 4
	DefaultNoIdealize             = false
	DefaultSymprec        float64 = 1e-5
	DefaultAngleTolerance float64 = 5
)

// config holds every parameter of a Run call, built by applying a sequence
// of Option values over the defaults above.
type config struct {
	nmax, nmin     int64
	angles         []float64 // degrees; non-empty overrides angleLimits
	angleLow       float64
	angleHigh      float64
	angleStepsize  float64
	tolerance      float64
	weight         float64
	distance       float64
	noIdealize     bool
	symprec        float64
	angleTolerance float64
	standardizer   symmetry.Standardizer
}

func newConfig(opts ...Option) config {
	cfg := config{
		nmax:           DefaultNmax,
		nmin:           DefaultNmin,
		angleLow:       DefaultAngleLimitLow,
		angleHigh:      DefaultAngleLimitHigh,
		angleStepsize:  DefaultAngleStepsize,
		tolerance:      DefaultTolerance,
		weight:         DefaultWeight,
		distance:       DefaultDistance,
		noIdealize:     DefaultNoIdealize,
		symprec:        DefaultSymprec,
		angleTolerance: DefaultAngleTolerance,
		standardizer:   symmetry.Default{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Run call. Options are applied left-to-right, so a
// later option overrides an earlier one that touches the same field.
type Option func(cfg *config)

// WithNRange sets the inclusive supercell-index search range [nmin, nmax].
func WithNRange(nmin, nmax int64) Option {
	return func(cfg *config) { cfg.nmin, cfg.nmax = nmin, nmax }
}

// WithAngles restricts the search to exactly this set of angles in
// degrees, overriding WithAngleLimits/WithAngleStepsize entirely.
func WithAngles(degrees ...float64) Option {
	return func(cfg *config) { cfg.angles = degrees }
}

// WithAngleLimits sets the inclusive [low, high] sweep range in degrees,
// used only when WithAngles is not given.
func WithAngleLimits(low, high float64) Option {
	return func(cfg *config) { cfg.angleLow, cfg.angleHigh = low, high }
}

// WithAngleStepsize sets the step between successive swept angles.
func WithAngleStepsize(step float64) Option {
	return func(cfg *config) { cfg.angleStepsize = step }
}

// WithTolerance sets the coincidence-search distance tolerance.
func WithTolerance(tol float64) Option {
	return func(cfg *config) { cfg.tolerance = tol }
}

// WithWeight sets the interface cell blend weight in [0,1] (0 = bottom
// cell, 1 = top cell).
func WithWeight(weight float64) Option {
	return func(cfg *config) { cfg.weight = weight }
}

// WithDistance sets the interlayer distance.
func WithDistance(distance float64) Option {
	return func(cfg *config) { cfg.distance = distance }
}

// WithNoIdealize disables cell idealization during standardization.
func WithNoIdealize(noIdealize bool) Option {
	return func(cfg *config) { cfg.noIdealize = noIdealize }
}

// WithSymprec sets the symmetry-finding precision passed to the
// Standardizer.
func WithSymprec(symprec float64) Option {
	return func(cfg *config) { cfg.symprec = symprec }
}

// WithAngleTolerance sets the angle tolerance (degrees) passed to the
// Standardizer.
func WithAngleTolerance(tolDeg float64) Option {
	return func(cfg *config) { cfg.angleTolerance = tolDeg }
}

// WithStandardizer overrides the default pure-Go standardizer with std,
// e.g. a binding to a real external space-group library.
func WithStandardizer(std symmetry.Standardizer) Option {
	return func(cfg *config) { cfg.standardizer = std }
}
