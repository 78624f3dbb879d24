package simplex

import "fmt"

// config holds every tunable the Solver accepts, applied via Option before
// New builds the extended matrix and its transpose. The zero value is never used directly; defaultConfig
// supplies every field's default.
type config struct {
	tolerance     float64
	maxIterations int
	bigMFactor    float64
	extendedPath  string
	transposePath string
	blandsRule    bool
}

// defaultConfig matches spec.md §4.3.2 (ε = 1e-8), §4.3.1 (Big-M factor =
// 200), §4.3.5 (iteration cap recommendation = 100*(n+m), applied once n
// and m are known), and §6's first documented side-effect naming scheme.
func defaultConfig() config {
	return config{
		tolerance:     1e-8,
		maxIterations: 0, // resolved to 100*(n+m) in New unless overridden
		bigMFactor:    200,
		blandsRule:    false,
	}
}

// Option configures a Solver at construction time.
type Option func(*config)

// WithTolerance overrides the default ε = 1e-8 used for optimality,
// unboundedness, and ratio-test comparisons (spec.md §4.3.2).
func WithTolerance(eps float64) Option {
	return func(c *config) { c.tolerance = eps }
}

// WithMaxIterations caps the number of pivot iterations; Solve returns
// ErrIterationLimit if the cap is reached before termination. n <= 0
// disables the cap, reproducing the reference's unbounded iteration count
// (spec.md §4.3.5 notes cycling is then possible on degenerate inputs).
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.maxIterations = -1 // disabled sentinel; distinct from "unset" (0)
		} else {
			c.maxIterations = n
		}
	}
}

// WithBigMFactor overrides the default multiplier of 200 used to derive
// M = factor * max_j|c_j| for the artificial variables' penalty cost
// (spec.md §4.3.1 step 4, §9).
func WithBigMFactor(factor float64) Option {
	return func(c *config) { c.bigMFactor = factor }
}

// WithExtendedFilePaths overrides the default side-effect file names
// (<original>_extended and <original>_extended_t) documented in spec.md
// §6.
func WithExtendedFilePaths(matrixPath, transposePath string) Option {
	return func(c *config) {
		c.extendedPath = matrixPath
		c.transposePath = transposePath
	}
}

// WithBlandsRule switches entering/leaving-variable selection to break
// ties (and, once enabled, every selection) by smallest variable index,
// per spec.md §9's anti-cycling recommendation. Off by default so the
// reference's Dantzig-rule-with-first-index-tiebreak behavior is
// reproduced exactly unless the caller opts in.
func WithBlandsRule(enabled bool) Option {
	return func(c *config) { c.blandsRule = enabled }
}

// resolve applies opts over defaultConfig and fills in n/m-dependent
// defaults (extended file paths, iteration cap).
func resolve(aPath string, n, m int, opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.extendedPath == "" {
		c.extendedPath = fmt.Sprintf("%s_extended", aPath)
	}
	if c.transposePath == "" {
		c.transposePath = fmt.Sprintf("%s_extended_t", aPath)
	}
	if c.maxIterations == 0 {
		c.maxIterations = 100 * (n + m)
	}
	return c
}
