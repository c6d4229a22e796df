package stretch

import "fmt"

// SearchMode selects how SearchOnset walks the trajectory.
type SearchMode string

const (
	// SearchBisect is the default O(log T) bisection. It assumes the
	// exceed predicate is non-decreasing in frame index; with a
	// non-monotonic field it still returns a frame consistent with its
	// comparisons, which may not be the true first-exceeding frame.
	SearchBisect SearchMode = "bisect"
	// SearchLinear scans frames left to right. O(T), but correct even
	// when monotonicity does not hold. Intended for debugging and
	// verification; it is never the default.
	SearchLinear SearchMode = "linear"
)

// Defaults match the extraction settings used for the serpentine models:
// 0.3% logarithmic strain, onset at half the path length.
const (
	DefaultStrainThreshold = 0.003
	DefaultRatioLimit      = 0.5
)

// Config groups the analysis parameters for one onset search.
type Config struct {
	StrainThreshold float64    // field values strictly above this count as high strain
	RatioLimit      float64    // path-length fraction above which a frame exceeds
	Mode            SearchMode // empty means SearchBisect
}

// DefaultConfig returns the standard analysis configuration.
func DefaultConfig() Config {
	return Config{
		StrainThreshold: DefaultStrainThreshold,
		RatioLimit:      DefaultRatioLimit,
		Mode:            SearchBisect,
	}
}

// Validate checks that the configuration is usable by SearchOnset.
func (c Config) Validate() error {
	if c.RatioLimit <= 0 || c.RatioLimit >= 1 {
		return fmt.Errorf("ratio limit must be in (0, 1), got %v", c.RatioLimit)
	}
	switch c.Mode {
	case "", SearchBisect, SearchLinear:
		return nil
	default:
		return fmt.Errorf("unknown search mode %q", c.Mode)
	}
}
