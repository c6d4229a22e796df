package stretch

import "fmt"

// Analyze runs the full per-model procedure: one onset search per
// measurement surface, each with its own probe cache, reconciled into a
// Summary. The two searches share nothing mutable and could run
// concurrently, but a whole-trajectory search is a handful of cached
// probes; sequential keeps the log readable.
func Analyze(model string, top, bottom FieldSource, paths []Path, frames int, cfg Config) (Summary, error) {
	topRes, err := SearchOnset(top, paths, frames, cfg)
	if err != nil {
		return Summary{}, fmt.Errorf("top surface: %w", err)
	}
	bottomRes, err := SearchOnset(bottom, paths, frames, cfg)
	if err != nil {
		return Summary{}, fmt.Errorf("bottom surface: %w", err)
	}
	return Reconcile(
		model,
		ConfigurationResult{Surface: SurfaceTop, OnsetResult: topRes},
		ConfigurationResult{Surface: SurfaceBottom, OnsetResult: bottomRes},
	), nil
}
