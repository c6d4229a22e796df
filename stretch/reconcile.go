package stretch

// The wire carries two redundant measurement surfaces, analyzed
// independently and reconciled into one governing answer.
const (
	SurfaceTop    = "top"
	SurfaceBottom = "bottom"
)

// ConfigurationResult tags an onset search result with the measurement
// surface that produced it.
type ConfigurationResult struct {
	Surface string
	OnsetResult
}

// Summary carries both per-surface results plus the governing selection,
// kept whole for diagnostics even when only one surface governs.
type Summary struct {
	Model    string
	Top      ConfigurationResult
	Bottom   ConfigurationResult
	Selected string // SurfaceTop, SurfaceBottom, or "" when neither governs
}

// Reconcile combines the two surface results into one Summary.
//
// When both surfaces found an onset the earlier frame governs; an exact
// tie goes to bottom (fixed, arbitrary tie-break — callers depend on it).
// When only one surface found an onset, it governs only if its critical
// frame does not come after the other surface's boundary frame: a
// never-exceeds boundary at frame T-1 (or an exceeds-at-start boundary at
// frame 0) caps how late a plausible onset can be. When neither found an
// onset, nothing is selected.
func Reconcile(model string, top, bottom ConfigurationResult) Summary {
	selected := ""
	switch {
	case top.Found() && bottom.Found():
		if top.CritFrame < bottom.CritFrame {
			selected = top.Surface
		} else {
			selected = bottom.Surface
		}
	case top.Found():
		if top.CritFrame <= bottom.CritFrame {
			selected = top.Surface
		}
	case bottom.Found():
		if bottom.CritFrame <= top.CritFrame {
			selected = bottom.Surface
		}
	}

	return Summary{
		Model:    model,
		Top:      top,
		Bottom:   bottom,
		Selected: selected,
	}
}
