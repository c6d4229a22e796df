package stretch

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Outcome tags the three ways an onset search can end.
type Outcome string

const (
	// OutcomeFound means the onset lies strictly inside the trajectory:
	// frame 0 does not exceed, the last frame does, and the result
	// carries a bracket around the crossing.
	OutcomeFound Outcome = "found"
	// OutcomeExceedsAtStart means the structure is already in violation
	// at frame 0; there is no valid onset inside the trajectory.
	OutcomeExceedsAtStart Outcome = "exceeds-at-start"
	// OutcomeNeverExceeds means no frame of the trajectory exceeds; the
	// trajectory ended before onset.
	OutcomeNeverExceeds Outcome = "never-exceeds"
)

// Bracket describes the last non-exceeding frame of a found onset. It
// exists only on OutcomeFound results, so the previous-frame fields cannot
// be read out of a boundary case by mistake.
type Bracket struct {
	PrevFrame    int
	PrevRatio    float64
	PrevPath     int
	MonitorPrev  float64
	Interpolated *float64 // monitor value at the exact ratio-limit crossing; nil if inputs were incomplete
}

// OnsetResult is the outcome of one onset search over a trajectory.
// CritFrame is the first exceeding frame when Outcome is OutcomeFound;
// for the boundary outcomes it is the probed boundary frame (0 or T-1).
type OnsetResult struct {
	Outcome     Outcome
	CritFrame   int
	CritRatio   float64
	CritPath    int
	MonitorCrit float64
	Bracket     *Bracket // non-nil iff Outcome == OutcomeFound
}

// Found reports whether the search bracketed an onset inside the trajectory.
func (r OnsetResult) Found() bool { return r.Outcome == OutcomeFound }

// SearchOnset locates the earliest frame of a trajectory of the given
// length at which EvaluateFrame exceeds, then interpolates the monitor
// value at the exact crossing. The default mode bisects, assuming the
// exceed predicate is non-decreasing in frame index (strain grows with
// applied load); the assumption is documented, not verified. All frame
// probes within one call share a private memo, so no frame is evaluated
// twice: at most 2 boundary probes plus ceil(log2 T) bisection probes.
//
// An empty path set is a caller bug and fails fast rather than reporting
// a vacuous never-exceeds.
func SearchOnset(src FieldSource, paths []Path, frames int, cfg Config) (OnsetResult, error) {
	if len(paths) == 0 {
		return OnsetResult{}, errors.New("onset search requires at least one path")
	}
	if frames < 1 {
		return OnsetResult{}, fmt.Errorf("onset search requires at least one frame, got %d", frames)
	}
	if err := cfg.Validate(); err != nil {
		return OnsetResult{}, err
	}

	cache := newProbeCache(src, paths, cfg)

	// Boundary case: already in violation at the start of the step.
	first, err := cache.probe(0)
	if err != nil {
		return OnsetResult{}, err
	}
	if first.Exceeds {
		mon, err := src.MonitorValue(0)
		if err != nil {
			return OnsetResult{}, fmt.Errorf("monitor value at frame 0: %w", err)
		}
		logrus.Debug("trajectory exceeds at frame 0, no onset inside the step")
		return OnsetResult{
			Outcome:     OutcomeExceedsAtStart,
			CritFrame:   0,
			CritRatio:   first.Ratio,
			CritPath:    first.PathIndex,
			MonitorCrit: mon,
		}, nil
	}

	// Boundary case: the trajectory ends before onset.
	last, err := cache.probe(frames - 1)
	if err != nil {
		return OnsetResult{}, err
	}
	if !last.Exceeds {
		mon, err := src.MonitorValue(frames - 1)
		if err != nil {
			return OnsetResult{}, fmt.Errorf("monitor value at frame %d: %w", frames-1, err)
		}
		logrus.Debugf("no frame exceeds within %d frames", frames)
		return OnsetResult{
			Outcome:     OutcomeNeverExceeds,
			CritFrame:   frames - 1,
			CritRatio:   last.Ratio,
			CritPath:    last.PathIndex,
			MonitorCrit: mon,
		}, nil
	}

	var crit int
	if cfg.Mode == SearchLinear {
		crit, err = firstExceedingLinear(cache, frames)
	} else {
		crit, err = firstExceedingBisect(cache, frames)
	}
	if err != nil {
		return OnsetResult{}, err
	}

	// Both probes below hit the cache for frames the search already
	// visited; crit-1 >= 0 because frame 0 did not exceed.
	critEv, err := cache.probe(crit)
	if err != nil {
		return OnsetResult{}, err
	}
	prevEv, err := cache.probe(crit - 1)
	if err != nil {
		return OnsetResult{}, err
	}

	monPrev, err := src.MonitorValue(crit - 1)
	if err != nil {
		return OnsetResult{}, fmt.Errorf("monitor value at frame %d: %w", crit-1, err)
	}
	monCrit, err := src.MonitorValue(crit)
	if err != nil {
		return OnsetResult{}, fmt.Errorf("monitor value at frame %d: %w", crit, err)
	}

	interp := Interpolate(&monPrev, &monCrit, &prevEv.Ratio, &critEv.Ratio, cfg.RatioLimit)
	logrus.Debugf("onset at frame %d (path %d, ratio %.3f%%)", crit, critEv.PathIndex, critEv.Ratio*100)

	return OnsetResult{
		Outcome:     OutcomeFound,
		CritFrame:   crit,
		CritRatio:   critEv.Ratio,
		CritPath:    critEv.PathIndex,
		MonitorCrit: monCrit,
		Bracket: &Bracket{
			PrevFrame:    crit - 1,
			PrevRatio:    prevEv.Ratio,
			PrevPath:     prevEv.PathIndex,
			MonitorPrev:  monPrev,
			Interpolated: interp,
		},
	}, nil
}

// firstExceedingBisect narrows [0, frames-1] to the earliest exceeding
// frame. Callers have established that frame 0 does not exceed and frame
// frames-1 does.
func firstExceedingBisect(cache *probeCache, frames int) (int, error) {
	left, right := 0, frames-1
	for left < right {
		mid := (left + right) / 2
		ev, err := cache.probe(mid)
		if err != nil {
			return 0, err
		}
		if ev.Exceeds {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left, nil
}

// firstExceedingLinear scans frames in order. Used by SearchLinear to
// cross-check bisection on fields suspected of non-monotonic growth.
func firstExceedingLinear(cache *probeCache, frames int) (int, error) {
	for f := 1; f < frames; f++ {
		ev, err := cache.probe(f)
		if err != nil {
			return 0, err
		}
		if ev.Exceeds {
			return f, nil
		}
	}
	// Unreachable when the last frame exceeds; keep the scan total anyway.
	return frames - 1, nil
}
