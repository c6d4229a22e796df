package stretch

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// FrameEvaluation is the outcome of scanning the path set at one frame.
type FrameEvaluation struct {
	Exceeds   bool    // some path's ratio is above the ratio limit
	Ratio     float64 // the exceeding path's ratio, else the maximum seen
	PathIndex int     // the exceeding path, else the argmax path (0-based)
}

// EvaluateFrame computes the high-strain ratio of each path at the given
// frame, in path order, and short-circuits on the first path whose ratio
// exceeds cfg.RatioLimit. That first path is the one reported even if a
// later path would have a larger ratio: the scan is deliberately
// order-dependent and non-maximal, matching the extraction procedure the
// batch pipeline was calibrated against. If no path exceeds, the result
// carries the maximum ratio seen and its path index.
func EvaluateFrame(src FieldSource, paths []Path, frame int, cfg Config) (FrameEvaluation, error) {
	maxRatio := 0.0
	maxIdx := 0

	for i, p := range paths {
		samples, err := src.FieldSamples(p, frame)
		if err != nil {
			return FrameEvaluation{}, fmt.Errorf("field samples for path %q at frame %d: %w", p.Name, frame, err)
		}
		ratio := ComputeRatio(samples, cfg.StrainThreshold)

		if ratio > cfg.RatioLimit {
			logrus.Debugf("frame %d: path %q high-strain ratio %.3f%% exceeds limit", frame, p.Name, ratio*100)
			return FrameEvaluation{Exceeds: true, Ratio: ratio, PathIndex: i}, nil
		}
		if ratio > maxRatio {
			maxRatio = ratio
			maxIdx = i
		}
	}

	logrus.Debugf("frame %d: no path exceeds, max ratio %.3f%% on path %d", frame, maxRatio*100, maxIdx)
	return FrameEvaluation{Exceeds: false, Ratio: maxRatio, PathIndex: maxIdx}, nil
}
