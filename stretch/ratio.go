package stretch

import "math"

// ComputeRatio returns the fraction of a path's length on which the field
// strictly exceeds threshold, in [0, 1]. The samples are assumed uniformly
// spaced, so each of the n-1 segments carries equal length. A segment with
// both endpoints above threshold contributes 1, both at or below
// contributes 0, and a crossing segment contributes the linearly
// interpolated high-side fraction. Equality to the threshold does not
// exceed.
//
// Fewer than two samples defines no segments; the ratio is 0.
func ComputeRatio(samples []float64, threshold float64) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}

	high := 0.0
	for i := 0; i < n-1; i++ {
		s1, s2 := samples[i], samples[i+1]
		switch {
		case s1 > threshold && s2 > threshold:
			high += 1.0
		case s1 <= threshold && s2 <= threshold:
			// fully below: contributes nothing
		default:
			// crossing segment: fraction of the segment on the high side,
			// measured from the s1 endpoint
			frac := math.Abs(s1-threshold) / math.Abs(s1-s2)
			if s1 > threshold {
				high += frac
			} else {
				high += 1.0 - frac
			}
		}
	}

	return high / float64(n-1)
}
