package stretch

// Interpolate estimates the monitor value at which the high-strain ratio
// crosses threshold, assuming the ratio varies linearly between the
// bracketing frames. A nil input means the bracket is incomplete; the
// result is nil and the caller decides how to report it. Equal ratios
// would divide by zero, so the previous monitor value is returned
// unchanged in that degenerate case.
func Interpolate(monitorPrev, monitorCrit, ratioPrev, ratioCrit *float64, threshold float64) *float64 {
	if monitorPrev == nil || monitorCrit == nil || ratioPrev == nil || ratioCrit == nil {
		return nil
	}
	if *ratioCrit == *ratioPrev {
		v := *monitorPrev
		return &v
	}
	alpha := (threshold - *ratioPrev) / (*ratioCrit - *ratioPrev)
	v := (1-alpha)*(*monitorPrev) + alpha*(*monitorCrit)
	return &v
}
