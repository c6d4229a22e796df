package stretch

// probeCache memoizes frame evaluations within a single SearchOnset call.
// The boundary checks and the bisection revisit frames (the critical frame
// and its predecessor in particular), and each evaluation costs a field
// fetch per path, so duplicate probes are worth avoiding. The cache is
// owned by exactly one search invocation and discarded with it; it is
// never shared across surfaces or concurrent analyses.
type probeCache struct {
	src   FieldSource
	paths []Path
	cfg   Config
	memo  map[int]FrameEvaluation
}

func newProbeCache(src FieldSource, paths []Path, cfg Config) *probeCache {
	return &probeCache{
		src:   src,
		paths: paths,
		cfg:   cfg,
		memo:  make(map[int]FrameEvaluation),
	}
}

// probe evaluates the frame at most once, relying on FieldSource reads
// being idempotent.
func (c *probeCache) probe(frame int) (FrameEvaluation, error) {
	if ev, ok := c.memo[frame]; ok {
		return ev, nil
	}
	ev, err := EvaluateFrame(c.src, c.paths, frame, c.cfg)
	if err != nil {
		return FrameEvaluation{}, err
	}
	c.memo[frame] = ev
	return ev, nil
}
