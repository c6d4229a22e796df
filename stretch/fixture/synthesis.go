package fixture

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/Misty02600/abq-substrate-serpentine/stretch"
)

// SynthConfig sizes a synthetic trajectory. Zero fields take the defaults
// below, which produce an onset roughly two thirds of the way through the
// step at the default analysis thresholds.
type SynthConfig struct {
	Model      string  // model name, default "synthetic"
	Frames     int     // trajectory length, default 21
	Paths      int     // measurement paths, default 8
	Samples    int     // samples per path, default 31
	PeakStrain float64 // bump-center strain at the final frame, default 0.008
	MaxMonitor float64 // monitor value at the final frame, default 2.0
	Noise      float64 // relative jitter per sample, default 0.02
}

func (c SynthConfig) withDefaults() SynthConfig {
	if c.Model == "" {
		c.Model = "synthetic"
	}
	if c.Frames <= 0 {
		c.Frames = 21
	}
	if c.Paths <= 0 {
		c.Paths = 8
	}
	if c.Samples < 2 {
		c.Samples = 31
	}
	if c.PeakStrain == 0 {
		c.PeakStrain = 0.008
	}
	if c.MaxMonitor == 0 {
		c.MaxMonitor = 2.0
	}
	if c.Noise == 0 {
		c.Noise = 0.02
	}
	return c
}

// Synthesize builds a deterministic trajectory from the seed: strain grows
// linearly with frame, concentrates mid-path (a raised-cosine bump, like
// the strain localization at the wire crest), and varies across paths with
// the crest paths straining hardest. The bottom surface lags the top by a
// fixed factor so the surfaces reconcile non-trivially. Noise is
// multiplicative jitter and small enough to keep the field monotonic in
// frame index.
func Synthesize(cfg SynthConfig, seed int64) *TrajectorySpec {
	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(seed))

	x := floats.Span(make([]float64, cfg.Samples), 0, 1)

	// floats.Span needs at least two points; a one-frame trajectory sits
	// at full load.
	monitor := make([]float64, cfg.Frames)
	if cfg.Frames > 1 {
		floats.Span(monitor, 0, cfg.MaxMonitor)
	} else {
		monitor[0] = cfg.MaxMonitor
	}

	pathNames := make([]string, cfg.Paths)
	for p := range pathNames {
		pathNames[p] = fmt.Sprintf("Path-%d", p+1)
	}

	surfaces := make(map[string]SurfaceData, 2)
	for si, surface := range []string{stretch.SurfaceTop, stretch.SurfaceBottom} {
		lag := 1.0 - 0.12*float64(si)
		frames := make([][][]float64, cfg.Frames)
		for f := range frames {
			load := 1.0
			if cfg.Frames > 1 {
				load = float64(f) / float64(cfg.Frames-1)
			}
			paths := make([][]float64, cfg.Paths)
			for p := range paths {
				weight := 1.0
				if cfg.Paths > 1 {
					weight = 0.6 + 0.4*math.Sin(math.Pi*float64(p)/float64(cfg.Paths-1))
				}
				samples := make([]float64, cfg.Samples)
				for i, xi := range x {
					bump := 0.5 - 0.5*math.Cos(2*math.Pi*xi)
					v := cfg.PeakStrain * lag * load * weight * bump
					if cfg.Noise > 0 {
						v *= 1 + cfg.Noise*(2*rng.Float64()-1)
					}
					samples[i] = v
				}
				paths[p] = samples
			}
			frames[f] = paths
		}
		surfaces[surface] = SurfaceData{Frames: frames}
	}

	return &TrajectorySpec{
		Model:    cfg.Model,
		Monitor:  monitor,
		Paths:    pathNames,
		Surfaces: surfaces,
	}
}
