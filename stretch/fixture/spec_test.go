package fixture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Misty02600/abq-substrate-serpentine/stretch"
)

func validSpec() *TrajectorySpec {
	return &TrajectorySpec{
		Model:   "serp-test",
		Monitor: []float64{0, 1},
		Paths:   []string{"Path-1", "Path-2"},
		Surfaces: map[string]SurfaceData{
			stretch.SurfaceTop: {Frames: [][][]float64{
				{{0, 0}, {0, 0}},
				{{0, 0.004}, {0.005, 0.006}},
			}},
			stretch.SurfaceBottom: {Frames: [][][]float64{
				{{0, 0}, {0, 0}},
				{{0, 0.001}, {0, 0.002}},
			}},
		},
	}
}

func TestTrajectorySpec_Validate_AcceptsConsistentSpec(t *testing.T) {
	assert.NoError(t, validSpec().Validate())
}

func TestTrajectorySpec_Validate_RejectsInconsistencies(t *testing.T) {
	// GIVEN specs each broken in one way
	noFrames := validSpec()
	noFrames.Monitor = nil

	noPaths := validSpec()
	noPaths.Paths = nil

	missingSurface := validSpec()
	delete(missingSurface.Surfaces, stretch.SurfaceBottom)

	frameMismatch := validSpec()
	sd := frameMismatch.Surfaces[stretch.SurfaceTop]
	sd.Frames = sd.Frames[:1]
	frameMismatch.Surfaces[stretch.SurfaceTop] = sd

	pathMismatch := validSpec()
	sd = pathMismatch.Surfaces[stretch.SurfaceTop]
	sd.Frames[0] = sd.Frames[0][:1]
	pathMismatch.Surfaces[stretch.SurfaceTop] = sd

	shortPath := validSpec()
	sd = shortPath.Surfaces[stretch.SurfaceBottom]
	sd.Frames[1][0] = []float64{0.001}
	shortPath.Surfaces[stretch.SurfaceBottom] = sd

	cases := map[string]*TrajectorySpec{
		"no frames":          noFrames,
		"no paths":           noPaths,
		"missing surface":    missingSurface,
		"frame count":        frameMismatch,
		"path count":         pathMismatch,
		"single-sample path": shortPath,
	}

	// THEN each fails validation
	for name, ts := range cases {
		if err := ts.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}

func TestTrajectorySpec_SaveLoad_RoundTrip(t *testing.T) {
	// GIVEN a valid spec saved to YAML
	ts := validSpec()
	path := filepath.Join(t.TempDir(), "traj.yaml")
	assert.NoError(t, ts.Save(path))

	// WHEN it is loaded back
	got, err := Load(path)

	// THEN the spec survives unchanged
	assert.NoError(t, err)
	assert.Equal(t, ts, got)
}

func TestLoad_InvalidSpec_Fails(t *testing.T) {
	// GIVEN a saved spec with a missing surface
	ts := validSpec()
	delete(ts.Surfaces, stretch.SurfaceTop)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	assert.NoError(t, ts.Save(path))

	// THEN loading rejects it
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected load to fail validation")
	}
}

func TestSource_ServesSamplesAndMonitor(t *testing.T) {
	// GIVEN a source over the top surface
	ts := validSpec()
	src, err := ts.Source(stretch.SurfaceTop)
	assert.NoError(t, err)

	// WHEN samples and monitor values are fetched
	samples, err := src.FieldSamples(stretch.Path{Name: "Path-2"}, 1)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.005, 0.006}, samples)

	mon, err := src.MonitorValue(1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, mon)
}

func TestSource_OutOfRangeAndUnknown_ReturnErrors(t *testing.T) {
	ts := validSpec()
	src, err := ts.Source(stretch.SurfaceBottom)
	assert.NoError(t, err)

	// out-of-range frame indices propagate as errors, never retried
	_, err = src.FieldSamples(stretch.Path{Name: "Path-1"}, 2)
	assert.Error(t, err)
	_, err = src.FieldSamples(stretch.Path{Name: "Path-1"}, -1)
	assert.Error(t, err)
	_, err = src.MonitorValue(5)
	assert.Error(t, err)

	// unknown path names fail too
	_, err = src.FieldSamples(stretch.Path{Name: "Path-9"}, 0)
	assert.Error(t, err)

	// and so does an unknown surface
	_, err = ts.Source("side")
	assert.Error(t, err)
}
