// Package fixture provides file-backed trajectory data for the onset
// engine: a YAML schema holding per-surface field samples extracted from
// solved models, a FieldSource implementation over it, and a synthetic
// generator for demos and tests.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Misty02600/abq-substrate-serpentine/stretch"
)

// TrajectorySpec is a complete extracted loading trajectory for one model:
// the monitor value per frame plus, for each surface, the field samples
// along every path at every frame.
type TrajectorySpec struct {
	Model    string                 `yaml:"model"`
	Monitor  []float64              `yaml:"monitor"` // one value per frame
	Paths    []string               `yaml:"paths"`   // ordered path names
	Surfaces map[string]SurfaceData `yaml:"surfaces"`
}

// SurfaceData holds the field samples for one measurement surface.
// Frames[f][p] is the sample array along path p at frame f.
type SurfaceData struct {
	Frames [][][]float64 `yaml:"frames"`
}

// Frames returns the trajectory length.
func (ts *TrajectorySpec) Frames() int { return len(ts.Monitor) }

// PathSet returns the ordered path handles named by the spec.
func (ts *TrajectorySpec) PathSet() []stretch.Path {
	paths := make([]stretch.Path, len(ts.Paths))
	for i, name := range ts.Paths {
		paths[i] = stretch.Path{Name: name}
	}
	return paths
}

// Validate checks internal consistency: at least one frame and one path,
// matching frame and path counts on every surface, and at least two
// samples per path (a path needs a segment to have a length fraction).
func (ts *TrajectorySpec) Validate() error {
	if len(ts.Monitor) == 0 {
		return fmt.Errorf("trajectory %q has no frames", ts.Model)
	}
	if len(ts.Paths) == 0 {
		return fmt.Errorf("trajectory %q has no paths", ts.Model)
	}
	for _, name := range []string{stretch.SurfaceTop, stretch.SurfaceBottom} {
		sd, ok := ts.Surfaces[name]
		if !ok {
			return fmt.Errorf("trajectory %q is missing surface %q", ts.Model, name)
		}
		if len(sd.Frames) != len(ts.Monitor) {
			return fmt.Errorf("surface %q has %d frames, monitor has %d", name, len(sd.Frames), len(ts.Monitor))
		}
		for f, frame := range sd.Frames {
			if len(frame) != len(ts.Paths) {
				return fmt.Errorf("surface %q frame %d has %d paths, want %d", name, f, len(frame), len(ts.Paths))
			}
			for p, samples := range frame {
				if len(samples) < 2 {
					return fmt.Errorf("surface %q frame %d path %q has %d samples, want >= 2", name, f, ts.Paths[p], len(samples))
				}
			}
		}
	}
	return nil
}

// Load reads and validates a TrajectorySpec from a YAML file.
func Load(path string) (*TrajectorySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trajectory spec: %w", err)
	}
	var ts TrajectorySpec
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("parse trajectory spec %s: %w", path, err)
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return &ts, nil
}

// Save writes the spec as YAML.
func (ts *TrajectorySpec) Save(path string) error {
	data, err := yaml.Marshal(ts)
	if err != nil {
		return fmt.Errorf("marshal trajectory spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write trajectory spec: %w", err)
	}
	return nil
}

// Source returns a stretch.FieldSource over one surface of the spec.
func (ts *TrajectorySpec) Source(surface string) (*Source, error) {
	sd, ok := ts.Surfaces[surface]
	if !ok {
		return nil, fmt.Errorf("trajectory %q has no surface %q", ts.Model, surface)
	}
	index := make(map[string]int, len(ts.Paths))
	for i, name := range ts.Paths {
		index[name] = i
	}
	return &Source{monitor: ts.Monitor, index: index, frames: sd.Frames}, nil
}

// Source adapts one surface of a TrajectorySpec to stretch.FieldSource.
// Reads are pure lookups, trivially idempotent.
type Source struct {
	monitor []float64
	index   map[string]int
	frames  [][][]float64
}

// FieldSamples returns the sample array for the path at the frame.
func (s *Source) FieldSamples(p stretch.Path, frame int) ([]float64, error) {
	if frame < 0 || frame >= len(s.frames) {
		return nil, fmt.Errorf("frame %d out of range [0, %d)", frame, len(s.frames))
	}
	i, ok := s.index[p.Name]
	if !ok {
		return nil, fmt.Errorf("unknown path %q", p.Name)
	}
	return s.frames[frame][i], nil
}

// MonitorValue returns the load monitor value at the frame.
func (s *Source) MonitorValue(frame int) (float64, error) {
	if frame < 0 || frame >= len(s.monitor) {
		return 0, fmt.Errorf("frame %d out of range [0, %d)", frame, len(s.monitor))
	}
	return s.monitor[frame], nil
}
