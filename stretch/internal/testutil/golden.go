// Package testutil provides shared test infrastructure for the onset
// engine: the golden scenario dataset and float assertion helpers. It has
// no dependencies on stretch/ — it stores pure data types, so tests inside
// package stretch can import it freely.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of stretch/testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one end-to-end analysis scenario. Instead of raw
// sample arrays it stores the target high-strain ratio per frame and path;
// tests synthesize a two-sample crossing path hitting each target exactly.
type GoldenTestCase struct {
	Name         string       `json:"name"`
	Monitor      []float64    `json:"monitor"`       // one value per frame
	TopRatios    [][]float64  `json:"top_ratios"`    // [frame][path] target ratios
	BottomRatios [][]float64  `json:"bottom_ratios"` // [frame][path] target ratios
	Expect       GoldenExpect `json:"expect"`
}

// GoldenExpect is the expected analysis outcome for a scenario.
type GoldenExpect struct {
	TopOutcome      string   `json:"top_outcome"`
	TopCritFrame    int      `json:"top_crit_frame"`
	TopInterp       *float64 `json:"top_interp"` // nil when top has a boundary outcome
	BottomOutcome   string   `json:"bottom_outcome"`
	BottomCritFrame int      `json:"bottom_crit_frame"`
	BottomInterp    *float64 `json:"bottom_interp"`
	Selected        string   `json:"selected"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file:
// stretch/internal/testutil/ → stretch/testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
