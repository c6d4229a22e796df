package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Misty02600/abq-substrate-serpentine/stretch"
)

func foundSummary() stretch.Summary {
	interp := 1.25
	return stretch.Summary{
		Model: "serp-w0.30",
		Top: stretch.ConfigurationResult{
			Surface: stretch.SurfaceTop,
			OnsetResult: stretch.OnsetResult{
				Outcome:     stretch.OutcomeFound,
				CritFrame:   3,
				CritRatio:   0.6,
				CritPath:    2,
				MonitorCrit: 1.5,
				Bracket: &stretch.Bracket{
					PrevFrame:    2,
					PrevRatio:    0.4,
					PrevPath:     1,
					MonitorPrev:  1.0,
					Interpolated: &interp,
				},
			},
		},
		Bottom: stretch.ConfigurationResult{
			Surface: stretch.SurfaceBottom,
			OnsetResult: stretch.OnsetResult{
				Outcome:     stretch.OutcomeNeverExceeds,
				CritFrame:   9,
				CritRatio:   0.2,
				CritPath:    0,
				MonitorCrit: 2.0,
			},
		},
		Selected: stretch.SurfaceTop,
	}
}

func TestRow_AlignsWithHeader(t *testing.T) {
	// GIVEN a summary with one found and one boundary surface
	s := foundSummary()

	// THEN header and row have the same arity
	assert.Equal(t, len(Header()), len(Row(s)))
}

func TestRow_FlattensFoundSurface(t *testing.T) {
	s := foundSummary()
	row := Row(s)
	cols := index(Header())

	assert.Equal(t, "serp-w0.30", row[cols["model"]])
	assert.Equal(t, "true", row[cols["top_found"]])
	assert.Equal(t, "found", row[cols["top_outcome"]])
	assert.Equal(t, "3", row[cols["top_crit_frame"]])
	assert.Equal(t, "0.6", row[cols["top_crit_ratio"]])
	assert.Equal(t, "2", row[cols["top_prev_frame"]])
	assert.Equal(t, "1", row[cols["top_monitor_prev"]])
	assert.Equal(t, "1.25", row[cols["top_interp_monitor"]])
	assert.Equal(t, "top", row[cols["selected"]])
}

func TestRow_BoundarySurfaceHasEmptyBracketColumns(t *testing.T) {
	s := foundSummary()
	row := Row(s)
	cols := index(Header())

	assert.Equal(t, "false", row[cols["bottom_found"]])
	assert.Equal(t, "never-exceeds", row[cols["bottom_outcome"]])
	assert.Equal(t, "9", row[cols["bottom_crit_frame"]])
	assert.Equal(t, "", row[cols["bottom_prev_frame"]])
	assert.Equal(t, "", row[cols["bottom_prev_ratio"]])
	assert.Equal(t, "", row[cols["bottom_monitor_prev"]])
	assert.Equal(t, "", row[cols["bottom_interp_monitor"]])
}

func index(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, name := range header {
		m[name] = i
	}
	return m
}
