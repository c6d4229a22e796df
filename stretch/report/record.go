// Package report flattens onset summaries into CSV rows so a batch run
// over many models accumulates one table, one row per analyzed trajectory.
package report

import (
	"strconv"

	"github.com/Misty02600/abq-substrate-serpentine/stretch"
)

// Header returns the flat column names matching Row: the model column,
// the top and bottom surface blocks, then the selected surface.
func Header() []string {
	cols := []string{"model"}
	cols = append(cols, surfaceColumns("top")...)
	cols = append(cols, surfaceColumns("bottom")...)
	return append(cols, "selected")
}

// Row flattens a Summary into one CSV record aligned with Header.
// Bracket-only fields are empty for boundary outcomes, and the
// interpolated monitor is empty when interpolation had incomplete inputs.
func Row(s stretch.Summary) []string {
	row := []string{s.Model}
	row = append(row, surfaceValues(s.Top)...)
	row = append(row, surfaceValues(s.Bottom)...)
	return append(row, s.Selected)
}

func surfaceColumns(prefix string) []string {
	return []string{
		prefix + "_found",
		prefix + "_outcome",
		prefix + "_crit_frame",
		prefix + "_crit_ratio",
		prefix + "_crit_path",
		prefix + "_monitor_crit",
		prefix + "_prev_frame",
		prefix + "_prev_ratio",
		prefix + "_prev_path",
		prefix + "_monitor_prev",
		prefix + "_interp_monitor",
	}
}

func surfaceValues(r stretch.ConfigurationResult) []string {
	vals := []string{
		strconv.FormatBool(r.Found()),
		string(r.Outcome),
		strconv.Itoa(r.CritFrame),
		formatFloat(r.CritRatio),
		strconv.Itoa(r.CritPath),
		formatFloat(r.MonitorCrit),
	}
	if b := r.Bracket; b != nil {
		vals = append(vals,
			strconv.Itoa(b.PrevFrame),
			formatFloat(b.PrevRatio),
			strconv.Itoa(b.PrevPath),
			formatFloat(b.MonitorPrev),
		)
		if b.Interpolated != nil {
			vals = append(vals, formatFloat(*b.Interpolated))
		} else {
			vals = append(vals, "")
		}
	} else {
		vals = append(vals, "", "", "", "", "")
	}
	return vals
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
