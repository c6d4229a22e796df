package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Misty02600/abq-substrate-serpentine/stretch"
	"github.com/Misty02600/abq-substrate-serpentine/stretch/fixture"
	"github.com/Misty02600/abq-substrate-serpentine/stretch/report"
)

var (
	analyzeInput    string  // trajectory fixture YAML
	analyzeOutput   string  // summary CSV to append to (empty = log only)
	strainThreshold float64 // field threshold for high strain
	ratioLimit      float64 // path-length fraction defining onset
	linearScan      bool    // exhaustive scan instead of bisection
)

// analyzeCmd runs the onset search on both surfaces of one extracted
// trajectory and reconciles them, optionally appending a CSV row for the
// batch table.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Locate the critical-strain onset in an extracted trajectory",
	Run: func(cmd *cobra.Command, args []string) {
		if analyzeInput == "" {
			logrus.Fatal("no input trajectory provided, use --input")
		}

		ts, err := fixture.Load(analyzeInput)
		if err != nil {
			logrus.Fatalf("load trajectory: %v", err)
		}

		cfg := stretch.Config{
			StrainThreshold: strainThreshold,
			RatioLimit:      ratioLimit,
			Mode:            stretch.SearchBisect,
		}
		if linearScan {
			cfg.Mode = stretch.SearchLinear
		}

		top, err := ts.Source(stretch.SurfaceTop)
		if err != nil {
			logrus.Fatalf("top surface: %v", err)
		}
		bottom, err := ts.Source(stretch.SurfaceBottom)
		if err != nil {
			logrus.Fatalf("bottom surface: %v", err)
		}

		summary, err := stretch.Analyze(ts.Model, top, bottom, ts.PathSet(), ts.Frames(), cfg)
		if err != nil {
			logrus.Fatalf("analysis failed: %v", err)
		}
		logSummary(summary)

		if analyzeOutput != "" {
			if err := report.NewWriter(analyzeOutput).Append(summary); err != nil {
				logrus.Fatalf("append summary row: %v", err)
			}
			logrus.Infof("appended summary row to %s", analyzeOutput)
		}
	},
}

func logSummary(s stretch.Summary) {
	for _, r := range []stretch.ConfigurationResult{s.Top, s.Bottom} {
		entry := logrus.WithFields(logrus.Fields{
			"surface":    r.Surface,
			"outcome":    r.Outcome,
			"crit_frame": r.CritFrame,
			"crit_ratio": r.CritRatio,
		})
		if b := r.Bracket; b != nil && b.Interpolated != nil {
			entry = entry.WithField("interp_monitor", *b.Interpolated)
		}
		entry.Info("surface result")
	}
	if s.Selected == "" {
		logrus.Infof("model %s: no surface governs", s.Model)
	} else {
		logrus.Infof("model %s: governing surface %s", s.Model, s.Selected)
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Path to trajectory fixture YAML")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "Summary CSV file to append a row to")
	analyzeCmd.Flags().Float64Var(&strainThreshold, "threshold", stretch.DefaultStrainThreshold, "Strain threshold defining the high-strain region")
	analyzeCmd.Flags().Float64Var(&ratioLimit, "ratio-limit", stretch.DefaultRatioLimit, "Path-length fraction above which a frame exceeds")
	analyzeCmd.Flags().BoolVar(&linearScan, "linear", false, "Scan frames linearly instead of bisecting (debugging aid)")

	rootCmd.AddCommand(analyzeCmd)
}
