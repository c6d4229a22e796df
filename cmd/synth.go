package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Misty02600/abq-substrate-serpentine/stretch/fixture"
)

var (
	synthOutput  string
	synthModel   string
	synthFrames  int
	synthPaths   int
	synthSamples int
	synthSeed    int64
)

// synthCmd writes a synthetic trajectory fixture, useful for exercising
// the analyzer without a solved model at hand.
var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Generate a synthetic trajectory fixture",
	Run: func(cmd *cobra.Command, args []string) {
		if synthOutput == "" {
			logrus.Fatal("no output path provided, use --output")
		}

		spec := fixture.Synthesize(fixture.SynthConfig{
			Model:   synthModel,
			Frames:  synthFrames,
			Paths:   synthPaths,
			Samples: synthSamples,
		}, synthSeed)

		if err := spec.Save(synthOutput); err != nil {
			logrus.Fatalf("save fixture: %v", err)
		}
		logrus.Infof("wrote %d-frame trajectory %q to %s", spec.Frames(), spec.Model, synthOutput)
	},
}

func init() {
	synthCmd.Flags().StringVar(&synthOutput, "output", "", "Path to write the fixture YAML")
	synthCmd.Flags().StringVar(&synthModel, "model", "synthetic", "Model name recorded in the fixture")
	synthCmd.Flags().IntVar(&synthFrames, "frames", 21, "Trajectory length in frames")
	synthCmd.Flags().IntVar(&synthPaths, "paths", 8, "Number of measurement paths")
	synthCmd.Flags().IntVar(&synthSamples, "samples", 31, "Samples per path")
	synthCmd.Flags().Int64Var(&synthSeed, "seed", 42, "Seed for sample jitter")

	rootCmd.AddCommand(synthCmd)
}
