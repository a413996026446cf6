package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/viterbi-plots/render"
	"github.com/uyouii/viterbi-plots/roc"
	"github.com/uyouii/viterbi-plots/utils"
	"go.uber.org/zap"
)

// debugScores caps how many parsed scores the debug log shows.
const debugScores = 5

type ratesOptions struct {
	root *rootOptions

	output string
	plot   bool
	render renderFlags
}

func newRatesCommand(root *rootOptions) *cobra.Command {
	o := &ratesOptions{root: root}

	cmd := &cobra.Command{
		Use:   "rates <scores-file>",
		Short: "Build a ROC rates file from labeled scores",
		Long: `Reads one "<score>;<label>" record per line, where label is true/false,
1/0 or +/-, and writes the two-line rates file read by "viterbiplot roc".
Thresholds sweep from the highest score down; tied scores form one step.`,
		Args: requireDataFile,
		RunE: o.run,
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Rates file path (default <input>.rates.txt)")
	cmd.Flags().BoolVar(&o.plot, "plot", false, "Also render the ROC curve next to the rates file")
	cmd.Flags().Float64Var(&o.render.width, "width", 0, "Image width in inches")
	cmd.Flags().Float64Var(&o.render.height, "height", 0, "Image height in inches")
	cmd.Flags().StringVar(&o.render.format, "format", "", "Image format for --plot")

	return cmd
}

func (o *ratesOptions) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := utils.GetLogger(ctx)
	cfg := o.root.cfg
	path := args[0]

	opts, err := o.render.apply(cmd, cfg)
	if err != nil {
		return err
	}

	scores, err := roc.ReadLabeledScores(ctx, path)
	if err != nil {
		return err
	}
	logger.Debug("labeled scores read", zap.Int("count", len(scores)),
		zap.Stringers("head", scores[:min(len(scores), debugScores)]))
	curve, err := roc.BuildRates(scores)
	if err != nil {
		logger.Error("BuildRates failed", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("roc curve", zap.String("curve", curve.DebugString()))

	out, err := outputPath(path, o.output, "rates.txt", cfg)
	if err != nil {
		return err
	}
	if err := roc.WriteRates(out, curve); err != nil {
		return err
	}
	logger.Info("rates written", zap.String("output", out),
		zap.Int("scores", len(scores)), zap.Int("points", len(curve.FPR)))
	fmt.Fprintf(cmd.OutOrStdout(), "AUC: %s\nwrote %s\n", utils.FormatFloatRepr(curve.AUC), out)

	if !o.plot {
		return nil
	}
	image, err := o.render.outputPath(out, "roc", cfg)
	if err != nil {
		return err
	}
	if err := render.SaveRoc(curve, opts, image); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", image)
	return nil
}
