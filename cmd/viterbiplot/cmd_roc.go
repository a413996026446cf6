package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/viterbi-plots/render"
	"github.com/uyouii/viterbi-plots/roc"
	"github.com/uyouii/viterbi-plots/utils"
	"go.uber.org/zap"
)

type rocOptions struct {
	root   *rootOptions
	render renderFlags
}

func newRocCommand(root *rootOptions) *cobra.Command {
	o := &rocOptions{root: root}

	cmd := &cobra.Command{
		Use:   "roc <rates-file>",
		Short: "Plot a ROC curve and its AUC",
		Long: `Reads a two-line rates file: true positive rates on line 1 and false
positive rates on line 2, each a bracketed comma-separated list, index-aligned
and sorted by ascending false positive rate. Plots the curve with the
trapezoidal AUC in the title.`,
		Args: requireDataFile,
		RunE: o.run,
	}
	o.render.register(cmd)

	return cmd
}

func (o *rocOptions) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := utils.GetLogger(ctx)
	cfg := o.root.cfg
	path := args[0]

	opts, err := o.render.apply(cmd, cfg)
	if err != nil {
		return err
	}

	curve, err := roc.ReadRates(ctx, path)
	if err != nil {
		return err
	}
	logger.Info("auc computed", zap.String("path", path),
		zap.Int("points", len(curve.FPR)), zap.Float64("auc", curve.AUC))
	logger.Debug("roc curve", zap.String("curve", curve.DebugString()))

	out, err := o.render.outputPath(path, "roc", cfg)
	if err != nil {
		return err
	}
	if err := render.SaveRoc(curve, opts, out); err != nil {
		logger.Error("SaveRoc failed", zap.String("output", out), zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "AUC: %s\nwrote %s\n", utils.FormatFloatRepr(curve.AUC), out)
	return nil
}
