package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/viterbi-plots/density"
	"github.com/uyouii/viterbi-plots/histogram"
	"github.com/uyouii/viterbi-plots/model"
	"github.com/uyouii/viterbi-plots/render"
	"github.com/uyouii/viterbi-plots/utils"
	"go.uber.org/zap"
)

type histOptions struct {
	root   *rootOptions
	render renderFlags

	bins      int
	kde       bool
	transform string
}

func newHistCommand(root *rootOptions) *cobra.Command {
	o := &histOptions{root: root}

	cmd := &cobra.Command{
		Use:   "hist <data-file>",
		Short: "Plot a density histogram of Viterbi probabilities",
		Long: `Reads one "<viterbi path>;<probability>" record per line and plots a
density histogram of the probabilities. The first malformed line aborts.`,
		Args: requireDataFile,
		RunE: o.run,
	}

	cmd.Flags().IntVarP(&o.bins, "bins", "b", histogram.DefaultBins, "Number of equal-width bins")
	cmd.Flags().BoolVar(&o.kde, "kde", false, "Overlay a Gaussian kernel density estimate")
	cmd.Flags().StringVar(&o.transform, "transform", "",
		"Score transform before binning: none, exp (log scores) or normalize (log scores to posteriors)")
	o.render.register(cmd)

	return cmd
}

func (o *histOptions) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := utils.GetLogger(ctx)
	cfg := o.root.cfg
	path := args[0]

	if cmd.Flags().Changed("bins") {
		cfg.Bins = o.bins
	}
	if cmd.Flags().Changed("kde") {
		cfg.KDE = o.kde
	}
	if cmd.Flags().Changed("transform") {
		cfg.Transform = o.transform
	}
	opts, err := o.render.apply(cmd, cfg)
	if err != nil {
		return err
	}
	transform, err := histogram.ParseTransform(cfg.Transform)
	if err != nil {
		return err
	}

	samples, err := histogram.ReadProbabilities(ctx, path)
	if err != nil {
		return err
	}
	samples, err = histogram.ApplyTransform(transform, samples)
	if err != nil {
		return err
	}

	h, err := histogram.Compute(samples, cfg.Bins)
	if err != nil {
		return err
	}
	if h.IsEmpty() {
		logger.Warn("no samples in input, rendering empty histogram", zap.String("path", path))
	}
	logger.Info("histogram computed", zap.String("path", path),
		zap.Int("samples", len(h.Samples)), zap.Int("bins", h.BinCount))
	logger.Debug("histogram", zap.String("histogram", h.DebugString()), zap.Any("bins", h.Bins))

	var overlay []model.Density
	if cfg.KDE && !h.IsEmpty() {
		// a failed estimate leaves the histogram without overlay
		overlay, err = density.Estimate(ctx, h.Samples, probabilityDomain(h.Samples))
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "kde overlay skipped: %v\n", err)
		}
	}

	out, err := o.render.outputPath(path, "hist", cfg)
	if err != nil {
		return err
	}
	if err := render.SaveHistogram(h, overlay, opts, out); err != nil {
		logger.Error("SaveHistogram failed", zap.String("output", out), zap.Error(err))
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "samples: %d\nwrote %s\n", len(h.Samples), out)
	return nil
}

// probabilityDomain clamps the density grid to [0, 1] when every sample is
// a probability; raw log scores are left unbounded.
func probabilityDomain(samples []model.ProbabilitySample) *model.Clip {
	for _, s := range samples {
		if s < 0 || s > 1 {
			return nil
		}
	}
	return &model.Clip{Lower: 0, Upper: 1}
}
