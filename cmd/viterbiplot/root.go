package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/config"
	"github.com/uyouii/viterbi-plots/render"
	"github.com/uyouii/viterbi-plots/utils"
)

var version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "viterbiplot",
		Short: "Diagnostic plots for Viterbi decoding results",
		Long: `viterbiplot renders diagnostic plots from the text output of a Viterbi
decoder: a density histogram of per-sequence probabilities and a ROC curve
with its trapezoidal AUC.

Plots are written as image files; the format follows the output extension.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"YAML config file (default "+config.DefaultConfigFile+" when present)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: console or json")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return opts.load(cmd)
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", common.ErrorInvalidValue, err)
	})

	cmd.AddCommand(newHistCommand(opts))
	cmd.AddCommand(newRocCommand(opts))
	cmd.AddCommand(newRatesCommand(opts))

	return cmd
}

func execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Context(), o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	if err := utils.InitLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// requireDataFile replaces cobra's arity message with the usage hint.
func requireDataFile(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return common.ErrorMissingArgument
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected one data file, got %d", common.ErrorInvalidValue, len(args))
	}
	return nil
}

type renderFlags struct {
	output string
	width  float64
	height float64
	format string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output image path (default <input>.<kind>.<format>)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "Image width in inches")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Image height in inches")
	cmd.Flags().StringVar(&f.format, "format", "", "Image format when -o is not given: png, svg, pdf, jpg, eps or tif")
}

// apply merges changed flags into cfg and returns the render options.
func (f *renderFlags) apply(cmd *cobra.Command, cfg *config.Config) (render.Options, error) {
	if cmd.Flags().Changed("width") {
		cfg.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = f.height
	}
	if cmd.Flags().Changed("format") {
		cfg.ImageFormat = f.format
	}
	if err := cfg.Validate(); err != nil {
		return render.Options{}, err
	}
	if err := render.CheckFormat(cfg.ImageFormat); err != nil {
		return render.Options{}, err
	}
	if f.output != "" {
		if err := render.CheckPath(f.output); err != nil {
			return render.Options{}, err
		}
	}
	return render.Options{Width: cfg.Width, Height: cfg.Height}, nil
}

func (f *renderFlags) outputPath(input, kind string, cfg *config.Config) (string, error) {
	return outputPath(input, f.output, kind+"."+strings.ToLower(cfg.ImageFormat), cfg)
}

// outputPath returns explicit when set, otherwise <dir>/<input base>.<suffix>
// where dir is the configured output directory or the input's own.
func outputPath(input, explicit, suffix string, cfg *config.Config) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	dir := cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, base+"."+suffix), nil
}
