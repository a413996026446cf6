package utils

import (
	"context"
	"fmt"

	"github.com/uyouii/viterbi-plots/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

func GetLogger(ctx context.Context) *zap.Logger {
	return zap.L()
}

// InitLogger replaces the global logger. format is "json" or "console";
// both write to stderr so stdout stays free for command output.
func InitLogger(level, format string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: log level %q", common.ErrorInvalidValue, level)
	}

	var cfg zap.Config
	switch format {
	case "", "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	default:
		return fmt.Errorf("%w: log format %q", common.ErrorInvalidValue, format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
