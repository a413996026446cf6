package roc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"github.com/uyouii/viterbi-plots/utils"
	"go.uber.org/multierr"
)

var errNoRates = errors.New("curve has no points")

// FormatRateLine renders values as "[0.0, 0.5, 1.0]".
func FormatRateLine(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = utils.FormatFloatRepr(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatRates writes the two-line rates file read by ReadRates.
func FormatRates(w io.Writer, curve *model.RocCurve) error {
	if curve == nil || len(curve.FPR) == 0 {
		return fmt.Errorf("%w: %w", common.ErrorInvalidValue, errNoRates)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", FormatRateLine(curve.TPR), FormatRateLine(curve.FPR))
	return err
}

func WriteRates(path string, curve *model.RocCurve) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return FormatRates(f, curve)
}
