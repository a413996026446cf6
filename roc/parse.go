package roc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"github.com/uyouii/viterbi-plots/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var numberToken = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

const (
	enclosingChars = "[]() \t"
	separatorChars = ", \t"
)

// ReadRates reads a two-line rates file, TPR first and FPR second, and
// computes the AUC. Lines past the second are ignored.
func ReadRates(ctx context.Context, path string) (curve *model.RocCurve, err error) {
	logger := utils.GetLogger(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	lines, err := readLines(f)
	if err != nil {
		logger.Error("readLines failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: expected 2 lines (true positive rates, false positive rates), got %d",
			common.ErrorFormat, len(lines))
	}
	if len(lines) > 2 {
		logger.Warn("ignoring lines after the second", zap.String("path", path), zap.Int("lineCnt", len(lines)))
	}

	tpr, err := ParseRateLine(lines[0].no, lines[0].text)
	if err != nil {
		return nil, err
	}
	fpr, err := ParseRateLine(lines[1].no, lines[1].text)
	if err != nil {
		return nil, err
	}

	curve, err = NewRocCurve(fpr, tpr)
	if err != nil {
		logger.Error("NewRocCurve failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	if !curve.Sorted {
		logger.Warn("false positive rates are not ascending, auc is a signed area",
			zap.String("path", path), zap.Float64("auc", curve.AUC))
	}
	return curve, nil
}

type numberedLine struct {
	no   int
	text string
}

// readLines returns the non-blank lines with their 1-based numbers.
func readLines(r io.Reader) ([]numberedLine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	res := []numberedLine{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		res = append(res, numberedLine{no: lineNo, text: text})
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", common.ErrorFormat, lineNo+1, MaxLineSize)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	return res, nil
}

// ParseRateLine scans a list such as "[0.0, 0.5, 1.0]" for numbers.
// Brackets and whitespace may enclose the list, and tokens must be separated
// by commas or whitespace; anything else is a format error naming the token
// position.
func ParseRateLine(lineNo int, line string) ([]float64, error) {
	matches := numberToken.FindAllStringIndex(line, -1)
	if len(matches) == 0 {
		return nil, common.NewParseError(lineNo, 0, line, errors.New("no numeric values"))
	}

	res := make([]float64, 0, len(matches))
	prevEnd := 0
	for i, m := range matches {
		gap := line[prevEnd:m[0]]
		if i == 0 {
			if strings.Trim(gap, enclosingChars) != "" {
				return nil, common.NewParseError(lineNo, i, gap, errors.New("unexpected characters"))
			}
		} else if gap == "" || strings.Trim(gap, separatorChars) != "" {
			return nil, common.NewParseError(lineNo, i, line[matches[i-1][0]:m[1]],
				errors.New("values must be separated by commas or whitespace"))
		}

		text := line[m[0]:m[1]]
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, common.NewParseError(lineNo, i, text, err)
		}
		res = append(res, value)
		prevEnd = m[1]
	}

	if tail := line[prevEnd:]; strings.Trim(tail, enclosingChars) != "" {
		return nil, common.NewParseError(lineNo, len(matches), tail, errors.New("unexpected characters"))
	}
	return res, nil
}
