package histogram

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"github.com/uyouii/viterbi-plots/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ReadProbabilities reads a "<viterbi path>;<probability>" file. The first
// malformed line aborts the read.
func ReadProbabilities(ctx context.Context, path string) (samples []model.ProbabilitySample, err error) {
	logger := utils.GetLogger(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	samples, err = ParseProbabilities(f)
	if err != nil {
		logger.Error("ParseProbabilities failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	logger.Debug("read probabilities", zap.String("path", path), zap.Int("cnt", len(samples)))
	return samples, nil
}

func ParseProbabilities(r io.Reader) ([]model.ProbabilitySample, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	res := []model.ProbabilitySample{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		value, err := parseLine(lineNo, line)
		if err != nil {
			return nil, err
		}
		res = append(res, value)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d exceeds %d bytes", common.ErrorFormat, lineNo+1, MaxLineSize)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	return res, nil
}

func parseLine(lineNo int, line string) (model.ProbabilitySample, error) {
	fields := strings.Split(line, FieldSeparator)
	if len(fields) <= ProbabilityField {
		return 0, common.NewParseError(lineNo, ProbabilityField, line,
			fmt.Errorf("missing %q separated field", FieldSeparator))
	}

	text := strings.TrimSpace(fields[ProbabilityField])
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, common.NewParseError(lineNo, ProbabilityField, text, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, common.NewParseError(lineNo, ProbabilityField, text, errors.New("value is not finite"))
	}
	return model.ProbabilitySample(value), nil
}
