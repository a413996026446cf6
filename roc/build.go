package roc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"github.com/uyouii/viterbi-plots/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// ReadLabeledScores reads "<score>;<label>" lines, where label is a bool
// (true/false/1/0/t/f) or "+"/"-".
func ReadLabeledScores(ctx context.Context, path string) (scores []model.LabeledScore, err error) {
	logger := utils.GetLogger(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	scores, err = ParseLabeledScores(f)
	if err != nil {
		logger.Error("ParseLabeledScores failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return scores, nil
}

func ParseLabeledScores(r io.Reader) ([]model.LabeledScore, error) {
	scanner := bufio.NewScanner(r)

	res := []model.LabeledScore{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ScoreSeparator)
		if len(fields) != 2 {
			return nil, common.NewParseError(lineNo, 0, line,
				fmt.Errorf("expected <score>%s<label>", ScoreSeparator))
		}

		scoreText := strings.TrimSpace(fields[0])
		score, err := strconv.ParseFloat(scoreText, 64)
		if err != nil {
			return nil, common.NewParseError(lineNo, 0, scoreText, err)
		}
		labelText := strings.TrimSpace(fields[1])
		label, err := parseLabel(labelText)
		if err != nil {
			return nil, common.NewParseError(lineNo, 1, labelText, err)
		}
		res = append(res, model.LabeledScore{Score: score, Positive: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	return res, nil
}

func parseLabel(s string) (bool, error) {
	switch s {
	case "+":
		return true, nil
	case "-":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// BuildRates sweeps a decision threshold from the highest score down.
// Tied scores move the curve in one step, so the result runs from (0, 0) to
// (1, 1) with ascending false positive rates.
func BuildRates(scores []model.LabeledScore) (*model.RocCurve, error) {
	positives, negatives := 0, 0
	for _, s := range scores {
		if s.Positive {
			positives++
		} else {
			negatives++
		}
	}
	if positives == 0 || negatives == 0 {
		return nil, fmt.Errorf("%w: need both positive and negative labels, got %d positive and %d negative",
			common.ErrorInvalidValue, positives, negatives)
	}

	sorted := append([]model.LabeledScore(nil), scores...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	tp, fp := 0.0, 0.0
	tpr, fpr := []float64{0}, []float64{0}
	for i, s := range sorted {
		if s.Positive {
			tp++
		} else {
			fp++
		}
		if i == len(sorted)-1 || sorted[i+1].Score != s.Score {
			tpr = append(tpr, tp)
			fpr = append(fpr, fp)
		}
	}
	floats.Scale(1/float64(positives), tpr)
	floats.Scale(1/float64(negatives), fpr)

	return NewRocCurve(fpr, tpr)
}
