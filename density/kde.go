package density

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"github.com/uyouii/viterbi-plots/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	DefaultGridSize = 200
	// DefaultCut extends the grid cut*bw past the extreme samples.
	DefaultCut = 3.0
)

type KDEUnivariate struct {
	Endog   []float64
	Weights []float64

	gridSize int
	bwAdjust float64
	cut      float64
	// domain clamps the evaluation grid, e.g. [0, 1] for probabilities.
	domain *model.Clip
	kernel Kernel
}

func NewKDEUnivariate(endog []float64, bwAdjust float64, domain *model.Clip) (*KDEUnivariate, error) {
	if len(endog) < 2 {
		return nil, fmt.Errorf("%w: kde needs at least 2 samples, got %d", common.ErrorInvalidValue, len(endog))
	}
	if bwAdjust <= 0 {
		bwAdjust = 1
	}

	return &KDEUnivariate{
		Endog:    endog,
		Weights:  InitOnes(len(endog)),
		gridSize: DefaultGridSize,
		bwAdjust: bwAdjust,
		cut:      DefaultCut,
		domain:   domain,
		kernel:   NewGaussianKernel(),
	}, nil
}

// Kdensity evaluates the estimate on an evenly spaced grid and returns it
// with the bandwidth used.
func (kde *KDEUnivariate) Kdensity() ([]model.Density, float64, error) {
	bw := NormalReferenceBandWidth(kde.kernel, kde.Endog) * kde.bwAdjust
	if bw == 0 || math.IsNaN(bw) {
		return nil, 0, fmt.Errorf("%w: degenerate bandwidth, samples have no spread", common.ErrorInvalidValue)
	}

	a := floats.Min(kde.Endog) - kde.cut*bw
	b := floats.Max(kde.Endog) + kde.cut*bw
	if kde.domain != nil {
		a = math.Max(a, kde.domain.Lower)
		b = math.Min(b, kde.domain.Upper)
	}
	if math.IsInf(b-a, 0) || math.IsInf(bw, 0) {
		return nil, 0, fmt.Errorf("%w: sample spread overflows the grid", common.ErrorInvalidValue)
	}
	grid := make([]float64, kde.gridSize)
	floats.Span(grid, a, b)

	q := floats.Sum(kde.Weights)
	row := make([]float64, len(kde.Endog))

	res := make([]model.Density, len(grid))
	for i, x := range grid {
		for j, xj := range kde.Endog {
			row[j] = kde.kernel.Shape((xj - x) / bw)
		}
		res[i] = model.Density{
			X:     x,
			Value: floats.Dot(row, kde.Weights) / (q * bw),
		}
	}
	return res, bw, nil
}

// Estimate is the entry used by the histogram command: it logs and returns
// the curve for samples, clamped to domain.
func Estimate(ctx context.Context, samples []model.ProbabilitySample, domain *model.Clip) ([]model.Density, error) {
	logger := utils.GetLogger(ctx)

	k, err := NewKDEUnivariate(model.SamplesToFloats(samples), 1.0, domain)
	if err != nil {
		logger.Warn("NewKDEUnivariate failed", zap.Error(err))
		return nil, err
	}
	res, bw, err := k.Kdensity()
	if err != nil {
		logger.Warn("Kdensity failed", zap.Error(err))
		return nil, err
	}
	logger.Debug("kde estimated", zap.Float64("bw", bw), zap.Int("gridSize", len(res)))
	return res, nil
}

func InitOnes(n int) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = 1
	}
	return res
}
