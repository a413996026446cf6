package histogram

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Compute bins samples into equal-width bins over [min, max] with the last
// bin closed on the right. Densities integrate to 1 over the bins.
// Zero samples give a histogram without bins. bins == 0 selects DefaultBins.
func Compute(samples []model.ProbabilitySample, bins int) (*model.Histogram, error) {
	if bins < 0 {
		return nil, fmt.Errorf("%w: bins must not be negative, got %d", common.ErrorInvalidValue, bins)
	}
	if bins == 0 {
		bins = DefaultBins
	}

	h := &model.Histogram{
		Samples:  samples,
		BinCount: bins,
	}
	if len(samples) == 0 {
		return h, nil
	}

	x := model.SamplesToFloats(samples)
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sample %v is not finite", common.ErrorFormat, v)
		}
	}
	sort.Float64s(x)

	lower, upper := binRange(x)
	// scaled before subtracting so that spans near MaxFloat64 stay finite
	width := upper/float64(bins) - lower/float64(bins)
	dividers := make([]float64, bins+1)
	for i := range dividers {
		dividers[i] = lower + float64(i)*width
	}
	// stat.Histogram wants the top divider strictly above the maximum.
	dividers[bins] = math.Nextafter(upper, math.Inf(1))
	for i := 1; i <= bins; i++ {
		if !(dividers[i] > dividers[i-1]) {
			return nil, fmt.Errorf("%w: range [%v, %v] is too narrow for %d bins",
				common.ErrorFormat, lower, upper, bins)
		}
	}

	counts := stat.Histogram(nil, dividers, x, nil)

	n := float64(len(x))
	h.Bins = make([]model.HistogramBin, bins)
	for i := range counts {
		binMax := dividers[i+1]
		if i == bins-1 {
			binMax = upper
		}
		h.Bins[i] = model.HistogramBin{
			Min:     dividers[i],
			Max:     binMax,
			Count:   int(counts[i]),
			Density: counts[i] / (n * width),
		}
	}
	return h, nil
}

// binRange widens a zero-width range to [v-0.5, v+0.5].
func binRange(sorted []float64) (float64, float64) {
	lower, upper := floats.Min(sorted), floats.Max(sorted)
	if lower == upper {
		return lower - 0.5, upper + 0.5
	}
	return lower, upper
}
