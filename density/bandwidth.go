package density

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// NormalReferenceBandWidth returns C * A * n^(-1/5), where A is the smaller
// of the standard deviation and IQR/1.349.
func NormalReferenceBandWidth(kernel Kernel, x []float64) float64 {
	if kernel == nil {
		kernel = NewGaussianKernel()
	}
	return kernel.NormalReferenceConstant() * selectSigma(x) * math.Pow(float64(len(x)), -0.2)
}

func selectSigma(x []float64) float64 {
	const normalize = 1.349

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	q75 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	iqr := (q75 - q25) / normalize

	stdDev := stat.StdDev(sorted, nil)

	if iqr > 0 && iqr < stdDev {
		return iqr
	}
	return stdDev
}
