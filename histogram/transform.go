package histogram

import (
	"fmt"
	"math"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"gonum.org/v1/gonum/floats"
)

// Transform maps raw decoder scores to probabilities. The decoder reports
// natural-log Viterbi scores, so exp and normalize convert them.
type Transform string

const (
	TransformNone      Transform = "none"
	TransformExp       Transform = "exp"
	TransformNormalize Transform = "normalize"
)

func ParseTransform(s string) (Transform, error) {
	switch Transform(s) {
	case "", TransformNone:
		return TransformNone, nil
	case TransformExp, TransformNormalize:
		return Transform(s), nil
	}
	return "", fmt.Errorf("%w: unknown transform %q", common.ErrorInvalidValue, s)
}

func ApplyTransform(t Transform, samples []model.ProbabilitySample) ([]model.ProbabilitySample, error) {
	switch t {
	case "", TransformNone:
		return samples, nil
	case TransformExp:
		return model.FloatsToSamples(ListExp(model.SamplesToFloats(samples))), nil
	case TransformNormalize:
		if len(samples) == 0 {
			return samples, nil
		}
		return model.FloatsToSamples(ListExp(NormalizeData(model.SamplesToFloats(samples)))), nil
	}
	return nil, fmt.Errorf("%w: unknown transform %q", common.ErrorInvalidValue, t)
}

// NormalizeData shifts log values so that their exponentials sum to 1.
func NormalizeData(data []float64) []float64 {
	logSum := floats.LogSumExp(data)
	res := make([]float64, len(data))
	for i := range data {
		res[i] = data[i] - logSum
	}
	return res
}

func ListExp(data []float64) []float64 {
	res := make([]float64, len(data))
	for i, v := range data {
		res[i] = math.Exp(v)
	}
	return res
}
