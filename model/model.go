package model

import "fmt"

// ProbabilitySample is the posterior probability of one decoded sequence.
type ProbabilitySample float64

func SamplesToFloats(samples []ProbabilitySample) []float64 {
	res := make([]float64, len(samples))
	for i, s := range samples {
		res[i] = float64(s)
	}
	return res
}

func FloatsToSamples(values []float64) []ProbabilitySample {
	res := make([]ProbabilitySample, len(values))
	for i, v := range values {
		res[i] = ProbabilitySample(v)
	}
	return res
}

type RatePoint struct {
	FPR float64
	TPR float64
}

type LabeledScore struct {
	Score    float64
	Positive bool
}

func (s LabeledScore) String() string {
	return fmt.Sprintf("Probability: %v\tLabel: %v", s.Score, s.Positive)
}

// RocCurve holds index-aligned rate sequences. FPR[i] pairs with TPR[i].
type RocCurve struct {
	FPR []float64 `json:"fpr"`
	TPR []float64 `json:"tpr"`
	AUC float64   `json:"auc"`
	// Sorted is false when FPR is not non-decreasing; AUC is then a signed area.
	Sorted bool `json:"sorted"`
}

func (c *RocCurve) Points() []RatePoint {
	if c == nil {
		return nil
	}
	res := make([]RatePoint, len(c.FPR))
	for i := range c.FPR {
		res[i] = RatePoint{FPR: c.FPR[i], TPR: c.TPR[i]}
	}
	return res
}

func (c *RocCurve) DebugString() string {
	return fmt.Sprintf("points: %v, auc: %v, sorted: %v", len(c.FPR), c.AUC, c.Sorted)
}
