package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRocCurve_Points(t *testing.T) {
	c := &RocCurve{
		FPR: []float64{0, 0.5, 1},
		TPR: []float64{0, 1, 1},
	}
	assert.Equal(t, []RatePoint{{0, 0}, {0.5, 1}, {1, 1}}, c.Points())

	var nilCurve *RocCurve
	assert.Nil(t, nilCurve.Points())
}

func TestHistogram_IsEmpty(t *testing.T) {
	var h *Histogram
	assert.True(t, h.IsEmpty())
	assert.True(t, (&Histogram{BinCount: 5}).IsEmpty())
	assert.False(t, (&Histogram{Samples: []ProbabilitySample{0.1}}).IsEmpty())
}

func TestSamplesRoundTrip(t *testing.T) {
	values := []float64{0.1, 0.25, 1}
	assert.Equal(t, values, SamplesToFloats(FloatsToSamples(values)))
}

func TestLabeledScore_String(t *testing.T) {
	assert.Equal(t, "Probability: 0.5\tLabel: true", LabeledScore{Score: 0.5, Positive: true}.String())
}

func TestDebugString(t *testing.T) {
	c := &RocCurve{FPR: []float64{0, 1}, TPR: []float64{0, 1}, AUC: 0.5, Sorted: true}
	assert.Equal(t, "points: 2, auc: 0.5, sorted: true", c.DebugString())

	h := &Histogram{Samples: []ProbabilitySample{0.1}, Bins: make([]HistogramBin, 5), BinCount: 5}
	assert.Equal(t, "samples: 1, bins: 5", h.DebugString())
}
