package histogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
	"gonum.org/v1/gonum/floats"
)

func TestParseTransform(t *testing.T) {
	for in, want := range map[string]Transform{
		"":          TransformNone,
		"none":      TransformNone,
		"exp":       TransformExp,
		"normalize": TransformNormalize,
	} {
		got, err := ParseTransform(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTransform("log")
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestApplyTransform_Exp(t *testing.T) {
	got, err := ApplyTransform(TransformExp, []model.ProbabilitySample{0, model.ProbabilitySample(math.Log(0.25))})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, float64(got[0]), 1e-12)
	assert.InDelta(t, 0.25, float64(got[1]), 1e-12)
}

func TestApplyTransform_Normalize(t *testing.T) {
	// log scores far below what exp can represent directly
	logScores := []model.ProbabilitySample{-1000, model.ProbabilitySample(-1000 + math.Log(3))}

	got, err := ApplyTransform(TransformNormalize, logScores)
	require.NoError(t, err)
	values := model.SamplesToFloats(got)
	assert.InDelta(t, 1.0, floats.Sum(values), 1e-12)
	assert.InDelta(t, 0.25, values[0], 1e-12)
	assert.InDelta(t, 0.75, values[1], 1e-12)
}

func TestApplyTransform_NoneAndEmpty(t *testing.T) {
	samples := []model.ProbabilitySample{0.5}
	got, err := ApplyTransform(TransformNone, samples)
	require.NoError(t, err)
	assert.Equal(t, samples, got)

	got, err = ApplyTransform(TransformNormalize, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
