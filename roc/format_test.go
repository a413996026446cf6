package roc

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/model"
)

func TestFormatRateLine(t *testing.T) {
	assert.Equal(t, "[0.0, 0.5, 1.0]", FormatRateLine([]float64{0, 0.5, 1}))
	assert.Equal(t, "[]", FormatRateLine(nil))
}

func TestFormatRateLine_RoundTrip(t *testing.T) {
	a, b := 0.1, 0.2
	values := []float64{0, 1.0 / 3, a + b, 2.5e-7, 0.999999999, 1}

	got, err := ParseRateLine(1, FormatRateLine(values))
	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestWriteRates_RoundTrip(t *testing.T) {
	curve, err := NewRocCurve([]float64{0, 0.25, 0.5, 1}, []float64{0, 0.6, 0.9, 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rates.txt")
	require.NoError(t, WriteRates(path, curve))

	got, err := ReadRates(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, curve.FPR, got.FPR)
	assert.Equal(t, curve.TPR, got.TPR)
	assert.Equal(t, curve.AUC, got.AUC)
}

func TestFormatRates(t *testing.T) {
	var buf bytes.Buffer
	curve := &model.RocCurve{FPR: []float64{0, 1}, TPR: []float64{0, 1}}
	require.NoError(t, FormatRates(&buf, curve))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"[0.0, 1.0]", "[0.0, 1.0]"}, lines)

	assert.ErrorIs(t, FormatRates(&buf, nil), common.ErrorInvalidValue)
}
