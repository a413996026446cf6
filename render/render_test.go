package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/histogram"
	"github.com/uyouii/viterbi-plots/model"
	"github.com/uyouii/viterbi-plots/roc"
)

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveHistogram(t *testing.T) {
	h, err := histogram.Compute([]model.ProbabilitySample{0.1, 0.2, 0.2, 0.7, 0.9}, 5)
	require.NoError(t, err)
	overlay := []model.Density{{X: 0, Value: 0.5}, {X: 0.5, Value: 1.5}, {X: 1, Value: 0.5}}

	for _, name := range []string{"hist.png", "hist.svg"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, SaveHistogram(h, overlay, Options{}, path))
		requireNonEmptyFile(t, path)
	}
}

func TestHistogramPlot_Labels(t *testing.T) {
	h, err := histogram.Compute([]model.ProbabilitySample{0.3, 0.6}, 2)
	require.NoError(t, err)

	p, err := HistogramPlot(h, nil)
	require.NoError(t, err)
	assert.Equal(t, "Histogram of Viterbi-probabilities", p.Title.Text)
	assert.Equal(t, "Probability", p.X.Label.Text)
	assert.Equal(t, "Density", p.Y.Label.Text)
}

func TestSaveHistogram_Empty(t *testing.T) {
	h, err := histogram.Compute(nil, 5)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, SaveHistogram(h, nil, Options{Width: 3, Height: 2}, path))
	requireNonEmptyFile(t, path)
}

func TestRocPlot(t *testing.T) {
	curve, err := roc.NewRocCurve([]float64{0, 0.5, 1}, []float64{0, 1, 1})
	require.NoError(t, err)

	p, err := RocPlot(curve)
	require.NoError(t, err)
	assert.Equal(t, "ROC-Curve with AUC value:0.75", p.Title.Text)
	assert.Equal(t, "False Positive Rate", p.X.Label.Text)
	assert.Equal(t, "True Positive Rate", p.Y.Label.Text)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 1.0, p.X.Max)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, 1.0, p.Y.Max)

	path := filepath.Join(t.TempDir(), "roc.pdf")
	require.NoError(t, SaveRoc(curve, Options{}, path))
	requireNonEmptyFile(t, path)
}

func TestRocTitle(t *testing.T) {
	assert.Equal(t, "ROC-Curve with AUC value:1.0", RocTitle(1))
	assert.Equal(t, "ROC-Curve with AUC value:0.5", RocTitle(0.5))
}

func TestCheckPath(t *testing.T) {
	assert.NoError(t, CheckPath("out/roc.PNG"))
	assert.NoError(t, CheckPath("roc.svg"))
	assert.ErrorIs(t, CheckPath("roc"), common.ErrorInvalidValue)
	assert.ErrorIs(t, CheckPath("roc.bmp"), common.ErrorInvalidValue)
}

func TestHistogramBars(t *testing.T) {
	h, err := histogram.Compute([]model.ProbabilitySample{0, 0.25, 0.5, 0.75, 1}, 4)
	require.NoError(t, err)

	bars := histogramBars(h)
	require.Len(t, bars.Bins, 4)
	assert.InDelta(t, 0.25, bars.Width, 1e-12)
	assert.InDelta(t, 1.6, bars.Bins[3].Weight, 1e-12)
	assert.Equal(t, 1.0, bars.Bins[3].Max)
}

func TestHistogramPlot_RangeTooWide(t *testing.T) {
	h, err := histogram.Compute([]model.ProbabilitySample{-1e308, 1e308}, 5)
	require.NoError(t, err)

	_, err = HistogramPlot(h, nil)
	assert.ErrorIs(t, err, common.ErrorFormat)
}
