package render

import (
	"fmt"
	"math"

	"github.com/uyouii/viterbi-plots/common"
	"github.com/uyouii/viterbi-plots/histogram"
	"github.com/uyouii/viterbi-plots/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// HistogramPlot builds the density histogram, with overlay drawn as a line
// when it is non-empty. An empty histogram gets bare unit axes.
func HistogramPlot(h *model.Histogram, overlay []model.Density) (*plot.Plot, error) {
	p := newPlot(histogram.Title, histogram.XLabel, histogram.YLabel)

	if h.IsEmpty() || len(h.Bins) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return p, nil
	}

	lower, upper := h.Bins[0].Min, h.Bins[len(h.Bins)-1].Max
	if math.IsInf(upper-lower, 0) {
		return nil, fmt.Errorf("%w: sample range [%v, %v] is too wide to plot", common.ErrorFormat, lower, upper)
	}
	p.Add(histogramBars(h))
	p.Y.Min = 0

	if len(overlay) > 0 {
		xys := make(plotter.XYs, len(overlay))
		for i, d := range overlay {
			xys[i].X, xys[i].Y = d.X, d.Value
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = lineColor(0)
		line.Width = 2
		p.Add(line)
		p.Legend.Add("KDE", line)
	}
	return p, nil
}

func SaveHistogram(h *model.Histogram, overlay []model.Density, opts Options, path string) error {
	p, err := HistogramPlot(h, overlay)
	if err != nil {
		return err
	}
	return save(p, opts, path)
}

// histogramBars draws bins at their density height. Width is one bin wide.
func histogramBars(h *model.Histogram) *plotter.Histogram {
	bins := make([]plotter.HistogramBin, len(h.Bins))
	for i, b := range h.Bins {
		bins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: b.Density}
	}
	return &plotter.Histogram{
		Bins:      bins,
		Width:     h.Bins[0].Width(),
		FillColor: lineColor(2),
		LineStyle: plotter.DefaultLineStyle,
	}
}
