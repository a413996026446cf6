package render

import (
	"github.com/uyouii/viterbi-plots/model"
	"github.com/uyouii/viterbi-plots/roc"
	"github.com/uyouii/viterbi-plots/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

func RocTitle(auc float64) string {
	return roc.TitlePrefix + utils.FormatFloatRepr(auc)
}

// RocPlot draws the curve in the given point order on [0, 1] x [0, 1].
func RocPlot(curve *model.RocCurve) (*plot.Plot, error) {
	p := newPlot(RocTitle(curve.AUC), roc.XLabel, roc.YLabel)

	if len(curve.FPR) > 0 {
		xys := make(plotter.XYs, len(curve.FPR))
		for i := range curve.FPR {
			xys[i].X, xys[i].Y = curve.FPR[i], curve.TPR[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.Color = lineColor(0)
		p.Add(line)
	}

	p.X.Min, p.X.Max = 0.0, 1.0
	p.Y.Min, p.Y.Max = 0.0, 1.0
	return p, nil
}

func SaveRoc(curve *model.RocCurve, opts Options, path string) error {
	p, err := RocPlot(curve)
	if err != nil {
		return err
	}
	return save(p, opts, path)
}
