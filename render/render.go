package render

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/uyouii/viterbi-plots/common"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultWidth  = 6.0 // inches
	DefaultHeight = 4.0
	DefaultFormat = "png"
)

var supportedFormats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

type Options struct {
	// Width and Height are in inches; zero selects the defaults.
	Width  float64
	Height float64
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

// CheckFormat validates an image format name such as "png" or "svg".
func CheckFormat(format string) error {
	if !supportedFormats[strings.ToLower(format)] {
		return fmt.Errorf("%w: unsupported image format %q", common.ErrorInvalidValue, format)
	}
	return nil
}

// CheckPath validates that the extension of path names a supported format.
func CheckPath(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("%w: output path %q has no image extension", common.ErrorInvalidValue, path)
	}
	return CheckFormat(ext)
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func save(p *plot.Plot, opts Options, path string) error {
	if err := CheckPath(path); err != nil {
		return err
	}
	w, h := opts.size()
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("%w: save %s: %w", common.ErrorFileAccess, path, err)
	}
	return nil
}

func lineColor(i int) color.Color {
	return plotutil.Color(i)
}
