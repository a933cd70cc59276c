// Package plotting は訓練データと学習済みの直線を画像として保存する
package plotting

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/sgdreg/dataset"
	"github.com/YuminosukeSato/sgdreg/pkg/errors"
)

type config struct {
	title         string
	width, height vg.Length
}

// Option はSaveFitの設定オプション
type Option func(*config)

// WithTitle sets the plot title
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithSize sets the image size
func WithSize(width, height vg.Length) Option {
	return func(c *config) {
		c.width, c.height = width, height
	}
}

// SaveFit は訓練ペアの散布図とfnの直線をpathに保存する
// 画像形式はpathの拡張子（.png, .svg, .pdf など）で決まる。fnがnilの場合は散布図のみ
func SaveFit(path string, d *dataset.Dataset, fn func(float64) float64, opts ...Option) error {
	const op = "plotting.SaveFit"
	if d.Len() == 0 {
		return errors.NewValueError(op, "no training data to plot")
	}

	cfg := config{
		title:  "SGD linear fit",
		width:  6 * vg.Inch,
		height: 4 * vg.Inch,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	xs, ys := d.Inputs(), d.Outputs()
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "input"
	p.Y.Label.Text = "output"
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.NewModelError(op, "invalid training data", err)
	}
	p.Add(scatter)
	p.Legend.Add("training data", scatter)

	if fn != nil {
		line := plotter.NewFunction(fn)
		line.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add("fit", line)
	}

	// 入力がすべて同じ場合でも直線が描けるよう範囲を広げる
	if p.X.Min == p.X.Max {
		p.X.Min--
		p.X.Max++
	}

	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return errors.Wrapf(err, "save plot to %s", path)
	}
	return nil
}
