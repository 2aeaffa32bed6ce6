// Package chart draws measurement series with error bars and their fitted
// line using gonum/plot.
//
// Charts are written create-only, like tables: Save refuses to replace an
// existing file. The image format follows the file extension (".svg",
// ".png", ".pdf", ".eps").
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arloliu/torsion/internal/options"
	"github.com/arloliu/torsion/regression"
)

var (
	// ErrLengthMismatch is returned when the series slices have different lengths.
	ErrLengthMismatch = errors.New("series lengths differ")
	// ErrEmptySeries is returned for a series without points.
	ErrEmptySeries = errors.New("empty series")
	// ErrAlreadyExists is returned by Save when the target file exists.
	// Errors wrapping it also match fs.ErrExist.
	ErrAlreadyExists = errors.New("chart file already exists")
)

// Series is a set of points with optional symmetric errors. XErr and YErr
// may be nil; otherwise they must be as long as X.
type Series struct {
	X, Y       []float64
	XErr, YErr []float64
}

func (s Series) validate() error {
	n := len(s.X)
	if n == 0 {
		return ErrEmptySeries
	}
	if len(s.Y) != n || (s.XErr != nil && len(s.XErr) != n) || (s.YErr != nil && len(s.YErr) != n) {
		return fmt.Errorf("%w: x=%d y=%d xerr=%d yerr=%d", ErrLengthMismatch, n, len(s.Y), len(s.XErr), len(s.YErr))
	}

	return nil
}

// errorPoints feeds both error bar plotters from one set of points.
type errorPoints struct {
	plotter.XYs
	plotter.XErrors
	plotter.YErrors
}

type config struct {
	width, height vg.Length
	pointColor    color.Color
	lineColor     color.Color
}

// Option configures a chart.
type Option = options.Option[*config]

// WithSize sets the image size.
func WithSize(width, height vg.Length) Option {
	return options.New(func(c *config) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("invalid chart size %vx%v", width, height)
		}
		c.width, c.height = width, height

		return nil
	})
}

// Chart is a rendered plot ready to be saved.
type Chart struct {
	plot *plot.Plot
	cfg  *config
}

// ErrorBarPlot draws s as a scatter with error bars. When fit is not nil the
// fitted line is drawn across the x range of s.
func ErrorBarPlot(title, xLabel, yLabel string, s Series, fit regression.Estimator, opts ...Option) (*Chart, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	cfg := &config{
		width:      6 * vg.Inch,
		height:     4 * vg.Inch,
		pointColor: color.RGBA{B: 200, A: 255},
		lineColor:  color.RGBA{R: 200, A: 255},
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := errorPoints{XYs: make(plotter.XYs, len(s.X))}
	for i := range s.X {
		pts.XYs[i].X = s.X[i]
		pts.XYs[i].Y = s.Y[i]
	}

	scatter, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	scatter.GlyphStyle.Color = cfg.pointColor
	p.Add(scatter)
	p.Legend.Add("measured", scatter)

	if s.YErr != nil {
		pts.YErrors = symmetric[plotter.YErrors](s.YErr)
		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, fmt.Errorf("y error bars: %w", err)
		}
		p.Add(bars)
	}
	if s.XErr != nil {
		pts.XErrors = symmetric[plotter.XErrors](s.XErr)
		bars, err := plotter.NewXErrorBars(pts)
		if err != nil {
			return nil, fmt.Errorf("x error bars: %w", err)
		}
		p.Add(bars)
	}

	if fit != nil {
		lo, hi := slices.Min(s.X), slices.Max(s.X)
		line, err := plotter.NewLine(plotter.XYs{
			{X: lo, Y: fit.Estimate(lo)},
			{X: hi, Y: fit.Estimate(hi)},
		})
		if err != nil {
			return nil, fmt.Errorf("fit line: %w", err)
		}
		line.LineStyle.Color = cfg.lineColor
		p.Add(line)
		p.Legend.Add("fit", line)
	}

	return &Chart{plot: p, cfg: cfg}, nil
}

func symmetric[E ~[]struct{ Low, High float64 }](errs []float64) E {
	out := make(E, len(errs))
	for i, e := range errs {
		out[i].Low = e
		out[i].High = e
	}

	return out
}

// WriteTo renders the chart in the given image format ("svg", "png", ...).
func (c *Chart) WriteTo(w io.Writer, imageFormat string) (int64, error) {
	wt, err := c.plot.WriterTo(c.cfg.width, c.cfg.height, imageFormat)
	if err != nil {
		return 0, err
	}

	return wt.WriteTo(w)
}

// Save writes the chart to a new file. The format is taken from the file
// extension.
func (c *Chart) Save(path string) (err error) {
	imageFormat := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	wt, err := c.plot.WriterTo(c.cfg.width, c.cfg.height, imageFormat)
	if err != nil {
		return fmt.Errorf("chart %s: %w", path, err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
		}

		return fmt.Errorf("create chart file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err := wt.WriteTo(file); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
