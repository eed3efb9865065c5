// Package gochart renders chart configurations to PNG or SVG images with go-chart.
package gochart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render/plotimg"
)

// EngineName identifies this engine in chart handles and errors.
const EngineName = "gochart"

// ErrNoSeries indicates a configuration without any samples to draw.
var ErrNoSeries = errors.New("no series with samples")

// Renderer writes one image per surface into Dir.
type Renderer struct {
	// Dir is the output directory; it is created on first draw.
	Dir string
	// Format is the image format, "png" or "svg".
	Format string
	// Width and Height are the image size in pixels.
	Width, Height int

	surfaces *benchchart.Surfaces
	mu       sync.Mutex
	charts   []*benchchart.Chart
	files    []string
}

// NewRenderer creates a renderer. When layout ids are given, only those surfaces exist.
func NewRenderer(dir, format string, layout ...string) *Renderer {
	if format == "" {
		format = "png"
	}
	return &Renderer{
		Dir:      dir,
		Format:   format,
		Width:    800,
		Height:   500,
		surfaces: benchchart.NewSurfaces(layout...),
	}
}

// Draw renders cfg and saves it as <Dir>/<surfaceID>.<Format>.
func (r *Renderer) Draw(surfaceID string, cfg models.Config) (*benchchart.Chart, error) {
	if err := r.surfaces.Claim(surfaceID); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}

	ch, err := NewChart(cfg)
	if err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}
	ch.Width = r.Width
	ch.Height = r.Height

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}
	filename := filepath.Join(r.Dir, plotimg.FileName(surfaceID)+"."+r.Format)
	if err := r.save(ch, filename); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, fmt.Errorf("failed to save %s: %w", filename, err))
	}

	c := &benchchart.Chart{SurfaceID: surfaceID, Engine: EngineName, Config: cfg}
	r.mu.Lock()
	r.charts = append(r.charts, c)
	r.files = append(r.files, filename)
	r.mu.Unlock()
	return c, nil
}

func (r *Renderer) save(ch *chart.Chart, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Render(ch, r.Format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Files returns the written image paths in draw order.
func (r *Renderer) Files() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.files...)
}

// Charts returns the drawn charts in draw order.
func (r *Renderer) Charts() []*benchchart.Chart {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*benchchart.Chart(nil), r.charts...)
}

// Render writes ch to w as "png" or "svg".
func Render(ch *chart.Chart, format string, w io.Writer) error {
	switch format {
	case "png":
		return ch.Render(chart.PNG, w)
	case "svg":
		return ch.Render(chart.SVG, w)
	default:
		return fmt.Errorf("%w: %s", benchchart.ErrUnknownFormat, format)
	}
}

// NewChart builds a go-chart line chart from a configuration. Categories are
// placed at x = 0, 1, 2, ... and labelled with cfg.Data.Labels. A logarithmic
// value axis is drawn by plotting log10 of each sample with decade ticks.
func NewChart(cfg models.Config) (*chart.Chart, error) {
	yAxis := cfg.ValueAxis()
	logScale := yAxis.Type == string(benchchart.AxisLogarithmic)

	var series []chart.Series
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, ds := range cfg.Data.Datasets {
		if len(ds.Data) == 0 {
			continue
		}

		xs := make([]float64, len(ds.Data))
		ys := make([]float64, len(ds.Data))
		for i, v := range ds.Data {
			if logScale {
				if v <= 0 {
					return nil, fmt.Errorf("%w: %s[%d] = %v", plotimg.ErrNonPositive, ds.Label, i, v)
				}
				v = math.Log10(v)
			}
			xs[i] = float64(i)
			ys[i] = v
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}

		style, err := seriesStyle(ds)
		if err != nil {
			return nil, err
		}
		series = append(series, chart.ContinuousSeries{Name: ds.Label, XValues: xs, YValues: ys, Style: style})
	}
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	ch := &chart.Chart{
		Title:      cfg.Options.Title.Text,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      categoryAxis(cfg),
		YAxis:      valueAxis(yAxis.ScaleLabel.LabelString, logScale, minY, maxY),
		Series:     series,
	}
	if cfg.Options.Legend.Display {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
	return ch, nil
}

func categoryAxis(cfg models.Config) chart.XAxis {
	n := len(cfg.Data.Labels)
	for _, ds := range cfg.Data.Datasets {
		if len(ds.Data) > n {
			n = len(ds.Data)
		}
	}

	ticks := make([]chart.Tick, 0, n)
	for i := 0; i < n; i++ {
		label := strconv.Itoa(i)
		if i < len(cfg.Data.Labels) {
			label = cfg.Data.Labels[i]
		}
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label})
	}

	return chart.XAxis{
		Name:  cfg.CategoryAxis().ScaleLabel.LabelString,
		Range: &chart.ContinuousRange{Min: -0.25, Max: float64(n-1) + 0.25},
		Ticks: ticks,
	}
}

func valueAxis(name string, logScale bool, minY, maxY float64) chart.YAxis {
	if !logScale {
		if maxY <= minY {
			maxY = minY + 1
		}
		pad := (maxY - minY) * 0.05
		return chart.YAxis{Name: name, Range: &chart.ContinuousRange{Min: math.Min(0, minY-pad), Max: maxY + pad}}
	}

	lo, hi := math.Floor(minY), math.Ceil(maxY)
	if hi <= lo {
		hi = lo + 1
	}
	var ticks []chart.Tick
	for d := lo; d <= hi; d++ {
		ticks = append(ticks, chart.Tick{Value: d, Label: strconv.FormatFloat(math.Pow(10, d), 'g', -1, 64)})
	}
	return chart.YAxis{Name: name, Range: &chart.ContinuousRange{Min: lo, Max: hi}, Ticks: ticks}
}

func seriesStyle(ds models.Dataset) (chart.Style, error) {
	border, err := drawingColor(ds.BorderColor)
	if err != nil {
		return chart.Style{}, err
	}
	style := chart.Style{
		StrokeColor: border,
		StrokeWidth: float64(ds.BorderWidth),
		DotColor:    border,
		DotWidth:    3,
	}
	if ds.BackgroundColor != "" {
		fill, err := drawingColor(ds.BackgroundColor)
		if err != nil {
			return chart.Style{}, err
		}
		style.FillColor = fill
	}
	return style, nil
}

// drawingColor converts a CSS colour to a straight-alpha drawing.Color.
func drawingColor(css string) (drawing.Color, error) {
	c, err := models.ParseColor(css)
	if err != nil {
		return drawing.Color{}, err
	}
	if c.A == 0 {
		return drawing.ColorTransparent, nil
	}
	unmul := func(v uint8) uint8 { return uint8(math.Round(float64(v) * 255 / float64(c.A))) }
	return drawing.Color{R: unmul(c.R), G: unmul(c.G), B: unmul(c.B), A: c.A}, nil
}
