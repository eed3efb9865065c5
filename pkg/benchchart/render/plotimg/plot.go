// Package plotimg renders chart configurations to PNG or SVG images with gonum/plot.
package plotimg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// EngineName identifies this engine in chart handles and errors.
const EngineName = "plot"

// ErrNonPositive indicates a sample that cannot be placed on a logarithmic axis.
var ErrNonPositive = errors.New("non-positive sample on logarithmic axis")

// Renderer writes one image per surface into Dir.
type Renderer struct {
	// Dir is the output directory; it is created on first draw.
	Dir string
	// Format is the image format, "png" or "svg".
	Format string
	// Width and Height are the image dimensions.
	Width, Height vg.Length

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
		Width:    8 * vg.Inch,
		Height:   5 * vg.Inch,
		surfaces: benchchart.NewSurfaces(layout...),
	}
}

// Draw plots cfg and saves it as <Dir>/<surfaceID>.<Format>.
func (r *Renderer) Draw(surfaceID string, cfg models.Config) (*benchchart.Chart, error) {
	if err := r.surfaces.Claim(surfaceID); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}

	p, err := NewPlot(cfg)
	if err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}

	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}
	filename := filepath.Join(r.Dir, FileName(surfaceID)+"."+r.Format)
	if err := p.Save(r.Width, r.Height, filename); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, fmt.Errorf("failed to save %s: %w", filename, err))
	}

	chart := &benchchart.Chart{SurfaceID: surfaceID, Engine: EngineName, Config: cfg}
	r.mu.Lock()
	r.charts = append(r.charts, chart)
	r.files = append(r.files, filename)
	r.mu.Unlock()
	return chart, nil
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

// FileName turns a surface id into a safe file stem.
func FileName(surfaceID string) string {
	s := strings.TrimSpace(surfaceID)
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		" ", "_",
		":", "_",
		"..", "_",
	)
	s = replacer.Replace(s)
	if s == "" {
		return "chart"
	}
	return s
}

// NewPlot builds a gonum line plot from a configuration.
func NewPlot(cfg models.Config) (*plot.Plot, error) {
	yAxis := cfg.ValueAxis()
	logScale := yAxis.Type == string(benchchart.AxisLogarithmic)

	p := plot.New()
	p.Title.Text = cfg.Options.Title.Text
	p.X.Label.Text = cfg.CategoryAxis().ScaleLabel.LabelString
	p.Y.Label.Text = yAxis.ScaleLabel.LabelString
	if logScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, ds := range cfg.Data.Datasets {
		if len(ds.Data) == 0 {
			continue
		}

		pts := make(plotter.XYs, len(ds.Data))
		for i, v := range ds.Data {
			if logScale && v <= 0 {
				return nil, fmt.Errorf("%w: %s[%d] = %v", ErrNonPositive, ds.Label, i, v)
			}
			pts[i].X = float64(i)
			pts[i].Y = v
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line %s: %w", ds.Label, err)
		}

		border, err := models.ParseColor(ds.BorderColor)
		if err != nil {
			return nil, err
		}
		line.Color = border
		line.Width = vg.Points(float64(ds.BorderWidth))
		if ds.BackgroundColor != "" {
			fill, err := models.ParseColor(ds.BackgroundColor)
			if err != nil {
				return nil, err
			}
			line.FillColor = fill
		}
		points.Color = border

		p.Add(line, points)
		p.Legend.Add(ds.Label, line, points)
	}

	if len(cfg.Data.Labels) > 0 {
		p.NominalX(cfg.Data.Labels...)
	}
	return p, nil
}
