// Package echarts renders chart configurations with go-echarts.
package echarts

import (
	"io"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// EngineName identifies this engine in chart handles and errors.
const EngineName = "echarts"

// Page collects go-echarts line charts for a single HTML page.
type Page struct {
	// Title is the HTML page title.
	Title string

	surfaces *benchchart.Surfaces
	mu       sync.Mutex
	charts   []*benchchart.Chart
	lines    []*charts.Line
}

// NewPage creates a page. When layout ids are given, only those surfaces exist.
func NewPage(title string, layout ...string) *Page {
	return &Page{
		Title:    title,
		surfaces: benchchart.NewSurfaces(layout...),
	}
}

// Draw converts cfg to a go-echarts line chart bound to surfaceID.
func (p *Page) Draw(surfaceID string, cfg models.Config) (*benchchart.Chart, error) {
	if err := p.surfaces.Claim(surfaceID); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}

	line := NewLine(surfaceID, cfg)
	chart := &benchchart.Chart{SurfaceID: surfaceID, Engine: EngineName, Config: cfg}

	p.mu.Lock()
	p.charts = append(p.charts, chart)
	p.lines = append(p.lines, line)
	p.mu.Unlock()
	return chart, nil
}

// Charts returns the drawn charts in draw order.
func (p *Page) Charts() []*benchchart.Chart {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*benchchart.Chart(nil), p.charts...)
}

// Render writes the page with every drawn chart.
func (p *Page) Render(w io.Writer) error {
	p.mu.Lock()
	lines := append([]*charts.Line(nil), p.lines...)
	p.mu.Unlock()

	page := components.NewPage()
	if p.Title != "" {
		page.SetPageTitle(p.Title)
	}
	page.SetLayout(components.PageFlexLayout)
	for _, line := range lines {
		page.AddCharts(line)
	}
	return page.Render(w)
}

// NewLine maps a Chart.js style configuration onto a go-echarts line chart.
func NewLine(surfaceID string, cfg models.Config) *charts.Line {
	yAxis := cfg.ValueAxis()
	xAxis := cfg.CategoryAxis()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: surfaceID}),
		charts.WithTitleOpts(opts.Title{Title: cfg.Options.Title.Text}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(cfg.Options.Legend.Display)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xAxis.ScaleLabel.LabelString, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxis.ScaleLabel.LabelString, Type: AxisType(yAxis.Type)}),
	)

	line.SetXAxis(cfg.Data.Labels)
	for _, ds := range cfg.Data.Datasets {
		line.AddSeries(ds.Label, lineData(ds.Data),
			charts.WithLineStyleOpts(opts.LineStyle{Color: ds.BorderColor, Width: float32(ds.BorderWidth)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ds.BorderColor}),
		)
	}
	return line
}

// AxisType maps a value axis type to the ECharts axis type.
func AxisType(t string) string {
	if t == string(benchchart.AxisLogarithmic) {
		return "log"
	}
	return "value"
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}
