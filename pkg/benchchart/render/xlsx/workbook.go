// Package xlsx renders chart configurations as native Excel line charts.
package xlsx

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// EngineName identifies this engine in chart handles and errors.
const EngineName = "xlsx"

// Sheet layout shared with the workbook dataset loader. Row 1 holds the
// category axis title followed by the series labels; each following row
// holds a category label followed by one sample per series. Chart metadata is
// stored as key/value pairs in columns MetaKeyColumn and MetaKeyColumn+1.
const (
	MetaKeyColumn      = 6 // F
	MetaTitle          = "title"
	MetaValueAxisTitle = "value_axis_title"
	MetaAxisType       = "axis_type"
)

const defaultSheet = "Sheet1"

// Workbook draws each surface onto its own sheet.
type Workbook struct {
	file     *excelize.File
	surfaces *benchchart.Surfaces
	mu       sync.Mutex
	charts   []*benchchart.Chart
}

// NewWorkbook creates an empty workbook. When layout ids are given, only those sheets may be drawn.
func NewWorkbook(layout ...string) *Workbook {
	return &Workbook{
		file:     excelize.NewFile(),
		surfaces: benchchart.NewSurfaces(layout...),
	}
}

// Draw writes the data table for cfg to the sheet surfaceID and adds a line chart.
func (w *Workbook) Draw(surfaceID string, cfg models.Config) (*benchchart.Chart, error) {
	if err := w.surfaces.Claim(surfaceID); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.addSheet(surfaceID); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}
	rows, err := writeTable(w.file, surfaceID, cfg)
	if err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, err)
	}
	if err := w.file.AddChart(surfaceID, "I2", NewChart(surfaceID, cfg, rows)); err != nil {
		return nil, benchchart.NewRenderError(surfaceID, EngineName, fmt.Errorf("failed to add chart: %w", err))
	}

	chart := &benchchart.Chart{SurfaceID: surfaceID, Engine: EngineName, Config: cfg}
	w.charts = append(w.charts, chart)
	return chart, nil
}

// addSheet renames the default sheet for the first surface and appends new sheets after that.
func (w *Workbook) addSheet(name string) error {
	if len(w.charts) == 0 {
		if name == defaultSheet {
			return nil
		}
		return w.file.SetSheetName(defaultSheet, name)
	}
	_, err := w.file.NewSheet(name)
	return err
}

// Charts returns the drawn charts in draw order.
func (w *Workbook) Charts() []*benchchart.Chart {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*benchchart.Chart(nil), w.charts...)
}

// Save writes the workbook to path.
func (w *Workbook) Save(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.SaveAs(path)
}

// Write writes the workbook to wr.
func (w *Workbook) Write(wr io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Write(wr)
}

// Close releases the workbook's temporary resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}

// plotted returns the datasets that carry samples. Empty series get no column.
func plotted(cfg models.Config) []models.Dataset {
	out := make([]models.Dataset, 0, len(cfg.Data.Datasets))
	for _, ds := range cfg.Data.Datasets {
		if len(ds.Data) > 0 {
			out = append(out, ds)
		}
	}
	return out
}

// writeTable writes the data table and metadata, returning the number of sample rows.
func writeTable(f *excelize.File, sheet string, cfg models.Config) (int, error) {
	datasets := plotted(cfg)
	header := []interface{}{cfg.CategoryAxis().ScaleLabel.LabelString}
	rows := len(cfg.Data.Labels)
	for _, ds := range datasets {
		header = append(header, ds.Label)
		if len(ds.Data) > rows {
			rows = len(ds.Data)
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, err
	}

	for i := 0; i < rows; i++ {
		row := make([]interface{}, 0, len(datasets)+1)
		if i < len(cfg.Data.Labels) {
			row = append(row, cfg.Data.Labels[i])
		} else {
			row = append(row, nil)
		}
		for _, ds := range datasets {
			if i < len(ds.Data) {
				row = append(row, ds.Data[i])
			} else {
				row = append(row, nil)
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return 0, err
		}
	}

	meta := [][2]string{
		{MetaTitle, cfg.Options.Title.Text},
		{MetaValueAxisTitle, cfg.ValueAxis().ScaleLabel.LabelString},
		{MetaAxisType, cfg.ValueAxis().Type},
	}
	for i, kv := range meta {
		cell, err := excelize.CoordinatesToCellName(MetaKeyColumn, i+1)
		if err != nil {
			return 0, err
		}
		pair := []interface{}{kv[0], kv[1]}
		if err := f.SetSheetRow(sheet, cell, &pair); err != nil {
			return 0, err
		}
	}

	return rows, nil
}

// NewChart describes a native line chart over the table written for cfg.
func NewChart(sheet string, cfg models.Config, rows int) *excelize.Chart {
	yAxis := excelize.ChartAxis{
		Title: []excelize.RichTextRun{{Text: cfg.ValueAxis().ScaleLabel.LabelString}},
	}
	if cfg.ValueAxis().Type == string(benchchart.AxisLogarithmic) {
		yAxis.LogBase = 10
	}

	datasets := plotted(cfg)
	series := make([]excelize.ChartSeries, 0, len(datasets))
	for i, ds := range datasets {
		col, _ := excelize.ColumnNumberToName(i + 2)
		s := excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", quoteSheet(sheet), col),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", quoteSheet(sheet), rows+1),
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", quoteSheet(sheet), col, col, rows+1),
			Line:       excelize.ChartLine{Width: float64(ds.BorderWidth)},
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: 5},
		}
		if hex, err := models.HexColor(ds.BorderColor); err == nil {
			s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}}
		}
		series = append(series, s)
	}

	return &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: cfg.Options.Title.Text}},
		XAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: cfg.CategoryAxis().ScaleLabel.LabelString}},
		},
		YAxis:     yAxis,
		Legend:    excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{Width: 640, Height: 400},
	}
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
