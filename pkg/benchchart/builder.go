package benchchart

import "github.com/ukaji3/benchchart-go/pkg/benchchart/models"

// ChartType is the configured chart type. CreateBarChart keeps its historical
// name but has always produced a line chart.
const ChartType = "line"

// BorderWidth is the line width of every series.
const BorderWidth = 1

// CategoryLabels returns the fixed sample-size categories.
func CategoryLabels() []string {
	return []string{"10K", "100K", "1M"}
}

// DefaultStyles returns the positional series styling: datahike, datomic, datascript.
func DefaultStyles() []models.SeriesStyle {
	return []models.SeriesStyle{
		{Label: "datahike", BackgroundColor: "rgba(75, 192, 192, 0.2)", BorderColor: "rgba(75, 192, 192)"},
		{Label: "datomic", BackgroundColor: "rgba(255, 99, 132, 0.2)", BorderColor: "rgba(255, 99, 132)"},
		{Label: "datascript", BackgroundColor: "rgba(153, 102, 255, 0.2)", BorderColor: "rgba(153, 102, 255)"},
	}
}

// NewSpec pairs graphData with DefaultStyles by position.
// Missing series get nil data and extra series are dropped; nothing is validated.
func NewSpec(surfaceID string, graphData [][]float64, axisType AxisType, valueAxisTitle, categoryAxisTitle, title string) models.ChartSpec {
	return NewStyledSpec(surfaceID, DefaultStyles(), graphData, axisType, valueAxisTitle, categoryAxisTitle, title)
}

// NewStyledSpec is NewSpec with caller-supplied styling. The number of series
// equals len(styles).
func NewStyledSpec(surfaceID string, styles []models.SeriesStyle, graphData [][]float64, axisType AxisType, valueAxisTitle, categoryAxisTitle, title string) models.ChartSpec {
	series := make([]models.Series, len(styles))
	for i, style := range styles {
		series[i].SeriesStyle = style
		if i < len(graphData) {
			series[i].Data = graphData[i]
		}
	}

	return models.ChartSpec{
		SurfaceID:         surfaceID,
		ValueAxisType:     string(axisType),
		ValueAxisTitle:    valueAxisTitle,
		CategoryAxisTitle: categoryAxisTitle,
		Title:             title,
		Series:            series,
	}
}

// BuildConfig converts a spec into a rendering configuration.
func BuildConfig(spec models.ChartSpec) models.Config {
	datasets := make([]models.Dataset, len(spec.Series))
	for i, s := range spec.Series {
		datasets[i] = models.Dataset{
			Label:           s.Label,
			BackgroundColor: s.BackgroundColor,
			BorderColor:     s.BorderColor,
			BorderWidth:     BorderWidth,
			Data:            s.Data,
		}
	}

	return models.Config{
		Type: ChartType,
		Data: models.Data{
			Labels:   CategoryLabels(),
			Datasets: datasets,
		},
		Options: models.Options{
			Scales: models.Scales{
				YAxes: []models.Axis{{
					Type:  spec.ValueAxisType,
					Ticks: &models.Ticks{AutoSkip: true},
					ScaleLabel: models.ScaleLabel{
						LabelString: spec.ValueAxisTitle,
						Display:     true,
					},
				}},
				XAxes: []models.Axis{{
					ScaleLabel: models.ScaleLabel{
						LabelString: spec.CategoryAxisTitle,
						Type:        string(AxisLinear),
						Display:     true,
					},
				}},
			},
			Legend: models.Legend{Display: true},
			Title: models.Title{
				Display: true,
				Text:    spec.Title,
			},
		},
	}
}

// CreateBarChart builds the configuration for graphData and draws it on the
// engine surface identified by surfaceID.
func CreateBarChart(engine Engine, surfaceID string, graphData [][]float64, axisType AxisType, valueAxisTitle, categoryAxisTitle, title string) (*Chart, error) {
	spec := NewSpec(surfaceID, graphData, axisType, valueAxisTitle, categoryAxisTitle, title)
	return engine.Draw(surfaceID, BuildConfig(spec))
}
