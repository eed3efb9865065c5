// Package models defines data structures for benchmark charts.
package models

// SeriesStyle holds the fixed presentation of one series position.
type SeriesStyle struct {
	// Label is the system name shown in the legend.
	Label string `json:"label" yaml:"label"`
	// BackgroundColor is the CSS fill colour (e.g. "rgba(75, 192, 192, 0.2)").
	BackgroundColor string `json:"background_color" yaml:"background_color"`
	// BorderColor is the CSS line colour.
	BorderColor string `json:"border_color" yaml:"border_color"`
}

// Series is one labelled, styled line of samples across the sample-size categories.
type Series struct {
	SeriesStyle
	// Data holds one sample per category, in category order.
	Data []float64 `json:"data"`
}

// ChartSpec describes one chart: its target surface, axes, title and series.
type ChartSpec struct {
	// SurfaceID identifies the drawing target (canvas id, sheet name, file stem).
	SurfaceID string `json:"surface_id"`
	// ValueAxisType is the value axis scale ("linear" or "logarithmic").
	ValueAxisType string `json:"value_axis_type"`
	// ValueAxisTitle is the value axis caption; it is the only place the unit appears.
	ValueAxisTitle string `json:"value_axis_title"`
	// CategoryAxisTitle is the category axis caption.
	CategoryAxisTitle string `json:"category_axis_title"`
	// Title is the chart title.
	Title string `json:"title"`
	// Series lists the series in legend order.
	Series []Series `json:"series"`
}
