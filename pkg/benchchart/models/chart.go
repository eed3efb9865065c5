package models

// ChartSeries represents series metadata for a chart read back from a workbook.
type ChartSeries struct {
	// Name is the series display name (empty when only a reference is stored).
	Name string `json:"name"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// XRange is the range reference for category values.
	XRange string `json:"x_range,omitempty"`
	// YRange is the range reference for sample values.
	YRange string `json:"y_range,omitempty"`
}

// Chart represents chart metadata extracted from an xlsx drawing.
type Chart struct {
	// Sheet is the sheet owning the chart.
	Sheet string `json:"sheet"`
	// Name is the drawing object name.
	Name string `json:"name"`
	// ChartType is the chart type (e.g., Line, Bar).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// YAxisTitle is the value axis title.
	YAxisTitle string `json:"y_axis_title,omitempty"`
	// YAxisLogBase is the value axis logarithm base, zero for a linear axis.
	YAxisLogBase float64 `json:"y_axis_log_base,omitempty"`
	// YAxisRange is the value axis range [min, max] when available.
	YAxisRange []float64 `json:"y_axis_range,omitempty"`
	// Series is the list of series included in the chart.
	Series []ChartSeries `json:"series"`
	// Anchor is the cell the chart's top-left corner is anchored to, e.g. "I2".
	Anchor string `json:"anchor,omitempty"`
	// L is the left offset in pixels.
	L int `json:"l"`
	// T is the top offset in pixels.
	T int `json:"t"`
}
