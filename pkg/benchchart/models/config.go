package models

// Config is a Chart.js (v2) chart configuration. Field names and JSON tags
// follow the library's option tree so the value can be embedded into a page
// verbatim.
type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

// Data is the labels/datasets block of a Config.
type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series as the rendering library sees it.
type Dataset struct {
	Label           string    `json:"label"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
	Data            []float64 `json:"data"`
}

// Options holds scales, legend and title settings.
type Options struct {
	Scales Scales `json:"scales"`
	Legend Legend `json:"legend"`
	Title  Title  `json:"title"`
}

// Scales lists the value (y) and category (x) axes.
type Scales struct {
	YAxes []Axis `json:"yAxes"`
	XAxes []Axis `json:"xAxes"`
}

// Axis configures a single axis.
type Axis struct {
	Type       string     `json:"type,omitempty"`
	Ticks      *Ticks     `json:"ticks,omitempty"`
	ScaleLabel ScaleLabel `json:"scaleLabel"`
}

// Ticks configures axis tick generation.
type Ticks struct {
	AutoSkip bool `json:"autoSkip"`
}

// ScaleLabel is an axis caption.
type ScaleLabel struct {
	LabelString string `json:"labelString"`
	Type        string `json:"type,omitempty"`
	Display     bool   `json:"display"`
}

// Legend toggles the series legend.
type Legend struct {
	Display bool `json:"display"`
}

// Title is the chart heading.
type Title struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// ValueAxis returns the first value axis, or a zero Axis if none is set.
func (c Config) ValueAxis() Axis {
	if len(c.Options.Scales.YAxes) == 0 {
		return Axis{}
	}
	return c.Options.Scales.YAxes[0]
}

// CategoryAxis returns the first category axis, or a zero Axis if none is set.
func (c Config) CategoryAxis() Axis {
	if len(c.Options.Scales.XAxes) == 0 {
		return Axis{}
	}
	return c.Options.Scales.XAxes[0]
}
