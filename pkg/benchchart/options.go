// Package benchchart builds benchmark comparison chart configurations and
// hands them to a rendering engine.
package benchchart

import "fmt"

// AxisType is the scale of the value axis.
type AxisType string

const (
	// AxisLinear is an evenly spaced value axis.
	AxisLinear AxisType = "linear"
	// AxisLogarithmic is a base-10 logarithmic value axis.
	AxisLogarithmic AxisType = "logarithmic"
)

// Format selects the rendering engine used for output.
type Format string

const (
	// FormatHTML renders a Chart.js page.
	FormatHTML Format = "html"
	// FormatECharts renders a go-echarts page.
	FormatECharts Format = "echarts"
	// FormatPNG renders one PNG image per surface.
	FormatPNG Format = "png"
	// FormatSVG renders one SVG image per surface.
	FormatSVG Format = "svg"
	// FormatXLSX renders an Excel workbook with native line charts.
	FormatXLSX Format = "xlsx"
	// FormatJSON writes the raw chart configurations.
	FormatJSON Format = "json"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatHTML, FormatECharts, FormatPNG, FormatSVG, FormatXLSX, FormatJSON}
}

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s (must be one of %v)", ErrUnknownFormat, s, Formats())
}

// Options configures how a set of charts is rendered.
type Options struct {
	// Format selects the engine.
	Format Format
	// ForceLogScale overrides every chart's value axis with AxisLogarithmic.
	ForceLogScale bool
	// ScriptURL is the Chart.js script location for FormatHTML pages.
	// If empty, DefaultScriptURL is used.
	ScriptURL string
	// ImageEngine selects the library drawing FormatPNG and FormatSVG.
	// If empty, ImageEnginePlot is used.
	ImageEngine string
}

// Image engines for FormatPNG and FormatSVG.
const (
	ImageEnginePlot    = "plot"
	ImageEngineGoChart = "gochart"
)

// DefaultScriptURL is the Chart.js v2 bundle the generated pages load.
const DefaultScriptURL = "https://cdn.jsdelivr.net/npm/chart.js@2.9.4/dist/Chart.min.js"

// DefaultOptions returns default render options.
func DefaultOptions() Options {
	return Options{
		Format: FormatHTML,
	}
}

// ResolvedScriptURL returns the Chart.js script URL to embed.
func (o Options) ResolvedScriptURL() string {
	if o.ScriptURL != "" {
		return o.ScriptURL
	}
	return DefaultScriptURL
}
