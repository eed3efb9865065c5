// Package dataset loads benchmark datasets and turns them into chart specs.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// Dataset is one chart's worth of samples plus its presentation parameters.
type Dataset struct {
	// Surface is the drawing target id.
	Surface string `yaml:"surface"`
	// AxisType is the value axis scale, "linear" (default) or "logarithmic".
	AxisType string `yaml:"axis_type,omitempty"`
	// ValueAxisTitle is the value axis caption, which carries the unit.
	ValueAxisTitle string `yaml:"value_axis_title"`
	// CategoryAxisTitle is the category axis caption.
	CategoryAxisTitle string `yaml:"category_axis_title"`
	// Title is the chart title.
	Title string `yaml:"title"`
	// Data holds one series per system in datahike, datomic, datascript order.
	Data [][]float64 `yaml:"data"`
}

// Report is an ordered collection of datasets rendered onto one output.
type Report struct {
	// Title is the page or workbook title.
	Title string `yaml:"title"`
	// Charts lists the datasets in render order.
	Charts []Dataset `yaml:"charts"`
}

// Spec converts the dataset into a chart spec with the default styling.
func (d Dataset) Spec() models.ChartSpec {
	axis := benchchart.AxisType(d.AxisType)
	if axis == "" {
		axis = benchchart.AxisLinear
	}
	return benchchart.NewSpec(d.Surface, d.Data, axis, d.ValueAxisTitle, d.CategoryAxisTitle, d.Title)
}

// Validate checks the dataset fits the fixed chart layout.
func (d Dataset) Validate() error {
	if d.Surface == "" {
		return fmt.Errorf("%w: missing surface", benchchart.ErrInvalidDataset)
	}
	switch benchchart.AxisType(d.AxisType) {
	case "", benchchart.AxisLinear, benchchart.AxisLogarithmic:
	default:
		return fmt.Errorf("%w: %s: unsupported axis type %q", benchchart.ErrInvalidDataset, d.Surface, d.AxisType)
	}

	styles := len(benchchart.DefaultStyles())
	labels := len(benchchart.CategoryLabels())
	if len(d.Data) == 0 || len(d.Data) > styles {
		return fmt.Errorf("%w: %s: expected 1 to %d series, got %d", benchchart.ErrInvalidDataset, d.Surface, styles, len(d.Data))
	}
	for i, series := range d.Data {
		if len(series) != labels {
			return fmt.Errorf("%w: %s: series %d has %d samples, expected %d",
				benchchart.ErrInvalidDataset, d.Surface, i, len(series), labels)
		}
	}
	return nil
}

// Specs converts every dataset into a chart spec.
func (r Report) Specs() []models.ChartSpec {
	specs := make([]models.ChartSpec, 0, len(r.Charts))
	for _, d := range r.Charts {
		specs = append(specs, d.Spec())
	}
	return specs
}

// Surfaces returns the surface ids in render order.
func (r Report) Surfaces() []string {
	ids := make([]string, 0, len(r.Charts))
	for _, d := range r.Charts {
		ids = append(ids, d.Surface)
	}
	return ids
}

// Validate checks every dataset and rejects duplicate surfaces.
func (r Report) Validate() error {
	seen := make(map[string]bool, len(r.Charts))
	for _, d := range r.Charts {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Surface] {
			return fmt.Errorf("%w: duplicate surface %q", benchchart.ErrInvalidDataset, d.Surface)
		}
		seen[d.Surface] = true
	}
	return nil
}

// Builtin returns the insertion and query datasets shipped with the tool.
// Insertion timings are in milliseconds and query timings in microseconds;
// the unit is carried only by the value axis title.
func Builtin() Report {
	return Report{
		Title: "Benchmark comparison",
		Charts: []Dataset{
			{
				Surface:           "insertionChart",
				AxisType:          string(benchchart.AxisLinear),
				ValueAxisTitle:    "Execution time in milliseconds",
				CategoryAxisTitle: "Sample size",
				Title:             "Data Insertion Performance",
				Data: [][]float64{
					{13715.26422, 133053.05744, 1351278.91231},
					{503.276519, 2882.789454, 7001.234535},
					{851.469728, 2299.92175, 5901.234535},
				},
			},
			{
				Surface:           "queryChart1",
				AxisType:          string(benchchart.AxisLinear),
				ValueAxisTitle:    "Execution time in microseconds",
				CategoryAxisTitle: "Sample size",
				Title:             "Basic indexed query",
				Data: [][]float64{
					{62.566438, 344.492521, 490.123},
					{104.443381, 95.701976, 102.234461},
					{22.049357, 22.313238, 23.112649},
				},
			},
		},
	}
}

// LoadFile loads a report, choosing the reader by file extension:
// .yaml/.yml, .xlsx, or anything else as Go benchmark output.
func LoadFile(path string) (*Report, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadWorkbook(path)
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadYAML(f)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadBench(f, DefaultBenchOptions())
	}
}
