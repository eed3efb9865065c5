package dataset

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
)

// BenchOptions controls how Go benchmark output becomes datasets.
type BenchOptions struct {
	// Unit is the time unit samples are converted to: "ns", "us", "ms" or "s".
	Unit string
	// AxisType is the value axis scale for every chart.
	AxisType benchchart.AxisType
	// CategoryAxisTitle is the category axis caption for every chart.
	CategoryAxisTitle string
}

// DefaultBenchOptions returns millisecond, linear-axis options.
func DefaultBenchOptions() BenchOptions {
	return BenchOptions{
		Unit:              "ms",
		AxisType:          benchchart.AxisLinear,
		CategoryAxisTitle: "Sample size",
	}
}

var unitScale = map[string]struct {
	divisor float64
	name    string
}{
	"ns": {1, "nanoseconds"},
	"us": {1e3, "microseconds"},
	"ms": {1e6, "milliseconds"},
	"s":  {1e9, "seconds"},
}

// benchLine matches lines such as
// "BenchmarkInsert/system=datahike/size=10K-8   1   13715264220 ns/op".
var benchLine = regexp.MustCompile(`^Benchmark(\S+?)(?:-\d+)?\s+\d+\s+([\d.]+(?:[eE][+-]?\d+)?)\s+ns/op`)

// benchResult is one parsed benchmark line.
type benchResult struct {
	base   string
	system string
	size   string
	nsOp   float64
}

// parseBenchLine extracts the chart, system and sample size from a benchmark line.
// Sub-benchmark parts may be "key=value" (system=, size=) or positional
// ("Insert/datahike/10K").
func parseBenchLine(line string) (benchResult, bool) {
	m := benchLine.FindStringSubmatch(strings.TrimSpace(line))
	if len(m) != 3 {
		return benchResult{}, false
	}
	nsOp, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return benchResult{}, false
	}

	parts := strings.Split(m[1], "/")
	res := benchResult{base: parts[0], nsOp: nsOp}
	var positional []string
	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(part, "=")
		switch {
		case ok && key == "system":
			res.system = value
		case ok && key == "size":
			res.size = value
		case !ok:
			positional = append(positional, part)
		}
	}
	if res.system == "" && len(positional) > 0 {
		res.system, positional = positional[0], positional[1:]
	}
	if res.size == "" && len(positional) > 0 {
		res.size = positional[0]
	}
	if res.system == "" || res.size == "" {
		return benchResult{}, false
	}
	return res, true
}

// LoadBench groups Go benchmark results into one dataset per top-level
// benchmark. Known systems keep their legend position; repeated runs are averaged.
func LoadBench(r io.Reader, opts BenchOptions) (*Report, error) {
	scale, ok := unitScale[opts.Unit]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported unit %q", benchchart.ErrInvalidDataset, opts.Unit)
	}

	type acc struct {
		sum   float64
		count int
	}
	var bases []string
	samples := make(map[string]map[string]map[string]*acc) // base -> system -> size

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		res, ok := parseBenchLine(scanner.Text())
		if !ok {
			continue
		}
		bySystem, seen := samples[res.base]
		if !seen {
			bySystem = make(map[string]map[string]*acc)
			samples[res.base] = bySystem
			bases = append(bases, res.base)
		}
		bySize, seen := bySystem[res.system]
		if !seen {
			bySize = make(map[string]*acc)
			bySystem[res.system] = bySize
		}
		a, seen := bySize[res.size]
		if !seen {
			a = &acc{}
			bySize[res.size] = a
		}
		a.sum += res.nsOp
		a.count++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w: no benchmark lines found", benchchart.ErrInvalidDataset)
	}

	report := &Report{Title: "Benchmark results"}
	for _, base := range bases {
		d := Dataset{
			Surface:           surfaceName(base),
			AxisType:          string(opts.AxisType),
			ValueAxisTitle:    "Execution time in " + scale.name,
			CategoryAxisTitle: opts.CategoryAxisTitle,
			Title:             base,
		}

		for _, style := range benchchart.DefaultStyles() {
			bySize, ok := samples[base][style.Label]
			if !ok {
				return nil, fmt.Errorf("%w: %s: no results for %s", benchchart.ErrInvalidDataset, base, style.Label)
			}
			series := make([]float64, 0, len(benchchart.CategoryLabels()))
			for _, size := range benchchart.CategoryLabels() {
				a, ok := bySize[size]
				if !ok {
					return nil, fmt.Errorf("%w: %s: no %s result for %s", benchchart.ErrInvalidDataset, base, size, style.Label)
				}
				series = append(series, a.sum/float64(a.count)/scale.divisor)
			}
			d.Data = append(d.Data, series)
		}
		report.Charts = append(report.Charts, d)
	}

	if err := report.Validate(); err != nil {
		return nil, err
	}
	return report, nil
}

// surfaceName turns a benchmark name like "Insert" or "Query_Indexed" into "insertChart" / "queryIndexedChart".
func surfaceName(base string) string {
	fields := strings.FieldsFunc(base, func(r rune) bool { return r == '_' || r == '-' || r == '.' })
	var sb strings.Builder
	for i, f := range fields {
		r, size := utf8.DecodeRuneInString(f)
		if i == 0 {
			r = unicode.ToLower(r)
		} else {
			r = unicode.ToUpper(r)
		}
		sb.WriteRune(r)
		sb.WriteString(f[size:])
	}
	sb.WriteString("Chart")
	return sb.String()
}
