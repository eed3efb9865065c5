package gochart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render/plotimg"
)

var queryData = [][]float64{
	{62.566438, 344.492521, 490.123},
	{104.443381, 95.701976, 102.234461},
	{22.049357, 22.313238, 23.112649},
}

func TestNewChartLinear(t *testing.T) {
	cfg := benchchart.BuildConfig(benchchart.NewSpec("queryChart1", queryData, benchchart.AxisLinear,
		"Execution time in microseconds", "Sample size", "Basic indexed query"))

	ch, err := NewChart(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Basic indexed query", ch.Title)
	assert.Equal(t, "Sample size", ch.XAxis.Name)
	assert.Equal(t, "Execution time in microseconds", ch.YAxis.Name)
	require.Len(t, ch.Series, 3)
	assert.Len(t, ch.Elements, 1)

	labels := make([]string, 0, len(ch.XAxis.Ticks))
	for _, tick := range ch.XAxis.Ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"10K", "100K", "1M"}, labels)

	first := ch.Series[0].(chart.ContinuousSeries)
	assert.Equal(t, "datahike", first.Name)
	assert.Equal(t, queryData[0], first.YValues)
	assert.Equal(t, []float64{0, 1, 2}, first.XValues)
}

func TestNewChartLogarithmic(t *testing.T) {
	cfg := benchchart.BuildConfig(benchchart.NewSpec("queryChart1", queryData, benchchart.AxisLogarithmic, "", "", ""))

	ch, err := NewChart(cfg)
	require.NoError(t, err)

	// Samples span 22..490, so decades 10, 100 and 1000 are labelled.
	var labels []string
	for _, tick := range ch.YAxis.Ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"10", "100", "1000"}, labels)

	third := ch.Series[2].(chart.ContinuousSeries)
	assert.InDelta(t, 1.3434, third.YValues[0], 1e-3)
}

func TestNewChartErrors(t *testing.T) {
	cfg := benchchart.BuildConfig(benchchart.NewSpec("c", [][]float64{{0, 1, 2}}, benchchart.AxisLogarithmic, "", "", ""))
	_, err := NewChart(cfg)
	assert.ErrorIs(t, err, plotimg.ErrNonPositive)

	cfg = benchchart.BuildConfig(benchchart.NewSpec("c", nil, benchchart.AxisLinear, "", "", ""))
	_, err = NewChart(cfg)
	assert.ErrorIs(t, err, ErrNoSeries)
}

func TestDrawingColor(t *testing.T) {
	c, err := drawingColor("rgba(75, 192, 192, 0.2)")
	require.NoError(t, err)
	assert.Equal(t, uint8(51), c.A)
	assert.InDelta(t, 75, int(c.R), 3)
	assert.InDelta(t, 192, int(c.G), 3)

	c, err = drawingColor("rgba(255, 99, 132)")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), c.A)
	assert.Equal(t, uint8(99), c.G)

	c, err = drawingColor("rgba(255, 255, 255, 0)")
	require.NoError(t, err)
	assert.Equal(t, drawing.ColorTransparent, c)
	assert.False(t, c.IsZero())

	_, err = drawingColor("teal")
	assert.Error(t, err)
}

func TestRenderFormats(t *testing.T) {
	cfg := benchchart.BuildConfig(benchchart.NewSpec("queryChart1", queryData, benchchart.AxisLinear, "", "", "q"))
	ch, err := NewChart(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(ch, "svg", &buf))
	assert.Contains(t, buf.String(), "<svg")

	assert.ErrorIs(t, Render(ch, "gif", &buf), benchchart.ErrUnknownFormat)
}

func TestRendererWritesImages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r := NewRenderer(dir, "png", "queryChart1")

	cfg := benchchart.BuildConfig(benchchart.NewSpec("queryChart1", queryData, benchchart.AxisLinear, "", "", "q"))
	drawn, err := r.Draw("queryChart1", cfg)
	require.NoError(t, err)
	assert.Equal(t, EngineName, drawn.Engine)

	files := r.Files()
	require.Equal(t, []string{filepath.Join(dir, "queryChart1.png")}, files)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])

	_, err = r.Draw("insertionChart", cfg)
	assert.ErrorIs(t, err, benchchart.ErrUnknownSurface)
	_, err = r.Draw("queryChart1", cfg)
	assert.ErrorIs(t, err, benchchart.ErrSurfaceInUse)
	assert.Len(t, r.Charts(), 1)
}
