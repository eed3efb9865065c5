package xlsx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/parser"
)

var insertionData = [][]float64{
	{13715.26422, 133053.05744, 1351278.91231},
	{503.276519, 2882.789454, 7001.234535},
	{851.469728, 2299.92175, 5901.234535},
}

var queryData = [][]float64{
	{62.566438, 344.492521, 490.123},
	{104.443381, 95.701976, 102.234461},
	{22.049357, 22.313238, 23.112649},
}

func drawBoth(t *testing.T, w *Workbook) {
	t.Helper()
	_, err := benchchart.CreateBarChart(w, "insertionChart", insertionData, benchchart.AxisLinear,
		"Execution time in milliseconds", "Sample size", "Data Insertion Performance")
	require.NoError(t, err)
	_, err = benchchart.CreateBarChart(w, "queryChart1", queryData, benchchart.AxisLogarithmic,
		"Execution time in microseconds", "Sample size", "Basic indexed query")
	require.NoError(t, err)
}

func TestWorkbookTable(t *testing.T) {
	w := NewWorkbook()
	defer w.Close()
	drawBoth(t, w)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"insertionChart", "queryChart1"}, f.GetSheetList())

	rows, err := f.GetRows("insertionChart")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, []string{"Sample size", "datahike", "datomic", "datascript", "", MetaTitle, "Data Insertion Performance"}, rows[0])
	assert.Equal(t, "10K", rows[1][0])
	assert.Equal(t, "1M", rows[3][0])

	axisType, err := f.GetCellValue("queryChart1", "G3")
	require.NoError(t, err)
	assert.Equal(t, "logarithmic", axisType)
}

func TestWorkbookChartsRoundTrip(t *testing.T) {
	w := NewWorkbook()
	defer w.Close()
	drawBoth(t, w)

	path := filepath.Join(t.TempDir(), "bench.xlsx")
	require.NoError(t, w.Save(path))

	charts, err := parser.ExtractCharts(path)
	require.NoError(t, err)
	require.Len(t, charts, 2)

	insertion := charts[0]
	assert.Equal(t, "insertionChart", insertion.Sheet)
	assert.Equal(t, "Line", insertion.ChartType)
	assert.Equal(t, "I2", insertion.Anchor)
	assert.Equal(t, "Data Insertion Performance", insertion.Title)
	assert.Equal(t, "Execution time in milliseconds", insertion.YAxisTitle)
	require.Len(t, insertion.Series, 3)
	assert.Equal(t, "'insertionChart'!$B$1", insertion.Series[0].NameRange)
	assert.Equal(t, "'insertionChart'!$B$2:$B$4", insertion.Series[0].YRange)

	query := charts[1]
	assert.Equal(t, "queryChart1", query.Sheet)
	assert.Equal(t, float64(10), query.YAxisLogBase)
}

func TestWorkbookDefaultSheetSurface(t *testing.T) {
	w := NewWorkbook()
	defer w.Close()

	_, err := benchchart.CreateBarChart(w, "Sheet1", insertionData, benchchart.AxisLinear, "", "", "")
	require.NoError(t, err)
	_, err = benchchart.CreateBarChart(w, "Sheet1", insertionData, benchchart.AxisLinear, "", "", "")
	assert.ErrorIs(t, err, benchchart.ErrSurfaceInUse)
}

func TestNewChartRanges(t *testing.T) {
	cfg := benchchart.BuildConfig(benchchart.NewSpec("s", insertionData, benchchart.AxisLinear, "y", "x", "t"))
	chart := NewChart("s", cfg, 3)

	assert.Equal(t, excelize.Line, chart.Type)
	require.Len(t, chart.Series, 3)
	assert.Equal(t, "'s'!$D$1", chart.Series[2].Name)
	assert.Equal(t, "'s'!$A$2:$A$4", chart.Series[2].Categories)
	assert.Equal(t, "'s'!$D$2:$D$4", chart.Series[2].Values)
	assert.Equal(t, []string{"9966FF"}, chart.Series[2].Fill.Color)
	assert.Equal(t, float64(0), chart.YAxis.LogBase)
}

func TestWorkbookSkipsEmptySeries(t *testing.T) {
	w := NewWorkbook()
	defer w.Close()

	_, err := benchchart.CreateBarChart(w, "insertionChart", insertionData[:2], benchchart.AxisLinear,
		"Execution time in milliseconds", "Sample size", "Data Insertion Performance")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("insertionChart")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sample size", "datahike", "datomic", "", "", MetaTitle, "Data Insertion Performance"}, rows[0])

	cfg := benchchart.BuildConfig(benchchart.NewSpec("s", insertionData[:2], benchchart.AxisLinear, "y", "x", "t"))
	chart := NewChart("s", cfg, 3)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "'s'!$C$2:$C$4", chart.Series[1].Values)
}

func TestQuoteSheet(t *testing.T) {
	assert.Equal(t, "'queryChart1'", quoteSheet("queryChart1"))
	assert.Equal(t, "'Bob''s run'", quoteSheet("Bob's run"))

	cfg := benchchart.BuildConfig(benchchart.NewSpec("Bob's run", insertionData, benchchart.AxisLinear, "y", "x", "t"))
	chart := NewChart("Bob's run", cfg, 3)
	assert.Equal(t, "'Bob''s run'!$B$1", chart.Series[0].Name)
}
