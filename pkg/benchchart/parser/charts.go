package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":      "Line",
	"line3DChart":    "3DLine",
	"barChart":       "Bar",
	"bar3DChart":     "3DBar",
	"areaChart":      "Area",
	"area3DChart":    "3DArea",
	"pieChart":       "Pie",
	"pie3DChart":     "3DPie",
	"doughnutChart":  "Doughnut",
	"scatterChart":   "XYScatter",
	"bubbleChart":    "Bubble",
	"radarChart":     "Radar",
	"surfaceChart":   "Surface",
	"surface3DChart": "3DSurface",
	"stockChart":     "Stock",
	"ofPieChart":     "PieOfPie",
}

// ExtractCharts extracts chart metadata from an xlsx file. Charts are ordered
// by sheet name, then by anchor cell (row first) and offset.
func ExtractCharts(xlsxPath string) ([]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pkg := newPackage(&r.Reader)
	sheets, err := sheetParts(pkg)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	result := []models.Chart{}
	for _, name := range names {
		refs, err := sheetChartRefs(pkg, sheets[name])
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		for _, ref := range refs {
			var space chartSpaceXML
			if err := pkg.decode(ref.part, &space); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("sheet %q: %w", name, err)
			}
			chart := space.toModel()
			chart.Sheet = name
			chart.Name = ref.name
			chart.Anchor = ref.anchor
			chart.L, chart.T = ref.left, ref.top
			result = append(result, chart)
		}
	}

	return result, nil
}

// sheetParts maps sheet names to worksheet part paths.
func sheetParts(pkg opcPackage) (map[string]string, error) {
	const workbook = "xl/workbook.xml"

	var wb workbookPart
	if err := pkg.decode(workbook, &wb); err != nil {
		return nil, err
	}
	rels, err := pkg.relationships(workbook)
	if err != nil {
		return nil, err
	}

	targets := rels.byID("worksheet")
	parts := make(map[string]string, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		if rel, ok := targets[sheet.RID]; ok {
			parts[sheet.Name] = resolvePart(workbook, rel.Target)
		}
	}
	return parts, nil
}

// chartRef locates one chart part and where it sits on the sheet.
type chartRef struct {
	part     string
	name     string
	anchor   string
	row, col int
	left     int
	top      int
}

// sheetChartRefs lists the charts drawn on the worksheet part sheet.
func sheetChartRefs(pkg opcPackage, sheet string) ([]chartRef, error) {
	sheetRels, err := pkg.relationships(sheet)
	if err != nil {
		return nil, err
	}

	var refs []chartRef
	for _, dr := range sheetRels.ofType("drawing") {
		drawing := resolvePart(sheet, dr.Target)

		var wsDr drawingPart
		if err := pkg.decode(drawing, &wsDr); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		rels, err := pkg.relationships(drawing)
		if err != nil {
			return nil, err
		}
		charts := rels.byID("chart")

		for _, a := range wsDr.anchors() {
			if a.Frame == nil {
				continue
			}
			rel, ok := charts[a.Frame.Chart.RID]
			if !ok {
				continue
			}
			ref := chartRef{
				part: resolvePart(drawing, rel.Target),
				name: a.Frame.NvPr.CNvPr.Name,
				left: EMUToPixels(a.Frame.Xfrm.Off.X),
				top:  EMUToPixels(a.Frame.Xfrm.Off.Y),
				row:  -1,
			}
			if a.From != nil {
				ref.row, ref.col = a.From.Row, a.From.Col
				ref.anchor, _ = excelize.CoordinatesToCellName(a.From.Col+1, a.From.Row+1)
			}
			refs = append(refs, ref)
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		a, b := refs[i], refs[j]
		if a.row != b.row {
			return a.row < b.row
		}
		if a.col != b.col {
			return a.col < b.col
		}
		if a.top != b.top {
			return a.top < b.top
		}
		if a.left != b.left {
			return a.left < b.left
		}
		return a.part < b.part
	})
	return refs, nil
}

// drawingPart is the subset of xl/drawings/drawingN.xml used to find charts.
type drawingPart struct {
	TwoCell  []anchorXML `xml:"twoCellAnchor"`
	OneCell  []anchorXML `xml:"oneCellAnchor"`
	Absolute []anchorXML `xml:"absoluteAnchor"`
}

func (d drawingPart) anchors() []anchorXML {
	all := make([]anchorXML, 0, len(d.TwoCell)+len(d.OneCell)+len(d.Absolute))
	all = append(all, d.TwoCell...)
	all = append(all, d.OneCell...)
	return append(all, d.Absolute...)
}

type anchorXML struct {
	From *struct {
		Col int `xml:"col"`
		Row int `xml:"row"`
	} `xml:"from"`
	Frame *graphicFrameXML `xml:"graphicFrame"`
}

type graphicFrameXML struct {
	NvPr struct {
		CNvPr struct {
			Name string `xml:"name,attr"`
		} `xml:"cNvPr"`
	} `xml:"nvGraphicFramePr"`
	Xfrm struct {
		Off struct {
			X int64 `xml:"x,attr"`
			Y int64 `xml:"y,attr"`
		} `xml:"off"`
	} `xml:"xfrm"`
	Chart struct {
		RID string `xml:"id,attr"`
	} `xml:"graphic>graphicData>chart"`
}

// chartSpaceXML is the subset of xl/charts/chartN.xml that models.Chart reports.
type chartSpaceXML struct {
	Chart struct {
		Title    *titleXML `xml:"title"`
		PlotArea struct {
			ValAx  []axisXML       `xml:"valAx"`
			Groups []chartGroupXML `xml:",any"`
		} `xml:"plotArea"`
	} `xml:"chart"`
}

// chartGroupXML is any plot area child; only those in ChartTypeMap are charts.
type chartGroupXML struct {
	XMLName xml.Name
	Series  []seriesXML `xml:"ser"`
}

type titleXML struct {
	Tx textXML `xml:"tx"`
}

// textXML holds rich text, a cell reference with its cache, or a literal.
type textXML struct {
	Rich *struct {
		Paragraphs []struct {
			Runs []struct {
				T string `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"rich"`
	StrRef *strRefXML `xml:"strRef"`
	V      string     `xml:"v"`
}

func (t textXML) text() string {
	switch {
	case t.Rich != nil:
		var b strings.Builder
		for _, p := range t.Rich.Paragraphs {
			for _, r := range p.Runs {
				b.WriteString(r.T)
			}
		}
		return b.String()
	case t.StrRef != nil:
		if len(t.StrRef.Cache.Points) > 0 {
			return t.StrRef.Cache.Points[0].V
		}
		return ""
	default:
		return t.V
	}
}

type strRefXML struct {
	F     string `xml:"f"`
	Cache struct {
		Points []struct {
			V string `xml:"v"`
		} `xml:"pt"`
	} `xml:"strCache"`
}

// refXML is a data source given as a numeric or string reference.
type refXML struct {
	NumRef *struct {
		F string `xml:"f"`
	} `xml:"numRef"`
	StrRef *strRefXML `xml:"strRef"`
}

func (r *refXML) formula() string {
	switch {
	case r == nil:
		return ""
	case r.NumRef != nil:
		return r.NumRef.F
	case r.StrRef != nil:
		return r.StrRef.F
	}
	return ""
}

type seriesXML struct {
	Tx   *textXML `xml:"tx"`
	Cat  *refXML  `xml:"cat"`
	Val  *refXML  `xml:"val"`
	XVal *refXML  `xml:"xVal"`
	YVal *refXML  `xml:"yVal"`
}

func (s seriesXML) toModel() models.ChartSeries {
	var out models.ChartSeries
	if s.Tx != nil {
		out.Name = s.Tx.text()
		if s.Tx.StrRef != nil {
			out.NameRange = s.Tx.StrRef.F
		}
	}
	out.XRange = s.Cat.formula()
	if out.XRange == "" {
		out.XRange = s.XVal.formula()
	}
	out.YRange = s.Val.formula()
	if out.YRange == "" {
		out.YRange = s.YVal.formula()
	}
	return out
}

type valXML struct {
	Val string `xml:"val,attr"`
}

func (v *valXML) float() (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.Val, 64)
	return f, err == nil
}

type axisXML struct {
	AxPos   *valXML   `xml:"axPos"`
	Title   *titleXML `xml:"title"`
	Scaling struct {
		LogBase *valXML `xml:"logBase"`
		Min     *valXML `xml:"min"`
		Max     *valXML `xml:"max"`
	} `xml:"scaling"`
}

// valueAxis picks the vertical value axis, falling back to the first one.
func (c chartSpaceXML) valueAxis() *axisXML {
	axes := c.Chart.PlotArea.ValAx
	for i := range axes {
		if axes[i].AxPos != nil && (axes[i].AxPos.Val == "l" || axes[i].AxPos.Val == "r") {
			return &axes[i]
		}
	}
	if len(axes) > 0 {
		return &axes[0]
	}
	return nil
}

func (c chartSpaceXML) toModel() models.Chart {
	chart := models.Chart{ChartType: "unknown", Series: []models.ChartSeries{}}
	if c.Chart.Title != nil {
		chart.Title = c.Chart.Title.Tx.text()
	}

	typed := false
	for _, g := range c.Chart.PlotArea.Groups {
		ct, ok := ChartTypeMap[g.XMLName.Local]
		if !ok {
			continue
		}
		if !typed {
			chart.ChartType = ct
			typed = true
		}
		for _, s := range g.Series {
			chart.Series = append(chart.Series, s.toModel())
		}
	}

	if ax := c.valueAxis(); ax != nil {
		if ax.Title != nil {
			chart.YAxisTitle = ax.Title.Tx.text()
		}
		if base, ok := ax.Scaling.LogBase.float(); ok {
			chart.YAxisLogBase = base
		}
		lo, okLo := ax.Scaling.Min.float()
		hi, okHi := ax.Scaling.Max.float()
		if okLo && okHi {
			chart.YAxisRange = []float64{lo, hi}
		}
	}
	return chart
}
