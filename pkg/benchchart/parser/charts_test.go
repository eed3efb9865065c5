package parser

import (
	"encoding/xml"
	"testing"
	"testing/fstest"
)

const sampleChartXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
<c:chart>
<c:title><c:tx><c:rich><a:p><a:r><a:t>Data Insertion </a:t></a:r><a:r><a:t>Performance</a:t></a:r></a:p></c:rich></c:tx></c:title>
<c:plotArea>
<c:layout/>
<c:lineChart>
<c:ser><c:idx val="0"/><c:tx><c:strRef><c:f>insertionChart!$B$1</c:f><c:strCache><c:pt idx="0"><c:v>datahike</c:v></c:pt></c:strCache></c:strRef></c:tx>
<c:cat><c:strRef><c:f>insertionChart!$A$2:$A$4</c:f></c:strRef></c:cat>
<c:val><c:numRef><c:f>insertionChart!$B$2:$B$4</c:f></c:numRef></c:val></c:ser>
<c:ser><c:idx val="1"/><c:tx><c:strRef><c:f>insertionChart!$C$1</c:f></c:strRef></c:tx>
<c:val><c:numRef><c:f>insertionChart!$C$2:$C$4</c:f></c:numRef></c:val></c:ser>
</c:lineChart>
<c:catAx><c:axId val="1"/><c:axPos val="b"/></c:catAx>
<c:valAx><c:axId val="2"/><c:scaling><c:logBase val="10"/><c:orientation val="minMax"/><c:max val="100"/><c:min val="1"/></c:scaling><c:axPos val="l"/>
<c:title><c:tx><c:rich><a:p><a:r><a:t>Execution time in milliseconds</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx>
</c:plotArea>
</c:chart>
</c:chartSpace>`

func decodeChart(t *testing.T, data string) chartSpaceXML {
	t.Helper()
	var space chartSpaceXML
	if err := xml.Unmarshal([]byte(data), &space); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	return space
}

func TestChartSpaceToModel(t *testing.T) {
	chart := decodeChart(t, sampleChartXML).toModel()

	if chart.ChartType != "Line" {
		t.Errorf("Expected chart type 'Line', got %q", chart.ChartType)
	}
	if chart.Title != "Data Insertion Performance" {
		t.Errorf("Unexpected title %q", chart.Title)
	}
	if chart.YAxisTitle != "Execution time in milliseconds" {
		t.Errorf("Unexpected value axis title %q", chart.YAxisTitle)
	}
	if chart.YAxisLogBase != 10 {
		t.Errorf("Expected log base 10, got %v", chart.YAxisLogBase)
	}
	if len(chart.YAxisRange) != 2 || chart.YAxisRange[0] != 1 || chart.YAxisRange[1] != 100 {
		t.Errorf("Unexpected axis range %v", chart.YAxisRange)
	}

	if len(chart.Series) != 2 {
		t.Fatalf("Expected 2 series, got %d", len(chart.Series))
	}
	first := chart.Series[0]
	if first.Name != "datahike" || first.NameRange != "insertionChart!$B$1" {
		t.Errorf("Unexpected first series name %+v", first)
	}
	if first.XRange != "insertionChart!$A$2:$A$4" || first.YRange != "insertionChart!$B$2:$B$4" {
		t.Errorf("Unexpected first series ranges %+v", first)
	}
	if chart.Series[1].Name != "" || chart.Series[1].XRange != "" {
		t.Errorf("Unexpected second series %+v", chart.Series[1])
	}
}

func TestChartSpaceUnknownType(t *testing.T) {
	chart := decodeChart(t, `<chartSpace><chart><plotArea><layout/></plotArea></chart></chartSpace>`).toModel()
	if chart.ChartType != "unknown" {
		t.Errorf("Expected 'unknown', got %q", chart.ChartType)
	}
	if chart.Series == nil || len(chart.Series) != 0 {
		t.Errorf("Expected empty series, got %v", chart.Series)
	}
}

func TestChartSpaceScatterAxes(t *testing.T) {
	chart := decodeChart(t, `<chartSpace><chart><plotArea>
<scatterChart><ser><tx><v>datomic</v></tx><xVal><numRef><f>s!$A$2:$A$4</f></numRef></xVal><yVal><numRef><f>s!$C$2:$C$4</f></numRef></yVal></ser></scatterChart>
<valAx><axPos val="b"/><title><tx><rich><p><r><t>Sample size</t></r></p></rich></tx></title></valAx>
<valAx><axPos val="l"/><title><tx><rich><p><r><t>Time</t></r></p></rich></tx></title></valAx>
</plotArea></chart></chartSpace>`).toModel()

	if chart.ChartType != "XYScatter" {
		t.Errorf("Expected 'XYScatter', got %q", chart.ChartType)
	}
	if chart.YAxisTitle != "Time" {
		t.Errorf("Expected the vertical axis title, got %q", chart.YAxisTitle)
	}
	if len(chart.YAxisRange) != 0 || chart.YAxisLogBase != 0 {
		t.Errorf("Expected no scaling, got %v / %v", chart.YAxisRange, chart.YAxisLogBase)
	}
	s := chart.Series[0]
	if s.Name != "datomic" || s.XRange != "s!$A$2:$A$4" || s.YRange != "s!$C$2:$C$4" {
		t.Errorf("Unexpected series %+v", s)
	}
}

func TestSheetChartRefs(t *testing.T) {
	pkg := opcPackage{fsys: fstest.MapFS{
		"xl/worksheets/_rels/sheet1.xml.rels": {Data: []byte(`<Relationships>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing" Target="../drawings/drawing1.xml"/>
</Relationships>`)},
		"xl/drawings/drawing1.xml": {Data: []byte(`<xdr:wsDr xmlns:xdr="http://schemas.openxmlformats.org/drawingml/2006/spreadsheetDrawing" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<xdr:twoCellAnchor><xdr:from><xdr:col>8</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>20</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
<xdr:graphicFrame><xdr:nvGraphicFramePr><xdr:cNvPr id="3" name="Chart 2"/></xdr:nvGraphicFramePr>
<xdr:xfrm><a:off x="0" y="0"/></xdr:xfrm>
<a:graphic><a:graphicData><c:chart r:id="rId2"/></a:graphicData></a:graphic></xdr:graphicFrame></xdr:twoCellAnchor>
<xdr:twoCellAnchor><xdr:from><xdr:col>8</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>1</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
<xdr:graphicFrame><xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="Chart 1"/></xdr:nvGraphicFramePr>
<xdr:xfrm><a:off x="95250" y="190500"/></xdr:xfrm>
<a:graphic><a:graphicData><c:chart r:id="rId1"/></a:graphicData></a:graphic></xdr:graphicFrame></xdr:twoCellAnchor>
<xdr:twoCellAnchor><xdr:sp/></xdr:twoCellAnchor>
</xdr:wsDr>`)},
		"xl/drawings/_rels/drawing1.xml.rels": {Data: []byte(`<Relationships>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart" Target="../charts/chart1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart" Target="../charts/chart2.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>
</Relationships>`)},
	}}

	refs, err := sheetChartRefs(pkg, "xl/worksheets/sheet1.xml")
	if err != nil {
		t.Fatalf("sheetChartRefs failed: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("Expected 2 charts, got %+v", refs)
	}

	first := refs[0]
	if first.part != "xl/charts/chart1.xml" || first.name != "Chart 1" || first.anchor != "I2" {
		t.Errorf("Unexpected first chart %+v", first)
	}
	if first.left != 10 || first.top != 20 {
		t.Errorf("Unexpected offset %d,%d", first.left, first.top)
	}
	if refs[1].part != "xl/charts/chart2.xml" || refs[1].anchor != "I21" {
		t.Errorf("Unexpected second chart %+v", refs[1])
	}
}

func TestSheetChartRefsWithoutDrawing(t *testing.T) {
	refs, err := sheetChartRefs(opcPackage{fsys: fstest.MapFS{}}, "xl/worksheets/sheet1.xml")
	if err != nil {
		t.Fatalf("sheetChartRefs failed: %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("Expected no charts, got %+v", refs)
	}
}
