package parser

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestResolvePart(t *testing.T) {
	tests := []struct {
		source   string
		target   string
		expected string
	}{
		{"xl/worksheets/sheet1.xml", "../drawings/drawing1.xml", "xl/drawings/drawing1.xml"},
		{"xl/drawings/drawing1.xml", "../charts/chart1.xml", "xl/charts/chart1.xml"},
		{"xl/workbook.xml", "worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"xl/workbook.xml", "/xl/worksheets/sheet2.xml", "xl/worksheets/sheet2.xml"},
	}

	for _, tt := range tests {
		result := resolvePart(tt.source, tt.target)
		if result != tt.expected {
			t.Errorf("resolvePart(%q, %q) = %q, expected %q",
				tt.source, tt.target, result, tt.expected)
		}
	}
}

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		part     string
		expected string
	}{
		{"xl/workbook.xml", "xl/_rels/workbook.xml.rels"},
		{"xl/worksheets/sheet1.xml", "xl/worksheets/_rels/sheet1.xml.rels"},
		{"xl/drawings/drawing2.xml", "xl/drawings/_rels/drawing2.xml.rels"},
	}

	for _, tt := range tests {
		if result := relsPathFor(tt.part); result != tt.expected {
			t.Errorf("relsPathFor(%q) = %q, expected %q", tt.part, result, tt.expected)
		}
	}
}

func TestSheetParts(t *testing.T) {
	pkg := opcPackage{fsys: fstest.MapFS{
		"xl/workbook.xml": {Data: []byte(`<workbook xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets><sheet name="insertionChart" sheetId="1" r:id="rId1"/><sheet name="queryChart1" sheetId="2" r:id="rId2"/></sheets>
</workbook>`)},
		"xl/_rels/workbook.xml.rels": {Data: []byte(`<Relationships>
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet2.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`)},
	}}

	parts, err := sheetParts(pkg)
	if err != nil {
		t.Fatalf("sheetParts failed: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("Expected 2 sheets, got %v", parts)
	}
	if parts["insertionChart"] != "xl/worksheets/sheet1.xml" || parts["queryChart1"] != "xl/worksheets/sheet2.xml" {
		t.Errorf("Unexpected sheet parts %v", parts)
	}
}

func TestRelationshipsMissingPart(t *testing.T) {
	pkg := opcPackage{fsys: fstest.MapFS{}}

	rels, err := pkg.relationships("xl/worksheets/sheet1.xml")
	if err != nil {
		t.Fatalf("Expected no error for missing rels, got %v", err)
	}
	if len(rels.Items) != 0 {
		t.Errorf("Expected no relationships, got %v", rels.Items)
	}

	var wb workbookPart
	if err := pkg.decode("xl/workbook.xml", &wb); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestRelationshipsOfType(t *testing.T) {
	rels := relationships{Items: []relationship{
		{ID: "rId1", Type: "http://schemas.microsoft.com/office/2011/relationships/drawingml", Target: "../x.xml"},
		{ID: "rId2", Type: "http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing", Target: "../drawings/drawing1.xml"},
		{ID: "rId3", Type: "http://schemas.openxmlformats.org/officeDocument/2006/relationships/Chart", Target: "../charts/chart1.xml"},
	}}

	drawings := rels.ofType("drawing")
	if len(drawings) != 1 || drawings[0].Target != "../drawings/drawing1.xml" {
		t.Errorf("Unexpected drawings %v", drawings)
	}
	if charts := rels.byID("chart"); len(charts) != 1 || charts["rId3"].Target != "../charts/chart1.xml" {
		t.Errorf("Unexpected charts %v", charts)
	}
}
