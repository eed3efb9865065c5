package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/parser"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/render/xlsx"
)

// LoadWorkbook reads one dataset per sheet from a workbook laid out the way
// the xlsx engine writes it. Series are taken positionally from the header
// row; sheets without a header are skipped.
func LoadWorkbook(path string) (*Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report := &Report{Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		d, ok, err := datasetFromRows(sheetName, rows)
		if err != nil {
			return nil, err
		}
		if ok {
			report.Charts = append(report.Charts, d)
		}
	}

	if err := report.Validate(); err != nil {
		return nil, err
	}
	return report, nil
}

func datasetFromRows(sheetName string, rows []parser.Row) (Dataset, bool, error) {
	if len(rows) == 0 || rows[0].R != 1 {
		return Dataset{}, false, nil
	}
	header := rows[0]

	// Series columns run from B until the first blank header cell.
	seriesCols := 0
	for col := 1; col < xlsx.MetaKeyColumn-1 && header.String(col) != ""; col++ {
		seriesCols++
	}
	// Trailing series without any samples are dropped.
	for seriesCols > 0 && blankColumn(rows, seriesCols) {
		seriesCols--
	}
	if seriesCols == 0 {
		return Dataset{}, false, nil
	}

	d := Dataset{
		Surface:           sheetName,
		CategoryAxisTitle: header.String(0),
		Data:              make([][]float64, seriesCols),
	}

	for _, row := range rows {
		switch row.String(xlsx.MetaKeyColumn - 1) {
		case xlsx.MetaTitle:
			d.Title = row.String(xlsx.MetaKeyColumn)
		case xlsx.MetaValueAxisTitle:
			d.ValueAxisTitle = row.String(xlsx.MetaKeyColumn)
		case xlsx.MetaAxisType:
			d.AxisType = row.String(xlsx.MetaKeyColumn)
		}

		if row.R == 1 || row.String(0) == "" {
			continue
		}
		for s := 0; s < seriesCols; s++ {
			v, ok := row.Float(s + 1)
			if !ok {
				return Dataset{}, false, fmt.Errorf("%w: %s: row %d column %d is not numeric",
					benchchart.ErrInvalidDataset, sheetName, row.R, s+2)
			}
			d.Data[s] = append(d.Data[s], v)
		}
	}

	return d, true, nil
}

// blankColumn reports whether column col holds no value below the header row.
func blankColumn(rows []parser.Row, col int) bool {
	for _, row := range rows {
		if row.R != 1 && row.String(0) != "" && row.String(col) != "" {
			return false
		}
	}
	return true
}
