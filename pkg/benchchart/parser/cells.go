// Package parser reads benchmark tables and chart metadata out of xlsx files.
package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Row is one non-empty sheet row.
type Row struct {
	// R is the row index (1-based).
	R int
	// Values holds the parsed cell values; empty cells are nil.
	Values []interface{}
}

// ExtractCells extracts cell data from a sheet.
// It returns a slice of Row containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]Row, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []Row
	for rowIdx, row := range rows {
		values := make([]interface{}, len(row))
		hasData := false

		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			hasData = true
			values[colIdx] = parseValue(cellValue)
		}

		if hasData {
			result = append(result, Row{R: rowIdx + 1, Values: values})
		}
	}

	return result, nil
}

// Float returns the value at col as a float64.
func (r Row) Float(col int) (float64, bool) {
	if col < 0 || col >= len(r.Values) {
		return 0, false
	}
	switch v := r.Values[col].(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// String returns the value at col formatted as text; empty cells yield "".
func (r Row) String(col int) string {
	if col < 0 || col >= len(r.Values) || r.Values[col] == nil {
		return ""
	}
	switch v := r.Values[col].(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
