// Package output serializes charts and chart metadata to JSON.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/benchchart-go/pkg/benchchart"
	"github.com/ukaji3/benchchart-go/pkg/benchchart/models"
)

// ToJSON marshals v, indenting when pretty is set. HTML characters are left
// unescaped so titles survive intact.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// SurfaceConfig pairs a surface id with the configuration drawn on it.
type SurfaceConfig struct {
	Surface string        `json:"surface"`
	Config  models.Config `json:"config"`
}

// ConfigsToJSON serializes drawn charts in draw order.
func ConfigsToJSON(charts []*benchchart.Chart, pretty bool) ([]byte, error) {
	out := make([]SurfaceConfig, 0, len(charts))
	for _, c := range charts {
		out = append(out, SurfaceConfig{Surface: c.SurfaceID, Config: c.Config})
	}
	return ToJSON(out, pretty)
}

// ChartsToJSON serializes chart metadata extracted from a workbook.
func ChartsToJSON(charts []models.Chart, pretty bool) ([]byte, error) {
	if charts == nil {
		charts = []models.Chart{}
	}
	return ToJSON(charts, pretty)
}
