package dataset

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes and validates a report.
func LoadYAML(r io.Reader) (*Report, error) {
	var report Report
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}
	return &report, nil
}

// WriteYAML encodes a report.
func WriteYAML(w io.Writer, report Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
