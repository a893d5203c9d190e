// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

type Format int

const (
	InvalidFormat Format = iota
	JSONFormat
	YAMLFormat
)

// ParseFormat returns the Format named by s ("json" or "yaml").
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return JSONFormat, nil
	case "yaml", "yml":
		return YAMLFormat, nil
	}
	return InvalidFormat, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	}
	return "invalid"
}

// Writer is responsible for writing a Map to the configured io.Writer in
// either JSON or YAML.
type Writer struct {
	writer io.Writer
	format Format
}

func NewWriter(w io.Writer, f Format) *Writer {
	return &Writer{
		writer: w,
		format: f,
	}
}

func (w *Writer) Write(m *Map) error {
	switch w.format {
	case JSONFormat:
		enc := json.NewEncoder(w.writer)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode json results: %w", err)
		}
	case YAMLFormat:
		yml, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("encode yaml results: %w", err)
		}
		if _, err := w.writer.Write(yml); err != nil {
			return fmt.Errorf("write yaml results: %w", err)
		}
	default:
		return ErrInvalidFormat
	}
	return nil
}
