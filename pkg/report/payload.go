// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Payload is the decoded form of a serialized Metrics value: metric name to
// kind to value.
type Payload map[string]map[string]string

// MarshalJSON encodes the metrics as a compact JSON object, keeping the order
// in which metric names and kinds were first added.
func (mt *Metrics) MarshalJSON() ([]byte, error) {
	return encode(mt.encode)
}

// MarshalJSON encodes the whole map as a compact JSON object keyed by
// version.
func (m *Map) MarshalJSON() ([]byte, error) {
	return encode(func(enc *jsontext.Encoder) error {
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, version := range m.versions.keys {
			if err := enc.WriteToken(jsontext.String(version)); err != nil {
				return err
			}
			if err := m.versions.values[version].encode(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	})
}

func (mt *Metrics) encode(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, name := range mt.names.keys {
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		measurements := mt.names.values[name]
		for _, kind := range measurements.kinds.keys {
			if err := enc.WriteToken(jsontext.String(string(kind))); err != nil {
				return err
			}
			if err := enc.WriteToken(jsontext.String(measurements.kinds.values[kind])); err != nil {
				return err
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

func encode(fn func(*jsontext.Encoder) error) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := fn(enc); err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	// The encoder terminates every top-level value with a newline.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DecodePayload parses a serialized Metrics value.
func DecodePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return p, nil
}
