// SPDX-License-Identifier: Apache-2.0

package jsonschema

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "https://github.com/xataio/perfdoc/payload.schema.json"

//go:embed payload.schema.json
var payloadSchema []byte

var compile = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(payloadSchema))
	if err != nil {
		return nil, fmt.Errorf("parsing payload schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding payload schema: %w", err)
	}
	return c.Compile(schemaURL)
})

// ValidationError is returned when the payload of a version is not valid
// JSON or does not match the payload schema.
type ValidationError struct {
	Version string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid payload for version %q: %s", e.Version, e.Err)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the serialized payload of version against the payload
// schema.
func Validate(version string, payload []byte) error {
	sch, err := compile()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return ValidationError{Version: version, Err: err}
	}

	if err := sch.Validate(inst); err != nil {
		return ValidationError{Version: version, Err: err}
	}
	return nil
}
