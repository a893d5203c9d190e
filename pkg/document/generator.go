// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"os"

	"github.com/xataio/perfdoc/internal/jsonschema"
	"github.com/xataio/perfdoc/pkg/report"
)

type Status int

const (
	// StatusSkipped means the document already matched the results.
	StatusSkipped Status = iota
	// StatusUpdated means the document was rewritten.
	StatusUpdated
	// StatusStale means the document differs from the results but was not
	// written because the generator runs in check mode.
	StatusStale
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusUpdated:
		return "updated"
	case StatusStale:
		return "stale"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result describes the outcome of a generation.
type Result struct {
	Path   string
	Status Status
	// Replaced lists the versions whose payload was injected, in document
	// order.
	Replaced []string
	// Preserved lists the versions that have a marker line but no collected
	// results. Their lines are left untouched.
	Preserved []string
}

// Generator injects collected results into an HTML document.
type Generator struct {
	check  bool
	logger Logger
}

type OptionFn func(*Generator)

func NewGenerator(opts ...OptionFn) *Generator {
	g := &Generator{
		logger: NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithCheck makes the generator report a stale document instead of
// rewriting it.
func WithCheck(check bool) OptionFn {
	return func(g *Generator) {
		g.check = check
	}
}

func WithLogger(l Logger) OptionFn {
	return func(g *Generator) {
		g.logger = l
	}
}

// Generate rewrites the marker lines of the document at path with the
// payloads in m. The file is only written when its content changes.
func (g *Generator) Generate(path string, m *report.Map) (Result, error) {
	result := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return result, fmt.Errorf("reading document: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("reading document: %w", err)
	}
	original := string(data)

	if err := validate(m); err != nil {
		return result, err
	}

	lines, err := Transform(original, m)
	if err != nil {
		return result, err
	}

	for _, l := range lines {
		switch {
		case l.Replaced:
			result.Replaced = append(result.Replaced, l.Version)
			g.logger.LogVersionReplaced(l.Version)
		case l.Version != "":
			result.Preserved = append(result.Preserved, l.Version)
			g.logger.LogVersionPreserved(l.Version)
		}
	}

	content := Render(lines)
	if content == original {
		result.Status = StatusSkipped
		g.logger.LogDocumentSkipped(path)
		return result, nil
	}

	if g.check {
		result.Status = StatusStale
		return result, StaleError{Path: path}
	}

	if err := os.WriteFile(path, []byte(content), info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("writing document: %w", err)
	}
	result.Status = StatusUpdated
	g.logger.LogDocumentGenerated(path)

	return result, nil
}

// validate checks every payload that may be injected before anything is
// written.
func validate(m *report.Map) error {
	for _, version := range m.Versions() {
		metrics, _ := m.Metrics(version)
		payload, err := metrics.MarshalJSON()
		if err != nil {
			return fmt.Errorf("serializing version %q: %w", version, err)
		}
		if err := jsonschema.Validate(version, payload); err != nil {
			return err
		}
	}
	return nil
}
