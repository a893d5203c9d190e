// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/xataio/perfdoc/pkg/report"
)

// MarkerPrefix starts every line that assigns the payload of one version.
const MarkerPrefix = "        reportMap["

// Line is one line of a transformed document. A replaced line carries the
// version whose payload was injected into it.
type Line struct {
	Text     string
	Version  string
	Replaced bool
}

// Marker is a marker line found in a document.
type Marker struct {
	// Number is the 1-based line number.
	Number  int
	Version string
	// Payload is the right-hand side of the assignment without the
	// terminating semicolon.
	Payload string
}

// Transform splits content into lines, trims trailing whitespace from each of
// them and replaces the payload on every marker line whose version is in m.
// Marker lines for versions missing from m are kept as they are.
func Transform(content string, m *report.Map) ([]Line, error) {
	payloads := make(map[string]string)

	raw := strings.Split(content, "\n")
	lines := make([]Line, 0, len(raw))
	for _, text := range raw {
		line := Line{Text: strings.TrimRightFunc(text, unicode.IsSpace)}

		version, ok := markerVersion(line.Text)
		if !ok {
			lines = append(lines, line)
			continue
		}
		line.Version = version

		metrics, ok := m.Metrics(version)
		if !ok {
			lines = append(lines, line)
			continue
		}

		payload, ok := payloads[version]
		if !ok {
			data, err := metrics.MarshalJSON()
			if err != nil {
				return nil, fmt.Errorf("serializing version %q: %w", version, err)
			}
			payload = string(data)
			payloads[version] = payload
		}

		line.Text = AssignmentLine(version, payload)
		line.Replaced = true
		lines = append(lines, line)
	}
	return lines, nil
}

// Render joins lines back into a document.
func Render(lines []Line) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

// AssignmentLine builds the marker line assigning payload to version.
func AssignmentLine(version, payload string) string {
	return fmt.Sprintf("%s'%s'] = %s;", MarkerPrefix, version, payload)
}

// Markers returns every marker line of content.
func Markers(content string) []Marker {
	var markers []Marker
	for i, text := range strings.Split(content, "\n") {
		text = strings.TrimRightFunc(text, unicode.IsSpace)
		version, ok := markerVersion(text)
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			Number:  i + 1,
			Version: version,
			Payload: markerPayload(text),
		})
	}
	return markers
}

// markerVersion returns the version quoted on a marker line: the text between
// the first two single quotes.
func markerVersion(line string) (string, bool) {
	if !strings.HasPrefix(line, MarkerPrefix) {
		return "", false
	}
	start := strings.IndexByte(line, '\'')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(line[start+1:], '\'')
	if end < 0 {
		return "", false
	}
	return line[start+1 : start+1+end], true
}

func markerPayload(line string) string {
	_, rhs, ok := strings.Cut(line, "] =")
	if !ok {
		return ""
	}
	// Anything after the terminating semicolon, such as a comment, is not
	// part of the payload.
	rhs, _, _ = strings.Cut(rhs, ";")
	return strings.TrimSpace(rhs)
}
