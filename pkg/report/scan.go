// SPDX-License-Identifier: Apache-2.0

package report

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// Only announcements starting with a digit count, so the first-match rule
	// skips a malformed "Javet version is ." and takes the next one.
	versionPattern = regexp.MustCompile(`Javet version is (\d[\d.]*)`)

	// Whitespace follows the JavaScript definition: besides ASCII spaces it
	// covers \v, every Unicode space separator and the BOM.
	metricPattern = regexp.MustCompile(`\[[\s\v\pZ\x{FEFF}]*(v8|node)\][\s\v\pZ\x{FEFF}]*(\w+): [\w\s\v\pZ\x{FEFF}.]* (\d+)\.`)
)

// Token is a recognized fragment of a report file: either a
// VersionAnnouncement or a MetricMeasurement.
type Token interface {
	isToken()
}

// VersionAnnouncement declares the library version the following
// measurements were produced with.
type VersionAnnouncement struct {
	Version string
}

// MetricMeasurement is a single "[kind] name: ... value." line.
type MetricMeasurement struct {
	Kind  Kind
	Name  string
	Value string
}

func (VersionAnnouncement) isToken() {}
func (MetricMeasurement) isToken()   {}

type positioned struct {
	offset int
	token  Token
}

// Scan returns every version announcement and metric measurement found in
// content, in the order they appear. Text matching neither pattern produces
// no token.
func Scan(content string) []Token {
	var found []positioned

	for _, loc := range versionPattern.FindAllStringSubmatchIndex(content, -1) {
		found = append(found, positioned{
			offset: loc[0],
			token:  VersionAnnouncement{Version: normalizeVersion(content[loc[2]:loc[3]])},
		})
	}

	// The filler between the colon and the value is greedy, so the value is
	// the last dot-terminated number of the match.
	for _, loc := range metricPattern.FindAllStringSubmatchIndex(content, -1) {
		found = append(found, positioned{
			offset: loc[0],
			token: MetricMeasurement{
				Kind:  Kind(content[loc[2]:loc[3]]),
				Name:  content[loc[4]:loc[5]],
				Value: content[loc[6]:loc[7]],
			},
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].offset < found[j].offset
	})

	tokens := make([]Token, len(found))
	for i, p := range found {
		tokens[i] = p.token
	}
	return tokens
}

// normalizeVersion strips the sentence-ending dots the version pattern picks
// up, e.g. "3.0.1." becomes "3.0.1".
func normalizeVersion(v string) string {
	return strings.TrimRight(v, ".")
}

// Extraction is the result of folding the tokens of one report file.
type Extraction struct {
	Version      string
	Measurements []MetricMeasurement
}

// Extract scans content and folds its tokens. Only the first version
// announcement counts; every measurement in the file, wherever it appears, is
// attributed to that version. The second return value is false when the file
// announces no version, in which case it contributes nothing.
func Extract(content string) (Extraction, bool) {
	var ex Extraction
	announced := false

	for _, tok := range Scan(content) {
		switch t := tok.(type) {
		case VersionAnnouncement:
			if !announced {
				ex.Version = t.Version
				announced = true
			}
		case MetricMeasurement:
			ex.Measurements = append(ex.Measurements, t)
		}
	}

	return ex, announced
}

// Entries converts the extraction into map entries.
func (ex Extraction) Entries() []Entry {
	entries := make([]Entry, 0, len(ex.Measurements))
	for _, mm := range ex.Measurements {
		entries = append(entries, Entry{
			Version: ex.Version,
			Kind:    mm.Kind,
			Name:    mm.Name,
			Value:   mm.Value,
		})
	}
	return entries
}
