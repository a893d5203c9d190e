// SPDX-License-Identifier: Apache-2.0

package report

// Kind identifies the runtime that produced a measurement.
type Kind string

const (
	KindV8   Kind = "v8"
	KindNode Kind = "node"
)

// Kinds lists every recognized kind tag.
var Kinds = []Kind{KindV8, KindNode}

// Entry is a single measurement extracted from a report file.
type Entry struct {
	Version string
	Kind    Kind
	Name    string
	Value   string
}
