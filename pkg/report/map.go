// SPDX-License-Identifier: Apache-2.0

package report

import (
	"slices"
	"strings"
)

// ordered is a map that remembers the order in which keys were first set.
type ordered[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

func (o *ordered[K, V]) get(k K) (V, bool) {
	v, ok := o.values[k]
	return v, ok
}

func (o *ordered[K, V]) set(k K, v V) {
	if o.values == nil {
		o.values = make(map[K]V)
	}
	if _, ok := o.values[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

func (o *ordered[K, V]) getOrCreate(k K, create func() V) V {
	if v, ok := o.get(k); ok {
		return v
	}
	v := create()
	o.set(k, v)
	return v
}

// Map aggregates measurements by version, then metric name, then kind.
//
// Keys keep the order in which they were first seen, so a Map that is built
// from the same reports always serializes to the same bytes.
type Map struct {
	versions ordered[string, *Metrics]
}

// Metrics holds the measurements of a single version keyed by metric name.
type Metrics struct {
	names ordered[string, *Measurements]
}

// Measurements holds the values of a single metric keyed by kind.
type Measurements struct {
	kinds ordered[Kind, string]
}

func NewMap() *Map {
	return &Map{}
}

// Add stores the entry value, overwriting any value previously stored for
// the same version, metric name and kind.
func (m *Map) Add(e Entry) {
	metrics := m.versions.getOrCreate(e.Version, func() *Metrics { return &Metrics{} })
	measurements := metrics.names.getOrCreate(e.Name, func() *Measurements { return &Measurements{} })
	measurements.kinds.set(e.Kind, e.Value)
}

// Len returns the number of versions in the map.
func (m *Map) Len() int {
	return len(m.versions.keys)
}

// Versions returns the versions in the order they were first added.
func (m *Map) Versions() []string {
	return slices.Clone(m.versions.keys)
}

// SortedVersions returns the versions ordered by CompareVersions.
func (m *Map) SortedVersions() []string {
	versions := m.Versions()
	slices.SortStableFunc(versions, func(a, b string) int {
		if c := CompareVersions(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return versions
}

// Metrics returns the metrics recorded for version.
func (m *Map) Metrics(version string) (*Metrics, bool) {
	return m.versions.get(version)
}

// Value returns the value recorded for the given version, metric and kind.
func (m *Map) Value(version, name string, kind Kind) (string, bool) {
	metrics, ok := m.Metrics(version)
	if !ok {
		return "", false
	}
	measurements, ok := metrics.Measurements(name)
	if !ok {
		return "", false
	}
	return measurements.Value(kind)
}

// Names returns the metric names in the order they were first added.
func (mt *Metrics) Names() []string {
	return slices.Clone(mt.names.keys)
}

func (mt *Metrics) Measurements(name string) (*Measurements, bool) {
	return mt.names.get(name)
}

// Kinds returns the kinds in the order they were first added.
func (ms *Measurements) Kinds() []Kind {
	return slices.Clone(ms.kinds.keys)
}

func (ms *Measurements) Value(kind Kind) (string, bool) {
	return ms.kinds.get(kind)
}
