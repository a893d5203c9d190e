// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/xataio/perfdoc/pkg/report"
)

// missing is how echarts marks a gap in a line series.
const missing = "-"

// Build generates one line chart per metric name. The x-axis lists the
// versions in version order and every kind with at least one numeric value
// gets its own series.
func Build(m *report.Map) []*charts.Line {
	versions := m.SortedVersions()

	// Metric names in the order they were first seen across all versions
	var names []string
	seen := make(map[string]struct{})
	for _, version := range m.Versions() {
		metrics, _ := m.Metrics(version)
		for _, name := range metrics.Names() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	allCharts := make([]*charts.Line, 0, len(names))
	for _, name := range names {
		chart := charts.NewLine()
		chart.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title: name,
			}),
			charts.WithAnimation(false))
		chart.SetXAxis(versions)

		for _, kind := range report.Kinds {
			data := make([]opts.LineData, len(versions))
			found := false
			for i, version := range versions {
				data[i] = opts.LineData{Value: missing}

				raw, ok := m.Value(version, name, kind)
				if !ok {
					continue
				}
				value, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					continue
				}
				data[i] = opts.LineData{Value: value}
				found = true
			}
			if found {
				chart.AddSeries(string(kind), data)
			}
		}

		allCharts = append(allCharts, chart)
	}

	sort.Slice(allCharts, func(i, j int) bool {
		return allCharts[i].Title.Title < allCharts[j].Title.Title
	})

	return allCharts
}

// Render writes a page with the charts of m to w.
func Render(w io.Writer, title string, m *report.Map) error {
	page := components.NewPage()
	page.SetPageTitle(title)
	page.SetLayout("flex")

	for _, c := range Build(m) {
		page.AddCharts(c)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("rendering charts: %w", err)
	}
	return nil
}
