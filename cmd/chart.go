// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/xataio/perfdoc/pkg/chart"
)

var chartCmd = &cobra.Command{
	Use:       "chart <outputfile>",
	Short:     "Render the collected results as line charts, one per metric",
	Example:   "chart build/reports/perf-charts.html",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"outputfile"},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		m, err := collectReports(cmd.Context())
		if err != nil {
			return err
		}

		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()

		if err := chart.Render(f, "Benchmark results", m); err != nil {
			return err
		}

		pterm.Success.Printfln("Charts generated at %s", args[0])
		return nil
	},
}
