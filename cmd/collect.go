// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xataio/perfdoc/pkg/report"
)

func collectCmd() *cobra.Command {
	var format string

	collectCmd := &cobra.Command{
		Use:     "collect",
		Short:   "Collect the test report results and print them",
		Example: "collect --format yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			m, err := collectReports(cmd.Context())
			if err != nil {
				return err
			}

			return report.NewWriter(cmd.OutOrStdout(), f).Write(m)
		},
	}

	collectCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json or yaml)")

	return collectCmd
}
