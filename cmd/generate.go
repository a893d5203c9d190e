// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/xataio/perfdoc/cmd/flags"
	"github.com/xataio/perfdoc/pkg/document"
)

func generateCmd() *cobra.Command {
	var check bool

	generateCmd := &cobra.Command{
		Use:     "generate",
		Short:   "Collect the test report results and inject them into the document",
		Example: "generate --reports-dir build/reports/tests/test/classes --document docs/index.html",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := collectReports(cmd.Context())
			if err != nil {
				return err
			}

			path := flags.Document()
			sp, _ := pterm.DefaultSpinner.WithText(fmt.Sprintf("Generating %s...", path)).Start()

			res, err := newGenerator(check).Generate(path, m)
			if err != nil {
				sp.Fail(fmt.Sprintf("Failed to generate %s: %s", path, err))
				return err
			}

			switch res.Status {
			case document.StatusUpdated:
				sp.Success(fmt.Sprintf("Generated %s (%d versions updated, %d kept)", path, len(res.Replaced), len(res.Preserved)))
			default:
				sp.Success(fmt.Sprintf("Skipped %s, already up to date", path))
			}
			return nil
		},
	}

	generateCmd.Flags().BoolVar(&check, "check", false, "Fail instead of writing when the document is out of date")

	return generateCmd
}
