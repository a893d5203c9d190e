// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/xataio/perfdoc/cmd/flags"
	"github.com/xataio/perfdoc/internal/jsonschema"
	"github.com/xataio/perfdoc/pkg/document"
)

var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Validate the results already injected into the document",
	Example: "validate --document docs/index.html",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := flags.Document()

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}

		markers := document.Markers(string(data))

		var errs error
		for _, marker := range markers {
			if err := jsonschema.Validate(marker.Version, []byte(marker.Payload)); err != nil {
				errs = errors.Join(errs, fmt.Errorf("line %d: %w", marker.Number, err))
			}
		}
		if errs != nil {
			return fmt.Errorf("%w: %w", errInvalidPayloads, errs)
		}

		pterm.Success.Printfln("%d versions in %s are valid", len(markers), path)
		return nil
	},
}
