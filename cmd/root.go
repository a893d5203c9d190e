// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xataio/perfdoc/cmd/flags"
	"github.com/xataio/perfdoc/pkg/document"
	"github.com/xataio/perfdoc/pkg/report"
)

// Version is the perfdoc version, set at build time
var Version = "development"

const (
	defaultReportsDir = "build/reports/tests/test/classes"
	defaultDocument   = "docs/index.html"
)

var (
	configFile   string
	registerOnce sync.Once
)

func init() {
	viper.SetEnvPrefix("PERFDOC")
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("reports-dir", defaultReportsDir, "Root directory of the HTML test reports")
	rootCmd.PersistentFlags().String("document", defaultDocument, "HTML document the results are injected into")
	rootCmd.PersistentFlags().String("extension", report.DefaultExtension, "File name suffix of report files")
	rootCmd.PersistentFlags().Int("workers", report.DefaultWorkers, "Number of report files read concurrently")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every processed report and injected version")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"REPORTS_DIR": "reports-dir",
		"DOCUMENT":    "document",
		"EXTENSION":   "extension",
		"WORKERS":     "workers",
		"VERBOSE":     "verbose",
	})
}

func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		viper.BindPFlag(key, fs.Lookup(name))
	}
}

var rootCmd = &cobra.Command{
	Use:          "perfdoc",
	Short:        "Inject versioned benchmark results from HTML test reports into a static document",
	SilenceUsage: true,
	Version:      Version,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if configFile == "" {
			return nil
		}
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		return nil
	},
}

// logger returns the pterm logger used by every command. Logs go to stderr
// so that command output can be piped.
func logger() pterm.Logger {
	level := pterm.LogLevelInfo
	if flags.Verbose() {
		level = pterm.LogLevelDebug
	}
	return *pterm.DefaultLogger.WithLevel(level).WithWriter(os.Stderr)
}

// collectReports walks the configured report tree and returns the
// aggregated results.
func collectReports(ctx context.Context) (*report.Map, error) {
	c := report.NewCollector(
		report.WithExtension(flags.Extension()),
		report.WithWorkers(flags.Workers()),
		report.WithLogger(report.NewLogger(logger())),
	)

	m := report.NewMap()
	if err := c.Collect(ctx, flags.ReportsDir(), m); err != nil {
		return nil, err
	}
	return m, nil
}

func newGenerator(check bool) *document.Generator {
	return document.NewGenerator(
		document.WithCheck(check),
		document.WithLogger(document.NewLogger(logger())),
	)
}

// Prepare registers the subcommands and returns the root command.
// It is safe to call more than once.
func Prepare() *cobra.Command {
	registerOnce.Do(func() {
		rootCmd.AddCommand(generateCmd())
		rootCmd.AddCommand(collectCmd())
		rootCmd.AddCommand(validateCmd)
		rootCmd.AddCommand(chartCmd)
	})

	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	cmd := Prepare()

	return cmd.Execute()
}
