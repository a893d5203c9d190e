// SPDX-License-Identifier: Apache-2.0

package report

import "github.com/pterm/pterm"

// Logger is responsible for logging the progress of a collection.
type Logger interface {
	LogScanStart(root string)
	LogFileProcessed(path, version string, entries int)
	LogFileSkipped(path string)
	LogScanComplete(files, versions int)
}

type collectorLogger struct {
	logger pterm.Logger
}

type noopLogger struct{}

// NewLogger returns a Logger backed by the given pterm logger.
func NewLogger(logger pterm.Logger) Logger {
	return &collectorLogger{logger: logger}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (l *collectorLogger) LogScanStart(root string) {
	l.logger.Info("scanning reports", l.logger.Args("root", root))
}

func (l *collectorLogger) LogFileProcessed(path, version string, entries int) {
	l.logger.Debug("processed report", l.logger.Args(
		"path", path,
		"version", version,
		"entries", entries,
	))
}

func (l *collectorLogger) LogFileSkipped(path string) {
	l.logger.Debug("skipped report without version", l.logger.Args("path", path))
}

func (l *collectorLogger) LogScanComplete(files, versions int) {
	l.logger.Info("collected reports", l.logger.Args("files", files, "versions", versions))
}

func (l *noopLogger) LogScanStart(root string)                           {}
func (l *noopLogger) LogFileProcessed(path, version string, entries int) {}
func (l *noopLogger) LogFileSkipped(path string)                         {}
func (l *noopLogger) LogScanComplete(files, versions int)                {}
