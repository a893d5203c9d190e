// SPDX-License-Identifier: Apache-2.0

package document

import "github.com/pterm/pterm"

// Logger is responsible for logging the outcome of a generation.
type Logger interface {
	LogVersionReplaced(version string)
	LogVersionPreserved(version string)
	LogDocumentGenerated(path string)
	LogDocumentSkipped(path string)
}

type generatorLogger struct {
	logger pterm.Logger
}

type noopLogger struct{}

// NewLogger returns a Logger backed by the given pterm logger.
func NewLogger(logger pterm.Logger) Logger {
	return &generatorLogger{logger: logger}
}

func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (l *generatorLogger) LogVersionReplaced(version string) {
	l.logger.Debug("injected results", l.logger.Args("version", version))
}

func (l *generatorLogger) LogVersionPreserved(version string) {
	l.logger.Debug("kept results without fresh data", l.logger.Args("version", version))
}

func (l *generatorLogger) LogDocumentGenerated(path string) {
	l.logger.Info("generated document", l.logger.Args("path", path))
}

func (l *generatorLogger) LogDocumentSkipped(path string) {
	l.logger.Info("skipped document, no change", l.logger.Args("path", path))
}

func (l *noopLogger) LogVersionReplaced(version string)  {}
func (l *noopLogger) LogVersionPreserved(version string) {}
func (l *noopLogger) LogDocumentGenerated(path string)   {}
func (l *noopLogger) LogDocumentSkipped(path string)     {}
