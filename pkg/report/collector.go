// SPDX-License-Identifier: Apache-2.0

package report

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultExtension string = ".html"
	DefaultWorkers   int    = 1
)

// Collector walks a tree of report files and folds the measurements they
// contain into a Map.
type Collector struct {
	extension string
	workers   int
	logger    Logger
}

type OptionFn func(*Collector)

func NewCollector(opts ...OptionFn) *Collector {
	c := &Collector{
		extension: DefaultExtension,
		workers:   DefaultWorkers,
		logger:    NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithExtension sets the file name suffix identifying report files.
func WithExtension(ext string) OptionFn {
	return func(c *Collector) {
		c.extension = ext
	}
}

// WithWorkers sets how many report files may be read concurrently. Values
// below one read files sequentially.
func WithWorkers(n int) OptionFn {
	return func(c *Collector) {
		c.workers = max(n, 1)
	}
}

func WithLogger(l Logger) OptionFn {
	return func(c *Collector) {
		c.logger = l
	}
}

// Collect scans the report tree rooted at root and adds every measurement
// found to m.
func (c *Collector) Collect(ctx context.Context, root string, m *Map) error {
	info, err := os.Stat(root)
	if err != nil {
		return ReadError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return fmt.Errorf("reports path %q is not a directory", root)
	}

	c.logger.LogScanStart(root)
	return c.CollectFS(ctx, os.DirFS(root), m)
}

// CollectFS scans every report file in fsys and adds the measurements found
// to m.
//
// Files are visited in lexical path order. Reading may happen concurrently,
// but measurements are always added in that order, so when two files record
// the same version, metric and kind the lexically last file wins.
func (c *Collector) CollectFS(ctx context.Context, fsys fs.FS, m *Map) error {
	paths, err := c.discover(fsys)
	if err != nil {
		return err
	}

	contents := make([]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(fsys, path)
			if err != nil {
				return ReadError{Path: path, Err: err}
			}
			contents[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		ex, ok := Extract(contents[i])
		if !ok {
			c.logger.LogFileSkipped(path)
			continue
		}
		entries := ex.Entries()
		for _, e := range entries {
			m.Add(e)
		}
		c.logger.LogFileProcessed(path, ex.Version, len(entries))
	}

	c.logger.LogScanComplete(len(paths), m.Len())
	return nil
}

// discover returns the paths of all report files in fsys in lexical order.
func (c *Collector) discover(fsys fs.FS) ([]string, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return ReadError{Path: path, Err: err}
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), c.extension) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
