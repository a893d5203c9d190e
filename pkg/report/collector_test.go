// SPDX-License-Identifier: Apache-2.0

package report_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xataio/perfdoc/pkg/report"
)

func reportFile(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), Mode: 0o644}
}

func TestCollectFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"com/caoccao/TestV8ValueMap.html": reportFile(`<pre>Javet version is 3.0.1.</pre>
<pre>12:00:01.123 INFO - [v8] V8ValueMapGetBoolean: 1000000 calls in 250ms. TPS is 4000000.</pre>
<pre>12:00:01.456 INFO - [node] V8ValueMapGetBoolean: 1000000 calls in 500ms. TPS is 2000000.</pre>`),
		"com/caoccao/TestV8Function.html": reportFile(`<pre>Javet version is 3.0.1.</pre>
<pre>12:00:02.000 INFO - [v8] V8FunctionCall: 100000 calls in 100ms. TPS is 1000000.</pre>`),
		"com/caoccao/nested/deeper/TestOld.html": reportFile(`<pre>Javet version is 2.2.1.</pre>
<pre>12:00:03.000 INFO - [node] V8FunctionCall: 100000 calls in 200ms. TPS is 500000.</pre>`),
		"com/caoccao/index.html":          reportFile(`<html><body>no results</body></html>`),
		"com/caoccao/TestV8Function.json": reportFile(`Javet version is 9.9.9. [v8] ignored: value is 1.`),
		"css/style.css":                   reportFile(`body {}`),
	}

	m := report.NewMap()
	err := report.NewCollector().CollectFS(context.Background(), fsys, m)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"3.0.1", "2.2.1"}, m.Versions())

	for _, tc := range []struct {
		version, name string
		kind          report.Kind
		want          string
	}{
		{"3.0.1", "V8ValueMapGetBoolean", report.KindV8, "4000000"},
		{"3.0.1", "V8ValueMapGetBoolean", report.KindNode, "2000000"},
		{"3.0.1", "V8FunctionCall", report.KindV8, "1000000"},
		{"2.2.1", "V8FunctionCall", report.KindNode, "500000"},
	} {
		v, ok := m.Value(tc.version, tc.name, tc.kind)
		assert.True(t, ok, "%s/%s/%s", tc.version, tc.name, tc.kind)
		assert.Equal(t, tc.want, v)
	}

	_, ok := m.Metrics("9.9.9")
	assert.False(t, ok)
}

func TestCollectFSDuplicateTripleLexicallyLastWins(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a/first.html":  reportFile("Javet version is 1.0.\n[v8] opsPerSecond: value is 100."),
		"b/second.html": reportFile("Javet version is 1.0.\n[v8] opsPerSecond: value is 150."),
	}

	for _, workers := range []int{1, 2, 8} {
		m := report.NewMap()
		err := report.NewCollector(report.WithWorkers(workers)).CollectFS(context.Background(), fsys, m)
		require.NoError(t, err)

		v, ok := m.Value("1.0", "opsPerSecond", report.KindV8)
		require.True(t, ok)
		assert.Equal(t, "150", v, "workers=%d", workers)
	}
}

func TestCollectFSExtension(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"result.htm":  reportFile("Javet version is 1.0.\n[v8] a: value is 1."),
		"result.html": reportFile("Javet version is 2.0.\n[v8] a: value is 2."),
	}

	m := report.NewMap()
	err := report.NewCollector(report.WithExtension(".htm")).CollectFS(context.Background(), fsys, m)
	require.NoError(t, err)

	assert.Equal(t, []string{"1.0"}, m.Versions())
}

func TestCollectFSCancelled(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"a.html": reportFile("Javet version is 1.0.\n[v8] a: value is 1."),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := report.NewCollector().CollectFS(ctx, fsys, report.NewMap())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("reads the tree from disk", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		dir := filepath.Join(root, "classes", "com")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "TestA.html"),
			[]byte("Javet version is 3.0.1.\n[v8] opsPerSecond: value is 1000.\n[node] opsPerSecond: value is 900."), 0o644))

		m := report.NewMap()
		require.NoError(t, report.NewCollector().Collect(context.Background(), root, m))

		v, ok := m.Value("3.0.1", "opsPerSecond", report.KindNode)
		require.True(t, ok)
		assert.Equal(t, "900", v)
	})

	t.Run("missing root is a read error", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "missing")
		err := report.NewCollector().Collect(context.Background(), root, report.NewMap())

		var readErr report.ReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, root, readErr.Path)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("root must be a directory", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "report.html")
		require.NoError(t, os.WriteFile(file, []byte("Javet version is 1.0."), 0o644))

		err := report.NewCollector().Collect(context.Background(), file, report.NewMap())
		assert.ErrorContains(t, err, "is not a directory")
	})
}
