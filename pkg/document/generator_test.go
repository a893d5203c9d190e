// SPDX-License-Identifier: Apache-2.0

package document_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xataio/perfdoc/internal/jsonschema"
	"github.com/xataio/perfdoc/pkg/document"
	"github.com/xataio/perfdoc/pkg/report"
)

const indexHTML = `<html>
<head>
    <script>
        const reportMap = {};
        reportMap['3.0.0'] = {};
        reportMap['3.0.1'] = {};
        reportMap['2.2.1'] = {"opsPerSecond":{"v8":"700","node":"650"}};
    </script>
</head>
</html>`

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))
	return path
}

func readDocument(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateIsIdempotent(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, indexHTML)
	m := newMap(
		report.Entry{Version: "3.0.1", Kind: report.KindV8, Name: "opsPerSecond", Value: "1000"},
		report.Entry{Version: "3.0.1", Kind: report.KindNode, Name: "opsPerSecond", Value: "900"},
	)
	g := document.NewGenerator()

	res, err := g.Generate(path, m)
	require.NoError(t, err)
	assert.Equal(t, document.StatusUpdated, res.Status)
	assert.Equal(t, []string{"3.0.1"}, res.Replaced)
	assert.Equal(t, []string{"3.0.0", "2.2.1"}, res.Preserved)

	first := readDocument(t, path)
	assert.Contains(t, first, "        reportMap['3.0.1'] = {\"opsPerSecond\":{\"v8\":\"1000\",\"node\":\"900\"}};\n")

	res, err = g.Generate(path, m)
	require.NoError(t, err)
	assert.Equal(t, document.StatusSkipped, res.Status)
	assert.Equal(t, first, readDocument(t, path))
}

func TestGeneratePreservesVersionsWithoutResults(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, indexHTML)
	m := newMap(report.Entry{Version: "3.0.0", Kind: report.KindV8, Name: "opsPerSecond", Value: "1"})

	_, err := document.NewGenerator().Generate(path, m)
	require.NoError(t, err)

	assert.Contains(t, readDocument(t, path),
		"\n        reportMap['2.2.1'] = {\"opsPerSecond\":{\"v8\":\"700\",\"node\":\"650\"}};\n")
	assert.Contains(t, readDocument(t, path), "\n        reportMap['3.0.1'] = {};\n")
}

func TestGenerateTrimsTrailingWhitespace(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, "<html>   \n<body>\t\n</html>")

	res, err := document.NewGenerator().Generate(path, report.NewMap())
	require.NoError(t, err)
	assert.Equal(t, document.StatusUpdated, res.Status)
	assert.Empty(t, res.Replaced)
	assert.Equal(t, "<html>\n<body>\n</html>", readDocument(t, path))
}

func TestGenerateRejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry report.Entry
	}{
		{
			name:  "unknown kind",
			entry: report.Entry{Version: "3.0.1", Kind: "jvm", Name: "opsPerSecond", Value: "1000"},
		},
		{
			name:  "non integer value",
			entry: report.Entry{Version: "3.0.1", Kind: report.KindV8, Name: "opsPerSecond", Value: "1.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Trailing whitespace would be trimmed by a successful run.
			original := indexHTML + "   \n"
			path := writeDocument(t, original)

			_, err := document.NewGenerator().Generate(path, newMap(tt.entry))

			var vErr jsonschema.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, "3.0.1", vErr.Version)
			assert.Equal(t, original, readDocument(t, path))
		})
	}
}

func TestGenerateKeepsPermissions(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, indexHTML)
	m := newMap(report.Entry{Version: "3.0.0", Kind: report.KindV8, Name: "a", Value: "1"})

	_, err := document.NewGenerator().Generate(path, m)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o640), info.Mode().Perm())
}

func TestGenerateCheckMode(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, indexHTML)
	m := newMap(report.Entry{Version: "3.0.0", Kind: report.KindV8, Name: "a", Value: "1"})
	g := document.NewGenerator(document.WithCheck(true))

	res, err := g.Generate(path, m)
	var staleErr document.StaleError
	require.True(t, errors.As(err, &staleErr))
	assert.Equal(t, path, staleErr.Path)
	assert.Equal(t, document.StatusStale, res.Status)
	assert.Equal(t, indexHTML, readDocument(t, path))

	_, err = document.NewGenerator().Generate(path, m)
	require.NoError(t, err)

	res, err = g.Generate(path, m)
	require.NoError(t, err)
	assert.Equal(t, document.StatusSkipped, res.Status)
}

func TestGenerateMissingDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.html")
	_, err := document.NewGenerator().Generate(path, report.NewMap())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "skipped", document.StatusSkipped.String())
	assert.Equal(t, "updated", document.StatusUpdated.String())
	assert.Equal(t, "stale", document.StatusStale.String())
}
