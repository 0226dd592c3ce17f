package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/landscape/core"
)

func writeCandidateFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource(t *testing.T) {
	t.Run("loads records and detects branch from funding", func(t *testing.T) {
		path := writeCandidateFile(t, `[
			{"id": "p1", "title": "First", "abstract": "a", "year": 2020,
			 "funding": "supported by DARPA"},
			{"id": "p2", "title": "Second", "branch": "navy"}
		]`)

		source, err := NewFileSource(path)
		require.NoError(t, err)

		candidates, err := source.Search(context.Background(), Query{Text: "ignored"})
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, core.BranchDARPA, candidates[0].Branch)
		assert.Equal(t, core.BranchNavy, candidates[1].Branch)
	})

	t.Run("search all dedupes once", func(t *testing.T) {
		path := writeCandidateFile(t, `[{"id": "p1", "title": "First"}]`)
		source, err := NewFileSource(path)
		require.NoError(t, err)

		queries := []Query{{Text: "a"}, {Text: "b"}, {Text: "c"}}
		candidates, err := source.SearchAll(context.Background(), queries)
		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})

	t.Run("empty file rejected", func(t *testing.T) {
		path := writeCandidateFile(t, `[]`)
		_, err := NewFileSource(path)
		assert.ErrorIs(t, err, ErrNoCandidates)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
