package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/landscape/core"
)

func newTestSource(t *testing.T, handler http.Handler) (*DimensionsSource, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	source, err := NewDimensionsSource(
		WithBaseURL(server.URL),
		WithRequestInterval(time.Millisecond),
	)
	require.NoError(t, err)
	return source, server
}

func TestDimensionsSourceSearch(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "content", r.URL.Query().Get("search_mode"))
			assert.Equal(t, "quantum radar", r.URL.Query().Get("search_text"))
			fmt.Fprint(w, `{
				"docs": [
					{"id": "pub.1", "title": "Quantum radar study", "short_abstract": "abstract one",
					 "pub_year": "2023", "acknowledgements": "supported by ONR"},
					{"id": 42, "title": "Second paper", "pub_year": 2021,
					 "funding_section": "W911NF grant"}
				],
				"navigation": {}
			}`)
		}))

		candidates, err := source.Search(context.Background(), Query{Text: "quantum radar", Strategy: StrategyTitle})
		require.NoError(t, err)
		require.Len(t, candidates, 2)

		assert.Equal(t, "pub.1", candidates[0].SourceID)
		assert.Equal(t, core.IDFromContent("pub.1"), candidates[0].Id)
		assert.Equal(t, "Quantum radar study", candidates[0].Title)
		assert.Equal(t, "abstract one", candidates[0].Abstract)
		assert.Equal(t, 2023, candidates[0].Year)
		assert.Equal(t, core.BranchNavy, candidates[0].Branch)
		assert.Contains(t, candidates[0].URL, "pub.1")

		// Numeric id and year are normalized
		assert.Equal(t, "42", candidates[1].SourceID)
		assert.Equal(t, 2021, candidates[1].Year)
		assert.Equal(t, core.BranchArmy, candidates[1].Branch)
	})

	t.Run("follows pagination up to page cap", func(t *testing.T) {
		var pages int
		source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pages++
			fmt.Fprintf(w, `{
				"docs": [{"id": "pub.%d", "title": "t"}],
				"navigation": {"results_json": "/discover/publication/results.json?page=%d"}
			}`, pages, pages+1)
		}))

		candidates, err := source.Search(context.Background(), Query{Text: "q"})
		require.NoError(t, err)
		assert.Equal(t, defaultMaxPages, pages)
		assert.Len(t, candidates, defaultMaxPages)
	})

	t.Run("stops on empty docs", func(t *testing.T) {
		source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"docs": [], "navigation": {}}`)
		}))

		candidates, err := source.Search(context.Background(), Query{Text: "q"})
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		_, err := source.Search(context.Background(), Query{Text: "   "})
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})

	t.Run("first page failure is an error", func(t *testing.T) {
		source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		_, err := source.Search(context.Background(), Query{Text: "q"})
		assert.ErrorIs(t, err, ErrSearchFailed)
	})

	t.Run("later page failure keeps partial results", func(t *testing.T) {
		var pages int
		source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pages++
			if pages > 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, `{
				"docs": [{"id": "pub.1", "title": "t"}],
				"navigation": {"results_json": "/discover/publication/results.json?page=2"}
			}`)
		}))

		candidates, err := source.Search(context.Background(), Query{Text: "q"})
		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})
}

func TestDimensionsSourceSearchAll(t *testing.T) {
	source, _ := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Both queries return pub.shared; only the second returns pub.b
		if r.URL.Query().Get("search_text") == "first" {
			fmt.Fprint(w, `{"docs": [{"id": "pub.shared", "title": "from first"}], "navigation": {}}`)
			return
		}
		fmt.Fprint(w, `{
			"docs": [
				{"id": "pub.shared", "title": "from second"},
				{"id": "pub.b", "title": "unique"}
			],
			"navigation": {}
		}`)
	}))

	queries := []Query{
		{Text: "first", Strategy: StrategyTitle},
		{Text: "second", Strategy: StrategyKeywords},
	}
	candidates, err := source.SearchAll(context.Background(), queries)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "pub.shared", candidates[0].SourceID)
	assert.Equal(t, "from first", candidates[0].Title)
	assert.Equal(t, "pub.b", candidates[1].SourceID)
}
