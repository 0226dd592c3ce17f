package landscape

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/landscape/ai/mock"
	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/search"
)

type stubSource struct {
	candidates []*core.Candidate
}

func (s *stubSource) Search(_ context.Context, _ search.Query) ([]*core.Candidate, error) {
	return s.candidates, nil
}

func (s *stubSource) SearchAll(_ context.Context, _ []search.Query) ([]*core.Candidate, error) {
	return search.Aggregate(s.candidates), nil
}

func newTestAnalyzer(t *testing.T, candidates []*core.Candidate) *Analyzer {
	t.Helper()
	analyzer, err := NewAnalyzer("",
		WithProvider(mock.NewMockProvider()),
		WithSource(&stubSource{candidates: candidates}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { analyzer.Close() })
	return analyzer
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	topic := &core.Topic{Title: "Quantum Radar", Branch: core.BranchNavy}

	t.Run("empty landscape", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, nil)

		run, err := analyzer.Analyze(ctx, topic, false)
		require.NoError(t, err)
		assert.Equal(t, core.VerdictOpen, run.Assessment.Verdict)
		assert.Empty(t, run.Narrative)
	})

	t.Run("assessment is archived", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, nil)

		_, err := analyzer.Analyze(ctx, topic, false)
		require.NoError(t, err)

		records, err := analyzer.Assessments().ListAssessments(ctx, 0)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Quantum Radar", records[0].TopicTitle)

		var archived core.Assessment
		require.NoError(t, json.Unmarshal([]byte(records[0].Payload), &archived))
		assert.Equal(t, core.VerdictOpen, archived.Verdict)
	})

	t.Run("with narrative", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, nil)

		run, err := analyzer.Analyze(ctx, topic, true)
		require.NoError(t, err)
		assert.NotEmpty(t, run.Narrative)
	})

	t.Run("invalid topic", func(t *testing.T) {
		analyzer := newTestAnalyzer(t, nil)

		_, err := analyzer.Analyze(ctx, &core.Topic{}, false)
		assert.Error(t, err)
	})
}
