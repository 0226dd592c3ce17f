package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/landscape/core"
)

func TestFuse(t *testing.T) {
	t.Run("geometric mean when concept defined", func(t *testing.T) {
		assert.InDelta(t, math.Sqrt(0.8*0.5), Fuse(0.8, 0.5, true), 1e-9)
	})

	t.Run("zero concept zeroes the fused score", func(t *testing.T) {
		assert.Zero(t, Fuse(0.9, 0, true))
	})

	t.Run("holistic alone when concept undefined", func(t *testing.T) {
		assert.InDelta(t, 0.8, Fuse(0.8, 0.99, false), 1e-9)
	})
}

func TestRateOverlap(t *testing.T) {
	tests := []struct {
		score    float64
		expected core.OverlapRating
	}{
		{0.0, core.OverlapLow},
		{0.49, core.OverlapLow},
		{0.50, core.OverlapMedium}, // boundary belongs to the higher tier
		{0.69, core.OverlapMedium},
		{0.70, core.OverlapHigh}, // boundary belongs to the higher tier
		{1.0, core.OverlapHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, RateOverlap(tt.score), "score %v", tt.score)
	}
}

func TestNewRanker(t *testing.T) {
	t.Run("default threshold", func(t *testing.T) {
		ranker, err := NewRanker()
		require.NoError(t, err)
		assert.Equal(t, DefaultMinScore, ranker.minScore)
	})

	t.Run("custom threshold", func(t *testing.T) {
		ranker, err := NewRanker(WithMinScore(0.5))
		require.NoError(t, err)
		assert.Equal(t, 0.5, ranker.minScore)
	})

	t.Run("invalid threshold", func(t *testing.T) {
		_, err := NewRanker(WithMinScore(1.5))
		assert.ErrorIs(t, err, ErrInvalidThreshold)

		_, err = NewRanker(WithMinScore(-0.1))
		assert.ErrorIs(t, err, ErrInvalidThreshold)
	})
}

// unitVector returns a 2D unit vector at the given cosine against (1, 0).
func unitVector(cosine float64) []float32 {
	sine := math.Sqrt(1 - cosine*cosine)
	return []float32{float32(cosine), float32(sine)}
}

func TestRank(t *testing.T) {
	topicVector := []float32{1, 0}

	t.Run("scores sort descending with source id tiebreak", func(t *testing.T) {
		pool := []*core.Candidate{
			{SourceID: "c", Vector: unitVector(0.6)},
			{SourceID: "b", Vector: unitVector(0.9)},
			{SourceID: "a", Vector: unitVector(0.6)},
		}
		ranker, err := NewRanker()
		require.NoError(t, err)

		ranking := ranker.Rank(topicVector, nil, pool)
		require.Len(t, ranking.Comparisons, 3)
		assert.Equal(t, "b", ranking.Comparisons[0].SourceID)
		assert.Equal(t, "a", ranking.Comparisons[1].SourceID)
		assert.Equal(t, "c", ranking.Comparisons[2].SourceID)
	})

	t.Run("without keywords fused score is holistic", func(t *testing.T) {
		pool := []*core.Candidate{{SourceID: "a", Vector: unitVector(0.8)}}
		ranker, err := NewRanker()
		require.NoError(t, err)

		ranking := ranker.Rank(topicVector, nil, pool)
		candidate := ranking.Comparisons[0]
		assert.False(t, candidate.ConceptDefined)
		assert.InDelta(t, candidate.Holistic, candidate.Score, 1e-6)
	})

	t.Run("with keywords fused score is geometric mean", func(t *testing.T) {
		pool := []*core.Candidate{
			{SourceID: "a", Title: "quantum radar", Vector: unitVector(0.9)},
			{SourceID: "b", Title: "unrelated work", Vector: unitVector(0.9)},
		}
		table := NewIDFTable([]string{"quantum", "radar"}, pool)
		ranker, err := NewRanker()
		require.NoError(t, err)

		ranking := ranker.Rank(topicVector, table, pool)
		all := append(ranking.Comparisons, ranking.Excluded...)
		require.Len(t, all, 2)

		var matched, unmatched *core.Candidate
		for _, c := range all {
			if c.SourceID == "a" {
				matched = c
			} else {
				unmatched = c
			}
		}
		assert.True(t, matched.ConceptDefined)
		assert.InDelta(t, math.Sqrt(matched.Holistic*matched.Concept), matched.Score, 1e-6)
		// Same holistic similarity but no keyword match drops the score to zero
		assert.Zero(t, unmatched.Score)
	})

	t.Run("below threshold candidates are excluded but kept", func(t *testing.T) {
		pool := []*core.Candidate{
			{SourceID: "high", Vector: unitVector(0.9)},
			{SourceID: "low", Vector: unitVector(0.1)},
		}
		ranker, err := NewRanker()
		require.NoError(t, err)

		ranking := ranker.Rank(topicVector, nil, pool)
		require.Len(t, ranking.Comparisons, 1)
		require.Len(t, ranking.Excluded, 1)
		assert.Equal(t, "high", ranking.Comparisons[0].SourceID)
		assert.True(t, ranking.Excluded[0].BelowThreshold)
		assert.NotZero(t, ranking.Excluded[0].Score)
		assert.Equal(t, core.OverlapLow, ranking.Excluded[0].Overlap)
	})

	t.Run("candidate without vector scores zero holistic", func(t *testing.T) {
		pool := []*core.Candidate{{SourceID: "a"}}
		ranker, err := NewRanker()
		require.NoError(t, err)

		ranking := ranker.Rank(topicVector, nil, pool)
		require.Len(t, ranking.Excluded, 1)
		assert.Zero(t, ranking.Excluded[0].Score)
	})

	t.Run("empty pool yields empty ranking", func(t *testing.T) {
		ranker, err := NewRanker()
		require.NoError(t, err)

		ranking := ranker.Rank(topicVector, nil, nil)
		assert.Empty(t, ranking.Comparisons)
		assert.Empty(t, ranking.Excluded)
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		makePool := func() []*core.Candidate {
			return []*core.Candidate{
				{SourceID: "x", Title: "quantum", Vector: unitVector(0.7)},
				{SourceID: "y", Title: "radar", Vector: unitVector(0.7)},
				{SourceID: "z", Title: "quantum radar", Vector: unitVector(0.7)},
			}
		}
		ranker, err := NewRanker()
		require.NoError(t, err)

		first := ranker.Rank(topicVector, NewIDFTable([]string{"quantum"}, makePool()), makePool())
		second := ranker.Rank(topicVector, NewIDFTable([]string{"quantum"}, makePool()), makePool())

		require.Equal(t, len(first.Comparisons), len(second.Comparisons))
		for i := range first.Comparisons {
			assert.Equal(t, first.Comparisons[i].SourceID, second.Comparisons[i].SourceID)
			assert.Equal(t, first.Comparisons[i].Score, second.Comparisons[i].Score)
		}
	})
}
