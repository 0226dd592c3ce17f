package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/landscape/pipeline"
)

func TestLandscapeMap(t *testing.T) {
	t.Run("query point comes first", func(t *testing.T) {
		points := LandscapeMap(sampleRun())
		require.Len(t, points, 4)

		assert.Equal(t, "query", points[0].Type)
		assert.Equal(t, "Your Topic", points[0].Label)
		assert.Equal(t, 1.0, points[0].Similarity)
	})

	t.Run("threshold labels carry through", func(t *testing.T) {
		points := LandscapeMap(sampleRun())

		types := make(map[string]int)
		for _, point := range points[1:] {
			types[point.Type]++
		}
		assert.Equal(t, 2, types["relevant"])
		assert.Equal(t, 1, types["background"])
	})

	t.Run("similarities are rounded scores", func(t *testing.T) {
		points := LandscapeMap(sampleRun())
		assert.Equal(t, 0.85, points[1].Similarity)
		assert.Equal(t, 0.1, points[3].Similarity)
	})

	t.Run("separated vectors get separated projections", func(t *testing.T) {
		points := LandscapeMap(sampleRun())

		// pub-1 sits on the topic vector, pub-3 is orthogonal to it; their
		// first-component projections must differ.
		assert.NotEqual(t, points[1].X, points[3].X)
	})

	t.Run("deterministic", func(t *testing.T) {
		first := LandscapeMap(sampleRun())
		second := LandscapeMap(sampleRun())
		assert.Equal(t, first, second)
	})

	t.Run("no topic vector", func(t *testing.T) {
		run := sampleRun()
		run.TopicVector = nil
		assert.Nil(t, LandscapeMap(run))
	})

	t.Run("no candidates", func(t *testing.T) {
		run := sampleRun()
		run.Comparisons = nil
		run.Excluded = nil
		assert.Nil(t, LandscapeMap(run))
	})

	t.Run("mismatched vectors are skipped", func(t *testing.T) {
		run := sampleRun()
		run.Excluded[0].Vector = []float32{1, 0} // wrong dimension
		points := LandscapeMap(run)
		require.Len(t, points, 3)
	})

	t.Run("nil run fields tolerated", func(t *testing.T) {
		run := &pipeline.Run{TopicVector: []float32{1, 0}}
		assert.Nil(t, LandscapeMap(run))
	})
}
