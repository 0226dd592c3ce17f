package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{0.5, 0.5, 0.5}
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-6)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-6)
	})

	t.Run("opposite vectors", func(t *testing.T) {
		assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		assert.Zero(t, Cosine([]float32{1, 0}, []float32{1, 0, 0}))
	})

	t.Run("empty and zero vectors", func(t *testing.T) {
		assert.Zero(t, Cosine(nil, nil))
		assert.Zero(t, Cosine([]float32{0, 0}, []float32{1, 0}))
	})
}

func TestClippedCosine(t *testing.T) {
	t.Run("negative cosine clips to zero", func(t *testing.T) {
		assert.Zero(t, ClippedCosine([]float32{1, 0}, []float32{-1, 0}))
	})

	t.Run("positive cosine passes through", func(t *testing.T) {
		v := []float32{0.3, 0.7}
		assert.InDelta(t, 1.0, ClippedCosine(v, v), 1e-6)
	})
}
