package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/storage"
)

func newTestStores(t *testing.T) (storage.VectorStore, storage.AssessmentStore) {
	t.Helper()
	vectors, assessments, backend, err := NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() {
		assessments.Close()
		vectors.Close()
		backend.Close()
	})
	return vectors, assessments
}

func TestVectorStore(t *testing.T) {
	vectors, _ := newTestStores(t)
	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		ids := []core.ID{core.IDFromContent("pub-1"), core.IDFromContent("pub-2")}
		stored := [][]float32{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}}
		require.NoError(t, vectors.PutVectors(ctx, ids, stored))

		got, err := vectors.GetVector(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, stored[0], got)

		got, err = vectors.GetVector(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, stored[1], got)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := vectors.GetVector(ctx, core.IDFromContent("never-stored"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("length mismatch", func(t *testing.T) {
		err := vectors.PutVectors(ctx, []core.ID{1, 2}, [][]float32{{0.1}})
		assert.Error(t, err)
	})

	t.Run("overwrite", func(t *testing.T) {
		id := core.IDFromContent("pub-3")
		require.NoError(t, vectors.PutVectors(ctx, []core.ID{id}, [][]float32{{1, 2}}))
		require.NoError(t, vectors.PutVectors(ctx, []core.ID{id}, [][]float32{{3, 4}}))

		got, err := vectors.GetVector(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []float32{3, 4}, got)
	})
}

func TestClosedBackend(t *testing.T) {
	ctx := context.Background()

	vectors, assessments, backend, err := NewMemoryStores()
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	t.Run("vector reads", func(t *testing.T) {
		_, err := vectors.GetVector(ctx, core.IDFromContent("pub-1"))
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
	})

	t.Run("vector writes", func(t *testing.T) {
		err := vectors.PutVectors(ctx, []core.ID{1}, [][]float32{{0.1}})
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
	})

	t.Run("assessment reads", func(t *testing.T) {
		_, err := assessments.GetAssessment(ctx, 1)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)

		_, err = assessments.ListAssessments(ctx, 0)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
	})

	t.Run("assessment writes", func(t *testing.T) {
		_, err := assessments.PutAssessment(ctx, &core.AssessmentRecord{TopicTitle: "t", Payload: "{}"})
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
	})
}
