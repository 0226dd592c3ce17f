package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/storage"
)

func TestAssessmentStore(t *testing.T) {
	_, assessments := newTestStores(t)
	ctx := context.Background()

	t.Run("put generates id and timestamp", func(t *testing.T) {
		record, err := assessments.PutAssessment(ctx, &core.AssessmentRecord{
			TopicTitle: "Quantum Radar",
			Payload:    `{"verdict":"OPEN"}`,
		})
		require.NoError(t, err)
		assert.NotZero(t, record.Id)
		assert.False(t, record.CreatedAt.IsZero())
	})

	t.Run("get roundtrip", func(t *testing.T) {
		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		record, err := assessments.PutAssessment(ctx, &core.AssessmentRecord{
			TopicTitle: "Swarm Autonomy",
			CreatedAt:  created,
			Payload:    `{"verdict":"MIXED"}`,
		})
		require.NoError(t, err)

		got, err := assessments.GetAssessment(ctx, record.Id)
		require.NoError(t, err)
		assert.Equal(t, "Swarm Autonomy", got.TopicTitle)
		assert.Equal(t, `{"verdict":"MIXED"}`, got.Payload)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := assessments.GetAssessment(ctx, core.IDFromContent("missing"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestListAssessments(t *testing.T) {
	_, assessments := newTestStores(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	titles := []string{"first", "second", "third"}
	for i, title := range titles {
		_, err := assessments.PutAssessment(ctx, &core.AssessmentRecord{
			TopicTitle: title,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			Payload:    "{}",
		})
		require.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		records, err := assessments.ListAssessments(ctx, 0)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "third", records[0].TopicTitle)
		assert.Equal(t, "second", records[1].TopicTitle)
		assert.Equal(t, "first", records[2].TopicTitle)
	})

	t.Run("limit", func(t *testing.T) {
		records, err := assessments.ListAssessments(ctx, 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "third", records[0].TopicTitle)
	})

	t.Run("empty store", func(t *testing.T) {
		_, fresh := newTestStores(t)
		records, err := fresh.ListAssessments(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
