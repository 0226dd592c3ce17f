package storage

import (
	"context"

	"github.com/poiesic/landscape/core"
)

// VectorStore caches document embeddings keyed by candidate ID.
// Implementations must be thread-safe and support concurrent access.
type VectorStore interface {
	// GetVector retrieves a cached embedding by candidate ID.
	// Returns ErrNotFound if no vector is cached for the ID.
	GetVector(ctx context.Context, id core.ID) ([]float32, error)

	// PutVectors caches embeddings for the given candidate IDs.
	// ids and vectors must have equal length.
	PutVectors(ctx context.Context, ids []core.ID, vectors [][]float32) error

	// Close closes the store and releases resources.
	Close() error
}

// AssessmentStore archives completed assessments.
type AssessmentStore interface {
	// PutAssessment stores an assessment record.
	// Returns the record with its content-derived ID populated.
	PutAssessment(ctx context.Context, record *core.AssessmentRecord) (*core.AssessmentRecord, error)

	// GetAssessment retrieves an assessment record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetAssessment(ctx context.Context, id core.ID) (*core.AssessmentRecord, error)

	// ListAssessments returns the most recent assessment records, newest
	// first, up to limit. A limit <= 0 returns all records.
	ListAssessments(ctx context.Context, limit int) ([]*core.AssessmentRecord, error)

	// Close closes the store and releases resources.
	Close() error
}
