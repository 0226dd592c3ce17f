package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/storage"
)

// VectorStore implements storage.VectorStore for BadgerDB.
type VectorStore struct {
	backend *Backend
}

var _ storage.VectorStore = (*VectorStore)(nil)

// NewVectorStore creates a new VectorStore on the shared backend.
func NewVectorStore(backend *Backend) (*VectorStore, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &VectorStore{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (s *VectorStore) Close() error {
	return nil
}

// GetVector retrieves a cached embedding by candidate ID.
func (s *VectorStore) GetVector(ctx context.Context, id core.ID) ([]float32, error) {
	var vector []float32
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			vector, err = storage.UnmarshalVector(val)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			return nil
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return vector, nil
}

// PutVectors caches embeddings for the given candidate IDs.
func (s *VectorStore) PutVectors(ctx context.Context, ids []core.ID, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		for i, id := range ids {
			if err := tx.Set(makeVectorKey(id), storage.MarshalVector(vectors[i])); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
