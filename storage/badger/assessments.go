package badger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/storage"
)

// AssessmentStore implements storage.AssessmentStore for BadgerDB.
type AssessmentStore struct {
	backend *Backend
}

var _ storage.AssessmentStore = (*AssessmentStore)(nil)

// NewAssessmentStore creates a new AssessmentStore on the shared backend.
func NewAssessmentStore(backend *Backend) (*AssessmentStore, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &AssessmentStore{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (s *AssessmentStore) Close() error {
	return nil
}

// PutAssessment stores an assessment record and its date index entry.
// Sets CreatedAt if zero. The ID is content-derived from the topic title,
// creation time, and payload, so re-archiving an identical run is idempotent.
func (s *AssessmentStore) PutAssessment(ctx context.Context, record *core.AssessmentRecord) (*core.AssessmentRecord, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Id == 0 {
		record.Id = core.IDFromContent(
			record.TopicTitle + strconv.FormatInt(record.CreatedAt.UnixMicro(), 10) + record.Payload)
	}

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAssessmentKey(record.Id)
		if err := tx.Set(key, storage.MarshalAssessmentRecord(record)); err != nil {
			return err
		}

		dateKey := makeAssessmentDateKey(record.CreatedAt, record.Id)
		if err := tx.Set(dateKey, storage.MarshalID(record.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetAssessment retrieves an assessment record by ID.
func (s *AssessmentStore) GetAssessment(ctx context.Context, id core.ID) (*core.AssessmentRecord, error) {
	var record *core.AssessmentRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeAssessmentKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			record, err = storage.UnmarshalAssessmentRecord(val)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
			}
			return nil
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListAssessments returns the most recent assessment records, newest first.
func (s *AssessmentStore) ListAssessments(ctx context.Context, limit int) ([]*core.AssessmentRecord, error) {
	var results []*core.AssessmentRecord
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent records first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index
		startKey := makePartialAssessmentDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(assessmentDatePrefix + ":")

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			if limit > 0 && len(results) >= limit {
				break
			}

			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			item, err := tx.Get(makeAssessmentKey(recordID))
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				return err
			}
			var record *core.AssessmentRecord
			if err := item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalAssessmentRecord(val)
				return err
			}); err != nil {
				return err
			}
			results = append(results, record)
		}

		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return results, nil
}
