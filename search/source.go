package search

import (
	"context"

	"github.com/poiesic/landscape/core"
)

// Source is a publication source that can be queried for candidates.
type Source interface {
	// Search runs a single query and returns candidates in source order.
	Search(ctx context.Context, query Query) ([]*core.Candidate, error)

	// SearchAll runs every query and merges the results with first-seen
	// deduplication by source ID.
	SearchAll(ctx context.Context, queries []Query) ([]*core.Candidate, error)
}

// Aggregate merges candidate batches into a single pool. The first occurrence
// of each source ID wins; later duplicates are discarded. Candidates without
// a source ID are dropped since they cannot be deduplicated or linked back to
// the source. Relative order within and across batches is preserved.
func Aggregate(batches ...[]*core.Candidate) []*core.Candidate {
	seen := make(map[string]bool)
	merged := make([]*core.Candidate, 0)
	for _, batch := range batches {
		for _, candidate := range batch {
			if candidate.SourceID == "" {
				continue
			}
			if seen[candidate.SourceID] {
				continue
			}
			seen[candidate.SourceID] = true
			merged = append(merged, candidate)
		}
	}
	return merged
}
