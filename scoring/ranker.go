package scoring

import (
	"log/slog"
	"math"
	"slices"

	"github.com/poiesic/landscape/core"
)

// Overlap thresholds on the fused score. These are the semantic contract of
// the system: every consumer (verdicts, reports, visualization) buckets with
// the same values.
const (
	HighOverlapThreshold   = 0.70
	MediumOverlapThreshold = 0.50
)

// DefaultMinScore is the default relevance threshold. Candidates below it
// stay out of the comparison set but are kept for visualization.
const DefaultMinScore = 0.30

// Fuse combines holistic similarity and concept score by geometric mean.
// When the concept score is undefined (topic without keywords), the fused
// score is the holistic similarity alone.
func Fuse(holistic, concept float64, conceptDefined bool) float64 {
	if !conceptDefined {
		return holistic
	}
	return math.Sqrt(holistic * concept)
}

// RateOverlap buckets a fused score. Boundary values belong to the higher
// tier.
func RateOverlap(score float64) core.OverlapRating {
	switch {
	case score >= HighOverlapThreshold:
		return core.OverlapHigh
	case score >= MediumOverlapThreshold:
		return core.OverlapMedium
	default:
		return core.OverlapLow
	}
}

// Ranking is the partitioned output of a Rank call. Comparisons holds the
// candidates at or above the relevance threshold in rank order; Excluded
// holds the below-threshold remainder, also scored and rated, for
// visualization consumers.
type Ranking struct {
	Comparisons []*core.Candidate
	Excluded    []*core.Candidate
}

// Ranker scores, sorts, and filters a candidate pool against a topic.
type Ranker struct {
	minScore float64
	logger   *slog.Logger
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker) error

// WithMinScore sets the relevance threshold in [0, 1].
// Default is 0.30.
func WithMinScore(minScore float64) RankerOption {
	return func(r *Ranker) error {
		if minScore < 0 || minScore > 1 {
			return ErrInvalidThreshold
		}
		r.minScore = minScore
		return nil
	}
}

// WithRankerLogger sets a custom logger.
// Default is slog.Default().
func WithRankerLogger(logger *slog.Logger) RankerOption {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a ranker.
func NewRanker(opts ...RankerOption) (*Ranker, error) {
	r := &Ranker{
		minScore: DefaultMinScore,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	r.logger = r.logger.With("component", "ranker")
	return r, nil
}

// Rank scores every candidate against the topic vector and IDF table, sorts
// by fused score descending with source ID as the deterministic tiebreaker,
// and partitions by the relevance threshold. Candidates are mutated in place
// with their scores and ratings; after Rank they are treated as immutable.
func (r *Ranker) Rank(topicVector []float32, table *IDFTable, pool []*core.Candidate) *Ranking {
	conceptDefined := table != nil && table.Defined()

	for _, candidate := range pool {
		candidate.Holistic = ClippedCosine(topicVector, candidate.Vector)
		candidate.ConceptDefined = conceptDefined
		if conceptDefined {
			candidate.Concept = table.ConceptScore(candidate.Text())
		}
		candidate.Score = Fuse(candidate.Holistic, candidate.Concept, conceptDefined)
		candidate.Overlap = RateOverlap(candidate.Score)
		candidate.BelowThreshold = candidate.Score < r.minScore
	}

	sorted := slices.Clone(pool)
	slices.SortFunc(sorted, func(a, b *core.Candidate) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.SourceID < b.SourceID {
			return -1
		}
		if a.SourceID > b.SourceID {
			return 1
		}
		return 0
	})

	ranking := &Ranking{}
	for _, candidate := range sorted {
		if candidate.BelowThreshold {
			ranking.Excluded = append(ranking.Excluded, candidate)
		} else {
			ranking.Comparisons = append(ranking.Comparisons, candidate)
		}
	}

	r.logger.Debug("ranking complete",
		"pool", len(pool),
		"comparisons", len(ranking.Comparisons),
		"excluded", len(ranking.Excluded))
	return ranking
}
