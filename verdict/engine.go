package verdict

import (
	"log/slog"

	"github.com/poiesic/landscape/core"
)

const (
	// comparableScoreDelta bounds how far below the top score a high-overlap
	// candidate can sit and still count as a comparable competing signal.
	comparableScoreDelta = 0.05

	// spreadWindow is the score spread at which mixed-signal confidence
	// bottoms out.
	spreadWindow = 0.2

	// topGroupSize caps how many leading comparisons feed the spread
	// calculation for mixed signals.
	topGroupSize = 5

	minMixedConfidence = 0.25
	maxMixedConfidence = 0.90
)

// Engine turns a ranked comparison set into an Assessment.
type Engine struct {
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a verdict engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{logger: slog.Default()}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.logger = e.logger.With("component", "verdict_engine")
	return e, nil
}

// Assess classifies the landscape for the requesting branch.
//
// The comparisons are the ranked, above-threshold candidates in rank order;
// poolSize is the size of the full deduplicated pool before thresholding,
// which scales confidence in an open landscape (the more that was searched,
// the more an absence of overlap means).
//
// Single-pass state machine:
//   - no comparisons, or none above low overlap, means the landscape is OPEN
//   - a high-overlap leader funded by the requesting branch means WELL_COVERED
//   - a high-overlap leader funded elsewhere means BRANCH_OPPORTUNITY
//   - a medium leader, or comparable high-overlap candidates split across
//     same and different branches, means MIXED
func (e *Engine) Assess(requesting core.Branch, comparisons []*core.Candidate, poolSize int) *core.Assessment {
	assessment := &core.Assessment{
		BranchRelevance: classifyBranchRelevance(comparisons),
		Comparisons:     buildComparisons(comparisons),
		PoolSize:        poolSize,
	}

	relevant := withOverlap(comparisons)
	if len(relevant) == 0 {
		assessment.Verdict = core.VerdictOpen
		assessment.Confidence = openConfidence(poolSize)
		e.log(assessment)
		return assessment
	}

	top := relevant[0]
	switch top.Overlap {
	case core.OverlapHigh:
		if highSignalsSplit(requesting, relevant) {
			assessment.Verdict = core.VerdictMixed
			assessment.Confidence = mixedConfidence(relevant)
		} else if top.Branch == requesting {
			assessment.Verdict = core.VerdictWellCovered
			assessment.Confidence = top.Score
		} else {
			assessment.Verdict = core.VerdictBranchOpportunity
			assessment.Confidence = top.Score * 0.9
		}
	case core.OverlapMedium:
		assessment.Verdict = core.VerdictMixed
		assessment.Confidence = mixedConfidence(relevant)
	}

	e.log(assessment)
	return assessment
}

func (e *Engine) log(assessment *core.Assessment) {
	e.logger.Info("assessment complete",
		"verdict", assessment.Verdict,
		"confidence", assessment.Confidence,
		"branch_relevance", assessment.BranchRelevance,
		"comparisons", len(assessment.Comparisons),
		"pool_size", assessment.PoolSize)
}

// withOverlap drops trailing low-overlap comparisons. A relevance threshold
// below the medium boundary can admit low-overlap candidates; they carry no
// coverage signal, so an all-low set still reads as an open landscape.
func withOverlap(comparisons []*core.Candidate) []*core.Candidate {
	relevant := make([]*core.Candidate, 0, len(comparisons))
	for _, c := range comparisons {
		if c.Overlap != core.OverlapLow {
			relevant = append(relevant, c)
		}
	}
	return relevant
}

// openConfidence scales with pool size: more searched, more confidence of
// true absence. min(1.0, 0.5 + 0.05 * min(poolSize, 10)).
func openConfidence(poolSize int) float64 {
	if poolSize > 10 {
		poolSize = 10
	}
	confidence := 0.5 + 0.05*float64(poolSize)
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// highSignalsSplit reports whether high-overlap candidates within the
// comparable-score window of the leader disagree on branch match. That is
// the genuinely ambiguous case where picking WELL_COVERED or
// BRANCH_OPPORTUNITY would overstate certainty.
func highSignalsSplit(requesting core.Branch, relevant []*core.Candidate) bool {
	topScore := relevant[0].Score
	sameBranch, otherBranch := false, false
	for _, c := range relevant {
		if c.Overlap != core.OverlapHigh || topScore-c.Score > comparableScoreDelta {
			continue
		}
		if c.Branch == requesting {
			sameBranch = true
		} else {
			otherBranch = true
		}
	}
	return sameBranch && otherBranch
}

// mixedConfidence is inversely proportional to the score spread among the
// leading comparisons. A tight cluster of comparable scores is genuinely
// ambiguous and gets confidence near the cap; a wide spread means the
// leader dominates and the mixed call itself is less certain.
func mixedConfidence(relevant []*core.Candidate) float64 {
	group := relevant
	if len(group) > topGroupSize {
		group = group[:topGroupSize]
	}
	spread := group[0].Score - group[len(group)-1].Score

	confidence := 1.0 - spread/spreadWindow
	if confidence < minMixedConfidence {
		confidence = minMixedConfidence
	}
	if confidence > maxMixedConfidence {
		confidence = maxMixedConfidence
	}
	return confidence
}

// classifyBranchRelevance applies a plurality rule over the comparison
// set's branch labels. A single branch holding a strict plurality reads as
// branch-specific concentration; ties, unknown-only sets, and empty sets
// read as cross-branch.
func classifyBranchRelevance(comparisons []*core.Candidate) core.BranchRelevance {
	counts := make(map[core.Branch]int)
	for _, c := range comparisons {
		if c.Branch == core.BranchUnknown || c.Branch == "" {
			continue
		}
		counts[c.Branch]++
	}
	if len(counts) == 0 {
		return core.CrossBranch
	}

	best, runnerUp := 0, 0
	for _, count := range counts {
		if count > best {
			runnerUp = best
			best = count
		} else if count > runnerUp {
			runnerUp = count
		}
	}
	if best > runnerUp {
		return core.BranchSpecific
	}
	return core.CrossBranch
}

func buildComparisons(comparisons []*core.Candidate) []core.Comparison {
	out := make([]core.Comparison, len(comparisons))
	for i, c := range comparisons {
		out[i] = core.Comparison{
			Id:      c.SourceID,
			Title:   c.Title,
			Score:   c.Score,
			Overlap: c.Overlap,
			Branch:  c.Branch,
		}
	}
	return out
}
