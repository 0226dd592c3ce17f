package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so identical inputs map to
// identical IDs across runs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Branch identifies the funding/military organizational unit associated with
// a publication or a requesting topic.
type Branch string

const (
	BranchNavy        Branch = "navy"
	BranchArmy        Branch = "army"
	BranchAirForce    Branch = "air_force"
	BranchDARPA       Branch = "darpa"
	BranchDOD         Branch = "dod"
	BranchMarineCorps Branch = "marine_corps"
	BranchSpaceForce  Branch = "space_force"
	BranchUnknown     Branch = "unknown"
)

// Verdict is the final deterministic classification of landscape coverage.
type Verdict string

const (
	// VerdictOpen indicates an open landscape with no substantially similar work.
	VerdictOpen Verdict = "OPEN"
	// VerdictBranchOpportunity indicates strong overlap funded only by other branches.
	VerdictBranchOpportunity Verdict = "BRANCH_OPPORTUNITY"
	// VerdictWellCovered indicates strong overlap funded by the requesting branch.
	VerdictWellCovered Verdict = "WELL_COVERED"
	// VerdictMixed indicates ambiguous coverage that needs human review.
	VerdictMixed Verdict = "MIXED"
)

// OverlapRating is the low/medium/high bucket derived from a fused score.
type OverlapRating string

const (
	OverlapLow    OverlapRating = "low"
	OverlapMedium OverlapRating = "medium"
	OverlapHigh   OverlapRating = "high"
)

// BranchRelevance classifies whether the comparison set concentrates in a
// single branch's funded work.
type BranchRelevance string

const (
	BranchSpecific BranchRelevance = "branch_specific"
	CrossBranch    BranchRelevance = "cross_branch"
)

// Topic is the research topic under evaluation. Immutable for a run.
type Topic struct {
	Title       string
	Description string
	Keywords    []string
	Branch      Branch
}

// Text returns the topic formatted as a single string for query encoding.
func (t *Topic) Text() string {
	parts := []string{t.Title}
	if t.Description != "" {
		parts = append(parts, t.Description)
	}
	if len(t.Keywords) > 0 {
		parts = append(parts, "Keywords: "+strings.Join(t.Keywords, ", "))
	}
	return strings.Join(parts, " ")
}

// Candidate is one publication record under similarity evaluation.
// Created when a search result is first seen, mutated in place as scores are
// computed, and treated as immutable once ranked.
type Candidate struct {
	Id       ID
	SourceID string // identifier from the publication source, stable across query variants
	Title    string
	Abstract string
	Keywords []string
	Year     int
	URL      string
	Branch   Branch

	Vector         []float32 // document embedding (populated during encoding)
	Holistic       float64   // clipped cosine similarity against the topic
	Concept        float64   // IDF-weighted keyword concept score
	ConceptDefined bool      // false when the topic has no keywords
	Score          float64   // fused similarity score in [0, 1]
	Overlap        OverlapRating
	BelowThreshold bool // excluded from the comparison set but kept for visualization
}

// Text returns the candidate formatted as a single string for document
// encoding and keyword concept matching.
func (c *Candidate) Text() string {
	parts := make([]string, 0, 3)
	if c.Title != "" {
		parts = append(parts, c.Title)
	}
	if c.Abstract != "" {
		parts = append(parts, c.Abstract)
	}
	if len(c.Keywords) > 0 {
		parts = append(parts, strings.Join(c.Keywords, " "))
	}
	return strings.Join(parts, " ")
}

// Comparison is one ranked entry of an Assessment, in the exact shape handed
// to the narrative and visualization collaborators.
type Comparison struct {
	Id      string        `json:"id"`
	Title   string        `json:"title"`
	Score   float64       `json:"similarity_score"`
	Overlap OverlapRating `json:"overlap_rating"`
	Branch  Branch        `json:"branch"`
}

// Assessment is the structured landscape verdict produced once per run.
// It is never mutated after creation; the narrative collaborator receives it
// as a frozen input.
type Assessment struct {
	Verdict         Verdict         `json:"verdict"`
	Confidence      float64         `json:"confidence"`
	BranchRelevance BranchRelevance `json:"branch_relevance"`
	Comparisons     []Comparison    `json:"ranked_comparisons"` // insertion order = rank order
	PoolSize        int             `json:"pool_size"`
}

// AssessmentRecord is an archived assessment as persisted by the assessment store.
type AssessmentRecord struct {
	Id         ID
	TopicTitle string
	CreatedAt  time.Time
	Payload    string // Assessment serialized to its collaborator JSON schema
}
