package ai

import (
	"context"

	"github.com/poiesic/landscape/core"
)

// Encoder generates vector embeddings for asymmetric retrieval.
// Query and document texts may receive different prefixes internally, but
// both operations must be independently callable and deterministic for
// identical input text. Implementations must be thread-safe for concurrent use.
type Encoder interface {
	// EncodeQuery generates an embedding for a search-side text (the topic).
	EncodeQuery(ctx context.Context, text string) ([]float32, error)

	// EncodeDocument generates an embedding for a corpus-side text (a candidate).
	EncodeDocument(ctx context.Context, text string) ([]float32, error)

	// EncodeDocuments generates corpus-side embeddings for multiple texts in
	// a batch. The call is all-or-nothing: either every requested vector is
	// returned, in input order, or the call fails entirely.
	EncodeDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// ModelID returns the model identifier, used for cache keys.
	ModelID() string
}

// Narrator turns a finished assessment into prose. It receives the assessment
// as a frozen input and must not influence verdict, confidence, or overlap
// ratings.
type Narrator interface {
	// Narrate generates a narrative summary for the given input.
	// Returns prose only.
	Narrate(ctx context.Context, input *NarrativeInput) (string, error)
}

// NarrativeInput is the one-directional handoff from the scoring engine to
// the narrative collaborator. Every field is computed before the call and
// frozen.
type NarrativeInput struct {
	TopicTitle       string            `json:"topic_title"`
	TopicDescription string            `json:"topic_description"`
	RequestingBranch core.Branch       `json:"requesting_branch"`
	Verdict          core.Verdict      `json:"verdict"`
	Confidence       float64           `json:"confidence"`
	BranchRelevance  core.BranchRelevance `json:"branch_relevance"`
	ReasoningInput   []core.Comparison `json:"branch_relevance_reasoning_input"`
	Comparisons      []core.Comparison `json:"ranked_comparisons"`
	CandidateTexts   map[string]string `json:"candidate_texts,omitempty"` // source id -> title+abstract
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Encoder and Narrator instances,
// ensuring they share configuration and resources appropriately.
type Provider interface {
	// Encoder returns the embedding service.
	// The returned Encoder is safe for concurrent use.
	Encoder() Encoder

	// Narrator returns the narrative generation service.
	Narrator() Narrator

	// Close releases resources held by the provider and its services.
	Close() error
}
