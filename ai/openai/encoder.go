package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/landscape/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Encoder implements ai.Encoder using OpenAI-compatible embedding APIs.
type Encoder struct {
	embedder       embeddings.Embedder
	model          string
	queryPrefix    string
	documentPrefix string
	logger         *slog.Logger
}

// newEncoder is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newEncoder(config *ai.Config) (*Encoder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for embeddings
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	// Wrap in langchaingo embedder
	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &Encoder{
		embedder:       embedder,
		model:          config.EmbeddingModel,
		queryPrefix:    config.QueryPrefix,
		documentPrefix: config.DocumentPrefix,
		logger:         slog.Default().With("component", "openai-encoder"),
	}, nil
}

// NewEncoder creates a new encoder using the provided configuration.
//
// Returns ai.Encoder interface to enforce abstraction.
func NewEncoder(config *ai.Config) (ai.Encoder, error) {
	return newEncoder(config)
}

// ModelID returns the embedding model identifier.
func (e *Encoder) ModelID() string {
	return e.model
}

// EncodeQuery generates an embedding for a search-side text.
func (e *Encoder) EncodeQuery(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("encoding query text", "length", len(text))
	return e.encodeOne(ctx, e.queryPrefix+text)
}

// EncodeDocument generates an embedding for a corpus-side text.
func (e *Encoder) EncodeDocument(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("encoding document text", "length", len(text))
	return e.encodeOne(ctx, e.documentPrefix+text)
}

// EncodeDocuments generates corpus-side embeddings for multiple texts in a batch.
func (e *Encoder) EncodeDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("encoding document batch", "count", len(texts))

	prefixed := make([]string, len(texts))
	for i, text := range texts {
		prefixed[i] = e.documentPrefix + text
	}

	vectors, err := e.embedder.EmbedDocuments(ctx, prefixed)
	if err != nil {
		e.logger.Error("failed to generate embeddings", "count", len(texts), "err", err)
		return nil, fmt.Errorf("%w: %w", ai.ErrEncoderFailure, err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: requested %d vectors, received %d", ai.ErrEncoderFailure, len(texts), len(vectors))
	}

	return vectors, nil
}

func (e *Encoder) encodeOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		e.logger.Error("failed to generate embedding", "err", err)
		return nil, fmt.Errorf("%w: %w", ai.ErrEncoderFailure, err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("%w: empty result", ai.ErrEncoderFailure)
	}
	return vectors[0], nil
}
