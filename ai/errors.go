package ai

import "errors"

var (
	// ErrEncoderFailure indicates the embedding service could not produce the
	// requested vectors. Fatal for a run: scoring cannot proceed without
	// embeddings.
	ErrEncoderFailure = errors.New("encoder failure")

	// ErrDimensionMismatch indicates the encoder returned vectors of
	// inconsistent dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrEmptyNarrative indicates the narrator returned no usable text.
	ErrEmptyNarrative = errors.New("empty narrative response")
)
