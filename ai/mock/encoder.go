package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// MockEncoder is a test double for ai.Encoder.
// It allows custom behavior injection via function fields.
type MockEncoder struct {
	// EncodeQueryFunc is called by EncodeQuery if set.
	// If nil, uses default deterministic behavior.
	EncodeQueryFunc func(ctx context.Context, text string) ([]float32, error)

	// EncodeDocumentFunc is called by EncodeDocument if set.
	// If nil, uses default deterministic behavior.
	EncodeDocumentFunc func(ctx context.Context, text string) ([]float32, error)

	// EncodeDocumentsFunc is called by EncodeDocuments if set.
	// If nil, uses default deterministic behavior.
	EncodeDocumentsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

// NewMockEncoder creates a mock encoder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockEncoder() *MockEncoder {
	return &MockEncoder{}
}

// ModelID returns a fixed identifier for the mock model.
func (m *MockEncoder) ModelID() string {
	return "mock-encoder"
}

// EncodeQuery generates a deterministic embedding based on text hash.
func (m *MockEncoder) EncodeQuery(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EncodeQueryFunc != nil {
		return m.EncodeQueryFunc(ctx, text)
	}

	return generateDeterministicVector(text, 384), nil
}

// EncodeDocument generates a deterministic embedding based on text hash.
func (m *MockEncoder) EncodeDocument(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EncodeDocumentFunc != nil {
		return m.EncodeDocumentFunc(ctx, text)
	}

	return generateDeterministicVector(text, 384), nil
}

// EncodeDocuments generates deterministic embeddings for multiple texts.
func (m *MockEncoder) EncodeDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EncodeDocumentsFunc != nil {
		return m.EncodeDocumentsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = generateDeterministicVector(text, 384)
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEncoder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockEncoder) Reset() {
	m.callCount = 0
	m.EncodeQueryFunc = nil
	m.EncodeDocumentFunc = nil
	m.EncodeDocumentsFunc = nil
}

// generateDeterministicVector creates a deterministic embedding vector from text.
// It uses FNV hash to ensure the same text always produces the same vector.
func generateDeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Simple pseudo-random generation based on seed and index
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000)/1000.0 - 0.5
	}

	// Normalize to unit vector
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares > 0 {
		norm := float32(1.0 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= norm
		}
	}

	return vector
}
