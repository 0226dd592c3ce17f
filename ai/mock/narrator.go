package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/landscape/ai"
)

// MockNarrator is a test double for ai.Narrator.
type MockNarrator struct {
	// NarrateFunc is called by Narrate if set.
	// If nil, returns a canned narrative derived from the input.
	NarrateFunc func(ctx context.Context, input *ai.NarrativeInput) (string, error)

	callCount int
}

// NewMockNarrator creates a mock narrator with default canned behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockNarrator() *MockNarrator {
	return &MockNarrator{}
}

// Narrate returns a deterministic narrative summarizing the input.
func (m *MockNarrator) Narrate(ctx context.Context, input *ai.NarrativeInput) (string, error) {
	m.callCount++

	if m.NarrateFunc != nil {
		return m.NarrateFunc(ctx, input)
	}

	return fmt.Sprintf("Verdict for %q is %s with confidence %.2f based on %d comparisons.",
		input.TopicTitle, input.Verdict, input.Confidence, len(input.Comparisons)), nil
}

// CallCount returns the number of times Narrate was called.
func (m *MockNarrator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockNarrator) Reset() {
	m.callCount = 0
	m.NarrateFunc = nil
}
