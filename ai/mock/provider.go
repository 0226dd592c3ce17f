// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mock

import (
	"github.com/poiesic/landscape/ai"
)

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	encoder  *MockEncoder
	narrator *MockNarrator
}

// NewMockProvider creates a provider with default mock services.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		encoder:  NewMockEncoder(),
		narrator: NewMockNarrator(),
	}
}

// NewMockProviderWithServices creates a provider with custom mock services.
// Note: Returns concrete type so tests can reach the underlying mocks.
func NewMockProviderWithServices(encoder *MockEncoder, narrator *MockNarrator) *MockProvider {
	return &MockProvider{
		encoder:  encoder,
		narrator: narrator,
	}
}

// Encoder returns the mock encoder.
func (p *MockProvider) Encoder() ai.Encoder {
	return p.encoder
}

// Narrator returns the mock narrator.
func (p *MockProvider) Narrator() ai.Narrator {
	return p.narrator
}

// Close is a no-op for the mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEncoder returns the underlying mock encoder for test assertions.
func (p *MockProvider) GetMockEncoder() *MockEncoder {
	return p.encoder
}

// GetMockNarrator returns the underlying mock narrator for test assertions.
func (p *MockProvider) GetMockNarrator() *MockNarrator {
	return p.narrator
}
