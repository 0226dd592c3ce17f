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


// Package ai provides abstractions for the AI services consumed by the
// landscape analysis pipeline.
//
// This package defines interfaces for the two external model collaborators:
// text embedding (asymmetric query/document encoding) and narrative
// generation. It follows the dependency inversion principle, allowing the
// scoring engine to depend on abstractions rather than concrete
// implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Encoder: generates query- and document-side embedding vectors
//   - Narrator: turns a frozen assessment into prose
//   - Provider: aggregates AI services for convenient initialization
//
// The narrative firewall is structural: a Narrator receives a finished
// NarrativeInput and returns text. Nothing it produces flows back into
// verdict, confidence, or overlap ratings.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider, openai.NewEncoder, etc.) return
// INTERFACE types to enforce abstraction. Test utility constructors
// (mock.NewMockEncoder, mock.NewMockNarrator) return CONCRETE types to enable
// test assertions and behavior injection via the mock's public fields.
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Encoder().EncodeQuery(ctx, topic.Text())
package ai
