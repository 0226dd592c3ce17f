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


// Package openai provides ai.Encoder and ai.Narrator implementations backed
// by OpenAI-compatible APIs (Ollama, LocalAI, vLLM, OpenAI itself).
//
// The encoder applies the configured asymmetric retrieval prefixes before
// calling the embedding endpoint, so query and document texts land in the
// model's intended input distributions. Both roles are deterministic for
// identical input text as long as the backing model is.
package openai
