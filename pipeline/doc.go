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

// Package pipeline orchestrates a full landscape run: query expansion,
// candidate search, embedding, concept scoring, ranking, and the verdict.
//
// Each run owns its own candidate pool, IDF table, and assessment; runs
// share no mutable state, so multiple runs may execute concurrently against
// the same pipeline. Document encoding is chunked through a worker pool and
// is all-or-nothing: a failed chunk fails the run rather than producing a
// partially scored pool.
//
// The narrative step is separate from Run and strictly one-directional: the
// narrator receives the frozen assessment and can never alter scores,
// verdict, or confidence.
package pipeline
