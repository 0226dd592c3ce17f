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

// Package search gathers publication candidates for a research topic.
//
// A topic expands into several query variants (title, keywords, excerpt,
// combined). Each variant runs against a publication Source and the results
// are merged with first-seen deduplication, so the candidate pool is stable
// regardless of how many variants matched the same record.
//
// Two sources are provided: DimensionsSource talks to the DTIC Dimensions
// results.json endpoint with polite rate limiting, and FileSource serves a
// fixed candidate set from disk for offline runs and tests.
package search
