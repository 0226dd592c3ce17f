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

// Package scoring turns encoded candidates into a ranked comparison set.
//
// Each candidate gets two signals: holistic similarity (clipped cosine
// between the topic query vector and the candidate document vector) and a
// keyword concept score (IDF-weighted fraction of topic keywords found in
// the candidate's text, with IDF computed over the run's candidate pool).
// The two fuse by geometric mean, so a candidate strong in only one
// dimension ranks below one moderately strong in both.
//
// Keyword matching is a case-insensitive substring test over NFKC-normalized
// text, applied uniformly to document frequency counting and per-candidate
// concept scoring.
package scoring
