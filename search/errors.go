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


package search

import "errors"

var (
	// ErrEmptyQuery is returned when a query has no text.
	ErrEmptyQuery = errors.New("query text is empty")

	// ErrSearchFailed is returned when a publication source request fails.
	ErrSearchFailed = errors.New("publication search failed")

	// ErrNoCandidates is returned by FileSource when the backing file holds no records.
	ErrNoCandidates = errors.New("no candidates in file")
)
