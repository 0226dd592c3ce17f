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


package core

import "fmt"

// ValidateTopic validates a Topic according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//
// NOT validated:
//   - Keywords (an empty list is valid; concept scoring is skipped)
//   - Branch (unknown is a valid requesting branch)
func ValidateTopic(topic *Topic) error {
	if topic == nil {
		return fmt.Errorf("%w: topic is nil", ErrInvalidTopic)
	}
	if topic.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTopic, ErrEmptyTitle)
	}
	return nil
}

// ValidateCandidate validates a Candidate according to domain rules.
//
// Validation rules:
//   - SourceID must not be empty
//
// NOT validated (populated during the run):
//   - Vector, Holistic, Concept, Score, Overlap
func ValidateCandidate(candidate *Candidate) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is nil", ErrInvalidCandidate)
	}
	if candidate.SourceID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptySourceID)
	}
	return nil
}

// ValidateAssessment validates an Assessment according to domain rules.
//
// Validation rules:
//   - Verdict must be one of the four defined values
//   - Confidence must be in [0, 1]
//   - Every comparison score must be in [0, 1]
func ValidateAssessment(assessment *Assessment) error {
	if assessment == nil {
		return fmt.Errorf("%w: assessment is nil", ErrInvalidAssessment)
	}
	if err := ValidateVerdict(assessment.Verdict); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAssessment, err)
	}
	if assessment.Confidence < 0 || assessment.Confidence > 1 {
		return fmt.Errorf("%w: confidence: %w", ErrInvalidAssessment, ErrScoreOutOfRange)
	}
	for _, comparison := range assessment.Comparisons {
		if comparison.Score < 0 || comparison.Score > 1 {
			return fmt.Errorf("%w: comparison %s: %w", ErrInvalidAssessment, comparison.Id, ErrScoreOutOfRange)
		}
	}
	return nil
}

// ValidateVerdict validates that a Verdict has a recognized value.
func ValidateVerdict(verdict Verdict) error {
	switch verdict {
	case VerdictOpen, VerdictBranchOpportunity, VerdictWellCovered, VerdictMixed:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidVerdict, verdict)
}
