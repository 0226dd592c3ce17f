package core

import (
	"errors"
	"testing"
)

func TestValidateTopic(t *testing.T) {
	tests := []struct {
		name    string
		topic   *Topic
		wantErr error
	}{
		{
			name:  "valid topic",
			topic: &Topic{Title: "Swarm autonomy", Branch: BranchNavy},
		},
		{
			name:    "nil topic",
			topic:   nil,
			wantErr: ErrInvalidTopic,
		},
		{
			name:    "empty title",
			topic:   &Topic{Branch: BranchNavy},
			wantErr: ErrEmptyTitle,
		},
		{
			name:  "no keywords is valid",
			topic: &Topic{Title: "Swarm autonomy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopic(tt.topic)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateTopic() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTopic() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCandidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate *Candidate
		wantErr   error
	}{
		{
			name:      "valid candidate",
			candidate: &Candidate{SourceID: "pub.1", Title: "Work"},
		},
		{
			name:      "nil candidate",
			candidate: nil,
			wantErr:   ErrInvalidCandidate,
		},
		{
			name:      "missing source id",
			candidate: &Candidate{Title: "Work"},
			wantErr:   ErrEmptySourceID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.candidate)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCandidate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCandidate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAssessment(t *testing.T) {
	tests := []struct {
		name       string
		assessment *Assessment
		wantErr    error
	}{
		{
			name: "valid assessment",
			assessment: &Assessment{
				Verdict:         VerdictWellCovered,
				Confidence:      0.85,
				BranchRelevance: BranchSpecific,
				Comparisons: []Comparison{
					{Id: "pub.1", Score: 0.85, Overlap: OverlapHigh, Branch: BranchNavy},
				},
			},
		},
		{
			name:    "nil assessment",
			wantErr: ErrInvalidAssessment,
		},
		{
			name: "unknown verdict",
			assessment: &Assessment{
				Verdict:    Verdict("MAYBE"),
				Confidence: 0.5,
			},
			wantErr: ErrInvalidVerdict,
		},
		{
			name: "confidence out of range",
			assessment: &Assessment{
				Verdict:    VerdictOpen,
				Confidence: 1.2,
			},
			wantErr: ErrScoreOutOfRange,
		},
		{
			name: "comparison score out of range",
			assessment: &Assessment{
				Verdict:    VerdictMixed,
				Confidence: 0.5,
				Comparisons: []Comparison{
					{Id: "pub.1", Score: -0.1},
				},
			},
			wantErr: ErrScoreOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssessment(tt.assessment)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssessment() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssessment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
