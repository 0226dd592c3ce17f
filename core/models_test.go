package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "same content produces same ID", content: "pub.1000123"},
		{name: "empty string", content: ""},
		{name: "long content", content: "Autonomous underwater vehicle swarm coordination for mine countermeasures"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("pub.1000123")
	id2 := IDFromContent("pub.1000124")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestTopic_Text(t *testing.T) {
	tests := []struct {
		name  string
		topic Topic
		want  string
	}{
		{
			name:  "title only",
			topic: Topic{Title: "Underwater acoustic networks"},
			want:  "Underwater acoustic networks",
		},
		{
			name: "title and description",
			topic: Topic{
				Title:       "Underwater acoustic networks",
				Description: "Low-latency comms for AUV swarms.",
			},
			want: "Underwater acoustic networks Low-latency comms for AUV swarms.",
		},
		{
			name: "with keywords",
			topic: Topic{
				Title:    "Underwater acoustic networks",
				Keywords: []string{"acoustics", "AUV"},
			},
			want: "Underwater acoustic networks Keywords: acoustics, AUV",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.topic.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCandidate_Text(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		want      string
	}{
		{
			name:      "title and abstract",
			candidate: Candidate{Title: "A survey", Abstract: "We survey things."},
			want:      "A survey We survey things.",
		},
		{
			name:      "keywords included",
			candidate: Candidate{Title: "A survey", Keywords: []string{"sonar", "autonomy"}},
			want:      "A survey sonar autonomy",
		},
		{
			name:      "empty candidate",
			candidate: Candidate{},
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.candidate.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
