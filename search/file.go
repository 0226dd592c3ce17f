package search

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/landscape/core"
)

// fileCandidate is the on-disk JSON shape of one candidate record.
type fileCandidate struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Keywords []string `json:"keywords"`
	Year     int      `json:"year"`
	URL      string   `json:"url"`
	Branch   string   `json:"branch"`
	Funding  string   `json:"funding"`
}

// FileSource serves a fixed candidate set loaded from a JSON file.
// It supports offline runs where no publication endpoint is reachable.
// Queries are ignored: every Search returns the full set.
type FileSource struct {
	candidates []*core.Candidate
}

// NewFileSource loads candidates from a JSON file. The file holds an array
// of candidate records. Branch may be given explicitly; otherwise it is
// detected from the funding text.
func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidate file: %w", err)
	}

	var records []fileCandidate
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing candidate file: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoCandidates
	}

	candidates := make([]*core.Candidate, 0, len(records))
	for _, record := range records {
		branch := core.Branch(record.Branch)
		if branch == "" {
			branch = DetectBranch(record.Funding)
		}
		candidates = append(candidates, &core.Candidate{
			Id:       core.IDFromContent(record.ID),
			SourceID: record.ID,
			Title:    record.Title,
			Abstract: record.Abstract,
			Keywords: record.Keywords,
			Year:     record.Year,
			URL:      record.URL,
			Branch:   branch,
		})
	}

	return &FileSource{candidates: candidates}, nil
}

// Search returns the full candidate set regardless of query.
func (f *FileSource) Search(_ context.Context, _ Query) ([]*core.Candidate, error) {
	return f.candidates, nil
}

// SearchAll returns the deduplicated candidate set once, no matter how many
// queries are given.
func (f *FileSource) SearchAll(_ context.Context, _ []Query) ([]*core.Candidate, error) {
	return Aggregate(f.candidates), nil
}
