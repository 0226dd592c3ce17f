package scoring

import (
	"math"

	"github.com/poiesic/landscape/core"
)

// IDFTable maps normalized topic keywords to inverse-document-frequency
// weights computed over one run's candidate pool. Built once per run,
// read-only afterward. Not shared across runs.
type IDFTable struct {
	weights     map[string]float64
	totalWeight float64
}

// NewIDFTable computes IDF weights for the topic keywords against the pool.
// Document frequency counts candidates whose text contains the keyword.
// Weight = log((N+1)/(df+1)) + 1, always positive, higher for rarer
// keywords, with floor 1 when a keyword appears in every candidate. A pool
// of size 0 or 1 degenerates every weight toward 1; that is expected, not
// an error.
func NewIDFTable(keywords []string, pool []*core.Candidate) *IDFTable {
	table := &IDFTable{weights: make(map[string]float64)}

	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		kw := normalizeText(keyword)
		if kw == "" {
			continue
		}
		if _, dup := table.weights[kw]; dup {
			continue
		}
		table.weights[kw] = 0
		normalized = append(normalized, kw)
	}
	if len(normalized) == 0 {
		return table
	}

	texts := make([]string, len(pool))
	for i, candidate := range pool {
		texts[i] = normalizeText(candidate.Text())
	}

	n := float64(len(pool))
	for _, kw := range normalized {
		df := 0.0
		for _, text := range texts {
			if containsKeyword(text, kw) {
				df++
			}
		}
		weight := math.Log((n+1)/(df+1)) + 1
		table.weights[kw] = weight
		table.totalWeight += weight
	}

	return table
}

// Defined reports whether the table carries any keywords. When false, the
// concept score is undefined and fused scoring falls back to holistic
// similarity alone.
func (t *IDFTable) Defined() bool {
	return len(t.weights) > 0
}

// Weight returns the IDF weight for a keyword, normalizing it first.
// Unknown keywords weigh zero.
func (t *IDFTable) Weight(keyword string) float64 {
	return t.weights[normalizeText(keyword)]
}

// ConceptScore returns the weighted fraction of topic keywords present in
// the text: sum of matched keyword weights over the total keyword weight.
// Always in [0, 1]. Empty text scores zero.
func (t *IDFTable) ConceptScore(text string) float64 {
	if !t.Defined() || t.totalWeight == 0 {
		return 0
	}
	normalized := normalizeText(text)
	if normalized == "" {
		return 0
	}

	matched := 0.0
	for kw, weight := range t.weights {
		if containsKeyword(normalized, kw) {
			matched += weight
		}
	}
	return matched / t.totalWeight
}
