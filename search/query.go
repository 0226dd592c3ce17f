package search

import (
	"strings"

	"github.com/poiesic/landscape/core"
)

// Query variant strategies. The strategy is a label only; sources treat all
// variants identically.
const (
	StrategyTitle    = "title"
	StrategyKeywords = "keywords"
	StrategyExcerpt  = "topic_excerpt"
	StrategyCombined = "combined"
)

// excerptWords is how many leading words of the description form the
// excerpt variant.
const excerptWords = 40

// Query is one search request against a publication source.
type Query struct {
	Text     string
	Strategy string
}

// QueryVariants expands a topic into multiple search queries for broader
// coverage. The title variant is always present; the keywords, excerpt and
// combined variants are added only when the topic carries the inputs they
// need.
func QueryVariants(topic *core.Topic) []Query {
	queries := make([]Query, 0, 4)

	queries = append(queries, Query{Text: topic.Title, Strategy: StrategyTitle})

	if len(topic.Keywords) > 0 {
		queries = append(queries, Query{
			Text:     strings.Join(topic.Keywords, " "),
			Strategy: StrategyKeywords,
		})
	}

	// Excerpt only helps when the description is long enough to carry
	// signal beyond the title.
	words := strings.Fields(topic.Description)
	if len(words) > 10 {
		if len(words) > excerptWords {
			words = words[:excerptWords]
		}
		queries = append(queries, Query{
			Text:     strings.Join(words, " "),
			Strategy: StrategyExcerpt,
		})
	}

	if len(topic.Keywords) > 0 {
		keywords := topic.Keywords
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}
		queries = append(queries, Query{
			Text:     topic.Title + " " + strings.Join(keywords, " "),
			Strategy: StrategyCombined,
		})
	}

	return queries
}
