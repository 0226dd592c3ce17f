package openai

import (
	"fmt"
	"strings"

	"github.com/poiesic/landscape/ai"
)

const narratorSystemPrompt = `You are a research landscape analyst for defense research program managers.
You receive a completed, pre-computed landscape assessment of a proposed research topic against
previously funded publications. The verdict, confidence, branch relevance, and per-publication
overlap ratings are already computed and final. Do not recompute, question, or restate them as
your own judgment calls.

Write a concise narrative summary (3-6 paragraphs of plain prose) that:
- explains what the assessment means for the requesting branch
- walks through the most relevant prior publications and how they overlap with the topic
- notes where the topic appears to differ from prior funded work

Output prose only. No headings, no lists, no JSON, no restated metrics tables.`

// buildNarrativePrompt formats the frozen assessment and candidate texts into
// the user prompt for the narrator model.
func buildNarrativePrompt(input *ai.NarrativeInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.TopicTitle)
	if input.TopicDescription != "" {
		fmt.Fprintf(&b, "Description: %s\n", input.TopicDescription)
	}
	fmt.Fprintf(&b, "Requesting branch: %s\n\n", input.RequestingBranch)

	fmt.Fprintf(&b, "Computed assessment (final, do not alter):\n")
	fmt.Fprintf(&b, "- Verdict: %s\n", input.Verdict)
	fmt.Fprintf(&b, "- Confidence: %.2f\n", input.Confidence)
	fmt.Fprintf(&b, "- Branch relevance: %s\n\n", input.BranchRelevance)

	if len(input.Comparisons) == 0 {
		b.WriteString("No publications scored above the relevance threshold.\n")
		return b.String()
	}

	b.WriteString("Ranked comparisons:\n")
	for i, comparison := range input.Comparisons {
		fmt.Fprintf(&b, "%d. [%s] %s (similarity=%.3f, overlap=%s, branch=%s)\n",
			i+1, comparison.Id, comparison.Title, comparison.Score, comparison.Overlap, comparison.Branch)
		if text, ok := input.CandidateTexts[comparison.Id]; ok && text != "" {
			fmt.Fprintf(&b, "   %s\n", truncate(text, 600))
		}
	}

	return b.String()
}

// truncate shortens a string to at most n bytes, cutting at a space when possible.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if idx := strings.LastIndexByte(cut, ' '); idx > n/2 {
		cut = cut[:idx]
	}
	return cut + "..."
}
