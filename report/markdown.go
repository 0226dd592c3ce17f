package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/pipeline"
)

var verdictBadges = map[core.Verdict]string{
	core.VerdictOpen:              "OPEN",
	core.VerdictBranchOpportunity: "BRANCH OPPORTUNITY",
	core.VerdictWellCovered:       "WELL COVERED",
	core.VerdictMixed:             "MIXED",
}

var verdictDescriptions = map[core.Verdict]string{
	core.VerdictOpen:              "No substantially similar work was found in the searched landscape.",
	core.VerdictBranchOpportunity: "Strongly similar work exists but was funded by a different branch.",
	core.VerdictWellCovered:       "Strongly similar work funded by the requesting branch already exists.",
	core.VerdictMixed:             "Partial overlaps were found that require human expert judgment.",
}

// RenderMarkdown generates a full Markdown report from a completed run.
func RenderMarkdown(run *pipeline.Run) string {
	var b strings.Builder
	assessment := run.Assessment

	fmt.Fprintf(&b, "# Research Landscape Assessment Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", time.Now().UTC().Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "---\n\n")

	fmt.Fprintf(&b, "## Verdict: %s\n\n", verdictBadges[assessment.Verdict])
	fmt.Fprintf(&b, "**Confidence:** %.0f%%\n\n", assessment.Confidence*100)
	fmt.Fprintf(&b, "> %s\n\n", verdictDescriptions[assessment.Verdict])
	fmt.Fprintf(&b, "**Branch Relevance:** %s\n\n", assessment.BranchRelevance)
	fmt.Fprintf(&b, "---\n\n")

	fmt.Fprintf(&b, "## Topic Summary\n\n")
	fmt.Fprintf(&b, "**Title:** %s\n\n", run.Topic.Title)
	fmt.Fprintf(&b, "**Requesting Branch:** %s\n\n", run.Topic.Branch)
	if run.Topic.Description != "" {
		fmt.Fprintf(&b, "**Description:** %s\n\n", run.Topic.Description)
	}
	if len(run.Topic.Keywords) > 0 {
		fmt.Fprintf(&b, "**Keywords:** %s\n\n", strings.Join(run.Topic.Keywords, ", "))
	}

	if run.Narrative != "" {
		fmt.Fprintf(&b, "---\n\n## Executive Summary\n\n%s\n\n", run.Narrative)
	}

	fmt.Fprintf(&b, "---\n\n## Search Statistics\n\n")
	fmt.Fprintf(&b, "- **Queries Used:** %d\n", len(run.Queries))
	fmt.Fprintf(&b, "- **Unique Candidates Found:** %d\n", run.PoolSize)
	fmt.Fprintf(&b, "- **Above Relevance Threshold:** %d\n", len(run.Comparisons))
	if len(run.Dropped) > 0 {
		fmt.Fprintf(&b, "- **Dropped Before Scoring:** %d\n", len(run.Dropped))
	}
	b.WriteString("\n")

	if len(run.Queries) > 0 {
		fmt.Fprintf(&b, "### Search Queries\n\n")
		for i, query := range run.Queries {
			fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, query.Strategy, query.Text)
		}
		b.WriteString("\n")
	}

	if len(assessment.Comparisons) > 0 {
		fmt.Fprintf(&b, "---\n\n## Ranked Comparisons\n\n")
		fmt.Fprintf(&b, "| Rank | Title | Score | Overlap | Branch |\n")
		fmt.Fprintf(&b, "|------|-------|-------|---------|--------|\n")
		for i, comparison := range assessment.Comparisons {
			fmt.Fprintf(&b, "| %d | %s | %.3f | %s | %s |\n",
				i+1, truncateTitle(comparison.Title), comparison.Score,
				comparison.Overlap, comparison.Branch)
		}
		b.WriteString("\n")
	}

	if len(run.Dropped) > 0 {
		fmt.Fprintf(&b, "---\n\n## Dropped Candidates\n\n")
		for _, dropped := range run.Dropped {
			fmt.Fprintf(&b, "- %s (%s): %s\n", dropped.SourceID, dropped.Title, dropped.Reason)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func truncateTitle(title string) string {
	const maxLen = 60
	runes := []rune(title)
	if len(runes) <= maxLen {
		return title
	}
	return string(runes[:maxLen]) + "..."
}
