package search

import (
	"strings"

	"github.com/poiesic/landscape/core"
)

// branchPatterns maps each branch to the funding-text markers that identify
// it: agency names, office acronyms, and grant number prefixes. Order
// matters: the first branch with a matching pattern wins, so more specific
// organizations come before the generic DoD bucket.
var branchPatterns = []struct {
	branch   core.Branch
	patterns []string
}{
	{core.BranchNavy, []string{
		"naval", "onr", "office of naval research", "nrl",
		"naval research laboratory", "n00014", "navy",
	}},
	{core.BranchArmy, []string{
		"aro", "arl", "army research office", "army research laboratory",
		"w911nf", "army",
	}},
	{core.BranchAirForce, []string{
		"afosr", "afrl", "air force office of scientific research",
		"air force research laboratory", "fa8650", "fa9550", "air force",
	}},
	{core.BranchDARPA, []string{
		"darpa", "defense advanced research projects agency", "hr0011",
	}},
	{core.BranchDOD, []string{
		"dod", "department of defense", "osd",
	}},
	{core.BranchMarineCorps, []string{
		"marine corps", "usmc", "marines",
	}},
	{core.BranchSpaceForce, []string{
		"space force", "ussf",
	}},
}

// DetectBranch scans funding or acknowledgement text for branch markers and
// returns the first branch whose pattern appears. Returns BranchUnknown when
// the text is empty or no pattern matches.
func DetectBranch(text string) core.Branch {
	if text == "" {
		return core.BranchUnknown
	}
	lower := strings.ToLower(text)
	for _, entry := range branchPatterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lower, pattern) {
				return entry.branch
			}
		}
	}
	return core.BranchUnknown
}
