// Package report renders completed runs for human consumption: a Markdown
// assessment report and a 2D landscape map for scatter-plot visualization.
// Both consumers reuse the scoring package's overlap thresholds and the
// ranker's below-threshold labels rather than re-deriving their own.
package report
