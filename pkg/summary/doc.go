// Package summary renders the review-step overview of a submission: what was
// entered per section, the blocking errors grouped by wizard step, advisory
// warnings and the compute result. Output is Markdown, optionally converted
// to HTML.
package summary
