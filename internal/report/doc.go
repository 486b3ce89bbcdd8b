// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - TextWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown output for documentation and sharing
//
// TraceWriter is separate from the report writers: it prints one line per
// sampled pair while the estimation runs.
//
// Report writing is kept apart from the data structures in the model
// package, so new output formats need no change to the estimator.
package report
