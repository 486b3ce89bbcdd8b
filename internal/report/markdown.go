package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/coprimepi/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// goodEstimateThreshold is the percentage difference under which an
// estimate is reported as close.
const goodEstimateThreshold = 1.0

// MarkdownWriter outputs reports in Markdown format.
// The report holds a table of the run fields, a mermaid pie chart of coprime
// against non-coprime pairs, and an alert describing the estimate quality.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(result *model.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Pi Estimate")
	md.PlainText("")

	w.writeSummary(md, result)
	w.writePieChart(md, result)
	w.writeAlert(md, result)

	return len(md.String()), md.Build()
}

// writeSummary writes the result table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, result *model.Result) {
	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Pairs Generated", strconv.FormatInt(result.Pairs, 10)},
			{"Max Number", strconv.FormatInt(result.MaxNumber, 10)},
			{"Co-prime Pairs", strconv.FormatInt(result.CoprimeCount, 10)},
			{"Pi Approximation", formatFloat(result.Estimate)},
			{"Pi Real Value", formatFloat(result.Reference)},
			{"Percentage Difference", fmt.Sprintf("%.2f%%", result.RoundedPercentDifference())},
		},
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the pair distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, result *model.Result) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Sampled Pairs"),
		piechart.WithShowData(true),
	)

	if result.CoprimeCount > 0 {
		chart.LabelAndIntValue("Co-prime", uint64(result.CoprimeCount))
	}
	if n := result.NonCoprimeCount(); n > 0 {
		chart.LabelAndIntValue("Shared factor", uint64(n))
	}

	md.H2("Distribution")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes a tip or a note depending on how close the estimate is.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.Result) {
	diff := result.RoundedPercentDifference()
	if diff < goodEstimateThreshold {
		md.Tip(fmt.Sprintf("Estimate is within %.2f%% of pi.", diff))
	} else {
		md.Note(fmt.Sprintf("Estimate differs from pi by %.2f%%. Sample more pairs or raise the maximum number for a closer result.", diff))
	}
	md.PlainText("")
}
