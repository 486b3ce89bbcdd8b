package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/coprimepi/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// separator divides the sampling summary from the estimate.
const separator = "----------------------------"

// TextWriter outputs human-readable text reports.
// Integers are grouped according to the writer's language, so a run over
// a million pairs reads "1,000,000" in English.
type TextWriter struct {
	baseWriter

	// tag selects the locale used for number formatting.
	tag language.Tag

	// showElapsed adds the run duration to the report.
	showElapsed bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithLanguage sets the locale used for number formatting.
func WithLanguage(tag language.Tag) TextWriterOption {
	return func(w *TextWriter) {
		w.tag = tag
	}
}

// WithElapsed appends the run duration to the report.
func WithElapsed(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showElapsed = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		tag:        language.English,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report as plain text.
func (w *TextWriter) Write(result *model.Result) (int, error) {
	p := message.NewPrinter(w.tag)

	var sb strings.Builder
	p.Fprintf(&sb, "Generated %d pairs of random numbers between 1 and %d\n", result.Pairs, result.MaxNumber)
	p.Fprintf(&sb, "Number of co-prime pairs: %d\n", result.CoprimeCount)
	sb.WriteString(separator + "\n")
	sb.WriteString("Pi approximation is " + formatFloat(result.Estimate) + "\n")
	sb.WriteString("Pi real value is " + formatFloat(result.Reference) + "\n")
	p.Fprintf(&sb, "Percentage difference is %.2f%%\n", result.RoundedPercentDifference())
	if w.showElapsed {
		sb.WriteString("Elapsed " + result.Elapsed.String() + "\n")
	}

	return io.WriteString(w.output, sb.String())
}

// formatFloat renders f with the shortest representation that round-trips.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
