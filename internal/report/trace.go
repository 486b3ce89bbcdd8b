package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nao1215/coprimepi/internal/model"
)

// TraceWriter prints one line per sampled pair.
// Output is buffered; call Flush once the estimation has finished.
// The first write error is kept and later writes are skipped.
type TraceWriter struct {
	output *bufio.Writer
	err    error
}

// NewTraceWriter creates a TraceWriter that outputs to the given writer.
func NewTraceWriter(output io.Writer) *TraceWriter {
	return &TraceWriter{output: bufio.NewWriter(output)}
}

// Trace writes a single pair. Its signature matches coprime.TraceFunc.
func (w *TraceWriter) Trace(pair model.Pair) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.output, "Pair %d generated: <%d,%d> GCD = %d Co-prime count = %d\n",
		pair.Index, pair.X, pair.Y, pair.GCD, pair.CoprimeCount)
}

// Flush writes any buffered lines and returns the first error encountered.
func (w *TraceWriter) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.output.Flush()
}
