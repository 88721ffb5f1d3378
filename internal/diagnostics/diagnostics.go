// Package diagnostics renders the formatter's own errors the way a
// user expects from a source-aware tool: the offending span plus the
// source line it points into, not just a bare message.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/rw1nkler/xls/span"
)

// FormatError reports that some AST node could not be rendered: either
// it names an unsupported construct (UnrollFor) or it violates an
// invariant the formatter enforces (a Let with more than one attached
// comment). AutoFmt returns it as an ordinary error value, so a library
// caller can recover; the CLI reports it, and `check` records it for
// the file and goes on with the remaining files.
type FormatError struct {
	NodeKind string
	Span     span.Span
	Reason   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: cannot format %s: %s", e.Span, e.NodeKind, e.Reason)
}

// Formatter renders a *FormatError for display, optionally annotated
// with a line of the original source.
type Formatter interface {
	Format(err *FormatError) string
}

// TextFormatter renders a FormatError as plain text with a caret
// pointing at the offending column, when source is available.
type TextFormatter struct {
	// Source is the original file content the error's span indexes
	// into. May be left nil, in which case Format falls back to the
	// bare message.
	Source []byte
}

func (tf TextFormatter) Format(err *FormatError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n  --> %s\n", err.Error(), err.Span.Start)

	if tf.Source == nil {
		return b.String()
	}
	line := sourceLine(tf.Source, err.Span.Start.Line)
	if line == "" {
		return b.String()
	}
	fmt.Fprintf(&b, "    %s\n    %s^\n", line, strings.Repeat(" ", max(0, err.Span.Start.Column-1)))
	return b.String()
}

func sourceLine(source []byte, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(string(source), "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// JSONFormatter renders a FormatError as a single-line machine-readable
// record. The CLI does not use it; its commands render with
// TextFormatter.
type JSONFormatter struct{}

func (JSONFormatter) Format(err *FormatError) string {
	return fmt.Sprintf(`{"node":%q,"span":%q,"reason":%q}`, err.NodeKind, err.Span.String(), err.Reason)
}
