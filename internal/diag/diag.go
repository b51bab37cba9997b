// Package diag formats compiler diagnostics: the caret-underlined,
// file:line:col-anchored messages produced by every pass.
package diag

import (
	"fmt"
	"strings"

	"github.com/Azzajazz/lcl/internal/source"
	"github.com/Azzajazz/lcl/internal/token"
)

// Kind distinguishes which pass produced a Diagnostic, for callers
// that want to filter or count by category.
type Kind string

const (
	KindParse    Kind = "parse"
	KindResolve  Kind = "resolve"
	KindType     Kind = "type"
)

// Diagnostic is one reported error, anchored at a span in the source
// buffer.
type Diagnostic struct {
	Kind    Kind
	Message string
	Span    token.Span
}

// New constructs a Diagnostic.
func New(kind Kind, message string, span token.Span) Diagnostic {
	return Diagnostic{Kind: kind, Message: message, Span: span}
}

// Format renders one diagnostic as:
//
//	<file>:<line>:<col>: ERROR! <message>:
//	<source line>
//	     ^
//
// Spans covering more than one line instead print every covered line
// prefixed with "Line N: ", eliding the middle with "..." when there
// are more than two. A zero span (no position) prints the header line
// only.
func (d Diagnostic) Format(buf *source.Buffer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: ERROR! %s:\n", buf.Name, d.Span.Start.Line, d.Span.Start.Column, d.Message)
	if d.Span.Start.Line < 1 || d.Span.Start.Column < 1 {
		return b.String()
	}

	if d.Span.Start.Line == d.Span.End.Line {
		line := buf.Line(d.Span.Start.Line)
		b.WriteString(line)
		b.WriteString("\n")
		width := d.Span.End.Column - d.Span.Start.Column
		if width < 1 {
			width = 1
		}
		b.WriteString(strings.Repeat(" ", d.Span.Start.Column-1))
		b.WriteString(strings.Repeat("^", width))
		b.WriteString("\n")
		return b.String()
	}

	writeLine := func(n int) {
		fmt.Fprintf(&b, "Line %d: %s\n", n, buf.Line(n))
	}
	writeLine(d.Span.Start.Line)
	if d.Span.End.Line-d.Span.Start.Line > 1 {
		b.WriteString("...\n")
	}
	writeLine(d.Span.End.Line)
	return b.String()
}

// FormatAll renders every diagnostic in ds, each followed by a blank
// line, preceded by an aggregate "N error(s)" summary when there is
// more than one.
func FormatAll(ds []Diagnostic, buf *source.Buffer) string {
	var b strings.Builder
	if len(ds) > 1 {
		fmt.Fprintf(&b, "compilation failed with %d error(s):\n\n", len(ds))
	}
	for _, d := range ds {
		b.WriteString(d.Format(buf))
		b.WriteString("\n")
	}
	return b.String()
}
