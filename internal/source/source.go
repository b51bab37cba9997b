// Package source holds the raw text of a compilation unit and serves
// line-oriented views of it for diagnostics.
package source

import "strings"

// Buffer is the in-memory source text for one input file, plus its
// name for diagnostic headers. The diag package borrows line views
// from it when formatting; the lexer and parser work on the raw text
// and do not use a Buffer.
type Buffer struct {
	Name string
	Text string

	lines []string
}

// New wraps raw text from the named file.
func New(name, text string) *Buffer {
	return &Buffer{Name: name, Text: text}
}

// Line returns the 1-indexed source line, or "" if out of range.
func (b *Buffer) Line(n int) string {
	b.ensureLines()
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	b.ensureLines()
	return len(b.lines)
}

func (b *Buffer) ensureLines() {
	if b.lines != nil {
		return
	}
	text := strings.TrimRight(b.Text, "\n")
	if text == "" {
		b.lines = []string{""}
		return
	}
	b.lines = strings.Split(text, "\n")
}
