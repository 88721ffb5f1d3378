// Package comments implements the comment index: a mapping from source
// line number to the comment recovered on that line, built once from the
// flat comment list the lexer hands the formatter.
package comments

import "github.com/rw1nkler/xls/span"

// Data is a single recovered comment token. The grammar this formatter
// serves has no multi-line comments, so Span always lies on one line.
type Data struct {
	Span span.Span
	Text string
}

// Index answers span-shaped queries about recovered comments: "does this
// span contain any comments" and "give me every comment in this span, in
// ascending line order".
type Index struct {
	lineToComment map[int]Data
	lastDataLimit *span.Position
}

// New builds an Index from an unordered list of comment tokens. If two
// comments start on the same line, the later one in the input slice wins —
// see DESIGN.md's note on this; it mirrors the upstream lexer/formatter
// behavior being generalized rather than correcting it.
func New(data []Data) *Index {
	idx := &Index{lineToComment: make(map[int]Data, len(data))}
	for _, cd := range data {
		idx.lineToComment[cd.Span.Start.Line] = cd
		if idx.lastDataLimit == nil || idx.lastDataLimit.Less(cd.Span.Limit) {
			limit := cd.Span.Limit
			idx.lastDataLimit = &limit
		}
	}
	return idx
}

// HasComments reports whether any recorded comment line falls within
// [s.Start.Line, s.Limit.Line].
func (idx *Index) HasComments(s span.Span) bool {
	for line := s.Start.Line; line <= s.Limit.Line; line++ {
		if _, ok := idx.lineToComment[line]; ok {
			return true
		}
	}
	return false
}

// GetComments returns every comment whose line falls within
// [s.Start.Line, s.Limit.Line], in ascending line order.
func (idx *Index) GetComments(s span.Span) []Data {
	var out []Data
	for line := s.Start.Line; line <= s.Limit.Line; line++ {
		if cd, ok := idx.lineToComment[line]; ok {
			out = append(out, cd)
		}
	}
	return out
}

// LastDataLimit returns the limit position of the comment that extends
// furthest into the file, used by the top-level driver to flush trailing
// comments after the final module member.
func (idx *Index) LastDataLimit() (span.Position, bool) {
	if idx.lastDataLimit == nil {
		return span.Position{}, false
	}
	return *idx.lastDataLimit, true
}
