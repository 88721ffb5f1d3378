package comments_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/rw1nkler/xls/comments"
	"github.com/rw1nkler/xls/span"
)

func pos(line, col int) span.Position { return span.Position{Line: line, Column: col} }

func TestHasAndGetComments(t *testing.T) {
	idx := comments.New([]comments.Data{
		{Span: span.NewSpan(pos(2, 1), pos(2, 20)), Text: "first"},
		{Span: span.NewSpan(pos(5, 1), pos(5, 10)), Text: "second"},
	})

	assert.True(t, idx.HasComments(span.NewSpan(pos(1, 1), pos(6, 1))))
	assert.False(t, idx.HasComments(span.NewSpan(pos(10, 1), pos(12, 1))))

	got := idx.GetComments(span.NewSpan(pos(1, 1), pos(6, 1)))
	assert.Equal(t, 2, len(got))
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
}

func TestSameLineCollisionLastWins(t *testing.T) {
	idx := comments.New([]comments.Data{
		{Span: span.NewSpan(pos(3, 1), pos(3, 5)), Text: "old"},
		{Span: span.NewSpan(pos(3, 1), pos(3, 5)), Text: "new"},
	})
	got := idx.GetComments(span.NewSpan(pos(3, 1), pos(3, 5)))
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "new", got[0].Text)
}

func TestLastDataLimit(t *testing.T) {
	idx := comments.New(nil)
	_, ok := idx.LastDataLimit()
	assert.False(t, ok)

	idx = comments.New([]comments.Data{
		{Span: span.NewSpan(pos(2, 1), pos(2, 5)), Text: "a"},
		{Span: span.NewSpan(pos(9, 1), pos(9, 30)), Text: "b"},
	})
	limit, ok := idx.LastDataLimit()
	assert.True(t, ok)
	assert.Equal(t, pos(9, 30), limit)
}
