package doc_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/rw1nkler/xls/doc"
)

func TestDisplayWidthIsUnicodeAware(t *testing.T) {
	assert.Equal(t, 5, doc.DisplayWidth("hello"))
	assert.Equal(t, 4, doc.DisplayWidth("你好"))
}

func TestAtomsAreInterned(t *testing.T) {
	a := doc.NewArena()
	assert.Equal(t, a.Comma(), a.Comma())
	assert.Equal(t, a.Keyword("fn"), a.Keyword("fn"))
}

func TestConcatSkipsEmpty(t *testing.T) {
	a := doc.NewArena()
	x := a.Text("x")
	assert.Equal(t, x, a.Concat(a.Empty(), x))
	assert.Equal(t, x, a.Concat(x, a.Empty()))
}
