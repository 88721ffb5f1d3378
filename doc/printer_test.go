package doc_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/rw1nkler/xls/doc"
)

func TestGroupFlatWhenItFits(t *testing.T) {
	a := doc.NewArena()
	items := a.ConcatN(a.Text("a"), a.Comma(), a.Break1(), a.Text("b"), a.Comma(), a.Break1(), a.Text("c"))
	d := a.ConcatN(a.Text("f("), a.Group(items), a.Text(")"))
	got := a.Print(d, 80)
	assert.Equal(t, "f(a, b, c)\n", got)
}

func TestGroupBreaksWhenItOverflows(t *testing.T) {
	a := doc.NewArena()
	items := a.ConcatN(a.Text("aaaaaaaaaa"), a.Comma(), a.Break1(), a.Text("bbbbbbbbbb"), a.Comma(), a.Break1(), a.Text("cccccccccc"))
	d := a.ConcatN(a.Text("f("), a.Nest(a.Group(items)), a.Text(")"))
	got := a.Print(d, 10)
	assert.Equal(t, "f(aaaaaaaaaa,\n    bbbbbbbbbb,\n    cccccccccc)\n", got)
}

func TestHardLineForcesEnclosingGroupToBreak(t *testing.T) {
	a := doc.NewArena()
	body := a.ConcatN(a.Text("a"), a.HardLine(), a.Text("b"))
	d := a.Group(body)
	got := a.Print(d, 80)
	assert.Equal(t, "a\nb\n", got)
}

func TestAlignPinsIndentToColumn(t *testing.T) {
	a := doc.NewArena()
	inner := a.ConcatN(a.Text("x"), a.HardLine(), a.Text("y"))
	d := a.ConcatN(a.Text("let v = "), a.Align(inner))
	got := a.Print(d, 80)
	assert.Equal(t, "let v = x\n        y\n", got)
}

func TestFlatChoiceSelectsByMode(t *testing.T) {
	a := doc.NewArena()
	choice := a.FlatChoice(a.Text("flat"), a.Text("broken"))
	flatDoc := a.Group(a.ConcatN(a.Text("("), choice, a.Text(")")))
	got := a.Print(flatDoc, 80)
	assert.Equal(t, "(flat)\n", got)

	broken := a.ConcatN(a.Text("("), a.HardLine(), choice, a.Text(")"))
	got2 := a.Print(a.Group(broken), 80)
	assert.Equal(t, "(\nbroken)\n", got2)
}

func TestPrefixedReflowWrapsLongComment(t *testing.T) {
	a := doc.NewArena()
	d := a.PrefixedReflow("// ", "one two three four five six seven eight nine ten")
	got := a.Print(d, 20)
	assert.Equal(t, "// one two three\n// four five six\n// seven eight nine\n// ten\n", got)
}

func TestNoTrailingWhitespace(t *testing.T) {
	a := doc.NewArena()
	d := a.ConcatN(a.Text("a"), a.Break1(), a.HardLine(), a.Text("b"))
	got := a.Print(d, 80)
	for _, line := range splitLines(got) {
		assert.False(t, hasTrailingSpace(line))
	}
}

func splitLines(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			out = append(out, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	return out
}

func hasTrailingSpace(s string) bool {
	return len(s) > 0 && s[len(s)-1] == ' '
}
