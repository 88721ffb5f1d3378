package astfmt

import "github.com/rw1nkler/xls/doc"

// joinKind selects one of the five ways a delimited list of documents
// gets glued together.
type joinKind int

const (
	// commaSpace never breaks: "a, b, c". Used for short fixed-arity
	// lists like parametric instantiations where breaking would look
	// strange (no one wraps `<u32, u8>` across lines).
	commaSpace joinKind = iota
	// commaBreak1 puts a comma after every item and a Break1 between
	// them, all under one enclosing Group; when broken, also appends
	// a trailing comma after the final item.
	commaBreak1
	// commaBreak1AsGroup groups each item with its own leading Break1
	// and trailing comma, independently of its neighbors, so a long
	// sequence can reflow several short items per line instead of
	// breaking one-per-line. Used for array literal members.
	commaBreak1AsGroup
	// spaceBarBreak joins with " | " when flat; when the list does not
	// fit, it breaks after each "|" so the next item starts a new line —
	// used for match-arm pattern lists.
	spaceBarBreak
	// hardLineJoin puts every item on its own line unconditionally,
	// each followed by a trailing comma, with no trailing HardLine
	// after the last item (the caller's own closing brace follows
	// instead — used for enum members).
	hardLineJoin
)

// join renders items per kind.
func (f *formatter) join(kind joinKind, items []doc.Handle) doc.Handle {
	a := f.arena
	if len(items) == 0 {
		return a.Empty()
	}

	switch kind {
	case commaSpace:
		out := items[0]
		for _, it := range items[1:] {
			out = a.ConcatN(out, a.Comma(), a.Space(), it)
		}
		return out

	case commaBreak1:
		var body doc.Handle = a.Empty()
		for i, it := range items {
			if i > 0 {
				body = a.ConcatN(body, a.Break1())
			}
			trailing := a.FlatChoice(a.Empty(), a.Comma())
			if i < len(items)-1 {
				trailing = a.Comma()
			}
			body = a.ConcatN(body, it, trailing)
		}
		return body

	case commaBreak1AsGroup:
		if len(items) == 1 {
			return items[0]
		}
		out := a.Empty()
		for i, it := range items {
			if i == len(items)-1 {
				out = a.ConcatN(out, a.Group(a.ConcatN(a.Break1(), it)), a.FlatChoice(a.Empty(), a.Comma()))
				continue
			}
			this := it
			if i > 0 {
				this = a.ConcatN(a.Break1(), it)
			}
			out = a.ConcatN(out, a.Group(a.ConcatN(this, a.Comma())))
		}
		return out

	case spaceBarBreak:
		out := items[0]
		for _, it := range items[1:] {
			out = a.ConcatN(out, a.Space(), a.Bar(), a.Break1(), it)
		}
		return a.Group(out)

	case hardLineJoin:
		out := items[0]
		for _, it := range items[1:] {
			out = a.ConcatN(out, a.Comma(), a.HardLine(), it)
		}
		return a.ConcatN(out, a.Comma())

	default:
		return a.Empty()
	}
}
