// Package doc implements a Wadler/Lindig-style document algebra: documents
// are built bottom-up from atomic pieces into an immutable, append-only
// arena, then rendered by choosing a flat or broken layout for every Group
// so the result fits a target width wherever the grammar allows a break.
//
// The node shapes (Text, HardLine, Break, Concat, Group, Nest, Align,
// FlatChoice, PrefixedReflow) and the arena-of-handles ownership model are
// grounded on the two collaborating halves of the cockroachdb SQL
// pretty-printer (see DESIGN.md): doc.go's Doc algebra for the vocabulary,
// and pretty.go's renderer for the fits/layout split — adapted here to a
// simpler single-pass stack renderer (no memoized union search; HardLine
// forces break unconditionally instead of being compared against an
// alternative).
package doc

import "github.com/mattn/go-runewidth"

// Handle is a stable reference to a node in an Arena. Handles are never
// reused and stay valid for the lifetime of the Arena that produced them.
type Handle int

const invalidHandle Handle = -1

type kind uint8

const (
	kEmpty kind = iota
	kText
	kHardLine
	kBreak
	kConcat
	kGroup
	kNest
	kAlign
	kFlatChoice
	kPrefixedReflow
)

type node struct {
	kind kind

	// kText: text content and its precomputed display width.
	// kBreak: flat-mode replacement text (and its width); break-mode always
	// emits a newline plus indentation.
	// kPrefixedReflow: text holds the prefix, alt holds the body text.
	text  string
	alt   string
	width int

	// kConcat: a then b. kFlatChoice: a is the flat choice, b is the break
	// choice.
	a, b Handle

	// kGroup, kNest, kAlign: the single child document.
	child Handle
}

// Arena owns every document node built during one formatting pass. It is
// append-only: nodes are never mutated or freed until the whole Arena is
// dropped, which makes handle sharing free.
type Arena struct {
	nodes []node
	atoms map[string]Handle

	empty, hardLine, break0, break1 Handle
}

// NewArena returns an empty arena with its common atoms pre-interned.
func NewArena() *Arena {
	a := &Arena{atoms: make(map[string]Handle, 64)}
	a.empty = a.push(node{kind: kEmpty})
	a.hardLine = a.push(node{kind: kHardLine})
	a.break0 = a.push(node{kind: kBreak, text: "", width: 0})
	a.break1 = a.push(node{kind: kBreak, text: " ", width: 1})
	return a
}

func (a *Arena) push(n node) Handle {
	a.nodes = append(a.nodes, n)
	return Handle(len(a.nodes) - 1)
}

func (a *Arena) get(h Handle) node {
	return a.nodes[h]
}

// DisplayWidth measures s the way the engine measures Text nodes: in
// Unicode display columns, not bytes and not rune count, so wide CJK
// comment text and combining marks are accounted for correctly.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Empty renders to nothing.
func (a *Arena) Empty() Handle { return a.empty }

// HardLine is an unconditional newline that forces every enclosing Group
// into break mode.
func (a *Arena) HardLine() Handle { return a.hardLine }

// Break0 is a break that collapses to nothing when flat.
func (a *Arena) Break0() Handle { return a.break0 }

// Break1 is a break that collapses to a single space when flat.
func (a *Arena) Break1() Handle { return a.break1 }

// Text returns a handle for literal, non-newline text s.
func (a *Arena) Text(s string) Handle {
	return a.push(node{kind: kText, text: s, width: DisplayWidth(s)})
}

// atom interns a short, frequently reused piece of literal text (keywords,
// single-character punctuation) so repeated requests for the same text
// return the same handle, per the arena's deduplication contract.
func (a *Arena) atom(s string) Handle {
	if h, ok := a.atoms[s]; ok {
		return h
	}
	h := a.Text(s)
	a.atoms[s] = h
	return h
}

// Keyword interns a language keyword (fn, let, proc, ...).
func (a *Arena) Keyword(s string) Handle { return a.atom(s) }

// Punctuation atoms used throughout the AST formatter. Each is cached.
func (a *Arena) Space() Handle      { return a.atom(" ") }
func (a *Arena) Comma() Handle      { return a.atom(",") }
func (a *Arena) Colon() Handle      { return a.atom(":") }
func (a *Arena) Semi() Handle       { return a.atom(";") }
func (a *Arena) Dot() Handle        { return a.atom(".") }
func (a *Arena) DotDot() Handle     { return a.atom("..") }
func (a *Arena) Equals() Handle     { return a.atom("=") }
func (a *Arena) Arrow() Handle      { return a.atom("->") }
func (a *Arena) FatArrow() Handle   { return a.atom("=>") }
func (a *Arena) OParen() Handle     { return a.atom("(") }
func (a *Arena) CParen() Handle     { return a.atom(")") }
func (a *Arena) OBracket() Handle   { return a.atom("[") }
func (a *Arena) CBracket() Handle   { return a.atom("]") }
func (a *Arena) OCurl() Handle      { return a.atom("{") }
func (a *Arena) CCurl() Handle      { return a.atom("}") }
func (a *Arena) OAngle() Handle     { return a.atom("<") }
func (a *Arena) CAngle() Handle     { return a.atom(">") }
func (a *Arena) Bar() Handle        { return a.atom("|") }
func (a *Arena) SlashSlash() Handle { return a.atom("//") }
func (a *Arena) PlusColon() Handle  { return a.atom("+:") }
func (a *Arena) Hash() Handle       { return a.atom("#") }
func (a *Arena) Caret() Handle      { return a.atom("^") }
func (a *Arena) At() Handle         { return a.atom("@") }
func (a *Arena) AtAt() Handle       { return a.atom("@@") }
