package doc

// Break returns a document that renders as alt when its enclosing group is
// flat, or a newline plus indentation when the group breaks. Break0 and
// Break1 are the two canonical instances.
func (a *Arena) Break(alt string) Handle {
	switch alt {
	case "":
		return a.break0
	case " ":
		return a.break1
	default:
		return a.push(node{kind: kBreak, text: alt, width: DisplayWidth(alt)})
	}
}

// Concat sequences two documents, a rendered before b.
func (a *Arena) Concat(x, y Handle) Handle {
	if x == a.empty {
		return y
	}
	if y == a.empty {
		return x
	}
	return a.push(node{kind: kConcat, a: x, b: y})
}

// ConcatN sequences any number of documents left to right.
func (a *Arena) ConcatN(hs ...Handle) Handle {
	out := a.empty
	for _, h := range hs {
		out = a.Concat(out, h)
	}
	return out
}

// Group marks d as an atomic layout decision point: the renderer tries a
// flat rendering first and falls back to break mode only if that would
// overflow the target width, or if d contains a HardLine.
func (a *Arena) Group(d Handle) Handle {
	return a.push(node{kind: kGroup, child: d})
}

// ConcatNGroup is ConcatN followed by Group — the common "leader + body +
// trailer, decided together" shape used throughout the AST formatter.
func (a *Arena) ConcatNGroup(hs ...Handle) Handle {
	return a.Group(a.ConcatN(hs...))
}

// Nest renders d with indentation increased by the canonical step.
func (a *Arena) Nest(d Handle) Handle {
	return a.push(node{kind: kNest, child: d})
}

// Align renders d with indentation pinned to the current output column,
// so a break inside d lines up under where d started rather than under
// the enclosing block's indentation.
func (a *Arena) Align(d Handle) Handle {
	return a.push(node{kind: kAlign, child: d})
}

// FlatChoice picks onFlat when the enclosing group renders flat, onBreak
// when it breaks. Used for things like "only emit a trailing comma when
// we actually spanned multiple lines".
func (a *Arena) FlatChoice(onFlat, onBreak Handle) Handle {
	return a.push(node{kind: kFlatChoice, a: onFlat, b: onBreak})
}

// PrefixedReflow is a reflowable block: in break mode, text is word-wrapped
// to the remaining width with prefix prepended to every physical line; in
// flat mode, prefix and text are emitted once on a single line.
func (a *Arena) PrefixedReflow(prefix, text string) Handle {
	return a.push(node{kind: kPrefixedReflow, text: prefix, alt: text})
}
