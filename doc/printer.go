package doc

import "strings"

// NestStep is the canonical indentation step added by Nest.
const NestStep = 4

type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

type workItem struct {
	indent int
	mode   mode
	h      Handle
}

// Print renders root at the given target width and returns the resulting
// text. It always ends with exactly one trailing newline and never emits
// trailing whitespace on any line, regardless of whether every line fit
// within width (an overlong line is emitted anyway rather than failing —
// the engine's "bounded degradation" behavior).
func (a *Arena) Print(root Handle, width int) string {
	var sb strings.Builder
	column := 0
	stack := []workItem{{indent: 0, mode: modeBreak, h: root}}

	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := a.get(it.h)
		switch n.kind {
		case kEmpty:
			// nothing to emit

		case kText:
			sb.WriteString(n.text)
			column += n.width

		case kHardLine:
			trimTrailingSpace(&sb)
			sb.WriteByte('\n')
			writeIndent(&sb, it.indent)
			column = it.indent

		case kBreak:
			if it.mode == modeFlat {
				sb.WriteString(n.text)
				column += n.width
			} else {
				trimTrailingSpace(&sb)
				sb.WriteByte('\n')
				writeIndent(&sb, it.indent)
				column = it.indent
			}

		case kConcat:
			// Push b then a so a is processed first.
			stack = append(stack, workItem{it.indent, it.mode, n.b}, workItem{it.indent, it.mode, n.a})

		case kNest:
			stack = append(stack, workItem{it.indent + NestStep, it.mode, n.child})

		case kAlign:
			stack = append(stack, workItem{column, it.mode, n.child})

		case kFlatChoice:
			if it.mode == modeFlat {
				stack = append(stack, workItem{it.indent, it.mode, n.a})
			} else {
				stack = append(stack, workItem{it.indent, it.mode, n.b})
			}

		case kGroup:
			if fits(a, n.child, width-column) {
				stack = append(stack, workItem{it.indent, modeFlat, n.child})
			} else {
				stack = append(stack, workItem{it.indent, modeBreak, n.child})
			}

		case kPrefixedReflow:
			if it.mode == modeFlat && !strings.Contains(n.alt, "\n") {
				sb.WriteString(n.text)
				sb.WriteString(n.alt)
				column += DisplayWidth(n.text) + DisplayWidth(n.alt)
			} else {
				column = renderReflowBreak(&sb, n.text, n.alt, it.indent, column, width)
			}
		}
	}

	trimTrailingSpace(&sb)
	out := sb.String()
	out = strings.TrimRight(out, "\n")
	return out + "\n"
}

// fits performs the tentative flat-mode scan described in §4.3: it follows
// Concat, Nest, Align, FlatChoice's flat branch, Text and Empty, treats
// Break as its flat alt text, and fails immediately on a HardLine or once
// the budget is exhausted.
func fits(a *Arena, start Handle, budget int) bool {
	if budget < 0 {
		return false
	}
	stack := []Handle{start}
	remaining := budget
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := a.get(h)
		switch n.kind {
		case kEmpty:
			// no width

		case kText:
			remaining -= n.width
			if remaining < 0 {
				return false
			}

		case kHardLine:
			return false

		case kBreak:
			remaining -= n.width
			if remaining < 0 {
				return false
			}

		case kConcat:
			stack = append(stack, n.b, n.a)

		case kGroup, kNest, kAlign:
			stack = append(stack, n.child)

		case kFlatChoice:
			stack = append(stack, n.a)

		case kPrefixedReflow:
			if strings.Contains(n.alt, "\n") {
				return false
			}
			remaining -= DisplayWidth(n.text) + DisplayWidth(n.alt)
			if remaining < 0 {
				return false
			}
		}
	}
	return true
}

func writeIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteByte(' ')
	}
}

// trimTrailingSpace removes any run of trailing ' ' characters sitting at
// the very end of the buffer, so no line is ever left with trailing
// whitespace once we move past it.
func trimTrailingSpace(sb *strings.Builder) {
	s := sb.String()
	trimmed := strings.TrimRight(s, " ")
	if len(trimmed) == len(s) {
		return
	}
	sb.Reset()
	sb.WriteString(trimmed)
}

// renderReflowBreak greedily word-wraps text into lines no wider than
// width, prefixing every physical line with prefix, and returns the
// resulting output column. The first physical line starts at the current
// column (callers always invoke this right after a HardLine in practice,
// so column already equals indent, but the general case is handled too).
func renderReflowBreak(sb *strings.Builder, prefix, text string, indent, column, width int) int {
	words := strings.Fields(text)
	prefixWidth := DisplayWidth(prefix)

	if len(words) == 0 {
		sb.WriteString(prefix)
		return column + prefixWidth
	}

	lineBudget := width - column
	lineWidth := column

	emitWord := func(w string, leadingSpace bool) {
		wWidth := DisplayWidth(w)
		if leadingSpace {
			sb.WriteByte(' ')
			lineWidth++
		}
		sb.WriteString(w)
		lineWidth += wWidth
	}

	sb.WriteString(prefix)
	lineWidth += prefixWidth
	lineBudget = width - column - prefixWidth
	if lineBudget < 1 {
		lineBudget = 1
	}

	first := true
	curWidth := 0
	for _, w := range words {
		wWidth := DisplayWidth(w)
		needed := wWidth
		if !first {
			needed++
		}
		if !first && curWidth+needed > lineBudget {
			trimTrailingSpace(sb)
			sb.WriteByte('\n')
			writeIndent(sb, indent)
			sb.WriteString(prefix)
			curWidth = 0
			lineWidth = indent + prefixWidth
			lineBudget = width - indent - prefixWidth
			if lineBudget < 1 {
				lineBudget = 1
			}
			emitWord(w, false)
			curWidth += wWidth
			continue
		}
		emitWord(w, !first)
		curWidth += needed
		first = false
	}

	return lineWidth
}
