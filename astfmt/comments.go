package astfmt

import (
	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/comments"
	"github.com/rw1nkler/xls/doc"
	"github.com/rw1nkler/xls/span"
)

// getCommentsForNode returns the comments attributable to node: every
// comment inside node's span that doesn't already fall inside a span
// the caller has marked as blocked (typically a child expression that
// will claim and render its own leading comments itself).
func (f *formatter) getCommentsForNode(node ast.Node, blocked ...ast.Node) []comments.Data {
	all := f.comments.GetComments(node.Span())
	if len(blocked) == 0 {
		return all
	}
	var out []comments.Data
	for _, c := range all {
		if !coveredByAny(c.Span, blocked) {
			out = append(out, c)
		}
	}
	return out
}

func coveredByAny(s span.Span, nodes []ast.Node) bool {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Span().Contains(s) {
			return true
		}
	}
	return false
}

// blockedDescendants collects every blocked expression (Conditional,
// Match, For, UnrollFor) reachable from e, including e itself. Each
// one introduces its own `{ ... }` and is presumed to claim and render
// its own interior comments, so a caller querying comments over some
// ancestor of e should pass these back into getCommentsForNode's
// blocked list to exclude them.
func blockedDescendants(e ast.Expr) []ast.Node {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *ast.Conditional, *ast.Match, *ast.For, *ast.UnrollFor:
		return []ast.Node{e}
	case *ast.Binop:
		return append(blockedDescendants(v.LHS), blockedDescendants(v.RHS)...)
	case *ast.Unop:
		return blockedDescendants(v.Operand)
	case *ast.Cast:
		return blockedDescendants(v.Expr)
	case *ast.Array:
		var out []ast.Node
		for _, m := range v.Members {
			out = append(out, blockedDescendants(m)...)
		}
		return out
	case *ast.Attr:
		return blockedDescendants(v.LHS)
	case *ast.ColonRef:
		return blockedDescendants(v.Subject)
	case *ast.FormatMacro:
		var out []ast.Node
		for _, arg := range v.Args {
			out = append(out, blockedDescendants(arg)...)
		}
		return out
	case *ast.Range:
		return append(blockedDescendants(v.Start), blockedDescendants(v.Limit)...)
	case *ast.Slice:
		out := blockedDescendants(v.Subject)
		out = append(out, blockedDescendants(v.Start)...)
		out = append(out, blockedDescendants(v.Limit)...)
		return out
	case *ast.WidthSlice:
		return append(blockedDescendants(v.Subject), blockedDescendants(v.Start)...)
	case *ast.Index:
		return append(blockedDescendants(v.Subject), blockedDescendants(v.Index)...)
	case *ast.TupleIndex:
		return blockedDescendants(v.Subject)
	case *ast.Invocation:
		out := blockedDescendants(v.Callee)
		for _, arg := range v.Args {
			out = append(out, blockedDescendants(arg)...)
		}
		return out
	case *ast.Spawn:
		return blockedDescendants(v.Invocation)
	case *ast.XlsTuple:
		var out []ast.Node
		for _, m := range v.Members {
			out = append(out, blockedDescendants(m)...)
		}
		return out
	case *ast.StructInstance:
		var out []ast.Node
		for _, m := range v.Members {
			out = append(out, blockedDescendants(m.Expr)...)
		}
		return out
	case *ast.SplatStructInstance:
		var out []ast.Node
		for _, m := range v.Members {
			out = append(out, blockedDescendants(m.Expr)...)
		}
		return append(out, blockedDescendants(v.Base)...)
	case *ast.ConstAssert:
		return blockedDescendants(v.Arg)
	default:
		return nil
	}
}

// renderLeadingComments builds a Doc that emits each comment on its
// own line, each followed by a HardLine, ahead of whatever document
// the caller concatenates next. Returns Empty when there are none.
func (f *formatter) renderLeadingComments(data []comments.Data) doc.Handle {
	a := f.arena
	out := a.Empty()
	for _, c := range data {
		out = a.ConcatN(out, a.SlashSlash(), a.Space(), a.Text(c.Text), a.HardLine())
	}
	return out
}

// renderTrailingFlush emits any comments lying after the last rendered
// node's span and up to idx.LastDataLimit, used once at the very end
// of fmtModuleDoc to recover comments trailing the final member.
func (f *formatter) renderTrailingFlush(after span.Position) doc.Handle {
	limit, ok := f.comments.LastDataLimit()
	if !ok || !after.Less(limit) {
		return f.arena.Empty()
	}
	data := f.comments.GetComments(span.NewSpan(after, limit))
	return f.renderLeadingComments(data)
}
