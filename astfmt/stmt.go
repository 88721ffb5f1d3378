package astfmt

import (
	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/comments"
	"github.com/rw1nkler/xls/doc"
	"github.com/rw1nkler/xls/span"
)

func (f *formatter) FmtStmt(s ast.Stmt) doc.Handle {
	switch st := s.(type) {
	case *ast.Let:
		return f.fmtLet(st)
	case *ast.ExprStmt:
		return f.FmtExpr(st.Expr)
	default:
		panic(unsupportedNode{s})
	}
}

// rhsNeverAligns reports whether rhs is a blocked expression (its own
// surface syntax introduces `{ ... }`) or an array literal, in which
// case fmtLet must not Align it to the `=` — doing so would shove a
// large, already-indented construct too far right.
func rhsNeverAligns(rhs ast.Expr) bool {
	switch rhs.(type) {
	case *ast.Conditional, *ast.Match, *ast.For, *ast.UnrollFor, *ast.Array:
		return true
	default:
		return false
	}
}

// fmtLet renders a let/const binding. When the RHS carries exactly one
// attached comment, the whole statement is offered as a Group choosing
// between the comment trailing on the same line (flat) and the comment
// on its own line immediately above the statement (break) — so it only
// drops to its own line once the statement itself doesn't fit; a RHS
// carrying more than one comment is treated as an invariant violation
// rather than guessed at.
func (f *formatter) fmtLet(l *ast.Let) doc.Handle {
	a := f.arena
	kw := "let"
	if l.Const {
		kw = "const"
	}

	name := f.FmtExpr(l.NameDef.(ast.Expr))
	typ := a.Empty()
	if l.Type != nil {
		typ = a.ConcatN(a.Colon(), a.Space(), f.FmtType(l.Type))
	}

	rhsComments := f.getCommentsForNode(l.RHS, blockedDescendants(l.RHS)...)
	if len(rhsComments) > 1 {
		panic(unsupportedNode{l})
	}

	rhs := f.FmtExpr(l.RHS)
	if !rhsNeverAligns(l.RHS) {
		rhs = a.Align(rhs)
	}
	header := a.ConcatN(a.Keyword(kw), a.Space(), name, typ, a.Space(), a.Equals())
	stmt := a.ConcatN(header, a.Space(), rhs, a.Text(";"))

	if len(rhsComments) == 0 {
		return stmt
	}

	comment := rhsComments[0]
	flat := a.ConcatN(stmt, a.Space(), a.SlashSlash(), a.Space(), a.Text(comment.Text))
	broken := a.ConcatN(a.SlashSlash(), a.Space(), a.Text(comment.Text), a.HardLine(), stmt)
	return a.Group(a.FlatChoice(flat, broken))
}

// fmtBlock renders a Block following the normal collapsing rule: empty
// renders as "{}"; a single statement with no attached comments tries
// flat first; anything else always breaks one statement per line, with
// blank-line runs between statements preserved and comments emitted
// ahead of the statement they precede.
func (f *formatter) fmtBlock(b *ast.Block) doc.Handle {
	a := f.arena
	if len(b.Stmts) == 0 {
		return a.ConcatN(a.OCurl(), a.CCurl())
	}
	if len(b.Stmts) == 1 && !f.comments.HasComments(b.Stmts[0].Span()) {
		stmt := f.FmtStmt(b.Stmts[0])
		return a.Group(a.ConcatN(a.OCurl(), a.Nest(a.ConcatN(a.Break1(), stmt)), a.Break1(), a.CCurl()))
	}
	return f.fmtBlockForced(b)
}

// linesStrictlyBetween queries comments whose line lies strictly
// between lo and hi (exclusive both ends), bypassing span.NewSpan's
// endpoint-swapping so an empty or inverted range (lo >= hi, i.e. no
// source line sits between two adjacent entities) correctly yields no
// comments instead of a swapped, wrong range. The exclusion matters
// because the comment index is line-only: a comment trailing a
// statement on that statement's own line would otherwise be indexed
// under the same line number as the statement's start or limit, and a
// gap query that included either endpoint's line would wrongly treat
// it as a leading comment for a neighboring statement.
func (f *formatter) linesStrictlyBetween(lo, hi int) []comments.Data {
	return f.comments.GetComments(span.Span{
		Start: span.Position{Line: lo + 1},
		Limit: span.Position{Line: hi - 1},
	})
}

// fmtBlockStmts renders the statements of b, one per line, attributing
// comments by the gap between the end of the previous entity (the
// block's own start, for the first statement) and the start of the
// next statement — never by the statement's own span, the way
// fmtModuleDoc attributes module-level comments — so a comment
// trailing a statement on its own source line is never also swept up
// as a leading comment for the statement after it. Blank-line runs
// between statements are preserved the same way, and any comments
// between the last statement and b's closing brace are flushed at the
// end. Returns Empty for an empty block; callers supply their own
// braces.
func (f *formatter) fmtBlockStmts(b *ast.Block) doc.Handle {
	a := f.arena
	if len(b.Stmts) == 0 {
		return a.Empty()
	}
	body := a.Empty()
	prevLimit := b.Span().Start
	for i, stmt := range b.Stmts {
		start := stmt.Span().Start
		gap := f.linesStrictlyBetween(prevLimit.Line, start.Line)
		firstLine := start.Line
		if len(gap) > 0 {
			firstLine = gap[0].Span.Start.Line
		}

		if i > 0 {
			body = a.ConcatN(body, a.HardLine())
			if firstLine-prevLimit.Line > 1 {
				body = a.ConcatN(body, a.HardLine())
			}
		}

		if len(gap) > 0 {
			body = a.ConcatN(body, f.renderLeadingComments(gap))
			lastCommentLine := gap[len(gap)-1].Span.Limit.Line
			if start.Line-lastCommentLine > 1 {
				body = a.ConcatN(body, a.HardLine())
			}
		}

		body = a.ConcatN(body, f.FmtStmt(stmt))
		prevLimit = stmt.Span().Limit
	}

	trailing := f.linesStrictlyBetween(prevLimit.Line, b.Span().Limit.Line+1)
	if len(trailing) > 0 {
		firstLine := trailing[0].Span.Start.Line
		if firstLine-prevLimit.Line > 1 {
			body = a.ConcatN(body, a.HardLine())
		}
		body = a.ConcatN(body, a.HardLine())
		for i, c := range trailing {
			if i > 0 {
				body = a.ConcatN(body, a.HardLine())
			}
			body = a.ConcatN(body, a.SlashSlash(), a.Space(), a.Text(c.Text))
		}
	}

	return body
}

// fmtBlockForced always renders multi-line, regardless of how few
// statements the block has — used for a Conditional arm that has an
// else-if sibling or a multi-statement arm anywhere in its chain.
func (f *formatter) fmtBlockForced(b *ast.Block) doc.Handle {
	a := f.arena
	if len(b.Stmts) == 0 {
		return a.ConcatN(a.OCurl(), a.CCurl())
	}
	body := f.fmtBlockStmts(b)
	return a.ConcatN(a.OCurl(), a.Nest(a.ConcatN(a.HardLine(), body)), a.HardLine(), a.CCurl())
}

// fmtBlockFlat renders b with Break1 separators instead of HardLine,
// so an enclosing Group can collapse the whole thing onto one line
// when it fits — used for a Conditional arm when nothing in its chain
// forces multi-line.
func (f *formatter) fmtBlockFlat(b *ast.Block) doc.Handle {
	a := f.arena
	if len(b.Stmts) == 0 {
		return a.ConcatN(a.OCurl(), a.CCurl())
	}
	body := f.fmtBlockStmts(b)
	return a.ConcatN(a.OCurl(), a.Nest(a.ConcatN(a.Break1(), body)), a.Break1(), a.CCurl())
}
