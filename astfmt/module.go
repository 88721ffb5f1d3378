package astfmt

import (
	"fmt"

	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/comments"
	"github.com/rw1nkler/xls/doc"
	"github.com/rw1nkler/xls/internal/diagnostics"
	"github.com/rw1nkler/xls/span"
)

// defaultWidth is the target line width AutoFmt renders to when the
// caller doesn't override it (width <= 0).
const defaultWidth = 100

// AutoFmt renders module to formatted source text at the given target
// width (falling back to defaultWidth when width <= 0), attributing
// comments from idx along the way. It returns a *diagnostics.FormatError
// wrapped as a plain error if the tree contains a construct this module
// declines to format (UnrollFor) or violates a rendering invariant (a
// Let binding with more than one attached comment).
func AutoFmt(module *ast.Module, idx *comments.Index, width int) (out string, err error) {
	if width <= 0 {
		width = defaultWidth
	}
	arena, root, err := BuildDoc(module, idx)
	if err != nil {
		return "", err
	}
	return arena.Print(root, width), nil
}

// BuildDoc runs the AST-to-document translation and top-level driver
// without rendering, returning the arena and root document handle it
// built. AutoFmt is BuildDoc followed by Arena.Print; the split exists
// so the CLI's "doctor doc" subcommand can dump the pre-render document
// tree for engine debugging.
func BuildDoc(module *ast.Module, idx *comments.Index) (arena *doc.Arena, root doc.Handle, err error) {
	f := newFormatter(idx)

	defer func() {
		if r := recover(); r != nil {
			un, ok := r.(unsupportedNode)
			if !ok {
				panic(r)
			}
			err = &diagnostics.FormatError{
				NodeKind: fmt.Sprintf("%T", un.node),
				Span:     un.node.Span(),
				Reason:   unsupportedReason(un.node),
			}
		}
	}()

	root = f.fmtModuleDoc(module)
	return f.arena, root, nil
}

// fmtModuleDoc is the top-level driver: for every member it queries
// the comment index over the gap strictly between the previous
// member's limit and this member's start (§4.6) — excluding both
// endpoints' own lines, since the index matches by line alone and
// either neighbor may carry its own trailing same-line comment that
// must not be mistaken for a gap comment — emits one blank line before
// every member after the first, then any comments found there (keeping
// a blank line between the comment block and the member where the
// source had one), then the member itself, then finally
// flushes any comments trailing the last member all the way out to
// the last comment in the file.
func (f *formatter) fmtModuleDoc(m *ast.Module) doc.Handle {
	a := f.arena
	out := a.Empty()
	var prevLimit span.Position
	for i, member := range m.Members {
		start := member.Span().Start
		gap := f.linesStrictlyBetween(prevLimit.Line, start.Line)

		if i > 0 {
			out = a.ConcatN(out, a.HardLine())
		}

		if len(gap) > 0 {
			out = a.ConcatN(out, f.renderLeadingComments(gap))
			lastCommentLine := gap[len(gap)-1].Span.Limit.Line
			if start.Line-lastCommentLine > 1 {
				out = a.ConcatN(out, a.HardLine())
			}
		}

		out = a.ConcatN(out, f.FmtModuleMember(member), a.HardLine())
		prevLimit = member.Span().Limit
	}

	out = a.ConcatN(out, f.renderTrailingFlush(prevLimit))

	return out
}

func unsupportedReason(n ast.Node) string {
	if _, ok := n.(*ast.UnrollFor); ok {
		return "unroll-for is not supported by this formatter"
	}
	if _, ok := n.(*ast.Let); ok {
		return "a let binding's right-hand side can carry at most one attached comment"
	}
	return "unsupported construct"
}
