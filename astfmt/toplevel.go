package astfmt

import (
	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/doc"
)

// FmtModuleMember dispatches a module-level item to its rendering
// rule. Proc's own config/init/next sub-functions never reach this
// path directly — they're rendered inline by fmtProc from the Proc
// node's own Config/Init/Next fields instead.
func (f *formatter) FmtModuleMember(m ast.ModuleMember) doc.Handle {
	switch v := m.(type) {
	case *ast.Import:
		return f.fmtImport(v)
	case *ast.ConstantDef:
		return f.fmtConstantDef(v)
	case *ast.TypeAlias:
		return f.fmtTypeAlias(v)
	case *ast.StructDef:
		return f.fmtStructDef(v)
	case *ast.EnumDef:
		return f.fmtEnumDef(v)
	case *ast.Function:
		return f.fmtFunction(v)
	case *ast.Proc:
		return f.fmtProc(v)
	case *ast.TestFunction:
		return f.fmtTestFunction(v)
	case *ast.TestProc:
		return f.fmtTestProc(v)
	case *ast.QuickCheck:
		return f.fmtQuickCheck(v)
	default:
		panic(unsupportedNode{m})
	}
}

func (f *formatter) fmtParam(p *ast.Param) doc.Handle {
	a := f.arena
	return a.ConcatN(f.FmtExpr(p.Name), a.Colon(), a.Space(), f.FmtType(p.Type))
}

func (f *formatter) fmtParametricBinding(p *ast.ParametricBinding) doc.Handle {
	a := f.arena
	out := a.ConcatN(f.FmtExpr(p.Name), a.Colon(), a.Space(), f.FmtType(p.Type))
	if p.Expr != nil {
		out = a.ConcatN(out, a.Space(), a.Equals(), a.Space(), a.OCurl(), f.FmtExpr(p.Expr), a.CCurl())
	}
	return out
}

func (f *formatter) fmtParametrics(ps []*ast.ParametricBinding) doc.Handle {
	a := f.arena
	if len(ps) == 0 {
		return a.Empty()
	}
	items := make([]doc.Handle, len(ps))
	for i, p := range ps {
		items[i] = f.fmtParametricBinding(p)
	}
	return a.ConcatN(a.OAngle(), f.join(commaSpace, items), a.CAngle())
}

// fmtFunctionSignature renders everything of a Function up to (but not
// including) its body: visibility, "fn", name, parametrics, params,
// and return type. Shared by fmtFunction and the Proc sub-function
// rendering, which needs the same header shape indented one level.
func (f *formatter) fmtFunctionSignature(fn *ast.Function) doc.Handle {
	a := f.arena
	vis := a.Empty()
	if fn.IsPublic {
		vis = a.ConcatN(a.Keyword("pub"), a.Space())
	}
	params := make([]doc.Handle, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = f.fmtParam(p)
	}
	paramsDoc := a.Group(a.ConcatN(a.OParen(), a.Nest(f.join(commaBreak1, params)), a.Break0(), a.CParen()))
	ret := a.Empty()
	if fn.ReturnType != nil {
		ret = a.ConcatN(a.Space(), a.Arrow(), a.Space(), f.FmtType(fn.ReturnType))
	}
	return a.ConcatN(vis, a.Keyword("fn"), a.Space(), a.Text(fn.Name), f.fmtParametrics(fn.Parametrics), paramsDoc, ret)
}

func (f *formatter) fmtFunction(fn *ast.Function) doc.Handle {
	a := f.arena
	return a.ConcatN(f.fmtFunctionSignature(fn), a.Space(), f.fmtBlock(fn.Body))
}

func (f *formatter) fmtTestFunction(t *ast.TestFunction) doc.Handle {
	a := f.arena
	return a.ConcatN(a.Text("#[test]"), a.HardLine(), f.fmtFunction(t.Fn))
}

func (f *formatter) fmtTestProc(t *ast.TestProc) doc.Handle {
	a := f.arena
	return a.ConcatN(a.Text("#[test_proc]"), a.HardLine(), f.fmtProc(t.Proc))
}

func (f *formatter) fmtQuickCheck(q *ast.QuickCheck) doc.Handle {
	a := f.arena
	attr := a.Text("#[quickcheck]")
	if q.TestCount != nil {
		attr = a.ConcatN(a.Text("#[quickcheck(test_count="), f.FmtExpr(q.TestCount), a.Text(")]"))
	}
	return a.ConcatN(attr, a.HardLine(), f.fmtFunction(q.Fn))
}

// fmtProc renders config, init, and next in that fixed order with a
// blank line separating each, regardless of their order in the source.
func (f *formatter) fmtProc(p *ast.Proc) doc.Handle {
	a := f.arena
	vis := a.Empty()
	if p.IsPublic {
		vis = a.ConcatN(a.Keyword("pub"), a.Space())
	}
	header := a.ConcatN(vis, a.Keyword("proc"), a.Space(), a.Text(p.Name), f.fmtParametrics(p.Parametrics), a.Space(), a.OCurl())

	var blocks []doc.Handle
	blankBefore := map[int]bool{}
	if len(p.Members) > 0 {
		members := a.Empty()
		for i, m := range p.Members {
			if i > 0 {
				members = a.ConcatN(members, a.HardLine())
			}
			members = a.ConcatN(members, a.Text(m.Name), a.Colon(), a.Space(), f.FmtType(m.Type), a.Semi())
		}
		blocks = append(blocks, members)
	}
	for _, sub := range []*ast.Function{p.Config, p.Init, p.Next} {
		if sub == nil {
			continue
		}
		blankBefore[len(blocks)] = true
		blocks = append(blocks, f.fmtFunction(sub))
	}

	body := a.Empty()
	for i, b := range blocks {
		if i > 0 {
			body = a.ConcatN(body, a.HardLine())
			if blankBefore[i] {
				body = a.ConcatN(body, a.HardLine())
			}
		}
		body = a.ConcatN(body, b)
	}

	return a.ConcatN(header, a.Nest(a.ConcatN(a.HardLine(), body)), a.HardLine(), a.CCurl())
}

func (f *formatter) fmtStructDef(s *ast.StructDef) doc.Handle {
	a := f.arena
	vis := a.Empty()
	if s.IsPublic {
		vis = a.ConcatN(a.Keyword("pub"), a.Space())
	}
	header := a.ConcatN(vis, a.Keyword("struct"), a.Space(), a.Text(s.Name), f.fmtParametrics(s.Parametrics), a.Space(), a.OCurl())

	items := make([]doc.Handle, len(s.Members))
	prevLine := s.Span().Start.Line
	for i, m := range s.Members {
		cs := append(f.linesStrictlyBetween(prevLine, m.Span().Start.Line), f.getCommentsForNode(m)...)
		leading := f.renderLeadingComments(cs)
		field := a.ConcatN(a.Text(m.Name), a.Colon(), a.Space(), f.FmtType(m.Type))
		items[i] = a.ConcatN(leading, field)
		prevLine = m.Span().Limit.Line
	}
	body := f.join(commaBreak1, items)
	return a.Group(a.ConcatN(header, a.Nest(a.ConcatN(a.Break1(), body)), a.Break1(), a.CCurl()))
}

func (f *formatter) fmtEnumDef(e *ast.EnumDef) doc.Handle {
	a := f.arena
	vis := a.Empty()
	if e.IsPublic {
		vis = a.ConcatN(a.Keyword("pub"), a.Space())
	}
	underlying := a.Empty()
	if e.UnderlyingType != nil {
		underlying = a.ConcatN(a.Space(), a.Colon(), a.Space(), f.FmtType(e.UnderlyingType))
	}
	header := a.ConcatN(vis, a.Keyword("enum"), a.Space(), a.Text(e.Name), underlying, a.Space(), a.OCurl())

	items := make([]doc.Handle, len(e.Members))
	prevLine := e.Span().Start.Line
	for i, m := range e.Members {
		cs := append(f.linesStrictlyBetween(prevLine, m.Span().Start.Line), f.getCommentsForNode(m)...)
		leading := f.renderLeadingComments(cs)
		member := a.ConcatN(a.Text(m.Name), a.Space(), a.Equals(), a.Space(), f.FmtExpr(m.Expr))
		items[i] = a.ConcatN(leading, member)
		prevLine = m.Span().Limit.Line
	}
	body := f.join(hardLineJoin, items)
	return a.ConcatN(header, a.Nest(a.ConcatN(a.HardLine(), body)), a.HardLine(), a.CCurl())
}

func (f *formatter) fmtConstantDef(c *ast.ConstantDef) doc.Handle {
	a := f.arena
	vis := a.Empty()
	if c.IsPublic {
		vis = a.ConcatN(a.Keyword("pub"), a.Space())
	}
	typ := a.Empty()
	if c.Type != nil {
		typ = a.ConcatN(a.Colon(), a.Space(), f.FmtType(c.Type))
	}
	return a.ConcatN(vis, a.Keyword("const"), a.Space(), a.Text(c.Name), typ, a.Space(), a.Equals(), a.Space(), f.FmtExpr(c.Expr), a.Text(";"))
}

func (f *formatter) fmtTypeAlias(t *ast.TypeAlias) doc.Handle {
	a := f.arena
	return a.ConcatN(a.Keyword("type"), a.Space(), a.Text(t.Name), a.Space(), a.Equals(), a.Space(), f.FmtType(t.Type), a.Text(";"))
}

// fmtImport renders the dotted module path, pinning any break inside
// it to the column the path started at via Align, so a wrapped import
// continues to line up under its first segment rather than under the
// statement's own indentation.
func (f *formatter) fmtImport(imp *ast.Import) doc.Handle {
	a := f.arena
	path := a.Text(imp.Path[0])
	for _, seg := range imp.Path[1:] {
		path = a.ConcatN(path, a.Dot(), a.Text(seg))
	}
	out := a.ConcatN(a.Keyword("import"), a.Space(), a.Align(path))
	if imp.Alias != "" {
		out = a.ConcatN(out, a.Space(), a.Keyword("as"), a.Space(), a.Text(imp.Alias))
	}
	return a.ConcatN(out, a.Text(";"))
}
