package astfmt

import (
	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/doc"
)

func (f *formatter) fmtBinop(e *ast.Binop) doc.Handle {
	a := f.arena
	lhs := f.FmtExpr(e.LHS)
	if binopChildNeedsParens(e.Op, e.LHS, false) {
		lhs = a.ConcatN(a.OParen(), lhs, a.CParen())
	}
	rhs := f.FmtExpr(e.RHS)
	if binopChildNeedsParens(e.Op, e.RHS, true) {
		rhs = a.ConcatN(a.OParen(), rhs, a.CParen())
	}
	return a.ConcatNGroup(lhs, a.Space(), a.Text(binopSymbol(e.Op)), a.Nest(a.ConcatN(a.Break1(), rhs)))
}

func (f *formatter) fmtUnop(e *ast.Unop) doc.Handle {
	a := f.arena
	sym := "-"
	if e.Op == ast.UnopInv {
		sym = "!"
	}
	operand := f.FmtExpr(e.Operand)
	if unopChildNeedsParens(e.Operand) {
		operand = a.ConcatN(a.OParen(), operand, a.CParen())
	}
	return a.ConcatN(a.Text(sym), operand)
}

func (f *formatter) fmtCast(e *ast.Cast) doc.Handle {
	a := f.arena
	inner := f.FmtExpr(e.Expr)
	if castChildNeedsParens(e.Expr) {
		inner = a.ConcatN(a.OParen(), inner, a.CParen())
	}
	out := a.ConcatN(inner, a.Keyword(" as "), f.FmtType(e.Type))
	if e.InParens {
		out = a.ConcatN(a.OParen(), out, a.CParen())
	}
	return out
}

// fmtArray renders an array literal's members with commaBreak1AsGroup so
// a long literal reflows several short elements per line rather than
// breaking strictly one-per-line. "..." (array-fill ellipsis), when
// present, only gets a comma in front of it in flat mode; broken mode
// already leaves a trailing comma on the last member via the joiner.
func (f *formatter) fmtArray(e *ast.Array) doc.Handle {
	a := f.arena
	leader := a.OBracket()
	if e.Type != nil {
		leader = a.ConcatN(f.FmtType(e.Type), a.Colon(), a.OBracket())
	}

	items := make([]doc.Handle, len(e.Members))
	for i, m := range e.Members {
		items[i] = f.FmtExpr(m)
	}
	members := f.join(commaBreak1AsGroup, items)
	if e.HasEllipsis {
		members = a.ConcatN(members, a.FlatChoice(a.Comma(), a.Empty()), a.Group(a.ConcatN(a.Break1(), a.Text("..."))))
	}

	return a.Group(a.ConcatN(a.Group(leader), a.Break0(), a.Nest(a.Group(members)), a.Break0(), a.CBracket()))
}

func (f *formatter) fmtAttr(e *ast.Attr) doc.Handle {
	a := f.arena
	return a.ConcatN(f.FmtExpr(e.LHS), a.Dot(), a.Text(e.Attr))
}

func (f *formatter) fmtColonRef(e *ast.ColonRef) doc.Handle {
	a := f.arena
	return a.ConcatN(f.FmtExpr(e.Subject), a.Text("::"), a.Text(e.Attr))
}

func (f *formatter) fmtFor(e *ast.For) doc.Handle {
	a := f.arena
	names := f.FmtExpr(e.Names)
	typ := a.Empty()
	if e.Type != nil {
		typ = a.ConcatN(a.Colon(), a.Space(), f.FmtType(e.Type))
	}
	header := a.ConcatN(a.Keyword("for"), a.Space(), names, typ, a.Space(),
		a.Keyword("in"), a.Space(), f.FmtExpr(e.Iterable), a.Space())
	return a.ConcatN(header, f.fmtBlock(e.Body), a.OParen(), f.FmtExpr(e.Init), a.CParen())
}

func (f *formatter) fmtFormatMacro(e *ast.FormatMacro) doc.Handle {
	a := f.arena
	items := make([]doc.Handle, 0, len(e.Args)+1)
	items = append(items, a.Text(quoteString(e.Format)))
	for _, arg := range e.Args {
		items = append(items, f.FmtExpr(arg))
	}
	return a.ConcatN(a.Text(e.MacroName), a.Text("!"), a.OParen(), f.join(commaSpace, items), a.CParen())
}

func (f *formatter) fmtZeroMacro(e *ast.ZeroMacro) doc.Handle {
	a := f.arena
	return a.ConcatN(a.Text("zero!"), a.OAngle(), f.FmtType(e.Type), a.CAngle(), a.OParen(), a.CParen())
}

func (f *formatter) fmtRange(e *ast.Range) doc.Handle {
	a := f.arena
	return a.ConcatN(f.FmtExpr(e.Start), a.DotDot(), f.FmtExpr(e.Limit))
}

func (f *formatter) fmtSlice(e *ast.Slice) doc.Handle {
	a := f.arena
	start, limit := a.Empty(), a.Empty()
	if e.Start != nil {
		start = f.FmtExpr(e.Start)
	}
	if e.Limit != nil {
		limit = f.FmtExpr(e.Limit)
	}
	return a.ConcatN(f.FmtExpr(e.Subject), a.OBracket(), start, a.Colon(), limit, a.CBracket())
}

func (f *formatter) fmtWidthSlice(e *ast.WidthSlice) doc.Handle {
	a := f.arena
	return a.ConcatN(f.FmtExpr(e.Subject), a.OBracket(), f.FmtExpr(e.Start), a.Space(), a.PlusColon(), a.Space(), f.FmtType(e.Type), a.CBracket())
}

func (f *formatter) fmtIndex(e *ast.Index) doc.Handle {
	a := f.arena
	return a.ConcatN(f.FmtExpr(e.Subject), a.OBracket(), f.FmtExpr(e.Index), a.CBracket())
}

func (f *formatter) fmtTupleIndex(e *ast.TupleIndex) doc.Handle {
	a := f.arena
	return a.ConcatN(f.FmtExpr(e.Subject), a.Dot(), a.Text(e.Index))
}

func (f *formatter) fmtInvocation(e *ast.Invocation) doc.Handle {
	a := f.arena
	callee := f.FmtExpr(e.Callee)
	if len(e.Parametrics) > 0 {
		items := make([]doc.Handle, len(e.Parametrics))
		for i, p := range e.Parametrics {
			items[i] = f.FmtExpr(p)
		}
		callee = a.ConcatN(callee, a.OAngle(), f.join(commaSpace, items), a.CAngle())
	}
	args := make([]doc.Handle, len(e.Args))
	for i, arg := range e.Args {
		args[i] = f.FmtExpr(arg)
	}
	body := f.join(commaBreak1, args)
	return a.ConcatN(callee, a.Group(a.ConcatN(a.OParen(), a.Nest(body), a.Break0(), a.CParen())))
}

func (f *formatter) fmtSpawn(e *ast.Spawn) doc.Handle {
	a := f.arena
	return a.ConcatN(a.Keyword("spawn"), a.Space(), f.fmtInvocation(e.Invocation))
}

func (f *formatter) fmtMatch(e *ast.Match) doc.Handle {
	a := f.arena
	header := a.ConcatN(a.Keyword("match"), a.Space(), f.FmtExpr(e.Subject), a.Space(), a.OCurl())
	body := a.Empty()
	for i, arm := range e.Arms {
		if i > 0 {
			body = a.ConcatN(body, a.HardLine())
		}
		patterns := make([]doc.Handle, len(arm.Patterns))
		for j, p := range arm.Patterns {
			patterns[j] = f.FmtExpr(p)
		}
		pat := f.join(spaceBarBreak, patterns)
		armDoc := a.ConcatN(pat, a.Space(), a.FatArrow(), a.Space(), f.FmtExpr(arm.Expr), a.Comma())
		body = a.ConcatN(body, armDoc)
	}
	return a.ConcatN(header, a.Nest(a.ConcatN(a.HardLine(), body)), a.HardLine(), a.CCurl())
}

func (f *formatter) fmtXlsTuple(e *ast.XlsTuple) doc.Handle {
	a := f.arena
	items := make([]doc.Handle, len(e.Members))
	for i, m := range e.Members {
		items[i] = f.FmtExpr(m)
	}
	if len(items) == 1 {
		// A 1-tuple must always keep its comma, flat or broken.
		return a.ConcatN(a.OParen(), items[0], a.Comma(), a.CParen())
	}
	body := f.join(commaBreak1, items)
	return a.Group(a.ConcatN(a.OParen(), a.Nest(a.ConcatN(a.Break0(), body)), a.Break0(), a.CParen()))
}

// fmtStructInstance renders a struct instance leader (struct ref, break1,
// "{") as its own Group independent of whether the member list breaks,
// then the members. The truly empty instance is special-cased and
// renders as `S {}`, with no space between the braces; a splat field,
// when present, is always rendered last and is never followed by a comma.
func (f *formatter) fmtStructInstance(e *ast.StructInstance, splatBase ast.Expr) doc.Handle {
	a := f.arena
	leader := a.Group(a.ConcatN(f.FmtExpr(e.StructRef), a.Break1(), a.OCurl()))

	if splatBase == nil && len(e.Members) == 0 {
		return a.ConcatN(leader, a.CCurl())
	}

	items := make([]doc.Handle, len(e.Members))
	for i, m := range e.Members {
		items[i] = f.fmtStructMember(m)
	}

	if splatBase == nil {
		body := f.join(commaBreak1, items)
		return a.Group(a.ConcatN(leader, a.Nest(a.ConcatN(a.Break1(), body)), a.Break1(), a.CCurl()))
	}

	splat := a.ConcatN(a.DotDot(), f.FmtExpr(splatBase))
	if len(items) == 0 {
		return a.Group(a.ConcatN(leader, a.Break1(), splat, a.Break1(), a.CCurl()))
	}

	body := f.join(commaBreak1, items)
	return a.Group(a.ConcatN(leader, a.Nest(a.ConcatN(a.Break1(), body)), a.FlatChoice(a.Comma(), a.Empty()), a.Break1(), splat, a.Break1(), a.CCurl()))
}

func (f *formatter) fmtSplatStructInstance(e *ast.SplatStructInstance) doc.Handle {
	return f.fmtStructInstance(&ast.StructInstance{StructRef: e.StructRef, Members: e.Members}, e.Base)
}

func (f *formatter) fmtStructMember(m *ast.StructMember) doc.Handle {
	a := f.arena
	if m.Shorthand {
		return a.Text(m.Name)
	}
	return a.ConcatN(a.Text(m.Name), a.Colon(), a.Space(), f.FmtExpr(m.Expr))
}

func (f *formatter) fmtNumber(e *ast.Number) doc.Handle {
	a := f.arena
	if e.Type != nil {
		return a.ConcatN(f.FmtType(e.Type), a.Colon(), a.Text(e.Text))
	}
	return a.Text(e.Text)
}

// fmtConditional forces multi-line layout once the chain has an
// else-if or any arm holds more than one statement; otherwise it
// attempts flat, same as any other Group-wrapped construct.
func (f *formatter) fmtConditional(e *ast.Conditional) doc.Handle {
	if e.ElseIf != nil || hasMultiStatementArm(e) {
		return f.fmtConditionalMultiline(e)
	}
	return f.fmtConditionalFlat(e)
}

// hasMultiStatementArm reports whether any arm in e's if/else-if/else
// chain holds more than one statement.
func hasMultiStatementArm(e *ast.Conditional) bool {
	if len(e.Then.Stmts) > 1 {
		return true
	}
	if e.ElseIf != nil {
		return hasMultiStatementArm(e.ElseIf)
	}
	return e.Else != nil && len(e.Else.Stmts) > 1
}

func (f *formatter) fmtConditionalMultiline(e *ast.Conditional) doc.Handle {
	a := f.arena
	out := a.ConcatN(a.Keyword("if"), a.Space(), f.FmtExpr(e.Cond), a.Space(), f.fmtBlockForced(e.Then))
	if e.ElseIf != nil {
		out = a.ConcatN(out, a.Space(), a.Keyword("else"), a.Space(), f.fmtConditionalMultiline(e.ElseIf))
	} else if e.Else != nil {
		out = a.ConcatN(out, a.Space(), a.Keyword("else"), a.Space(), f.fmtBlockForced(e.Else))
	}
	return out
}

// fmtConditionalFlat renders a plain if/else (no else-if, every arm a
// single statement with no blank-line-separated comments) as one
// Group, so it collapses onto one line when it fits; Break1 degrades
// to a newline per arm otherwise.
func (f *formatter) fmtConditionalFlat(e *ast.Conditional) doc.Handle {
	a := f.arena
	out := a.ConcatN(a.Keyword("if"), a.Space(), f.FmtExpr(e.Cond), a.Space(), f.fmtBlockFlat(e.Then))
	if e.Else != nil {
		out = a.ConcatN(out, a.Space(), a.Keyword("else"), a.Space(), f.fmtBlockFlat(e.Else))
	}
	return a.Group(out)
}

func (f *formatter) fmtConstAssert(e *ast.ConstAssert) doc.Handle {
	a := f.arena
	return a.ConcatN(a.Text("const_assert!"), a.OParen(), f.FmtExpr(e.Arg), a.CParen())
}

func (f *formatter) fmtNameDefTree(e *ast.NameDefTree) doc.Handle {
	a := f.arena
	items := make([]doc.Handle, len(e.Leaves))
	for i, leaf := range e.Leaves {
		switch l := leaf.(type) {
		case *ast.NameDef:
			items[i] = a.Text(l.Name)
		case *ast.NameDefTree:
			items[i] = f.fmtNameDefTree(l)
		}
	}
	return a.ConcatN(a.OParen(), f.join(commaSpace, items), a.CParen())
}

// fmtNameRef renders Name as-is. ConfigSuffix is informational only:
// the parser has already stripped a trailing ".config" into the flag,
// so there is nothing left for this formatter to strip.
func (f *formatter) fmtNameRef(e *ast.NameRef) doc.Handle {
	return f.arena.Text(e.Name)
}

func (f *formatter) fmtTypeRef(e *ast.TypeRef) doc.Handle {
	a := f.arena
	if e.Module != "" {
		return a.ConcatN(a.Text(e.Module), a.Text("::"), a.Text(e.Name))
	}
	return a.Text(e.Name)
}

func (f *formatter) fmtTupleType(t *ast.TupleTypeAnnotation) doc.Handle {
	a := f.arena
	items := make([]doc.Handle, len(t.Members))
	for i, m := range t.Members {
		items[i] = f.FmtType(m)
	}
	if len(items) == 1 {
		return a.ConcatN(a.OParen(), items[0], a.Comma(), a.CParen())
	}
	return a.ConcatN(a.OParen(), f.join(commaSpace, items), a.CParen())
}

func (f *formatter) fmtTypeRefAnnotation(t *ast.TypeRefTypeAnnotation) doc.Handle {
	a := f.arena
	out := f.fmtTypeRef(t.Ref)
	if len(t.Parametrics) > 0 {
		items := make([]doc.Handle, len(t.Parametrics))
		for i, p := range t.Parametrics {
			items[i] = f.FmtExpr(p)
		}
		out = a.ConcatN(out, a.OAngle(), f.join(commaSpace, items), a.CAngle())
	}
	return out
}

func quoteString(s string) string {
	return `"` + s + `"`
}
