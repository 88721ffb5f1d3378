package astfmt_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/astfmt"
	"github.com/rw1nkler/xls/comments"
	"github.com/rw1nkler/xls/span"
)

func constModule(members ...ast.ModuleMember) *ast.Module {
	return &ast.Module{Name: "m", Members: members}
}

func sp(l1, c1, l2, c2 int) span.Span {
	return span.NewSpan(
		span.Position{Line: l1, Column: c1},
		span.Position{Line: l2, Column: c2},
	)
}

func TestAutoFmtConstantDef(t *testing.T) {
	mod := constModule(&ast.ConstantDef{
		Name: "N",
		Type: &ast.BuiltinTypeAnnotation{Name: "u32"},
		Expr: &ast.Number{Text: "32"},
	})
	out, err := astfmt.AutoFmt(mod, comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "const N: u32 = 32;\n", out)
}

func TestAutoFmtFunctionWithBinop(t *testing.T) {
	fn := &ast.Function{
		Name:       "add",
		Params:     []*ast.Param{{Name: &ast.NameDef{Name: "a"}, Type: &ast.BuiltinTypeAnnotation{Name: "u32"}}, {Name: &ast.NameDef{Name: "b"}, Type: &ast.BuiltinTypeAnnotation{Name: "u32"}}},
		ReturnType: &ast.BuiltinTypeAnnotation{Name: "u32"},
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.Binop{Op: ast.BinopAdd, LHS: &ast.NameRef{Name: "a"}, RHS: &ast.NameRef{Name: "b"}}},
		}},
	}
	mod := constModule(fn)
	out, err := astfmt.AutoFmt(mod, comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn add(a: u32, b: u32) -> u32 { a + b }\n", out)
}

func TestAutoFmtStructDef(t *testing.T) {
	s := &ast.StructDef{
		Name: "Point",
		Members: []*ast.StructMemberDef{
			{Name: "x", Type: &ast.BuiltinTypeAnnotation{Name: "u32"}},
			{Name: "y", Type: &ast.BuiltinTypeAnnotation{Name: "u32"}},
		},
	}
	out, err := astfmt.AutoFmt(constModule(s), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "struct Point { x: u32, y: u32 }\n", out)
}

func TestAutoFmtUnrollForIsInvariantViolation(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.UnrollFor{}},
		}},
	}
	_, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.Error(t, err)
}

func TestAutoFmtEnumDef(t *testing.T) {
	e := &ast.EnumDef{
		Name:           "Op",
		UnderlyingType: &ast.BuiltinTypeAnnotation{Name: "u2"},
		Members: []*ast.EnumMember{
			{Name: "Add", Expr: &ast.Number{Text: "0"}},
			{Name: "Sub", Expr: &ast.Number{Text: "1"}},
		},
	}
	out, err := astfmt.AutoFmt(constModule(e), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "enum Op : u2 {\n    Add = 0,\n    Sub = 1,\n}\n", out)
}

func TestAutoFmtMatch(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Params: []*ast.Param{
			{Name: &ast.NameDef{Name: "x"}, Type: &ast.BuiltinTypeAnnotation{Name: "u32"}},
		},
		ReturnType: &ast.BuiltinTypeAnnotation{Name: "u32"},
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.Match{
				Subject: &ast.NameRef{Name: "x"},
				Arms: []*ast.MatchArm{
					{Patterns: []ast.Expr{&ast.Number{Text: "0"}}, Expr: &ast.Number{Text: "1"}},
					{Patterns: []ast.Expr{&ast.WildcardPattern{}}, Expr: &ast.NameRef{Name: "x"}},
				},
			}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f(x: u32) -> u32 {\n    match x {\n        0 => 1,\n        _ => x,\n    }\n}\n", out)
}

func TestAutoFmtCastLessThanForcesParens(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.Binop{
				Op:  ast.BinopLt,
				LHS: &ast.Cast{Expr: &ast.NameRef{Name: "foo"}, Type: &ast.BuiltinTypeAnnotation{Name: "bar"}},
				RHS: &ast.NameRef{Name: "baz"},
			}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() { (foo as bar) < baz }\n", out)
}

func TestAutoFmtOneTupleKeepsComma(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.XlsTuple{Members: []ast.Expr{&ast.NameRef{Name: "x"}}}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() { (x,) }\n", out)
}

func TestAutoFmtModuleLeadingComment(t *testing.T) {
	cd := &ast.ConstantDef{
		Name: "N", Type: &ast.BuiltinTypeAnnotation{Name: "u32"}, Expr: &ast.Number{Text: "32"}, IsPublic: false,
	}
	cd.SetSpan(sp(2, 1, 2, 18))
	idx := comments.New([]comments.Data{
		{Span: sp(1, 1, 1, 11), Text: "leading"},
	})
	out, err := astfmt.AutoFmt(constModule(cd), idx, 100)
	assert.NoError(t, err)
	assert.Equal(t, "// leading\nconst N: u32 = 32;\n", out)
}

func TestAutoFmtLetCommentBreaksAtNarrowWidth(t *testing.T) {
	rhs := &ast.Number{Text: "42"}
	rhs.SetSpan(sp(1, 13, 1, 15))
	l := &ast.Let{
		NameDef: &ast.NameDef{Name: "y"},
		Type:    &ast.BuiltinTypeAnnotation{Name: "u32"},
		RHS:     rhs,
	}
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{l}},
	}
	fn.SetSpan(sp(1, 1, 1, 35))
	idx := comments.New([]comments.Data{
		{Span: sp(1, 20, 1, 34), Text: "the answer"},
	})
	out, err := astfmt.AutoFmt(constModule(fn), idx, 20)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() {\n    // the answer\n    let y: u32 = 42;\n}\n", out)
}

func TestAutoFmtEmptyStructInstance(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.StructInstance{StructRef: &ast.NameRef{Name: "S"}}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() { S {} }\n", out)
}

func TestAutoFmtSplatStructInstanceNoTrailingComma(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.SplatStructInstance{
				StructRef: &ast.NameRef{Name: "S"},
				Members: []*ast.StructMember{
					{Name: "x", Expr: &ast.Number{Text: "1"}},
				},
				Base: &ast.NameRef{Name: "other"},
			}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() { S { x: 1, ..other } }\n", out)
}

func TestAutoFmtArrayWithEllipsis(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.Array{
				Members:     []ast.Expr{&ast.Number{Text: "1"}, &ast.Number{Text: "2"}},
				HasEllipsis: true,
			}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() { [1, 2, ...] }\n", out)
}

func TestAutoFmtBlockForcedDoesNotDuplicateTrailingComment(t *testing.T) {
	rhs1 := &ast.Number{Text: "1"}
	rhs1.SetSpan(sp(1, 14, 1, 15))
	l1 := &ast.Let{
		NameDef: &ast.NameDef{Name: "x"}, Type: &ast.BuiltinTypeAnnotation{Name: "u32"},
		RHS: rhs1, Const: false,
	}
	l1.SetSpan(sp(1, 1, 1, 17))
	rhs2 := &ast.Number{Text: "42"}
	rhs2.SetSpan(sp(2, 14, 2, 16))
	l2 := &ast.Let{
		NameDef: &ast.NameDef{Name: "y"}, Type: &ast.BuiltinTypeAnnotation{Name: "u32"},
		RHS: rhs2, Const: false,
	}
	l2.SetSpan(sp(2, 1, 2, 18))
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{l1, l2}},
	}
	fn.SetSpan(sp(1, 1, 3, 2))
	idx := comments.New([]comments.Data{
		{Span: sp(2, 20, 2, 34), Text: "the answer"},
	})
	out, err := astfmt.AutoFmt(constModule(fn), idx, 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() {\n    let x: u32 = 1;\n    let y: u32 = 42; // the answer\n}\n", out)
}

func TestAutoFmtLetMatchRHSDoesNotPanicOnInteriorComments(t *testing.T) {
	rhs := &ast.Match{
		Subject: &ast.NameRef{Name: "x"},
		Arms: []*ast.MatchArm{
			{Patterns: []ast.Expr{&ast.Number{Text: "0"}}, Expr: &ast.Number{Text: "1"}},
			{Patterns: []ast.Expr{&ast.WildcardPattern{}}, Expr: &ast.NameRef{Name: "x"}},
		},
	}
	rhs.SetSpan(sp(1, 9, 4, 2))
	l := &ast.Let{NameDef: &ast.NameDef{Name: "r"}, RHS: rhs}
	fn := &ast.Function{Name: "f", Body: &ast.Block{Stmts: []ast.Stmt{l}}}
	idx := comments.New([]comments.Data{
		{Span: sp(2, 20, 2, 22), Text: "a"},
		{Span: sp(3, 20, 3, 22), Text: "b"},
	})
	out, err := astfmt.AutoFmt(constModule(fn), idx, 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() {\n    let r = match x {\n        0 => 1,\n        _ => x,\n    };\n}\n", out)
}

func TestAutoFmtConditionalFlat(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.Conditional{
				Cond: &ast.NameRef{Name: "c"},
				Then: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Number{Text: "1"}}}},
				Else: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Number{Text: "2"}}}},
			}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() { if c { 1 } else { 2 } }\n", out)
}

func TestAutoFmtConditionalForcedMultilineOnElseIf(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.Conditional{
				Cond: &ast.NameRef{Name: "c"},
				Then: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Number{Text: "1"}}}},
				ElseIf: &ast.Conditional{
					Cond: &ast.NameRef{Name: "d"},
					Then: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Number{Text: "2"}}}},
					Else: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Number{Text: "3"}}}},
				},
			}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() {\n    if c {\n        1\n    } else if d {\n        2\n    } else {\n        3\n    }\n}\n", out)
}

func TestAutoFmtConditionalForcedMultilineOnMultiStatementArm(t *testing.T) {
	fn := &ast.Function{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{Expr: &ast.Conditional{
				Cond: &ast.NameRef{Name: "c"},
				Then: &ast.Block{Stmts: []ast.Stmt{
					&ast.ExprStmt{Expr: &ast.Number{Text: "1"}},
					&ast.ExprStmt{Expr: &ast.Number{Text: "2"}},
				}},
				Else: &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Number{Text: "3"}}}},
			}},
		}},
	}
	out, err := astfmt.AutoFmt(constModule(fn), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "fn f() {\n    if c {\n        1\n        2\n    } else {\n        3\n    }\n}\n", out)
}

func TestAutoFmtImportDotSeparator(t *testing.T) {
	imp := &ast.Import{Path: []string{"foo", "bar", "baz"}}
	out, err := astfmt.AutoFmt(constModule(imp), comments.New(nil), 100)
	assert.NoError(t, err)
	assert.Equal(t, "import foo.bar.baz;\n", out)
}
