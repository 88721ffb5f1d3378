package ast_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/span"
)

func sp(l1, c1, l2, c2 int) span.Span {
	return span.NewSpan(
		span.Position{Line: l1, Column: c1},
		span.Position{Line: l2, Column: c2},
	)
}

func TestNodeSpans(t *testing.T) {
	n := &ast.NameRef{Name: "x"}
	assert.Equal(t, span.Span{}, n.Span())

	bin := &ast.Binop{
		Op:  ast.BinopAdd,
		LHS: &ast.NameRef{Name: "a"},
		RHS: &ast.Number{Text: "1"},
	}
	var _ ast.Expr = bin
	var _ ast.Expr = bin.LHS
	var _ ast.Expr = bin.RHS
}

func TestModuleMemberAssertions(t *testing.T) {
	var members []ast.ModuleMember
	members = append(members,
		&ast.Import{Path: []string{"std"}},
		&ast.ConstantDef{Name: "N"},
		&ast.TypeAlias{Name: "Byte"},
		&ast.StructDef{Name: "Point"},
		&ast.EnumDef{Name: "Color"},
		&ast.Function{Name: "f"},
		&ast.Proc{Name: "p"},
	)
	assert.Equal(t, 7, len(members))
}

func TestNameDefTreeNesting(t *testing.T) {
	tree := &ast.NameDefTree{
		Leaves: []ast.NameDefLeaf{
			&ast.NameDef{Name: "a"},
			&ast.NameDefTree{Leaves: []ast.NameDefLeaf{
				&ast.NameDef{Name: "b"},
				&ast.NameDef{Name: "c"},
			}},
		},
	}
	assert.Equal(t, 2, len(tree.Leaves))
	inner, ok := tree.Leaves[1].(*ast.NameDefTree)
	assert.True(t, ok)
	assert.Equal(t, 2, len(inner.Leaves))
}
