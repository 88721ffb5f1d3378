package astfmt

import "github.com/rw1nkler/xls/ast"

// precedence returns a binary operator's binding strength; higher
// binds tighter, and is consulted before deciding whether a child
// Binop needs parens.
func precedence(op ast.BinopKind) int {
	switch op {
	case ast.BinopLogicalOr:
		return 1
	case ast.BinopLogicalAnd:
		return 2
	case ast.BinopOr:
		return 3
	case ast.BinopXor:
		return 4
	case ast.BinopAnd:
		return 5
	case ast.BinopEq, ast.BinopNe, ast.BinopLt, ast.BinopLe, ast.BinopGt, ast.BinopGe:
		return 6
	case ast.BinopShll, ast.BinopShrl, ast.BinopShra:
		return 7
	case ast.BinopAdd, ast.BinopSub:
		return 8
	case ast.BinopMul, ast.BinopDiv, ast.BinopMod:
		return 9
	case ast.BinopConcat:
		return 10
	default:
		return 0
	}
}

// binopChildNeedsParens reports whether child, appearing as one side
// of a Binop with operator parentOp, must be parenthesized to preserve
// meaning (or, for equal-precedence non-associative comparison
// operators, to preserve the reader's expectation).
func binopChildNeedsParens(parentOp ast.BinopKind, child ast.Expr, isRHS bool) bool {
	childBinop, ok := child.(*ast.Binop)
	if !ok {
		// A Cast on the left of a `<` is ambiguous with a parametric
		// type instantiation's opening angle bracket (`T<...>`);
		// parenthesize the cast in that one case unless it already
		// carries its own user-written parens (fmtCast emits those).
		if !isRHS && parentOp == ast.BinopLt {
			if c, ok := child.(*ast.Cast); ok && !c.InParens {
				return true
			}
		}
		return false
	}

	parentPrec := precedence(parentOp)
	childPrec := precedence(childBinop.Op)
	if childPrec < parentPrec {
		return true
	}
	if childPrec > parentPrec {
		return false
	}
	// Equal precedence: right-hand child of a left-associative op
	// needs parens to avoid silently reassociating; comparison
	// operators are never associative, so either side gets parens.
	if isComparison(parentOp) {
		return true
	}
	return isRHS
}

func isComparison(op ast.BinopKind) bool {
	switch op {
	case ast.BinopEq, ast.BinopNe, ast.BinopLt, ast.BinopLe, ast.BinopGt, ast.BinopGe:
		return true
	default:
		return false
	}
}

// unopChildNeedsParens reports whether a Unop's operand needs parens.
func unopChildNeedsParens(child ast.Expr) bool {
	switch child.(type) {
	case *ast.Binop, *ast.Cast, *ast.Conditional:
		return true
	default:
		return false
	}
}

// castChildNeedsParens reports whether a Cast's inner expression needs
// parens: anything with lower binding strength than a postfix cast.
func castChildNeedsParens(child ast.Expr) bool {
	switch child.(type) {
	case *ast.Binop, *ast.Conditional, *ast.Match:
		return true
	default:
		return false
	}
}

func binopSymbol(op ast.BinopKind) string {
	switch op {
	case ast.BinopAdd:
		return "+"
	case ast.BinopSub:
		return "-"
	case ast.BinopMul:
		return "*"
	case ast.BinopDiv:
		return "/"
	case ast.BinopMod:
		return "%"
	case ast.BinopAnd:
		return "&"
	case ast.BinopOr:
		return "|"
	case ast.BinopXor:
		return "^"
	case ast.BinopShll:
		return "<<"
	case ast.BinopShrl:
		return ">>"
	case ast.BinopShra:
		return ">>>"
	case ast.BinopLogicalAnd:
		return "&&"
	case ast.BinopLogicalOr:
		return "||"
	case ast.BinopEq:
		return "=="
	case ast.BinopNe:
		return "!="
	case ast.BinopLt:
		return "<"
	case ast.BinopLe:
		return "<="
	case ast.BinopGt:
		return ">"
	case ast.BinopGe:
		return ">="
	case ast.BinopConcat:
		return "++"
	default:
		return "?"
	}
}
