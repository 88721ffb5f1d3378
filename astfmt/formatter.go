// Package astfmt implements the AST-to-document translation (the
// formatter's comment index consumer and per-node rendering rules) and
// the top-level module driver, exposing AutoFmt as the single entry
// point a caller needs.
//
// Every Fmt* function here is grounded on the corresponding Fmt
// overload in the auto-formatter this module generalizes (see
// DESIGN.md): a type switch stands in for what was a virtual dispatch
// there, and a *doc.Arena stands in for the Doc-returning calls.
package astfmt

import (
	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/comments"
	"github.com/rw1nkler/xls/doc"
)

// formatter holds the shared state threaded through every Fmt call for
// one AutoFmt invocation: the arena documents are built in, and the
// comment index used to attribute source comments to nodes.
type formatter struct {
	arena    *doc.Arena
	comments *comments.Index
}

func newFormatter(idx *comments.Index) *formatter {
	return &formatter{arena: doc.NewArena(), comments: idx}
}

// FmtExpr dispatches an expression node to its rendering rule.
func (f *formatter) FmtExpr(n ast.Expr) doc.Handle {
	switch e := n.(type) {
	case *ast.Binop:
		return f.fmtBinop(e)
	case *ast.Unop:
		return f.fmtUnop(e)
	case *ast.Cast:
		return f.fmtCast(e)
	case *ast.Array:
		return f.fmtArray(e)
	case *ast.Attr:
		return f.fmtAttr(e)
	case *ast.ColonRef:
		return f.fmtColonRef(e)
	case *ast.For:
		return f.fmtFor(e)
	case *ast.UnrollFor:
		panic(unsupportedNode{e})
	case *ast.FormatMacro:
		return f.fmtFormatMacro(e)
	case *ast.ZeroMacro:
		return f.fmtZeroMacro(e)
	case *ast.Range:
		return f.fmtRange(e)
	case *ast.Slice:
		return f.fmtSlice(e)
	case *ast.WidthSlice:
		return f.fmtWidthSlice(e)
	case *ast.Index:
		return f.fmtIndex(e)
	case *ast.TupleIndex:
		return f.fmtTupleIndex(e)
	case *ast.Invocation:
		return f.fmtInvocation(e)
	case *ast.Spawn:
		return f.fmtSpawn(e)
	case *ast.Match:
		return f.fmtMatch(e)
	case *ast.WildcardPattern:
		return f.arena.Text("_")
	case *ast.XlsTuple:
		return f.fmtXlsTuple(e)
	case *ast.StructInstance:
		return f.fmtStructInstance(e, nil)
	case *ast.SplatStructInstance:
		return f.fmtSplatStructInstance(e)
	case *ast.String:
		return f.arena.Text(e.Text)
	case *ast.Number:
		return f.fmtNumber(e)
	case *ast.Conditional:
		return f.fmtConditional(e)
	case *ast.ConstAssert:
		return f.fmtConstAssert(e)
	case *ast.NameDef:
		return f.arena.Text(e.Name)
	case *ast.NameDefTree:
		return f.fmtNameDefTree(e)
	case *ast.NameRef:
		return f.fmtNameRef(e)
	case *ast.TypeRef:
		return f.fmtTypeRef(e)
	default:
		panic(unsupportedNode{n})
	}
}

// FmtType dispatches a type-annotation node to its rendering rule.
func (f *formatter) FmtType(n ast.TypeAnnotation) doc.Handle {
	a := f.arena
	switch t := n.(type) {
	case *ast.BuiltinTypeAnnotation:
		return a.Text(t.Name)
	case *ast.ArrayTypeAnnotation:
		return a.ConcatN(f.FmtType(t.Element), a.OBracket(), f.FmtExpr(t.Size), a.CBracket())
	case *ast.TupleTypeAnnotation:
		return f.fmtTupleType(t)
	case *ast.TypeRefTypeAnnotation:
		return f.fmtTypeRefAnnotation(t)
	case *ast.ChannelTypeAnnotation:
		dir := "in"
		if t.Direction == ast.ChannelOut {
			dir = "out"
		}
		return a.ConcatN(a.Keyword("chan"), a.OAngle(), f.FmtType(t.Payload), a.CAngle(), a.Space(), a.Keyword(dir))
	default:
		panic(unsupportedNode{n})
	}
}

// unsupportedNode is panicked for any AST shape this module declines
// to format (UnrollFor, a Let carrying more than one attached comment,
// or a node kind no case handles), and is recovered in BuildDoc
// (module.go) into a FormatError.
type unsupportedNode struct {
	node ast.Node
}
