// Package ast declares the syntax tree this module formats. A parser
// (out of scope for this module) is expected to build one of these from
// source text and hand it, together with a comments.Index, to
// astfmt.AutoFmt.
package ast

import (
	"bytes"
	"encoding/gob"

	"github.com/rw1nkler/xls/span"
)

// Node is implemented by every syntax tree node that carries a source
// span. astfmt attributes comments to nodes by querying this span.
type Node interface {
	Span() span.Span
}

// Expr is any expression-position node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement-position node. Let and ExprStmt are the
// statement forms that occur directly inside a Block.
type Stmt interface {
	Node
	stmtNode()
}

// TypeAnnotation is any type-position node.
type TypeAnnotation interface {
	Node
	typeNode()
}

// ModuleMember is any node that can appear directly inside a Module.
type ModuleMember interface {
	Node
	moduleMemberNode()
}

// withSpan is embedded by concrete node types to satisfy Node.
type withSpan struct {
	span span.Span
}

func (w withSpan) Span() span.Span { return w.span }

// NewSpan is a convenience for tests and builders constructing nodes
// without a real parser.
func NewSpan(s span.Span) withSpan { return withSpan{span: s} }

// SetSpan overwrites the span of any node embedding withSpan. Exported
// so tests and builders outside this package can position a node after
// construction, since withSpan's own field is unexported.
func (w *withSpan) SetSpan(s span.Span) { w.span = s }

// GobEncode/GobDecode let gob round-trip the otherwise-unexported span
// field, so a *ast.Module can be persisted (internal/astio) without
// exposing span as a settable field on every node type.
func (w withSpan) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(w.span); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *withSpan) GobDecode(data []byte) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(&w.span)
}

// Param is a single `name: type` function or proc parameter.
type Param struct {
	withSpan
	Name Expr // always a *NameDef
	Type TypeAnnotation
}

// ParametricBinding is a single `name: type` or `name: type = { expr }`
// entry in a function/proc/struct's parametric binding list.
type ParametricBinding struct {
	withSpan
	Name Expr // always a *NameDef
	Type TypeAnnotation
	Expr Expr // nil when the binding has no default
}
