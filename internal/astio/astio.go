// Package astio persists a *ast.Module together with its comments.Data
// list to and from a binary file, standing in for the lexer/parser that
// sits upstream of this formatter. The CLI's format/check/watch/doctor
// commands read this envelope instead of raw source text: something
// upstream is expected to produce it by parsing real source, the same
// way something downstream re-parses AutoFmt's output text to verify
// that formatting twice produces the same result as formatting once.
//
// encoding/gob is the vehicle because the AST is a tree of
// interface-typed fields and gob is the stdlib's native answer to that
// shape; see DESIGN.md for why no third-party library was a better fit
// for persisting an AST.
package astio

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/rw1nkler/xls/ast"
	"github.com/rw1nkler/xls/comments"
)

func init() {
	for _, v := range []any{
		&ast.Binop{}, &ast.Unop{}, &ast.Cast{}, &ast.Array{}, &ast.Attr{},
		&ast.ColonRef{}, &ast.For{}, &ast.UnrollFor{}, &ast.FormatMacro{},
		&ast.ZeroMacro{}, &ast.Range{}, &ast.Slice{}, &ast.WidthSlice{},
		&ast.Index{}, &ast.TupleIndex{}, &ast.Invocation{}, &ast.Spawn{},
		&ast.Match{}, &ast.WildcardPattern{}, &ast.XlsTuple{},
		&ast.StructInstance{}, &ast.SplatStructInstance{}, &ast.String{},
		&ast.Number{}, &ast.Conditional{}, &ast.ConstAssert{},
		&ast.NameDef{}, &ast.NameDefTree{}, &ast.NameRef{}, &ast.TypeRef{},
		&ast.BuiltinTypeAnnotation{}, &ast.ArrayTypeAnnotation{},
		&ast.TupleTypeAnnotation{}, &ast.TypeRefTypeAnnotation{},
		&ast.ChannelTypeAnnotation{},
		&ast.Let{}, &ast.ExprStmt{},
		&ast.Import{}, &ast.ConstantDef{}, &ast.TypeAlias{}, &ast.StructDef{},
		&ast.EnumDef{}, &ast.Function{}, &ast.Proc{}, &ast.TestFunction{},
		&ast.TestProc{}, &ast.QuickCheck{},
	} {
		gob.Register(v)
	}
}

// envelope is the on-disk shape: a module plus the flat comment list
// the lexer would have recovered alongside it.
type envelope struct {
	Module   *ast.Module
	Comments []comments.Data
}

// Encode writes module and its comments to w.
func Encode(w io.Writer, module *ast.Module, data []comments.Data) error {
	return gob.NewEncoder(w).Encode(envelope{Module: module, Comments: data})
}

// Marshal is Encode into a byte slice, for callers that want the bytes
// directly (tests, in-memory round-trips).
func Marshal(module *ast.Module, data []comments.Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, module, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a module and its comments back from r.
func Decode(r io.Reader) (*ast.Module, *comments.Index, error) {
	var env envelope
	if err := gob.NewDecoder(r).Decode(&env); err != nil {
		return nil, nil, fmt.Errorf("astio: decode: %w", err)
	}
	if env.Module == nil {
		return nil, nil, fmt.Errorf("astio: decoded envelope has no module")
	}
	return env.Module, comments.New(env.Comments), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(data []byte) (*ast.Module, *comments.Index, error) {
	return Decode(bytes.NewReader(data))
}
