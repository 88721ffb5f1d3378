package ast

// BuiltinTypeAnnotation is a primitive type keyword: bits widths like
// `u32`/`s8`, `bool`, `token`, etc., preserved exactly as written.
type BuiltinTypeAnnotation struct {
	withSpan
	Name string
}

func (*BuiltinTypeAnnotation) typeNode() {}

// ArrayTypeAnnotation is `ElementType[size]`, possibly repeated for
// multi-dimensional arrays (`u8[4][8]`).
type ArrayTypeAnnotation struct {
	withSpan
	Element TypeAnnotation
	Size    Expr
}

func (*ArrayTypeAnnotation) typeNode() {}

// TupleTypeAnnotation is `(T0, T1, ...)`.
type TupleTypeAnnotation struct {
	withSpan
	Members []TypeAnnotation
}

func (*TupleTypeAnnotation) typeNode() {}

// TypeRef is a reference to a user-defined type by name, optionally
// qualified by a module: `Module::TypeName`.
type TypeRef struct {
	withSpan
	Module string // empty when unqualified
	Name   string
}

func (*TypeRef) exprNode() {}

// TypeRefTypeAnnotation wraps a TypeRef used in type position, with an
// optional parametric instantiation list: `TypeName<a, b>`.
type TypeRefTypeAnnotation struct {
	withSpan
	Ref         *TypeRef
	Parametrics []Expr
}

func (*TypeRefTypeAnnotation) typeNode() {}

// ChannelDirection distinguishes `chan<T> in` from `chan<T> out`.
type ChannelDirection int

const (
	ChannelIn ChannelDirection = iota
	ChannelOut
)

// ChannelTypeAnnotation is `chan<PayloadType> in` or `chan<PayloadType> out`.
type ChannelTypeAnnotation struct {
	withSpan
	Payload   TypeAnnotation
	Direction ChannelDirection
}

func (*ChannelTypeAnnotation) typeNode() {}

// TypeAlias is a top-level `type Name = OtherType;` item.
type TypeAlias struct {
	withSpan
	Name string
	Type TypeAnnotation
}

func (*TypeAlias) moduleMemberNode() {}
