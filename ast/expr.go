package ast

// BinopKind identifies a binary operator. astfmt owns the precedence
// table for these; the AST only records which one was written.
type BinopKind int

const (
	BinopAdd BinopKind = iota
	BinopSub
	BinopMul
	BinopDiv
	BinopMod
	BinopAnd
	BinopOr
	BinopXor
	BinopShll
	BinopShrl
	BinopShra
	BinopLogicalAnd
	BinopLogicalOr
	BinopEq
	BinopNe
	BinopLt
	BinopLe
	BinopGt
	BinopGe
	BinopConcat
)

// Binop is a binary operator expression: lhs OP rhs.
type Binop struct {
	withSpan
	Op  BinopKind
	LHS Expr
	RHS Expr
}

func (*Binop) exprNode() {}

// UnopKind identifies a unary operator.
type UnopKind int

const (
	UnopNeg UnopKind = iota // -x
	UnopInv                 // !x
)

// Unop is a unary operator expression: OP operand.
type Unop struct {
	withSpan
	Op      UnopKind
	Operand Expr
}

func (*Unop) exprNode() {}

// Cast reinterprets an expression's value as a different type:
// `expr as type`. InParens records whether the source already wrote
// this cast inside user parentheses; astfmt re-emits them unconditionally
// in that case, on top of whatever precedence-driven parens it would
// add anyway (see the cast-vs-less-than rule in astfmt/precedence.go).
type Cast struct {
	withSpan
	Expr     Expr
	Type     TypeAnnotation
	InParens bool
}

func (*Cast) exprNode() {}

// Array is an array literal: `[e0, e1, ...]`, optionally followed by
// `...` to repeat the final element out to the array's declared size.
type Array struct {
	withSpan
	Members       []Expr
	HasEllipsis   bool
	Type          TypeAnnotation // non-nil only when written as `Type:[...]`
}

func (*Array) exprNode() {}

// Attr is a member-access expression: `lhs.attr`.
type Attr struct {
	withSpan
	LHS  Expr
	Attr string
}

func (*Attr) exprNode() {}

// ColonRef is a scoped reference such as `Module::name` or
// `EnumType::Member`.
type ColonRef struct {
	withSpan
	Subject Expr
	Attr    string
}

func (*ColonRef) exprNode() {}

// For is a for-loop expression: `for (names): type in iterable { body }(init)`.
type For struct {
	withSpan
	Names    Expr // NameDef or NameDefTree
	Type     TypeAnnotation // may be nil
	Iterable Expr
	Body     *Block
	Init     Expr
}

func (*For) exprNode() {}

// UnrollFor is a compile-time-unrolled for-loop. This module does not
// implement it; astfmt reports one through internal/diagnostics as an
// invariant violation rather than guessing at a rendering.
type UnrollFor struct {
	withSpan
	Names    Expr
	Type     TypeAnnotation
	Iterable Expr
	Body     *Block
	Init     Expr
}

func (*UnrollFor) exprNode() {}

// FormatMacro is a `trace_fmt!("...", args)` style macro invocation.
type FormatMacro struct {
	withSpan
	MacroName string
	Format    string
	Args      []Expr
}

func (*FormatMacro) exprNode() {}

// ZeroMacro is `zero!<Type>()`.
type ZeroMacro struct {
	withSpan
	Type TypeAnnotation
}

func (*ZeroMacro) exprNode() {}

// Range is `start..limit`.
type Range struct {
	withSpan
	Start Expr
	Limit Expr
}

func (*Range) exprNode() {}

// Slice is `subject[start:limit]`; either bound may be nil.
type Slice struct {
	withSpan
	Subject Expr
	Start   Expr
	Limit   Expr
}

func (*Slice) exprNode() {}

// WidthSlice is `subject[start +: type]`.
type WidthSlice struct {
	withSpan
	Subject Expr
	Start   Expr
	Type    TypeAnnotation
}

func (*WidthSlice) exprNode() {}

// Index is `subject[index]`.
type Index struct {
	withSpan
	Subject Expr
	Index   Expr
}

func (*Index) exprNode() {}

// TupleIndex is `subject.N` for a fixed tuple-member-access integer N.
type TupleIndex struct {
	withSpan
	Subject Expr
	Index   string // literal digits, preserved verbatim
}

func (*TupleIndex) exprNode() {}

// Invocation is a function call: `callee(args...)`, with an optional
// parametric instantiation list `callee<a, b>(args...)`.
type Invocation struct {
	withSpan
	Callee     Expr
	Parametrics []Expr
	Args       []Expr
}

func (*Invocation) exprNode() {}

// Spawn is `spawn proc_name(args)`: a single invocation; a second
// argument list after it is not represented.
type Spawn struct {
	withSpan
	Invocation *Invocation
}

func (*Spawn) exprNode() {}

// MatchArm is a single `pattern => expr` arm of a Match.
type MatchArm struct {
	withSpan
	Patterns []Expr // one or more `|`-separated patterns
	Expr     Expr
}

// Match is a `match subject { arm, arm, ... }` expression.
type Match struct {
	withSpan
	Subject Expr
	Arms    []*MatchArm
}

func (*Match) exprNode() {}

// WildcardPattern is the `_` catch-all match pattern.
type WildcardPattern struct {
	withSpan
}

func (*WildcardPattern) exprNode() {}

// XlsTuple is a tuple literal `(e0, e1, ...)`. A 1-element tuple must
// keep its trailing comma even when flat; astfmt special-cases this.
type XlsTuple struct {
	withSpan
	Members []Expr
}

func (*XlsTuple) exprNode() {}

// StructMember is one `name: expr` field in a StructInstance.
type StructMember struct {
	withSpan
	Name string
	Expr Expr
	// Shorthand is true when the source wrote the `name` bare (the
	// value expression is a NameRef identical to Name) and astfmt
	// should preserve the shorthand instead of expanding it.
	Shorthand bool
}

// StructInstance is `StructType { field: expr, ... }`.
type StructInstance struct {
	withSpan
	StructRef Expr
	Members   []*StructMember
}

func (*StructInstance) exprNode() {}

// SplatStructInstance is `StructType { field: expr, ..base }`.
type SplatStructInstance struct {
	withSpan
	StructRef Expr
	Members   []*StructMember
	Base      Expr
}

func (*SplatStructInstance) exprNode() {}

// String is a string literal, stored with its original quoting intact.
type String struct {
	withSpan
	Text string
}

func (*String) exprNode() {}

// Number is a numeric literal, preserved exactly as written (decimal,
// hex, or binary) since this module never evaluates literal values.
type Number struct {
	withSpan
	Text string
	Type TypeAnnotation // non-nil for `Type:literal` forms
}

func (*Number) exprNode() {}

// Conditional is `if cond { then } else { else }` (or an `else if`
// chain via ElseIf). astfmt always renders a Conditional with a
// multi-statement branch across multiple lines, even if it would fit
// flat.
type Conditional struct {
	withSpan
	Cond     Expr
	Then     *Block
	ElseIf   *Conditional // mutually exclusive with Else
	Else     *Block
}

func (*Conditional) exprNode() {}

// ConstAssert is `const_assert!(expr)`.
type ConstAssert struct {
	withSpan
	Arg Expr
}

func (*ConstAssert) exprNode() {}

// NameDef introduces a new binding name, e.g. in `let x = ...` or a
// function parameter.
type NameDef struct {
	withSpan
	Name string
}

func (*NameDef) exprNode() {}

// NameDefLeaf is either a *NameDef or a nested *NameDefTree inside a
// tuple-destructuring binding.
type NameDefLeaf interface {
	Node
}

// NameDefTree is a (possibly nested) tuple-destructuring binding, e.g.
// `let (a, (b, c)) = ...`.
type NameDefTree struct {
	withSpan
	Leaves []NameDefLeaf
}

func (*NameDefTree) exprNode() {}

// NameRef is a reference to a previously bound name. ConfigSuffix
// records whether the source wrote the `.config` member-access
// shorthand for a spawned proc's config tuple (`foo.config`, stripped
// to `foo` per the identifier rule astfmt applies when re-emitting
// certain proc-member references); the parser is expected to have
// already peeled this off into ConfigSuffix rather than leaving an
// Attr wrapper, so astfmt only needs to check the flag.
type NameRef struct {
	withSpan
	Name         string
	ConfigSuffix bool
}

func (*NameRef) exprNode() {}
