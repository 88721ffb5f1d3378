package ast

// Function is a top-level or proc-member `fn name<parametrics>(params) -> ret { body }`.
type Function struct {
	withSpan
	Name         string
	Parametrics  []*ParametricBinding
	Params       []*Param
	ReturnType   TypeAnnotation // nil for unit return
	Body         *Block
	IsPublic     bool
}

func (*Function) moduleMemberNode() {}

// TestFunction is `#[test] fn name() { body }`.
type TestFunction struct {
	withSpan
	Fn *Function
}

func (*TestFunction) moduleMemberNode() {}

// TestProc is `#[test_proc] proc name { ... }`.
type TestProc struct {
	withSpan
	Proc *Proc
}

func (*TestProc) moduleMemberNode() {}

// QuickCheck is `#[quickcheck] fn name(params) -> bool { body }`,
// optionally with an explicit test-count attribute argument.
type QuickCheck struct {
	withSpan
	Fn        *Function
	TestCount Expr // nil when unspecified
}

func (*QuickCheck) moduleMemberNode() {}

// ProcMember is one of a Proc's persistent member declarations,
// rendered as a `name: Type;` line inside the proc body. The config,
// init and next sub-functions are held in Proc's own fields instead.
type ProcMember struct {
	withSpan
	Name string
	Type TypeAnnotation
}

// Proc is a top-level `proc name<parametrics> { members... config... init... next... }`.
// config, init, and next are rendered with a blank line separating
// each from the next, in that fixed order, regardless of their
// original source order.
type Proc struct {
	withSpan
	Name        string
	Parametrics []*ParametricBinding
	Members     []*ProcMember
	Config      *Function
	Init        *Function
	Next        *Function
	IsPublic    bool
}

func (*Proc) moduleMemberNode() {}

// StructMemberDef is one `field: Type` line in a StructDef, optionally
// preceded by its own doc-comment.
type StructMemberDef struct {
	withSpan
	Name string
	Type TypeAnnotation
}

// StructDef is a top-level `struct Name<parametrics> { field: Type, ... }`.
type StructDef struct {
	withSpan
	Name        string
	Parametrics []*ParametricBinding
	Members     []*StructMemberDef
	IsPublic    bool
}

func (*StructDef) moduleMemberNode() {}

// ConstantDef is a top-level `const NAME: Type = expr;` (Type may be
// nil when elided).
type ConstantDef struct {
	withSpan
	Name     string
	Type     TypeAnnotation
	Expr     Expr
	IsPublic bool
}

func (*ConstantDef) moduleMemberNode() {}

// EnumMember is one `NAME = expr,` line inside an EnumDef. Members are
// always hard-line joined, one per line, with an always-present
// trailing comma even when the enum has only one member.
type EnumMember struct {
	withSpan
	Name string
	Expr Expr
}

// EnumDef is a top-level `enum Name : UnderlyingType { MEMBER = expr, ... }`.
type EnumDef struct {
	withSpan
	Name          string
	UnderlyingType TypeAnnotation // nil when elided
	Members       []*EnumMember
	IsPublic      bool
}

func (*EnumDef) moduleMemberNode() {}

// Import is a top-level `import path.to.module [as alias];`. Path
// segments are dotted-path aligned by astfmt using Align so a wrapped
// import lines up under its first segment.
type Import struct {
	withSpan
	Path  []string
	Alias string // empty when no `as` clause
}

func (*Import) moduleMemberNode() {}

// Module is the root of the syntax tree: an ordered sequence of
// top-level members as they appeared in the source, plus the module's
// own name for diagnostics.
type Module struct {
	withSpan
	Name    string
	Members []ModuleMember
}
