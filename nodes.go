package shunt

import (
	"strconv"
	"strings"
)

// Expr is a node in the abstract syntax tree. Each node exclusively owns its
// children, and the parser never modifies a tree after building it.
type Expr struct {
	Kind ExprKind

	// Num is the value of an ExprNum.
	Num float64
	// Name is the name of an ExprIdent or the bound name of an ExprLet.
	Name string

	// Left is the left operand of binary nodes, the operand of ExprNeg, and
	// the bound expression of ExprLet.
	Left *Expr
	// Right is the right operand of binary nodes.
	Right *Expr
	// List holds the statements of an ExprBlock or the arguments of an
	// ExprCall.
	List []*Expr
}

// ExprKind identifies the kind of an Expr.
type ExprKind int8

const (
	ExprNone ExprKind = iota

	ExprNum   // number literal
	ExprIdent // variable name

	ExprAdd // Left + Right
	ExprSub // Left - Right
	ExprMul // Left * Right
	ExprDiv // Left / Right
	ExprExp // Left ^ Right
	ExprNeg // -Left

	ExprLet   // let Name = Left
	ExprBlock // statements in List, the last being the value
	ExprCall  // call with arguments in List; not produced by the parser

	exprKinds
)

var exprNames = [exprKinds]string{
	ExprNone:  "None",
	ExprNum:   "Num",
	ExprIdent: "Ident",
	ExprAdd:   "Add",
	ExprSub:   "Sub",
	ExprMul:   "Mul",
	ExprDiv:   "Div",
	ExprExp:   "Exp",
	ExprNeg:   "Neg",
	ExprLet:   "Let",
	ExprBlock: "Block",
	ExprCall:  "Call",
}

func (k ExprKind) String() string {
	if k < 0 || k >= exprKinds {
		return "ExprKind(" + strconv.Itoa(int(k)) + ")"
	}
	return exprNames[k]
}

// Num creates a number literal.
func Num(v float64) *Expr { return &Expr{Kind: ExprNum, Num: v} }

// Ident creates a variable reference.
func Ident(name string) *Expr { return &Expr{Kind: ExprIdent, Name: name} }

func Add(l, r *Expr) *Expr { return &Expr{Kind: ExprAdd, Left: l, Right: r} }
func Sub(l, r *Expr) *Expr { return &Expr{Kind: ExprSub, Left: l, Right: r} }
func Mul(l, r *Expr) *Expr { return &Expr{Kind: ExprMul, Left: l, Right: r} }
func Div(l, r *Expr) *Expr { return &Expr{Kind: ExprDiv, Left: l, Right: r} }
func Exp(l, r *Expr) *Expr { return &Expr{Kind: ExprExp, Left: l, Right: r} }
func Neg(x *Expr) *Expr    { return &Expr{Kind: ExprNeg, Left: x} }

// Let creates a binding of name to x.
func Let(name string, x *Expr) *Expr { return &Expr{Kind: ExprLet, Name: name, Left: x} }

// Block creates a statement sequence.
func Block(list ...*Expr) *Expr { return &Expr{Kind: ExprBlock, List: list} }

// Call creates a call node. The parser does not produce calls.
func Call(args ...*Expr) *Expr { return &Expr{Kind: ExprCall, List: args} }

// Equal returns whether two trees have the same structure and values.
func (e *Expr) Equal(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Kind != o.Kind || e.Num != o.Num || e.Name != o.Name || len(e.List) != len(o.List) {
		return false
	}
	if !e.Left.Equal(o.Left) || !e.Right.Equal(o.Right) {
		return false
	}
	for i, x := range e.List {
		if !x.Equal(o.List[i]) {
			return false
		}
	}
	return true
}

// String formats the tree with every operation in parentheses. Tokenizing
// and parsing the result gives back an equal tree, provided that number
// literals are finite and non-negative as the tokenizer produces them.
func (e *Expr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *Expr) fmt(b *strings.Builder) {
	if e == nil {
		b.WriteString("<nil>")
		return
	}
	switch e.Kind {
	case ExprNum:
		b.WriteString(strconv.FormatFloat(e.Num, 'f', -1, 64))
	case ExprIdent:
		b.WriteString(e.Name)
	case ExprAdd:
		e.fmtbin(b, " + ")
	case ExprSub:
		e.fmtbin(b, " - ")
	case ExprMul:
		e.fmtbin(b, " * ")
	case ExprDiv:
		e.fmtbin(b, " / ")
	case ExprExp:
		e.fmtbin(b, " ^ ")
	case ExprNeg:
		b.WriteString("(-")
		e.Left.fmt(b)
		b.WriteByte(')')
	case ExprLet:
		b.WriteString("let ")
		b.WriteString(e.Name)
		b.WriteString(" = ")
		e.Left.fmt(b)
	case ExprBlock:
		for i, x := range e.List {
			if i > 0 {
				b.WriteString("; ")
			}
			x.fmt(b)
		}
	case ExprCall:
		b.WriteString("call(")
		for i, x := range e.List {
			if i > 0 {
				b.WriteString(", ")
			}
			x.fmt(b)
		}
		b.WriteByte(')')
	default:
		// Invalid nodes use invalid characters.
		b.WriteString("$" + e.Kind.String() + "$")
	}
}

func (e *Expr) fmtbin(b *strings.Builder, op string) {
	b.WriteByte('(')
	e.Left.fmt(b)
	b.WriteString(op)
	e.Right.fmt(b)
	b.WriteByte(')')
}
