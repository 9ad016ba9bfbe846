package shunt

// assoc is the associativity of an operator.
type assoc int8

const (
	left assoc = iota
	right
)

type operator struct {
	// sym is the operator's symbol.
	sym string
	// prec is the precedence value. Higher is more binding.
	prec int
	// assoc breaks ties between operators of equal precedence.
	assoc assoc
	// arity is the number of operands the operator consumes. The open
	// bracket sentinel has arity 0.
	arity int
	// op is the node kind to build when this operator is reduced.
	op ExprKind
}

var (
	opAdd = operator{"+", 40, left, 2, ExprAdd}
	opSub = operator{"-", 40, left, 2, ExprSub}
	opMul = operator{"*", 50, left, 2, ExprMul}
	opDiv = operator{"/", 50, left, 2, ExprDiv}
	opExp = operator{"^", 60, right, 2, ExprExp}
	opNeg = operator{"-", 55, right, 1, ExprNeg}
	// opParen marks an open bracket on the operator stack. It is never
	// reduced into a node.
	opParen = operator{"(", 0, left, 0, ExprNone}
)

// binops and unops are indexed by token kind. Zero entries mean the token is
// not that kind of operator.
var (
	binops = [tokenKinds]operator{
		TokenPlus:  opAdd,
		TokenMinus: opSub,
		TokenStar:  opMul,
		TokenSlash: opDiv,
		TokenCaret: opExp,
	}
	unops = [tokenKinds]operator{
		TokenMinus: opNeg,
	}
)

// binop gets the binary operator for a token kind. The result has arity 0 if
// there is no such operator.
func binop(k TokenKind) operator {
	if k < 0 || k >= tokenKinds {
		return operator{}
	}
	return binops[k]
}

// unop gets the prefix operator for a token kind. The result has arity 0 if
// there is no such operator.
func unop(k TokenKind) operator {
	if k < 0 || k >= tokenKinds {
		return operator{}
	}
	return unops[k]
}

// yields returns whether the operator on top of the stack must be reduced
// before p is pushed.
func (p operator) yields(top operator) bool {
	if p.prec != top.prec {
		return p.prec < top.prec
	}
	return p.assoc == left
}
