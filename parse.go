package shunt

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// Program = { Let ';' } Expr [ ';' ]
// Let = 'let' ident '=' Expr
// Expr = num | ident | '-' Expr | Expr binop Expr | '(' Expr ')'
// binop = '+' | '-' | '*' | '/' | '^'

// stacked is an entry on the operator stack.
type stacked struct {
	op operator
	// pos is the position of the operator's token.
	pos int
	// depth is the number of operands that were on the stack when the
	// operator was pushed. A binary operator's left operand is among them.
	depth int
}

// shunter holds the working stacks of a single expression parse.
type shunter struct {
	p     *parsectx
	exprs []*Expr
	ops   []stacked
}

// Parse parses tokens as a single expression. Every token must belong to the
// expression.
func Parse(tokens []Token, opts ...ParseOption) (*Expr, error) {
	rest, e, err := newparsectx(opts).parseExpr(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, &TokenError{Tok: rest[0]}
	}
	return e, nil
}

// ParseExpr parses an expression from the start of tokens up to the first
// semicolon or the end of the tokens. The remaining tokens begin with that
// semicolon.
func ParseExpr(tokens []Token, opts ...ParseOption) ([]Token, *Expr, error) {
	return newparsectx(opts).parseExpr(tokens)
}

// ParseLet parses a statement "let name = expr" with an optional terminating
// semicolon. The result is an ExprLet and the tokens following the statement.
func ParseLet(tokens []Token, opts ...ParseOption) ([]Token, *Expr, error) {
	return newparsectx(opts).parseLet(tokens)
}

// ParseProgram parses any number of let statements, each ending with a
// semicolon, followed by an expression and an optional semicolon. The result
// is an ExprBlock whose last element is the final expression.
func ParseProgram(tokens []Token, opts ...ParseOption) (*Expr, error) {
	return newparsectx(opts).parseProgram(tokens)
}

// ParseString tokenizes and parses a program.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseProgram(tokens, opts...)
}

func (p *parsectx) parseProgram(tokens []Token) (*Expr, error) {
	var list []*Expr
	for len(tokens) > 0 && tokens[0].Kind == TokenLet {
		rest, let, err := p.parseLet(tokens)
		if err != nil {
			return nil, err
		}
		list = append(list, let)
		tokens = rest
	}
	rest, e, err := p.parseExpr(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		// parseExpr only stops early on a semicolon.
		rest = rest[1:]
	}
	if len(rest) != 0 {
		return nil, &TokenError{Tok: rest[0]}
	}
	return Block(append(list, e)...), nil
}

func (p *parsectx) parseLet(tokens []Token) ([]Token, *Expr, error) {
	shape := [...]TokenKind{TokenLet, TokenIdent, TokenEq}
	for i, want := range shape {
		if i >= len(tokens) {
			return nil, nil, &ExpectedError{Want: want, Col: endpos(tokens)}
		}
		if tokens[i].Kind != want {
			got := tokens[i]
			return nil, nil, &ExpectedError{Want: want, Got: &got, Col: got.Pos}
		}
	}
	name := tokens[1].Text
	rest, e, err := p.parseExpr(tokens[len(shape):])
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 && rest[0].Kind == TokenSemi {
		rest = rest[1:]
	}
	return rest, Let(name, e), nil
}

func (p *parsectx) parseExpr(tokens []Token) ([]Token, *Expr, error) {
	s := shunter{p: p}
	// val is whether the previous token completed an operand, which decides
	// whether - is subtraction or negation.
	val := false
	for i, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			s.exprs = append(s.exprs, Num(tok.Num))
			val = true
		case TokenIdent:
			s.exprs = append(s.exprs, Ident(tok.Text))
			val = true
		case TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenCaret:
			if !val {
				op := unop(tok.Kind)
				if op.arity == 0 {
					return nil, nil, &OperatorError{Col: tok.Pos, Operator: tok.Kind.String()}
				}
				s.push(op, tok.Pos)
				continue
			}
			op := binop(tok.Kind)
			if err := s.settle(op); err != nil {
				return nil, nil, err
			}
			s.push(op, tok.Pos)
			val = false
		case TokenLParen:
			s.push(opParen, tok.Pos)
			val = false
		case TokenRParen:
			if err := s.close(tok); err != nil {
				return nil, nil, err
			}
			val = true
		case TokenSemi:
			e, err := s.finish(tok.Pos, tok.Kind.String())
			if err != nil {
				return nil, nil, err
			}
			return tokens[i:], e, nil
		default:
			return nil, nil, &TokenError{Tok: tok}
		}
	}
	e, err := s.finish(endpos(tokens), "")
	if err != nil {
		return nil, nil, err
	}
	return nil, e, nil
}

func (s *shunter) push(op operator, pos int) {
	s.ops = append(s.ops, stacked{op: op, pos: pos, depth: len(s.exprs)})
}

func (s *shunter) pop() stacked {
	e := s.ops[len(s.ops)-1]
	s.ops = s.ops[:len(s.ops)-1]
	return e
}

// settle reduces every operator on the stack that binds tighter than op.
func (s *shunter) settle(op operator) error {
	for len(s.ops) > 0 {
		top := s.ops[len(s.ops)-1]
		if !op.yields(top.op) {
			return nil
		}
		if err := s.reduce(s.pop()); err != nil {
			return err
		}
	}
	return nil
}

// close reduces operators down to the innermost open bracket.
func (s *shunter) close(tok Token) error {
	for {
		if len(s.ops) == 0 {
			return &BracketError{Col: tok.Pos, Right: tok.Kind.String()}
		}
		e := s.pop()
		if e.op == opParen {
			if len(s.exprs) != e.depth+1 {
				return &IncompleteError{Col: tok.Pos, End: tok.Kind.String()}
			}
			return nil
		}
		if err := s.reduce(e); err != nil {
			return err
		}
	}
}

// finish drains the operator stack and returns the single remaining operand.
// pos and end describe the token that ended the expression.
func (s *shunter) finish(pos int, end string) (*Expr, error) {
	for len(s.ops) > 0 {
		e := s.pop()
		if e.op == opParen {
			return nil, &BracketError{Col: e.pos, Left: e.op.sym}
		}
		if err := s.reduce(e); err != nil {
			return nil, err
		}
	}
	if len(s.exprs) != 1 {
		return nil, &IncompleteError{Col: pos, End: end}
	}
	return s.exprs[0], nil
}

// reduce folds an operator and its operands into a node. The arity of the
// operator being reduced decides how many operands it takes.
func (s *shunter) reduce(e stacked) error {
	// Every operand an operator owns was pushed after it, except a binary
	// operator's left operand, which depth already counts.
	if len(s.exprs) <= e.depth {
		return &IncompleteError{Col: e.pos, Op: e.op.sym}
	}
	n := len(s.exprs)
	switch e.op.arity {
	case 1:
		s.exprs[n-1] = &Expr{Kind: e.op.op, Left: s.exprs[n-1]}
	case 2:
		lhs, rhs := s.exprs[n-2], s.exprs[n-1]
		s.exprs[n-1] = nil
		s.exprs = s.exprs[:n-1]
		s.exprs[n-2] = &Expr{Kind: e.op.op, Left: lhs, Right: rhs}
	default:
		panic("shunt: reducing operator " + e.op.sym + " with no arity")
	}
	s.p.log.Debug("reduce",
		zap.String("op", e.op.sym),
		zap.Int("arity", e.op.arity),
		zap.Int("pos", e.pos),
		zap.Int("operands", len(s.exprs)),
	)
	return nil
}

// endpos gets the position just past the last token, or 0 if the tokens carry
// no positions.
func endpos(tokens []Token) int {
	if len(tokens) == 0 {
		return 0
	}
	last := tokens[len(tokens)-1]
	if last.Pos == 0 {
		return 0
	}
	n := utf8.RuneCountInString(last.Text)
	if last.Kind == TokenString {
		// Quotes. An unterminated string is one shorter, but it also ends
		// the input.
		n += 2
	}
	return last.Pos + n
}
