package shunt

import "strconv"

// ExpectedError is an error indicating that a statement is missing a required
// token or has the wrong one. It implements InputError.
type ExpectedError struct {
	// Want is the kind of token that the statement requires.
	Want TokenKind
	// Got is the token found instead, or nil at the end of the input.
	Got *Token
	// Col is the position of Got, or of the end of the input.
	Col int
}

func (err *ExpectedError) Error() string {
	return errpos(err.Col, "expected "+err.Want.String()+", got "+describe(err.Got))
}

func (err *ExpectedError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a binary operator where an operand was
// expected. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator's symbol.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" has no left operand")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// IncompleteError is an error indicating that the tokens do not reduce to
// exactly one expression, e.g. an empty input or a dangling operator. It
// implements InputError.
type IncompleteError struct {
	// Col is the position of the operator missing an operand, or of the token
	// that ended the subexpression.
	Col int
	// Op is the symbol of the operator missing an operand, if any.
	Op string
	// End is the token that ended the subexpression. It is empty at the end
	// of the input.
	End string
}

func (err *IncompleteError) Error() string {
	switch {
	case err.Op != "":
		return errpos(err.Col, "missing operand for "+strconv.Quote(err.Op))
	case err.End != "":
		return errpos(err.Col, "no single expression up to "+strconv.Quote(err.End))
	case err.Col <= 1:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, "incomplete expression at end")
	}
}

func (err *IncompleteError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the opening bracket, or empty for a close bracket with no open.
	Left string
	// Right is the closing bracket, or empty for an open bracket with no close.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a token that cannot appear where it is,
// e.g. a string literal inside an expression or tokens after the end of a
// program. It implements InputError.
type TokenError struct {
	// Tok is the unexpected token.
	Tok Token
}

func (err *TokenError) Error() string {
	return errpos(err.Tok.Pos, "unexpected "+describe(&err.Tok))
}

func (err *TokenError) Pos() int {
	return err.Tok.Pos
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the error.
	// Positions are 0 for tokens that were not produced by the tokenizer.
	Pos() int
}

var (
	_ InputError = (*ExpectedError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*IncompleteError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*LexError)(nil)
)
