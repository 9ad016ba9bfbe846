package shunt

import "strconv"

// Token is a lexical unit produced by Tokenize.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Text is the identifier name, the contents of a string literal, the
	// source text of a number, or the symbol of a punctuation or keyword.
	Text string
	// Num is the value of a number token.
	Num float64
	// Pos is the 1-based rune column of the first rune of the token, or 0 if
	// the token did not come from the tokenizer.
	Pos int
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenIdent, TokenNum:
		s = t.Kind.String() + ":" + t.Text
	case TokenString:
		s = t.Kind.String() + ":" + strconv.Quote(t.Text)
	default:
		s = t.Kind.String()
	}
	return s + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota

	// TokenIdent is a variable name: a letter followed by any number of digits.
	TokenIdent
	// TokenNum is a decimal number without sign or exponent.
	TokenNum
	// TokenString is a string literal delimited by ".
	TokenString

	TokenPlus   // +
	TokenMinus  // -
	TokenStar   // *
	TokenSlash  // /
	TokenCaret  // ^
	TokenLParen // (
	TokenRParen // )
	TokenEq     // =
	TokenSemi   // ;

	// TokenLet is the let keyword.
	TokenLet

	tokenKinds
)

var tokenNames = [tokenKinds]string{
	tokenNone:   "none",
	TokenIdent:  "identifier",
	TokenNum:    "number",
	TokenString: "string",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenStar:   "*",
	TokenSlash:  "/",
	TokenCaret:  "^",
	TokenLParen: "(",
	TokenRParen: ")",
	TokenEq:     "=",
	TokenSemi:   ";",
	TokenLet:    "let",
}

func (k TokenKind) String() string {
	if k < 0 || k >= tokenKinds {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenNames[k]
}

// describe names a token for error messages. A nil token is the end of input.
func describe(tok *Token) string {
	if tok == nil {
		return "end of input"
	}
	switch tok.Kind {
	case TokenIdent:
		return "identifier " + tok.Text
	case TokenNum:
		if tok.Text == "" {
			return "number " + strconv.FormatFloat(tok.Num, 'g', -1, 64)
		}
		return "number " + tok.Text
	case TokenString:
		return "string " + strconv.Quote(tok.Text)
	default:
		return strconv.Quote(tok.Kind.String())
	}
}
