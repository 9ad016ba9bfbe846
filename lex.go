package shunt

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Punctuation contains the runes which each form a token by themselves.
const Punctuation = "+-*/^()=;"

var punctkinds = [len(Punctuation)]TokenKind{
	TokenPlus,
	TokenMinus,
	TokenStar,
	TokenSlash,
	TokenCaret,
	TokenLParen,
	TokenRParen,
	TokenEq,
	TokenSemi,
}

// keywords maps keyword spellings to their token kinds. A keyword is
// recognized wherever it starts at a letter, even if more letters follow.
var keywords = map[string]TokenKind{
	"let": TokenLet,
}

type lexer struct {
	src io.RuneReader
	buf strings.Builder
	// pend holds runes that have been read from src and pushed back, in the
	// order they will be read again.
	pend []rune
	// col is the number of runes consumed so far.
	col int
}

func lex(src io.RuneReader) *lexer {
	return &lexer{src: src}
}

// Tokenize splits src into tokens. The error, if any, is a *LexError.
func Tokenize(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}

// Lex reads tokens from src until EOF. Errors from src other than io.EOF are
// returned as they are.
func Lex(src io.RuneReader) ([]Token, error) {
	l := lex(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// readRune reads a rune, preferring pushed back runes, and updates the
// lexer's position info.
func (l *lexer) readRune() (rune, error) {
	if len(l.pend) > 0 {
		r := l.pend[0]
		l.pend = l.pend[1:]
		l.col++
		return r, nil
	}
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unread pushes runes back so that they are read next, in order.
func (l *lexer) unread(rs ...rune) {
	if len(rs) == 0 {
		return
	}
	l.pend = append(append(make([]rune, 0, len(rs)+len(l.pend)), rs...), l.pend...)
	l.col -= len(rs)
}

// next scans the next token. At the end of the input, the error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '"':
			return l.scanString(tok)
		case isDigit(r), r == '.':
			l.unread(r)
			return l.scanNum(tok)
		case unicode.IsLetter(r):
			l.unread(r)
			return l.scanWord(tok)
		default:
			if k := strings.IndexRune(Punctuation, r); k >= 0 {
				tok.Kind = punctkinds[k]
				tok.Text = string(r)
				return tok, nil
			}
			return tok, &LexError{Char: r, Text: string(r), Col: tok.Pos}
		}
	}
}

// scanString scans a string literal after its opening quote. An unterminated
// literal extends to the end of the input.
func (l *lexer) scanString(tok Token) (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return tok, err
			}
			break
		}
		if r == '"' {
			break
		}
		l.buf.WriteRune(r)
	}
	tok.Kind = TokenString
	tok.Text = l.buf.String()
	return tok, nil
}

// scanNum scans the longest run of digits and dots and converts it.
func (l *lexer) scanNum(tok Token) (Token, error) {
	for {
		r, err := l.readRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return tok, err
			}
			break
		}
		if !isDigit(r) && r != '.' {
			l.unread(r)
			break
		}
		l.buf.WriteRune(r)
	}
	tok.Text = l.buf.String()
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		// Either a malformed numeral or one too large for a float64.
		return tok, &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
	}
	tok.Kind = TokenNum
	tok.Num = v
	return tok, nil
}

// scanWord scans a keyword or an identifier. The keyword match reads ahead
// only as far as some keyword could still match and pushes back whatever it
// doesn't use.
func (l *lexer) scanWord(tok Token) (Token, error) {
	first, err := l.readRune()
	if err != nil {
		// next pushed back the rune that decided word scanning.
		panic("shunt: lost word start: " + err.Error())
	}
	ahead := []rune{first}
	best := 0
	for {
		s := string(ahead)
		if _, ok := keywords[s]; ok {
			best = len(ahead)
		}
		if !keywordPrefix(s) {
			break
		}
		r, err := l.readRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return tok, err
			}
			break
		}
		ahead = append(ahead, r)
	}
	if best > 0 {
		l.unread(ahead[best:]...)
		tok.Text = string(ahead[:best])
		tok.Kind = keywords[tok.Text]
		return tok, nil
	}
	l.unread(ahead[1:]...)
	l.buf.WriteRune(first)
	for {
		r, err := l.readRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return tok, err
			}
			break
		}
		// Only digits continue an identifier.
		if !isDigit(r) {
			l.unread(r)
			break
		}
		l.buf.WriteRune(r)
	}
	tok.Kind = TokenIdent
	tok.Text = l.buf.String()
	return tok, nil
}

// keywordPrefix returns whether s is a proper prefix of any keyword.
func keywordPrefix(s string) bool {
	for kw := range keywords {
		if len(kw) > len(s) && strings.HasPrefix(kw, s) {
			return true
		}
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Char is the rune that cannot start any token. It is zero for malformed
	// numbers.
	Char rune
	// Text is the text of the invalid token.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" for
	// a malformed numeral or the empty string for an unrecognized rune.
	Kind string
	// Col is the column of the first rune of the invalid token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + strconv.QuoteRune(err.Char)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
