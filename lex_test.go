package shunt

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tk creates a token as the tokenizer would.
func tk(kind TokenKind, text string, pos int) Token {
	t := Token{Kind: kind, Text: text, Pos: pos}
	if kind == TokenNum {
		t.Num, _ = strconv.ParseFloat(text, 64)
	}
	return t
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"zero", "0", []Token{tk(TokenNum, "0", 1)}},
		{"digits", "9876543210", []Token{tk(TokenNum, "9876543210", 1)}},
		{"two", "1 0", []Token{tk(TokenNum, "1", 1), tk(TokenNum, "0", 3)}},
		{"real", "1.5", []Token{tk(TokenNum, "1.5", 1)}},
		{"lead-dot", ".5", []Token{tk(TokenNum, ".5", 1)}},
		{"trail-dot", "1.", []Token{tk(TokenNum, "1.", 1)}},
		{"no-sign", "-1", []Token{tk(TokenMinus, "-", 1), tk(TokenNum, "1", 2)}},
		{"no-exponent", "1e5", []Token{tk(TokenNum, "1", 1), tk(TokenIdent, "e5", 2)}},
		// identifiers
		{"ident", "x", []Token{tk(TokenIdent, "x", 1)}},
		{"ident-digits", "x12", []Token{tk(TokenIdent, "x12", 1)}},
		{"ident-letters", "xy", []Token{tk(TokenIdent, "x", 1), tk(TokenIdent, "y", 2)}},
		{"ident-mixed", "x1y2", []Token{tk(TokenIdent, "x1", 1), tk(TokenIdent, "y2", 3)}},
		{"ident-unicode", "π2", []Token{tk(TokenIdent, "π2", 1)}},
		// keywords
		{"let", "let", []Token{tk(TokenLet, "let", 1)}},
		{"let-letters", "lets", []Token{tk(TokenLet, "let", 1), tk(TokenIdent, "s", 4)}},
		{"let-let", "letlet", []Token{tk(TokenLet, "let", 1), tk(TokenLet, "let", 4)}},
		{"let-partial", "le", []Token{tk(TokenIdent, "l", 1), tk(TokenIdent, "e", 2)}},
		{"let-partial-digit", "le1", []Token{tk(TokenIdent, "l", 1), tk(TokenIdent, "e1", 2)}},
		{"let-miss", "lex", []Token{tk(TokenIdent, "l", 1), tk(TokenIdent, "e", 2), tk(TokenIdent, "x", 3)}},
		{"let-digit", "l1", []Token{tk(TokenIdent, "l1", 1)}},
		{"let-space", "le t", []Token{tk(TokenIdent, "l", 1), tk(TokenIdent, "e", 2), tk(TokenIdent, "t", 4)}},
		{
			"statement", "let a = 1;",
			[]Token{tk(TokenLet, "let", 1), tk(TokenIdent, "a", 5), tk(TokenEq, "=", 7), tk(TokenNum, "1", 9), tk(TokenSemi, ";", 10)},
		},
		// strings
		{"string", `"hi there"`, []Token{tk(TokenString, "hi there", 1)}},
		{"string-empty", `""`, []Token{tk(TokenString, "", 1)}},
		{"string-then", `"a" 1`, []Token{tk(TokenString, "a", 1), tk(TokenNum, "1", 5)}},
		{"string-verbatim", `"1 + &"`, []Token{tk(TokenString, "1 + &", 1)}},
		{"string-unterminated", `"abc`, []Token{tk(TokenString, "abc", 1)}},
		// punctuation
		{
			"punct", "+-*/^()=;",
			[]Token{
				tk(TokenPlus, "+", 1), tk(TokenMinus, "-", 2), tk(TokenStar, "*", 3),
				tk(TokenSlash, "/", 4), tk(TokenCaret, "^", 5), tk(TokenLParen, "(", 6),
				tk(TokenRParen, ")", 7), tk(TokenEq, "=", 8), tk(TokenSemi, ";", 9),
			},
		},
		{
			"expr", "(-1) ^ 2 ",
			[]Token{
				tk(TokenLParen, "(", 1), tk(TokenMinus, "-", 2), tk(TokenNum, "1", 3),
				tk(TokenRParen, ")", 4), tk(TokenCaret, "^", 6), tk(TokenNum, "2", 8),
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Tokenize(c.src)
			require.NoError(t, err, "tokenizing %q", c.src)
			if diff := cmp.Diff(c.tokens, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("tokenizing %q (-want +got):\n%s", c.src, diff)
			}
		})
	}
}

func TestTokenizeKinds(t *testing.T) {
	got, err := Tokenize("2 + 3 * 3")
	require.NoError(t, err)
	want := []Token{
		{Kind: TokenNum, Num: 2},
		{Kind: TokenPlus},
		{Kind: TokenNum, Num: 3},
		{Kind: TokenStar},
		{Kind: TokenNum, Num: 3},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Token{}, "Text", "Pos")); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		char rune
		text string
		kind string
		col  int
	}{
		{"amp", "2 & 3", '&', "&", "", 3},
		{"dollar", "$", '$', "$", "", 1},
		{"after-ident", "a$", '$', "$", "", 2},
		{"comma", "f(a, b)", ',', ",", "", 4},
		{"bracket", "[1]", '[', "[", "", 1},
		{"dot", ".", 0, ".", "number", 1},
		{"dots", "1.2.3", 0, "1.2.3", "number", 1},
		{"dots-later", "x + 1..", 0, "1..", "number", 5},
		{"huge", "1" + strings.Repeat("0", 400), 0, "1" + strings.Repeat("0", 400), "number", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			assert.Nil(t, toks)
			var lerr *LexError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, c.char, lerr.Char)
			assert.Equal(t, c.text, lerr.Text)
			assert.Equal(t, c.kind, lerr.Kind)
			assert.Equal(t, c.col, lerr.Pos())
		})
	}
}

func TestLexErrorString(t *testing.T) {
	_, err := Tokenize("2 & 3")
	require.EqualError(t, err, "invalid token at column 3: '&'")
	_, err = Tokenize("1.2.3")
	require.EqualError(t, err, "invalid number token at column 1: 1.2.3")
}

type failReader struct {
	r   io.RuneReader
	err error
}

func (f *failReader) ReadRune() (rune, int, error) {
	r, sz, err := f.r.ReadRune()
	if errors.Is(err, io.EOF) {
		return 0, 0, f.err
	}
	return r, sz, err
}

func TestLexReaderError(t *testing.T) {
	boom := errors.New("boom")
	// Each source ends in the middle of a different kind of token.
	for _, src := range []string{"1 + ", "1 + 2", "1 + x", "1 + le", `1 + "ab`} {
		toks, err := Lex(&failReader{r: strings.NewReader(src), err: boom})
		assert.ErrorIs(t, err, boom, "lexing %q", src)
		assert.Nil(t, toks)
	}
}

func TestTokenString(t *testing.T) {
	toks, err := Tokenize(`x1 + 2.5 "s" let`)
	require.NoError(t, err)
	var s []string
	for _, tok := range toks {
		s = append(s, tok.String())
	}
	assert.Equal(t, []string{`identifier:x1@1`, `+@4`, `number:2.5@6`, `string:"s"@10`, `let@14`}, s)
	assert.Equal(t, "TokenKind(99)", TokenKind(99).String())
}
