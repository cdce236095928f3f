package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gill-lang/gill/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func TestTokenizeNumbersAndIdentifiers(t *testing.T) {
	toks, err := New(`define n int 21`).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.DEFINE, token.IDENTIFIER, token.TYPE, token.NUMBER_INT, token.EOF}, kinds(toks))
	assert.Equal(t, "21", toks[3].Value)
}

func TestTrueFalseAreBooleanNotIdentifier(t *testing.T) {
	toks, err := New(`true false truex`).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, token.BOOLEAN, toks[0].Kind)
	assert.Equal(t, token.BOOLEAN, toks[1].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[2].Kind)
}

func TestTwoCharOperatorsBeforeOneChar(t *testing.T) {
	toks, err := New(`a==b&&c<d`).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.EQ, token.IDENTIFIER, token.AND,
		token.IDENTIFIER, token.LT, token.IDENTIFIER, token.EOF,
	}, kinds(toks))
}

func TestCastTokenVsPlainParen(t *testing.T) {
	toks, err := New(`(int)x (y)`).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, token.CAST, toks[0].Kind)
	assert.Equal(t, "int", toks[0].Value)
	assert.Equal(t, token.LPAREN, toks[2].Kind)
}

func TestCommentToEndOfLine(t *testing.T) {
	toks, err := New("define n int 1 ; this is a comment\nout n").Tokenize()
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.DEFINE, token.IDENTIFIER, token.TYPE, token.NUMBER_INT,
		token.OUT, token.IDENTIFIER, token.EOF,
	}, kinds(toks))
}

func TestStringAndCharLiterals(t *testing.T) {
	toks, err := New(`"hi there" 'a'`).Tokenize()
	require.NoError(t, err)
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hi there", toks[0].Value)
	assert.Equal(t, token.CHAR, toks[1].Kind)
	assert.Equal(t, "a", toks[1].Value)
}

func TestLineColumnTracking(t *testing.T) {
	toks, err := New("out 1\nout 2").Tokenize()
	require.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[2].Line)
}

func TestUnrecognizedCharacterIsLexError(t *testing.T) {
	_, err := New("out @").Tokenize()
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}
