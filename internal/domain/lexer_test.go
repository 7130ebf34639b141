package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "minbool.dev/pkg/minbool/internal/model"
)

func kinds(tokens []m.Token) []m.TokenKind {
	out := make([]m.TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}

	return out
}

func TestTokenize_Keywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []m.TokenKind
	}{
		{"and", "A AND B", []m.TokenKind{m.TokenVariable, m.TokenAnd, m.TokenVariable, m.TokenEOF}},
		{"lowercase keywords", "a and b or c", []m.TokenKind{m.TokenVariable, m.TokenAnd, m.TokenVariable, m.TokenOr, m.TokenVariable, m.TokenEOF}},
		{"xor nand nor xnor", "A XOR B NAND C NOR D XNOR E", []m.TokenKind{
			m.TokenVariable, m.TokenXor, m.TokenVariable, m.TokenNand,
			m.TokenVariable, m.TokenNor, m.TokenVariable, m.TokenXnor,
			m.TokenVariable, m.TokenEOF,
		}},
		{"not prefix", "NOT A", []m.TokenKind{m.TokenNot, m.TokenVariable, m.TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(tokens))
		})
	}
}

func TestTokenize_Symbols(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []m.TokenKind
	}{
		{"ampersand", "A&B", []m.TokenKind{m.TokenVariable, m.TokenAnd, m.TokenVariable, m.TokenEOF}},
		{"dot and star", "A.B*C", []m.TokenKind{m.TokenVariable, m.TokenAnd, m.TokenVariable, m.TokenAnd, m.TokenVariable, m.TokenEOF}},
		{"pipe and plus", "A|B+C", []m.TokenKind{m.TokenVariable, m.TokenOr, m.TokenVariable, m.TokenOr, m.TokenVariable, m.TokenEOF}},
		{"tilde bang caret", "~A ! B ^ C", []m.TokenKind{m.TokenNot, m.TokenVariable, m.TokenNot, m.TokenVariable, m.TokenXor, m.TokenVariable, m.TokenEOF}},
		{"postfix prime", "A'", []m.TokenKind{m.TokenVariable, m.TokenPrime, m.TokenEOF}},
		{"parens", "(A)", []m.TokenKind{m.TokenLParen, m.TokenVariable, m.TokenRParen, m.TokenEOF}},
		{"unicode and or not", "A∧B∨¬C", []m.TokenKind{m.TokenVariable, m.TokenAnd, m.TokenVariable, m.TokenOr, m.TokenNot, m.TokenVariable, m.TokenEOF}},
		{"unicode xor nand nor xnor", "A⊕B↑C↓D⊙E↔F", []m.TokenKind{
			m.TokenVariable, m.TokenXor, m.TokenVariable, m.TokenNand,
			m.TokenVariable, m.TokenNor, m.TokenVariable, m.TokenXnor,
			m.TokenVariable, m.TokenXnor, m.TokenVariable, m.TokenEOF,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(tokens))
		})
	}
}

func TestTokenize_Normalization(t *testing.T) {
	tokens, err := Tokenize("true False sel_1 b")
	require.NoError(t, err)

	require.Len(t, tokens, 5)
	assert.Equal(t, m.TokenLiteral, tokens[0].Kind)
	assert.Equal(t, "1", tokens[0].Text)
	assert.Equal(t, m.TokenLiteral, tokens[1].Kind)
	assert.Equal(t, "0", tokens[1].Text)
	assert.Equal(t, "SEL_1", tokens[2].Text)
	assert.Equal(t, "B", tokens[3].Text)
}

func TestTokenize_LiteralDigits(t *testing.T) {
	tokens, err := Tokenize("0 1")
	require.NoError(t, err)

	assert.Equal(t, []m.TokenKind{m.TokenLiteral, m.TokenLiteral, m.TokenEOF}, kinds(tokens))
	assert.Equal(t, "0", tokens[0].Text)
	assert.Equal(t, "1", tokens[1].Text)
}

func TestTokenize_KeywordInsideIdentifier(t *testing.T) {
	// "ANDY" never matches the AND keyword: the whole word is scanned
	// first, misses the keyword table, and splits into letter variables.
	tokens, err := Tokenize("ANDY OR NOTA")
	require.NoError(t, err)

	assert.Equal(t, []m.TokenKind{
		m.TokenVariable, m.TokenVariable, m.TokenVariable, m.TokenVariable,
		m.TokenOr,
		m.TokenVariable, m.TokenVariable, m.TokenVariable, m.TokenVariable,
		m.TokenEOF,
	}, kinds(tokens))
	assert.Equal(t, "A", tokens[0].Text)
	assert.Equal(t, "Y", tokens[3].Text)
	assert.Equal(t, "N", tokens[5].Text)
}

func TestTokenize_Juxtaposition(t *testing.T) {
	// Adjacent letters are separate variables; a digit or underscore
	// keeps the word together as one name.
	tokens, err := Tokenize("AB SEL0")
	require.NoError(t, err)

	require.Len(t, tokens, 4)
	assert.Equal(t, "A", tokens[0].Text)
	assert.Equal(t, "B", tokens[1].Text)
	assert.Equal(t, "SEL0", tokens[2].Text)
}

func TestTokenize_Positions(t *testing.T) {
	tokens, err := Tokenize("AB AND C")
	require.NoError(t, err)

	require.Len(t, tokens, 5)
	assert.Equal(t, 0, tokens[0].Position)
	assert.Equal(t, 1, tokens[0].Length)
	assert.Equal(t, 1, tokens[1].Position)
	assert.Equal(t, 1, tokens[1].Length)
	assert.Equal(t, 3, tokens[2].Position)
	assert.Equal(t, 3, tokens[2].Length)
	assert.Equal(t, 7, tokens[3].Position)
	assert.Equal(t, 8, tokens[4].Position) // EOF sits just past the input
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		position int
		wantHint string
	}{
		{"bracket", "A [ B", 2, "use parentheses ( ) for grouping"},
		{"equals", "A = B", 2, "use XNOR for equivalence"},
		{"digit constant", "A AND 2", 6, "only 0 and 1 are valid constants"},
		{"stray symbol", "A ? B", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)

			var lexErr *m.LexicalError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.position, lexErr.Position)
			assert.Equal(t, tt.wantHint, lexErr.Hint)
		})
	}
}
