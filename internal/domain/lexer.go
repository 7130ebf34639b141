// Package domain implements the expression pipeline: lexing, parsing,
// evaluation, truth-table generation and Quine-McCluskey minimization.
package domain

import (
	"fmt"
	"strings"
	"unicode"

	m "minbool.dev/pkg/minbool/internal/model"
)

// Keyword operators, matched case-insensitively as whole words.
var keywords = map[string]m.TokenKind{
	"AND":  m.TokenAnd,
	"OR":   m.TokenOr,
	"NOT":  m.TokenNot,
	"XOR":  m.TokenXor,
	"NAND": m.TokenNand,
	"NOR":  m.TokenNor,
	"XNOR": m.TokenXnor,
}

// Single-rune operator aliases, including the curated Unicode logic symbols.
var symbols = map[rune]m.TokenKind{
	'&': m.TokenAnd,
	'.': m.TokenAnd,
	'*': m.TokenAnd,
	'∧': m.TokenAnd,
	'|': m.TokenOr,
	'+': m.TokenOr,
	'∨': m.TokenOr,
	'~': m.TokenNot,
	'!': m.TokenNot,
	'¬': m.TokenNot,
	'^': m.TokenXor,
	'⊕': m.TokenXor,
	'↑': m.TokenNand,
	'↓': m.TokenNor,
	'⊙': m.TokenXnor,
	'↔': m.TokenXnor,
	'(': m.TokenLParen,
	')': m.TokenRParen,
}

// Tokenize splits input into a token stream, failing with a LexicalError on
// the first unrecognized character. Whitespace is skipped and never emitted;
// a trailing EOF sentinel is always appended on success.
//
// Variable names and literals are normalized: identifiers to uppercase,
// "true"/"false" to "1"/"0".
func Tokenize(input string) ([]m.Token, error) {
	runes := []rune(input)
	tokens := make([]m.Token, 0, len(runes)/2+1)

	for i := 0; i < len(runes); {
		r := runes[i]

		if unicode.IsSpace(r) {
			i++
			continue
		}

		if kind, ok := symbols[r]; ok {
			tokens = append(tokens, m.Token{Kind: kind, Text: string(r), Position: i, Length: 1})
			i++

			continue
		}

		if r == '\'' {
			tokens = append(tokens, m.Token{Kind: m.TokenPrime, Text: "'", Position: i, Length: 1})
			i++

			continue
		}

		if r == '0' || r == '1' {
			tokens = append(tokens, m.Token{Kind: m.TokenLiteral, Text: string(r), Position: i, Length: 1})
			i++

			continue
		}

		if unicode.IsLetter(r) {
			start := i
			for i < len(runes) && isIdentPart(runes[i]) {
				i++
			}

			word := string(runes[start:i])
			tokens = append(tokens, classifyWord(word, start)...)

			continue
		}

		return nil, &m.LexicalError{
			Message:  fmt.Sprintf("unrecognized character %q", r),
			Position: i,
			Hint:     lexHint(r),
		}
	}

	tokens = append(tokens, m.Token{Kind: m.TokenEOF, Position: len(runes)})

	return tokens, nil
}

// classifyWord turns a scanned word into keyword, literal or variable
// tokens. Scanning is maximal-munch, so a keyword followed by an
// alphanumeric character (as in "ANDY") never matches: the whole word is
// read first and only compared against the keyword table as a unit.
//
// A non-keyword word made of letters alone splits into one single-letter
// variable per rune, which is what makes juxtaposition ("AB", "AC'") mean
// conjunction. A digit or underscore anywhere keeps the word together as
// one multi-character variable ("SEL0", "C_1").
func classifyWord(word string, pos int) []m.Token {
	upper := strings.ToUpper(word)
	length := len([]rune(word))

	if kind, ok := keywords[upper]; ok {
		return []m.Token{{Kind: kind, Text: upper, Position: pos, Length: length}}
	}

	switch upper {
	case "TRUE":
		return []m.Token{{Kind: m.TokenLiteral, Text: "1", Position: pos, Length: length}}
	case "FALSE":
		return []m.Token{{Kind: m.TokenLiteral, Text: "0", Position: pos, Length: length}}
	}

	letters := []rune(upper)
	if length > 1 && lettersOnly(letters) {
		out := make([]m.Token, len(letters))
		for k, letter := range letters {
			out[k] = m.Token{Kind: m.TokenVariable, Text: string(letter), Position: pos + k, Length: 1}
		}

		return out
	}

	return []m.Token{{Kind: m.TokenVariable, Text: upper, Position: pos, Length: length}}
}

func lettersOnly(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// lexHint suggests a fix for common mistakes. Advisory only.
func lexHint(r rune) string {
	switch r {
	case '[', ']', '{', '}':
		return "use parentheses ( ) for grouping"
	case '=', '≡':
		return "use XNOR for equivalence"
	case '-', '−':
		return "use NOT, ~ or ! for negation"
	case '/', '\\':
		return "use AND, & or * for conjunction"
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return "only 0 and 1 are valid constants"
	}

	if unicode.IsDigit(r) {
		return "variable names must start with a letter"
	}

	return ""
}
