package model

// TokenKind identifies the lexical category of a token.
type TokenKind int

// Token kinds produced by the lexer.
const (
	TokenEOF TokenKind = iota
	TokenVariable
	TokenLiteral
	TokenAnd
	TokenOr
	TokenXor
	TokenNand
	TokenNor
	TokenXnor
	TokenNot
	TokenPrime // postfix negation mark '
	TokenLParen
	TokenRParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenVariable:
		return "variable"
	case TokenLiteral:
		return "literal"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenXor:
		return "XOR"
	case TokenNand:
		return "NAND"
	case TokenNor:
		return "NOR"
	case TokenXnor:
		return "XNOR"
	case TokenNot:
		return "NOT"
	case TokenPrime:
		return "'"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}

	return "unknown"
}

// Token is a single lexeme of a Boolean expression.
//
// Position and Length are rune offsets into the original input, kept so
// callers can highlight the exact source range a token came from.
type Token struct {
	Kind     TokenKind
	Text     string
	Position int
	Length   int
}

// IsBinaryOperator reports whether the token joins two operands.
func (t Token) IsBinaryOperator() bool {
	switch t.Kind {
	case TokenAnd, TokenOr, TokenXor, TokenNand, TokenNor, TokenXnor:
		return true
	}

	return false
}

// StartsOperand reports whether the token can begin a unary expression.
// The parser uses this to detect implicit AND (e.g. "AB" or "A(B|C)").
func (t Token) StartsOperand() bool {
	switch t.Kind {
	case TokenVariable, TokenLiteral, TokenNot, TokenLParen:
		return true
	}

	return false
}
