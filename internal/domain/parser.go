package domain

import (
	"fmt"

	m "minbool.dev/pkg/minbool/internal/model"
)

// Parse consumes a token stream and builds the expression tree, enforcing
// four precedence tiers from loosest to tightest binding:
//
//	OR  | NOR
//	XOR | XNOR
//	AND | NAND
//	NOT (prefix) and ' (postfix)
//
// All binary operators are left-associative. Adjacent operands without an
// operator between them ("AB", "A(B|C)") are joined by a synthesized AND at
// the AND tier. Parsing is all-or-nothing: either a complete tree and the
// sorted list of referenced variables, or a SyntaxError.
func Parse(tokens []m.Token) (m.Node, []string, error) {
	p := &parser{tokens: tokens}

	if p.peek().Kind == m.TokenEOF {
		return nil, nil, &m.SyntaxError{Message: "empty expression", Position: 0, Length: 0}
	}

	root, err := p.parseOrTier()
	if err != nil {
		return nil, nil, err
	}

	if tok := p.peek(); tok.Kind != m.TokenEOF {
		return nil, nil, &m.SyntaxError{
			Message:  fmt.Sprintf("unexpected token %q after expression", tok.Text),
			Position: tok.Position,
			Length:   tok.Length,
		}
	}

	return root, m.Variables(root), nil
}

// ParseExpression tokenizes and parses input in one step.
func ParseExpression(input string) (m.Node, []string, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, nil, err
	}

	return Parse(tokens)
}

type parser struct {
	tokens []m.Token
	pos    int
	ids    m.IDSeq
}

func (p *parser) peek() m.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() m.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != m.TokenEOF {
		p.pos++
	}

	return tok
}

func (p *parser) parseOrTier() (m.Node, error) {
	left, err := p.parseXorTier()
	if err != nil {
		return nil, err
	}

	for {
		var op m.Op

		switch p.peek().Kind {
		case m.TokenOr:
			op = m.OpOr
		case m.TokenNor:
			op = m.OpNor
		default:
			return left, nil
		}

		p.next()

		right, err := p.parseXorTier()
		if err != nil {
			return nil, err
		}

		left = &m.Bin{ID: p.ids.Next(), Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseXorTier() (m.Node, error) {
	left, err := p.parseAndTier()
	if err != nil {
		return nil, err
	}

	for {
		var op m.Op

		switch p.peek().Kind {
		case m.TokenXor:
			op = m.OpXor
		case m.TokenXnor:
			op = m.OpXnor
		default:
			return left, nil
		}

		p.next()

		right, err := p.parseAndTier()
		if err != nil {
			return nil, err
		}

		left = &m.Bin{ID: p.ids.Next(), Op: op, Left: left, Right: right}
	}
}

// parseAndTier folds explicit AND/NAND operators and, greedily, the
// implicit AND between adjacent operands.
func (p *parser) parseAndTier() (m.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		var op m.Op

		switch {
		case tok.Kind == m.TokenAnd:
			op = m.OpAnd
			p.next()
		case tok.Kind == m.TokenNand:
			op = m.OpNand
			p.next()
		case tok.StartsOperand():
			// Implicit AND: no operator between two operands.
			op = m.OpAnd
		default:
			return left, nil
		}

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = &m.Bin{ID: p.ids.Next(), Op: op, Left: left, Right: right}
	}
}

// parseUnary handles prefix NOT and the postfix negation mark. Prefix NOT
// consumes a full unary expression, which may itself already carry postfix
// primes, so ~A' parses as NOT(NOT(A)).
func (p *parser) parseUnary() (m.Node, error) {
	if p.peek().Kind == m.TokenNot {
		p.next()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &m.Not{ID: p.ids.Next(), X: operand}, nil
	}

	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	// Postfix primes bind tightest and may chain: A'' is NOT(NOT(A)).
	for p.peek().Kind == m.TokenPrime {
		p.next()

		node = &m.Not{ID: p.ids.Next(), X: node}
	}

	return node, nil
}

func (p *parser) parsePrimary() (m.Node, error) {
	tok := p.next()

	switch tok.Kind {
	case m.TokenVariable:
		return &m.Var{ID: p.ids.Next(), Name: tok.Text}, nil

	case m.TokenLiteral:
		return &m.Lit{ID: p.ids.Next(), Value: tok.Text == "1"}, nil

	case m.TokenLParen:
		inner, err := p.parseOrTier()
		if err != nil {
			return nil, err
		}

		closing := p.peek()
		if closing.Kind != m.TokenRParen {
			return nil, &m.SyntaxError{
				Message:  "missing closing parenthesis",
				Position: tok.Position,
				Length:   closing.Position - tok.Position,
			}
		}

		p.next()

		return inner, nil

	case m.TokenEOF:
		return nil, &m.SyntaxError{
			Message:  "unexpected end of expression",
			Position: tok.Position,
			Length:   0,
		}

	default:
		msg := fmt.Sprintf("unexpected token %q", tok.Text)
		if tok.IsBinaryOperator() {
			msg = fmt.Sprintf("operator %q is missing a left operand", tok.Text)
		}

		return nil, &m.SyntaxError{
			Message:  msg,
			Position: tok.Position,
			Length:   tok.Length,
		}
	}
}
