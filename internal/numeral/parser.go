package numeral

import (
	"github.com/DjordjeVuckovic/nlncalc/internal/apperr"
	"github.com/DjordjeVuckovic/nlncalc/internal/token"
)

// ParseTokens reduces a token stream to its value:
//
//	expression      := term (('+' | '-') term)*
//	term            := factor (('*' | '/') factor)*
//	factor          := number
//	number          := ZERO | NEGATION_PREFIX positive_number | positive_number
//	positive_number := DIGIT_LITERAL | numeral
func ParseTokens(tokens []token.Token) (float64, error) {
	p := &parser{tokens: tokens}

	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.peek(0) != token.EOF {
		return 0, p.unexpected()
	}
	return v, nil
}

// parser is the per-call cursor over a token stream.
type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) cur() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	end := 0
	if n := len(p.tokens); n > 0 {
		end = p.tokens[n-1].Pos + len(p.tokens[n-1].Value)
	}
	return token.Token{Type: token.EOF, Pos: end}
}

func (p *parser) peek(n int) token.Type {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i].Type
	}
	return token.EOF
}

func (p *parser) next() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *parser) unexpected() error {
	t := p.cur()
	return apperr.NewSyntax(t.Type, t.Value, t.Pos)
}

func (p *parser) expression() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek(0) {
		case token.PLUS_OP:
			p.next()
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left += right
		case token.MINUS_OP:
			p.next()
			right, err := p.term()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	left, err := p.factor()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek(0) {
		case token.TIMES_OP:
			p.next()
			right, err := p.factor()
			if err != nil {
				return 0, err
			}
			left *= right
		case token.DIVIDE_OP:
			op := p.next()
			right, err := p.factor()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, apperr.NewDivisionByZero(op.Pos)
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *parser) factor() (float64, error) {
	return p.number()
}

func (p *parser) number() (float64, error) {
	switch p.peek(0) {
	case token.ZERO_WORD:
		return p.next().Number, nil
	case token.NEGATION_PREFIX:
		p.next()
		v, err := p.positiveNumber()
		if err != nil {
			return 0, err
		}
		return -v, nil
	default:
		return p.positiveNumber()
	}
}

func (p *parser) positiveNumber() (float64, error) {
	if p.peek(0) == token.DIGIT_LITERAL {
		return p.next().Number, nil
	}
	r, err := p.numeral()
	if err != nil {
		return 0, err
	}
	return r.value, nil
}
