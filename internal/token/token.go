package token

import "fmt"

type Type int

const (
	EOF Type = iota
	DIGIT_LITERAL
	ZERO_WORD
	ONE_WORD
	ONE_PREFIX_A
	ONE_PREFIX_B
	ONES_WORD
	TEN_TO_NINETEEN_WORD
	TENS_WORD
	HUNDRED_WORD
	THOUSAND_WORD
	MILLION_WORD
	MILLION_PLURAL_SUFFIX
	CONNECTIVE
	NEGATION_PREFIX
	MINUS_OP
	PLUS_OP
	TIMES_OP
	DIVIDE_OP
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case DIGIT_LITERAL:
		return "DIGIT_LITERAL"
	case ZERO_WORD:
		return "ZERO_WORD"
	case ONE_WORD:
		return "ONE_WORD"
	case ONE_PREFIX_A:
		return "ONE_PREFIX_A"
	case ONE_PREFIX_B:
		return "ONE_PREFIX_B"
	case ONES_WORD:
		return "ONES_WORD"
	case TEN_TO_NINETEEN_WORD:
		return "TEN_TO_NINETEEN_WORD"
	case TENS_WORD:
		return "TENS_WORD"
	case HUNDRED_WORD:
		return "HUNDRED_WORD"
	case THOUSAND_WORD:
		return "THOUSAND_WORD"
	case MILLION_WORD:
		return "MILLION_WORD"
	case MILLION_PLURAL_SUFFIX:
		return "MILLION_PLURAL_SUFFIX"
	case CONNECTIVE:
		return "CONNECTIVE"
	case NEGATION_PREFIX:
		return "NEGATION_PREFIX"
	case MINUS_OP:
		return "MINUS_OP"
	case PLUS_OP:
		return "PLUS_OP"
	case TIMES_OP:
		return "TIMES_OP"
	case DIVIDE_OP:
		return "DIVIDE_OP"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type, the matched literal text and,
// for numeral words and digit literals, its numeric value.
type Token struct {
	Type      Type    `json:"type"`
	Value     string  `json:"value"`
	Number    float64 `json:"number,omitempty"`
	HasNumber bool    `json:"-"`
	// Pos is the byte offset of Value in the input line.
	Pos int `json:"pos"`
}

func (t Token) String() string {
	if t.HasNumber {
		return fmt.Sprintf("%s(%q=%g)@%d", t.Type, t.Value, t.Number, t.Pos)
	}
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Value, t.Pos)
}
