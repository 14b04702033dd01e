package token

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/nlncalc/internal/apperr"
)

// NumeralTokenizer splits a line of German number words, digits and operators into tokens.
// It holds no per-call state and can be shared between goroutines.
type NumeralTokenizer struct {
	table *Table
}

func NewNumeralTokenizer(table *Table) *NumeralTokenizer {
	return &NumeralTokenizer{table: table}
}

// Tokenize converts the input string into a slice of Tokens terminated by EOF.
// Example: Input: `minus dreihundertfünfundzwanzig mal 2`
func (t *NumeralTokenizer) Tokenize(input string) ([]Token, error) {
	var tokens []Token
	// leading blanks never pad a binary operator: " - 5" is a negation
	pos := skipSpace(input, 0)

	for pos < len(input) {
		tok, next, ok := t.match(input, pos)
		if ok {
			tokens = append(tokens, tok)
			pos = next
			continue
		}

		r, size := utf8.DecodeRuneInString(input[pos:])
		if !unicode.IsSpace(r) {
			return nil, apperr.NewLexical(pos, input[pos:])
		}
		pos += size
	}

	tokens = append(tokens, Token{Type: EOF, Pos: len(input)})
	return tokens, nil
}

// match tries every group in priority order and returns the first hit.
func (t *NumeralTokenizer) match(input string, pos int) (Token, int, bool) {
	for _, g := range t.table.groups {
		switch g.Class {
		case ClassWord:
			for _, w := range g.Words {
				if t.hasLiteral(input, pos, w.Literal) {
					end := pos + len(w.Literal)
					return Token{Type: g.Type, Value: input[pos:end], Number: w.Value, HasNumber: true, Pos: pos}, end, true
				}
			}
		case ClassDigits:
			end := pos
			for end < len(input) && input[end] >= '0' && input[end] <= '9' {
				end++
			}
			if end == pos {
				continue
			}
			// Overlong literals become ±Inf, the float range is the only limit.
			v, err := strconv.ParseFloat(input[pos:end], 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				continue
			}
			return Token{Type: g.Type, Value: input[pos:end], Number: v, HasNumber: true, Pos: pos}, end, true
		case ClassSymbol:
			start := pos
			if g.Padded {
				start = skipSpace(input, pos)
				if start == pos {
					continue
				}
			}
			for _, w := range g.Words {
				if !t.hasLiteral(input, start, w.Literal) {
					continue
				}
				end := start + len(w.Literal)
				if g.Padded {
					after := skipSpace(input, end)
					if after == end {
						continue
					}
					return Token{Type: g.Type, Value: input[start:end], Pos: start}, after, true
				}
				return Token{Type: g.Type, Value: input[start:end], Pos: start}, end, true
			}
		}
	}
	return Token{}, pos, false
}

func (t *NumeralTokenizer) hasLiteral(input string, pos int, literal string) bool {
	if !t.table.foldCase {
		return strings.HasPrefix(input[pos:], literal)
	}
	end := pos + len(literal)
	return end <= len(input) && strings.EqualFold(input[pos:end], literal)
}

func skipSpace(input string, pos int) int {
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}
