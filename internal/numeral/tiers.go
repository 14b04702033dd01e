package numeral

import "github.com/DjordjeVuckovic/nlncalc/internal/token"

// tier is the highest magnitude a reduced numeral reached.
type tier int

const (
	// tierOne is a bare "eins", which cannot multiply a higher tier.
	tierOne tier = iota
	tierDecimal
	tierHundreds
	tierThousands
	tierMillions
)

type reduction struct {
	value float64
	tier  tier
}

// numeral := millions_numeral | thousands_numeral | hundreds_numeral | decimal_numeral
//
// millions_unit    := ONE_PREFIX_B MILLION | ONES MILLION MILLION_PLURAL_SUFFIX (no space before the suffix)
// millions_numeral := millions_unit (CONNECTIVE thousands_numeral | below_million)?
func (p *parser) numeral() (reduction, error) {
	var value float64

	switch {
	case p.peek(0) == token.ONE_PREFIX_B:
		p.next()
		if p.peek(0) != token.MILLION_WORD {
			return reduction{}, p.unexpected()
		}
		value = p.next().Number
	case p.peek(0) == token.ONES_WORD && p.peek(1) == token.MILLION_WORD:
		m := p.next().Number
		million := p.next()
		// the suffix is part of the word: "millionen", not "million en"
		if p.peek(0) != token.MILLION_PLURAL_SUFFIX || p.cur().Pos != million.Pos+len(million.Value) {
			return reduction{}, p.unexpected()
		}
		p.next()
		value = m * million.Number
	default:
		return p.belowMillion()
	}

	switch {
	case p.peek(0) == token.CONNECTIVE:
		p.next()
		r, err := p.belowMillion()
		if err != nil {
			return reduction{}, err
		}
		if r.tier != tierThousands {
			return reduction{}, p.unexpected()
		}
		value += r.value
	case p.startsBelowMillion(0):
		r, err := p.belowMillion()
		if err != nil {
			return reduction{}, err
		}
		value += r.value
	}

	return reduction{value: value, tier: tierMillions}, nil
}

// thousands_unit    := multiplier THOUSAND | ONE_PREFIX_A THOUSAND | THOUSAND
// thousands_numeral := thousands_unit (CONNECTIVE? hundreds_numeral | decimal_numeral)?
func (p *parser) belowMillion() (reduction, error) {
	var value float64

	switch {
	case p.peek(0) == token.THOUSAND_WORD:
		value = p.next().Number
	case p.peek(0) == token.ONE_PREFIX_A && p.peek(1) == token.THOUSAND_WORD:
		one := p.next().Number
		value = one * p.next().Number
	default:
		r, err := p.belowThousand()
		if err != nil {
			return reduction{}, err
		}
		if r.tier == tierHundreds {
			// "hundertein tausend", "hundert und ein tausend"
			if p.peek(0) == token.ONE_PREFIX_A && p.peek(1) == token.THOUSAND_WORD {
				r.value += p.next().Number
			} else if p.peek(0) == token.CONNECTIVE && p.peek(1) == token.ONE_PREFIX_A && p.peek(2) == token.THOUSAND_WORD {
				p.next()
				r.value += p.next().Number
			}
		}
		if p.peek(0) != token.THOUSAND_WORD {
			return r, nil
		}
		if r.tier == tierOne {
			return reduction{}, p.unexpected()
		}
		value = r.value * p.next().Number
	}

	switch {
	case p.startsHundredsUnit(0):
		r, err := p.hundreds()
		if err != nil {
			return reduction{}, err
		}
		value += r.value
	case p.peek(0) == token.CONNECTIVE && p.startsHundredsUnit(1):
		p.next()
		r, err := p.hundreds()
		if err != nil {
			return reduction{}, err
		}
		value += r.value
	case p.startsDecimal(0):
		r, err := p.decimal()
		if err != nil {
			return reduction{}, err
		}
		value += r.value
	}

	return reduction{value: value, tier: tierThousands}, nil
}

func (p *parser) belowThousand() (reduction, error) {
	if p.startsHundredsUnit(0) {
		return p.hundreds()
	}
	return p.decimal()
}

// hundreds_unit    := (ONE_PREFIX_A | ONES)? HUNDRED
// hundreds_numeral := hundreds_unit (CONNECTIVE? decimal_numeral)?
func (p *parser) hundreds() (reduction, error) {
	multiplier := 1.0
	if t := p.peek(0); t == token.ONE_PREFIX_A || t == token.ONES_WORD {
		multiplier = p.next().Number
	}
	if p.peek(0) != token.HUNDRED_WORD {
		return reduction{}, p.unexpected()
	}
	value := multiplier * p.next().Number

	if p.peek(0) == token.CONNECTIVE && p.startsDecimal(1) {
		p.next()
	}
	if p.startsDecimal(0) {
		r, err := p.decimal()
		if err != nil {
			return reduction{}, err
		}
		value += r.value
	}

	return reduction{value: value, tier: tierHundreds}, nil
}

// decimal_numeral := ONE | ONES | TEN_TO_NINETEEN | tens_combo
// tens_combo      := (ONE_PREFIX_A | ONES) CONNECTIVE? TENS | TENS
func (p *parser) decimal() (reduction, error) {
	switch p.peek(0) {
	case token.ONE_WORD:
		return reduction{value: p.next().Number, tier: tierOne}, nil
	case token.TEN_TO_NINETEEN_WORD, token.TENS_WORD:
		return reduction{value: p.next().Number, tier: tierDecimal}, nil
	case token.ONES_WORD:
		value := p.next().Number
		if tens, ok := p.tens(); ok {
			value += tens
		}
		return reduction{value: value, tier: tierDecimal}, nil
	case token.ONE_PREFIX_A:
		value := p.next().Number
		tens, ok := p.tens()
		if !ok {
			return reduction{}, p.unexpected()
		}
		return reduction{value: value + tens, tier: tierDecimal}, nil
	default:
		return reduction{}, p.unexpected()
	}
}

// tens consumes the "und zwanzig" part of a tens combination.
func (p *parser) tens() (float64, bool) {
	switch {
	case p.peek(0) == token.TENS_WORD:
		return p.next().Number, true
	case p.peek(0) == token.CONNECTIVE && p.peek(1) == token.TENS_WORD:
		p.next()
		return p.next().Number, true
	default:
		return 0, false
	}
}

func (p *parser) startsDecimal(i int) bool {
	switch p.peek(i) {
	case token.ONE_WORD, token.ONES_WORD, token.TEN_TO_NINETEEN_WORD, token.TENS_WORD:
		return true
	case token.ONE_PREFIX_A:
		return p.peek(i+1) == token.TENS_WORD ||
			(p.peek(i+1) == token.CONNECTIVE && p.peek(i+2) == token.TENS_WORD)
	default:
		return false
	}
}

func (p *parser) startsHundredsUnit(i int) bool {
	switch p.peek(i) {
	case token.HUNDRED_WORD:
		return true
	case token.ONE_PREFIX_A, token.ONES_WORD:
		return p.peek(i+1) == token.HUNDRED_WORD
	default:
		return false
	}
}

func (p *parser) startsBelowMillion(i int) bool {
	if p.startsDecimal(i) || p.startsHundredsUnit(i) || p.peek(i) == token.THOUSAND_WORD {
		return true
	}
	return p.peek(i) == token.ONE_PREFIX_A && p.peek(i+1) == token.THOUSAND_WORD
}
