package token

import (
	"fmt"
	"sort"
)

// Class tells the tokenizer how a group's patterns are matched.
type Class int

const (
	// ClassWord matches one of the group's literals and carries its numeric value.
	ClassWord Class = iota
	// ClassDigits matches one or more ASCII digits.
	ClassDigits
	// ClassSymbol matches one of the group's literals without a numeric value.
	ClassSymbol
)

// Word is a numeral literal with its numeric contribution.
type Word struct {
	Literal string
	Value   float64
}

// Group is one entry of the tokenizer's priority list.
type Group struct {
	Type  Type
	Class Class
	Words []Word
	// Padded symbols need one or more whitespace characters on both sides.
	Padded bool
}

// Table is the immutable, priority-ordered catalogue of lexical patterns.
// It is safe for concurrent use.
type Table struct {
	groups   []Group
	foldCase bool
}

type TableOption func(*Table)

// WithFoldCase makes literal matching case-insensitive ("Zwei Millionen").
func WithFoldCase() TableOption {
	return func(t *Table) {
		t.foldCase = true
	}
}

// Word groups come first because later groups hold literals that prefix earlier ones:
// "drei" prefixes "dreizehn" and "dreißig", "ein" prefixes "eins" and "eine".
var defaultGroups = []Group{
	{Type: TEN_TO_NINETEEN_WORD, Class: ClassWord, Words: []Word{
		{"zehn", 10}, {"elf", 11}, {"zwölf", 12}, {"dreizehn", 13}, {"vierzehn", 14},
		{"fünfzehn", 15}, {"sechzehn", 16}, {"siebzehn", 17}, {"achtzehn", 18}, {"neunzehn", 19},
	}},
	{Type: TENS_WORD, Class: ClassWord, Words: []Word{
		{"zwanzig", 20}, {"dreißig", 30}, {"vierzig", 40}, {"fünfzig", 50},
		{"sechzig", 60}, {"siebzig", 70}, {"achtzig", 80}, {"neunzig", 90},
	}},
	{Type: ONES_WORD, Class: ClassWord, Words: []Word{
		{"zwei", 2}, {"drei", 3}, {"vier", 4}, {"fünf", 5},
		{"sechs", 6}, {"sieben", 7}, {"acht", 8}, {"neun", 9},
	}},
	{Type: ZERO_WORD, Class: ClassWord, Words: []Word{{"null", 0}}},
	{Type: ONE_WORD, Class: ClassWord, Words: []Word{{"eins", 1}}},
	{Type: ONE_PREFIX_B, Class: ClassWord, Words: []Word{{"eine", 1}}},
	{Type: ONE_PREFIX_A, Class: ClassWord, Words: []Word{{"ein", 1}}},
	{Type: HUNDRED_WORD, Class: ClassWord, Words: []Word{{"hundert", 100}}},
	{Type: THOUSAND_WORD, Class: ClassWord, Words: []Word{{"tausend", 1000}}},
	{Type: MILLION_WORD, Class: ClassWord, Words: []Word{{"million", 1000000}}},

	{Type: DIGIT_LITERAL, Class: ClassDigits},

	{Type: MINUS_OP, Class: ClassSymbol, Padded: true, Words: []Word{{Literal: "minus"}, {Literal: "-"}}},
	{Type: PLUS_OP, Class: ClassSymbol, Padded: true, Words: []Word{{Literal: "plus"}, {Literal: "+"}}},
	{Type: TIMES_OP, Class: ClassSymbol, Padded: true, Words: []Word{{Literal: "mal"}, {Literal: "*"}}},
	{Type: DIVIDE_OP, Class: ClassSymbol, Padded: true, Words: []Word{{Literal: "durch"}, {Literal: "/"}}},
	{Type: CONNECTIVE, Class: ClassSymbol, Words: []Word{{Literal: "und"}}},
	{Type: MILLION_PLURAL_SUFFIX, Class: ClassSymbol, Words: []Word{{Literal: "en"}}},
	{Type: NEGATION_PREFIX, Class: ClassSymbol, Words: []Word{{Literal: "minus"}, {Literal: "-"}}},
}

// NewTable builds the German numeral table.
func NewTable(opts ...TableOption) (*Table, error) {
	return newTable(defaultGroups, opts...)
}

func newTable(groups []Group, opts ...TableOption) (*Table, error) {
	t := &Table{
		groups: make([]Group, 0, len(groups)),
	}
	seen := make(map[string]bool)
	for _, opt := range opts {
		opt(t)
	}

	for _, g := range groups {
		words := make([]Word, len(g.Words))
		copy(words, g.Words)
		sort.SliceStable(words, func(i, j int) bool {
			return len(words[i].Literal) > len(words[j].Literal)
		})

		if g.Class == ClassWord {
			for _, w := range words {
				if seen[w.Literal] {
					return nil, fmt.Errorf("duplicate word literal %q in group %s", w.Literal, g.Type)
				}
				seen[w.Literal] = true
			}
		}
		if g.Class != ClassDigits && len(words) == 0 {
			return nil, fmt.Errorf("group %s has no literals", g.Type)
		}

		g.Words = words
		t.groups = append(t.groups, g)
	}

	return t, nil
}

// Groups returns the pattern groups in the order the tokenizer tries them.
func (t *Table) Groups() []Group {
	out := make([]Group, len(t.groups))
	for i, g := range t.groups {
		g.Words = append([]Word(nil), g.Words...)
		out[i] = g
	}
	return out
}
