package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_PriorityOrder(t *testing.T) {
	table, err := NewTable()
	require.NoError(t, err)

	var order []Type
	for _, g := range table.Groups() {
		order = append(order, g.Type)
	}

	assert.Equal(t, []Type{
		TEN_TO_NINETEEN_WORD, TENS_WORD, ONES_WORD, ZERO_WORD, ONE_WORD,
		ONE_PREFIX_B, ONE_PREFIX_A, HUNDRED_WORD, THOUSAND_WORD, MILLION_WORD,
		DIGIT_LITERAL,
		MINUS_OP, PLUS_OP, TIMES_OP, DIVIDE_OP, CONNECTIVE, MILLION_PLURAL_SUFFIX, NEGATION_PREFIX,
	}, order)
}

// A literal of a later group must never be shadowed by being the prefix of an earlier one,
// the reverse is what the ordering resolves.
func TestTable_PrefixConflictsResolvedByOrder(t *testing.T) {
	table, err := NewTable()
	require.NoError(t, err)

	groups := table.Groups()
	for i, earlier := range groups {
		for _, later := range groups[i+1:] {
			for _, e := range earlier.Words {
				for _, l := range later.Words {
					assert.Falsef(t, len(e.Literal) < len(l.Literal) && l.Literal[:len(e.Literal)] == e.Literal,
						"%s %q shadows %s %q", earlier.Type, e.Literal, later.Type, l.Literal)
				}
			}
		}
	}
}

// valueOf finds the numeric value of a word literal in any group.
func valueOf(table *Table, literal string) (float64, bool) {
	for _, g := range table.Groups() {
		if g.Class != ClassWord {
			continue
		}
		for _, w := range g.Words {
			if w.Literal == literal {
				return w.Value, true
			}
		}
	}
	return 0, false
}

func TestTable_WordValues(t *testing.T) {
	table, err := NewTable()
	require.NoError(t, err)

	tests := map[string]float64{
		"null": 0, "eins": 1, "ein": 1, "eine": 1, "sieben": 7, "zwölf": 12,
		"dreißig": 30, "neunzig": 90, "hundert": 100, "tausend": 1000, "million": 1000000,
	}
	for literal, want := range tests {
		v, ok := valueOf(table, literal)
		require.True(t, ok, literal)
		assert.Equal(t, want, v, literal)
	}

	_, ok := valueOf(table, "und")
	assert.False(t, ok, "symbols carry no numeric value")
}

func TestTable_LiteralsLongestFirst(t *testing.T) {
	table, err := NewTable()
	require.NoError(t, err)

	for _, g := range table.Groups() {
		for i := 1; i < len(g.Words); i++ {
			assert.GreaterOrEqual(t, len(g.Words[i-1].Literal), len(g.Words[i].Literal), "group %s", g.Type)
		}
	}
}

func TestNewTable_DuplicateLiteral(t *testing.T) {
	groups := []Group{
		{Type: ONES_WORD, Class: ClassWord, Words: []Word{{"zwei", 2}}},
		{Type: TENS_WORD, Class: ClassWord, Words: []Word{{"zwei", 20}}},
	}

	_, err := newTable(groups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate word literal "zwei"`)
}

func TestTable_GroupsIsACopy(t *testing.T) {
	table, err := NewTable()
	require.NoError(t, err)

	groups := table.Groups()
	groups[0].Words[0].Value = -1

	v, ok := valueOf(table, groups[0].Words[0].Literal)
	require.True(t, ok)
	assert.NotEqual(t, -1.0, v)
	assert.NotEqual(t, -1.0, table.Groups()[0].Words[0].Value)
}
