package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "eins", []string{"eins"}},
		{"unix", "eins\nzwei", []string{"eins", "zwei"}},
		{"windows", "eins\r\nzwei\r\n", []string{"eins", "zwei"}},
		{"old mac", "eins\rzwei", []string{"eins", "zwei"}},
		{"blank middle line", "eins\n\nzwei", []string{"eins", "", "zwei"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.input))
		})
	}
}

func TestRemoveBlankStrings(t *testing.T) {
	assert.Equal(t, []string{"a", " b "}, RemoveBlankStrings([]string{"", "a", "  ", "\t", " b "}))
	assert.Nil(t, RemoveBlankStrings([]string{" "}))
}

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", " "}, RemoveEmptyStrings([]string{"", "a", " "}))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{14, "14.0"},
		{-2, "-2.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{3.5, "3.5"},
		{1.0 / 3, "0.3333333333333333"},
		{1e6, "1000000.0"},
		{1e16, "1e+16"},
		{0.00001, "1e-05"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}
