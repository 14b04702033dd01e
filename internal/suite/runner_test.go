package suite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DjordjeVuckovic/nlncalc/internal/apperr"
)

type outcome struct {
	value float64
	err   error
}

type fakeEvaluator map[string]outcome

func (f fakeEvaluator) Parse(line string) (float64, error) {
	o, ok := f[line]
	if !ok {
		return 0, errors.New("unexpected line " + line)
	}
	return o.value, o.err
}

func ptr(v float64) *float64 { return &v }

func TestRunner_Run(t *testing.T) {
	eval := fakeEvaluator{
		"eins":            {value: 1},
		"drittel":         {value: 1.0 / 3},
		"zehn durch null": {err: apperr.NewDivisionByZero(5)},
		"xyz":             {err: apperr.NewLexical(0, "xyz")},
		"zwei million":    {err: &apperr.SyntaxError{Unexpected: "EOF", Pos: 12}},
	}
	s := &TestSuite{
		Name: "runner",
		Cases: []Case{
			{ID: "value", Input: "eins", Expect: ptr(1)},
			{ID: "tolerance", Input: "drittel", Expect: ptr(0.3333333333333333)},
			{ID: "div", Input: "zehn durch null", Error: ErrorDivisionByZero},
			{ID: "wrong-kind", Input: "xyz", Error: ErrorSyntax},
			{ID: "wrong-value", Input: "eins", Expect: ptr(2)},
			{ID: "unexpected-error", Input: "zwei million", Expect: ptr(2000000)},
			{ID: "missing-error", Input: "eins", Error: ErrorLexical},
		},
	}

	res, err := NewRunner(eval).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Passed)
	assert.Equal(t, 4, res.Failed)
	assert.False(t, res.OK())
	assert.Equal(t, len(s.Cases), res.Latency.SampleCount)

	byID := make(map[string]CaseResult)
	for _, c := range res.Cases {
		byID[c.ID] = c
	}
	assert.True(t, byID["value"].Passed)
	assert.True(t, byID["tolerance"].Passed)
	assert.True(t, byID["div"].Passed)
	assert.Equal(t, ErrorLexical, byID["wrong-kind"].GotError)
	assert.Contains(t, byID["wrong-kind"].Message, "want syntax error, got lexical")
	assert.Equal(t, "want 2, got 1", byID["wrong-value"].Message)
	assert.Contains(t, byID["unexpected-error"].Message, "got error")
	assert.Equal(t, "want lexical error, got 1", byID["missing-error"].Message)
}

func TestRunner_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(fakeEvaluator{}).Run(ctx, &TestSuite{Name: "c", Cases: []Case{{ID: "a", Input: "eins", Expect: ptr(1)}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ErrorNone},
		{"lexical", apperr.NewLexical(0, "x"), ErrorLexical},
		{"syntax", &apperr.SyntaxError{Unexpected: "EOF"}, ErrorSyntax},
		{"division", apperr.NewDivisionByZero(3), ErrorDivisionByZero},
		{"validation", apperr.NewValidation("too long"), ErrorValidation},
		{"wrapped", &apperr.LineError{Line: 2, Err: apperr.NewLexical(1, "y")}, ErrorLexical},
		{"other", errors.New("boom"), ErrorOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, approxEqual(1e6, 1e6+1e-4, 1e-9))
	assert.False(t, approxEqual(1, 1.001, 1e-9))
	assert.True(t, approxEqual(0, 1e-10, 1e-9))
}
