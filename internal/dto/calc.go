package dto

import (
	"math"

	"github.com/DjordjeVuckovic/nlncalc/internal/processor"
	"github.com/DjordjeVuckovic/nlncalc/internal/token"
	"github.com/google/uuid"
)

// CalculateRequest carries one or more lines of mixed German number words, digits and operators.
type CalculateRequest struct {
	Input string `json:"input" validate:"required" example:"zwei plus drei mal vier"`
}

type LineResult struct {
	Line  int    `json:"line" example:"1"`
	Input string `json:"input" example:"zwei plus drei mal vier"`
	// Value is omitted for inf and nan, which JSON cannot carry.
	Value *float64 `json:"value,omitempty" example:"14"`
	// Text is the value formatted the way the result page shows it.
	Text string `json:"text" example:"14.0"`
}

type CalculateResponse struct {
	ID      uuid.UUID    `json:"id" swaggertype:"string" format:"uuid"`
	Results []LineResult `json:"results"`
}

type Token struct {
	Type   string   `json:"type" example:"ONES_WORD"`
	Value  string   `json:"value" example:"zwei"`
	Number *float64 `json:"number,omitempty" example:"2"`
	Pos    int      `json:"pos" example:"0"`
}

type TokensResponse struct {
	Line   string  `json:"line"`
	Tokens []Token `json:"tokens"`
}

func NewCalculateResponse(b *processor.Batch, format func(float64) string) CalculateResponse {
	results := make([]LineResult, 0, len(b.Results))
	for _, r := range b.Results {
		results = append(results, LineResult{
			Line:  r.Line,
			Input: r.Input,
			Value: finite(r.Value),
			Text:  format(r.Value),
		})
	}
	return CalculateResponse{ID: b.ID, Results: results}
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func NewTokensResponse(line string, tokens []token.Token) TokensResponse {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		dt := Token{Type: t.Type.String(), Value: t.Value, Pos: t.Pos}
		if t.HasNumber {
			dt.Number = finite(t.Number)
		}
		out = append(out, dt)
	}
	return TokensResponse{Line: line, Tokens: out}
}
