// Package numeral evaluates lines of German number words, digits and the four basic
// arithmetic operators.
package numeral

import (
	"fmt"

	"github.com/DjordjeVuckovic/nlncalc/internal/apperr"
	"github.com/DjordjeVuckovic/nlncalc/internal/token"
)

const DefaultMaxInputLength = 1024

// Engine is the immutable evaluator configuration. Build it once and share it;
// Parse and Tokenize are safe for concurrent use.
type Engine struct {
	tokenizer      token.Tokenizer
	maxInputLength int
}

type Option func(*engineConfig)

type engineConfig struct {
	maxInputLength int
	tableOpts      []token.TableOption
}

// WithMaxInputLength bounds the length of a line in bytes. Zero or less disables the bound.
func WithMaxInputLength(n int) Option {
	return func(c *engineConfig) {
		c.maxInputLength = n
	}
}

// WithFoldCase makes word and operator matching case-insensitive.
func WithFoldCase() Option {
	return func(c *engineConfig) {
		c.tableOpts = append(c.tableOpts, token.WithFoldCase())
	}
}

func NewEngine(opts ...Option) (*Engine, error) {
	cfg := engineConfig{maxInputLength: DefaultMaxInputLength}
	for _, opt := range opts {
		opt(&cfg)
	}

	table, err := token.NewTable(cfg.tableOpts...)
	if err != nil {
		return nil, fmt.Errorf("build token table: %w", err)
	}

	return &Engine{
		tokenizer:      token.NewNumeralTokenizer(table),
		maxInputLength: cfg.maxInputLength,
	}, nil
}

// Tokenize returns the token stream of a single line.
func (e *Engine) Tokenize(line string) ([]token.Token, error) {
	if e.maxInputLength > 0 && len(line) > e.maxInputLength {
		return nil, apperr.NewValidation(fmt.Sprintf("input exceeds %d bytes", e.maxInputLength))
	}
	return e.tokenizer.Tokenize(line)
}

// Parse evaluates a single line, e.g. "zweihundert mal drei" -> 600.
func (e *Engine) Parse(line string) (float64, error) {
	tokens, err := e.Tokenize(line)
	if err != nil {
		return 0, err
	}
	return ParseTokens(tokens)
}
