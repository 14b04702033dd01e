package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/nlncalc/internal/apperr"
	"github.com/DjordjeVuckovic/nlncalc/pkg/utils"
	"github.com/google/uuid"
)

const defaultMaxLines = 100

// Evaluator evaluates a single input line.
type Evaluator interface {
	Parse(line string) (float64, error)
}

// LineResult is the value of one evaluated line. Line is 1-based.
type LineResult struct {
	Line  int
	Input string
	Value float64
}

// Batch holds the results of one multi-line submission in input order.
type Batch struct {
	ID      uuid.UUID
	Results []LineResult
}

// Config defines batch limits
type Config struct {
	Name string
	// MaxLines bounds the number of non-blank lines per batch, zero disables the bound.
	MaxLines int
}

// LineProcessor evaluates multi-line input line by line and stops at the first failing line.
type LineProcessor struct {
	eval   Evaluator
	config *Config
}

type Option func(p *LineProcessor)

// WithMaxLines bounds the number of lines per batch
func WithMaxLines(n int) Option {
	return func(p *LineProcessor) {
		p.config.MaxLines = n
	}
}

// WithConfig sets custom processor configuration
func WithConfig(config *Config) Option {
	return func(p *LineProcessor) {
		p.config = config
	}
}

func NewLineProcessor(eval Evaluator, opts ...Option) *LineProcessor {
	p := &LineProcessor{
		eval: eval,
		config: &Config{
			Name:     "line-processor",
			MaxLines: defaultMaxLines,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process evaluates every non-blank line of input. On the first failing line it returns
// the results collected so far together with an *apperr.LineError.
func (p *LineProcessor) Process(ctx context.Context, input string) (*Batch, error) {
	start := time.Now()
	lines := utils.SplitLines(input)

	calculations := len(utils.RemoveBlankStrings(lines))
	if calculations == 0 {
		return nil, apperr.NewValidation("input is required")
	}
	if p.config.MaxLines > 0 && calculations > p.config.MaxLines {
		return nil, apperr.NewValidation(fmt.Sprintf("input has %d lines, at most %d are allowed", calculations, p.config.MaxLines))
	}

	batch := &Batch{ID: uuid.New(), Results: make([]LineResult, 0, len(lines))}

	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		v, err := p.eval.Parse(line)
		if err != nil {
			slog.Warn("Line evaluation failed, stopping batch",
				"processor", p.config.Name,
				"batch", batch.ID,
				"line", i+1,
				"error", err,
			)
			return batch, &apperr.LineError{Line: i + 1, Input: line, Err: err}
		}

		slog.Debug("Line evaluated",
			"processor", p.config.Name,
			"batch", batch.ID,
			"line", i+1,
			"value", v,
		)
		batch.Results = append(batch.Results, LineResult{Line: i + 1, Input: line, Value: v})
	}

	slog.Info("Batch evaluated",
		"processor", p.config.Name,
		"batch", batch.ID,
		"lines", len(batch.Results),
		"duration", time.Since(start),
	)

	return batch, nil
}
