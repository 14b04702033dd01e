package suite

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/DjordjeVuckovic/nlncalc/pkg/utils"
)

// Evaluator evaluates a single input line.
type Evaluator interface {
	Parse(line string) (float64, error)
}

// CaseResult carries numbers twice: as floats for comparison and as text for reports,
// since JSON has no inf or nan.
type CaseResult struct {
	ID         string        `json:"id"`
	Input      string        `json:"input"`
	Expect     *float64      `json:"-"`
	ExpectText string        `json:"expect,omitempty"`
	Want       ErrorKind     `json:"want_error,omitempty"`
	Got        float64       `json:"-"`
	GotText    string        `json:"got,omitempty"`
	GotError   ErrorKind     `json:"got_error,omitempty"`
	Message    string        `json:"message,omitempty"`
	Passed     bool          `json:"passed"`
	Latency    time.Duration `json:"latency"`
}

type Result struct {
	Suite    string        `json:"suite"`
	Version  string        `json:"version,omitempty"`
	Cases    []CaseResult  `json:"cases"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Latency  LatencyStats  `json:"latency"`
	Duration time.Duration `json:"duration"`
}

func (r *Result) OK() bool {
	return r.Failed == 0
}

type Runner struct {
	eval Evaluator
}

func NewRunner(eval Evaluator) *Runner {
	return &Runner{eval: eval}
}

// Run evaluates every case in order. It stops early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s *TestSuite) (*Result, error) {
	start := time.Now()
	res := &Result{Suite: s.Name, Version: s.Version}
	latencies := make([]time.Duration, 0, len(s.Cases))

	tolerance := s.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}

	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("suite %q interrupted: %w", s.Name, err)
		}

		cr := r.runCase(c, tolerance)
		latencies = append(latencies, cr.Latency)
		res.Cases = append(res.Cases, cr)

		if cr.Passed {
			res.Passed++
		} else {
			res.Failed++
			slog.Warn("case failed", "suite", s.Name, "case", c.ID, "input", c.Input, "message", cr.Message)
		}
	}

	res.Latency = ComputeLatencyStats(latencies)
	res.Duration = time.Since(start)
	return res, nil
}

func (r *Runner) runCase(c Case, tolerance float64) CaseResult {
	t0 := time.Now()
	got, err := r.eval.Parse(c.Input)
	latency := time.Since(t0)

	cr := CaseResult{
		ID:       c.ID,
		Input:    c.Input,
		Expect:   c.Expect,
		Want:     c.Error,
		Got:      got,
		GotError: Classify(err),
		Latency:  latency,
	}
	if c.Expect != nil {
		cr.ExpectText = utils.FormatNumber(*c.Expect)
	}
	if err == nil {
		cr.GotText = utils.FormatNumber(got)
	}

	switch {
	case c.Expect != nil && err != nil:
		cr.Message = fmt.Sprintf("want %g, got error: %v", *c.Expect, err)
	case c.Expect != nil && !approxEqual(got, *c.Expect, tolerance):
		cr.Message = fmt.Sprintf("want %g, got %g", *c.Expect, got)
	case c.Expect != nil:
		cr.Passed = true
	case err == nil:
		cr.Message = fmt.Sprintf("want %s error, got %g", c.Error, got)
	case cr.GotError != c.Error:
		cr.Message = fmt.Sprintf("want %s error, got %s: %v", c.Error, cr.GotError, err)
	default:
		cr.Passed = true
		cr.Message = err.Error()
	}

	return cr
}

func approxEqual(got, want, tolerance float64) bool {
	if got == want {
		return true
	}
	diff := math.Abs(got - want)
	scale := math.Max(1, math.Max(math.Abs(got), math.Abs(want)))
	return diff <= tolerance*scale
}
