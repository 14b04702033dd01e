package suite

import (
	"errors"

	"github.com/DjordjeVuckovic/nlncalc/internal/apperr"
)

const DefaultTolerance = 1e-9

type TestSuite struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Version     string  `yaml:"version"`
	Tolerance   float64 `yaml:"tolerance,omitempty"`
	Cases       []Case  `yaml:"cases"`
}

// Case is one line with either an expected value or an expected error kind.
type Case struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description,omitempty"`
	Input       string    `yaml:"input"`
	Expect      *float64  `yaml:"expect,omitempty"`
	Error       ErrorKind `yaml:"error,omitempty"`
}

type ErrorKind string

const (
	ErrorNone           ErrorKind = ""
	ErrorLexical        ErrorKind = "lexical"
	ErrorSyntax         ErrorKind = "syntax"
	ErrorDivisionByZero ErrorKind = "division_by_zero"
	ErrorValidation     ErrorKind = "validation"
	ErrorOther          ErrorKind = "other"
)

var validErrorKinds = map[ErrorKind]bool{
	ErrorLexical:        true,
	ErrorSyntax:         true,
	ErrorDivisionByZero: true,
	ErrorValidation:     true,
}

// Classify maps an evaluation error onto the suite's error kinds.
func Classify(err error) ErrorKind {
	if err == nil {
		return ErrorNone
	}

	var le *apperr.LexicalError
	var se *apperr.SyntaxError
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &le):
		return ErrorLexical
	case errors.As(err, &se):
		return ErrorSyntax
	case errors.Is(err, apperr.ErrDivisionByZero):
		return ErrorDivisionByZero
	case errors.As(err, &ve):
		return ErrorValidation
	default:
		return ErrorOther
	}
}
