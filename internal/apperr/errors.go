package apperr

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// LexicalError reports the first position of a line that no token pattern matches.
type LexicalError struct {
	Pos      int
	Residual string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at position %d: unknown text '%s'", e.Pos, e.Residual)
}

func NewLexical(pos int, residual string) *LexicalError {
	return &LexicalError{Pos: pos, Residual: residual}
}

// SyntaxError reports the token at which no grammar production applies.
type SyntaxError struct {
	Unexpected string
	Literal    string
	Pos        int
}

func (e *SyntaxError) Error() string {
	if e.Literal == "" {
		return fmt.Sprintf("syntax error at position %d: unexpected token %s", e.Pos, e.Unexpected)
	}
	return fmt.Sprintf("syntax error at position %d: unexpected token %s '%s'", e.Pos, e.Unexpected, e.Literal)
}

func NewSyntax(unexpected fmt.Stringer, literal string, pos int) *SyntaxError {
	return &SyntaxError{Unexpected: unexpected.String(), Literal: literal, Pos: pos}
}

type ArithmeticKind string

const DivisionByZero ArithmeticKind = "DivisionByZero"

var ErrDivisionByZero = errors.New("division by zero")

type ArithmeticError struct {
	Kind ArithmeticKind
	Pos  int
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error at position %d: %v", e.Pos, e.Unwrap())
}

func (e *ArithmeticError) Unwrap() error {
	switch e.Kind {
	case DivisionByZero:
		return ErrDivisionByZero
	default:
		return nil
	}
}

func NewDivisionByZero(pos int) *ArithmeticError {
	return &ArithmeticError{Kind: DivisionByZero, Pos: pos}
}

// LineError ties an evaluation error to the input line it came from.
type LineError struct {
	Line  int
	Input string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err carries one of the line evaluation errors.
func IsParseError(err error) bool {
	var le *LexicalError
	var se *SyntaxError
	var ae *ArithmeticError
	return errors.As(err, &le) || errors.As(err, &se) || errors.As(err, &ae)
}

// Title names the error class for user-facing output.
func Title(err error) string {
	var le *LexicalError
	var se *SyntaxError
	var ae *ArithmeticError
	var ve *ValidationError
	switch {
	case errors.As(err, &le):
		return "lexical error"
	case errors.As(err, &se):
		return "syntax error"
	case errors.As(err, &ae):
		return "arithmetic error"
	case errors.As(err, &ve):
		return "validation error"
	default:
		return "error"
	}
}
