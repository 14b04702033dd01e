package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/nlncalc/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("input is required")

	if err.Error() != "input is required" {
		t.Errorf("expected 'input is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("101 lines")
	err := apperr.NewValidationWrap("too many lines", inner)

	if err.Error() != "too many lines: 101 lines" {
		t.Errorf("expected 'too many lines: 101 lines', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestLexicalError(t *testing.T) {
	err := apperr.NewLexical(5, "xyz")

	if err.Error() != "lexical error at position 5: unknown text 'xyz'" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if apperr.Title(err) != "lexical error" {
		t.Errorf("expected lexical error title, got %q", apperr.Title(err))
	}
}

type kind string

func (k kind) String() string { return string(k) }

func TestSyntaxError(t *testing.T) {
	withLiteral := apperr.NewSyntax(kind("THOUSAND_WORD"), "tausend", 4)
	if withLiteral.Error() != "syntax error at position 4: unexpected token THOUSAND_WORD 'tausend'" {
		t.Errorf("unexpected message %q", withLiteral.Error())
	}

	atEnd := apperr.NewSyntax(kind("EOF"), "", 12)
	if atEnd.Error() != "syntax error at position 12: unexpected token EOF" {
		t.Errorf("unexpected message %q", atEnd.Error())
	}
}

func TestArithmeticError_UnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("evaluate: %w", apperr.NewDivisionByZero(5))

	if !errors.Is(err, apperr.ErrDivisionByZero) {
		t.Fatal("errors.Is should find ErrDivisionByZero through wrapping")
	}

	var ae *apperr.ArithmeticError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find ArithmeticError")
	}
	if ae.Kind != apperr.DivisionByZero {
		t.Errorf("expected DivisionByZero, got %q", ae.Kind)
	}
}

func TestLineError(t *testing.T) {
	inner := apperr.NewLexical(0, "xyz")
	err := &apperr.LineError{Line: 3, Input: "xyz", Err: inner}

	if err.Error() != "line 3: lexical error at position 0: unknown text 'xyz'" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !apperr.IsParseError(err) {
		t.Error("expected LineError to carry a parse error")
	}
	if apperr.Title(err) != "lexical error" {
		t.Errorf("expected lexical error title, got %q", apperr.Title(err))
	}
}

func TestIsParseError_NotForValidation(t *testing.T) {
	wrapped := fmt.Errorf("request: %w", apperr.NewValidation("empty input"))

	if apperr.IsParseError(wrapped) {
		t.Fatal("validation errors are not parse errors")
	}

	var ve *apperr.ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through wrapping")
	}
}
