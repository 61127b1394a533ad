package tool

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorStringIncludesCode(t *testing.T) {
	err := NewError(ErrorCodeParseFailure, "bad header at lines 2-4")
	want := "PARSE_FAILURE: bad header at lines 2-4"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := WrapError(ErrorCodeIOFailure, cause, "writing index.qmd")

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false, want true")
	}
	if ErrorCode(err) != ErrorCodeIOFailure {
		t.Fatalf("code = %q, want IO_FAILURE", ErrorCode(err))
	}
}

func TestErrorCodeSurvivesWrapping(t *testing.T) {
	inner := NewError(ErrorCodeNotFound, "no such file")
	outer := fmt.Errorf("loading document: %w", inner)

	if !IsNotFound(outer) {
		t.Fatalf("code through wrap = %q, want NOT_FOUND", ErrorCode(outer))
	}
}

func TestErrorCodeOfPlainError(t *testing.T) {
	if code := ErrorCode(errors.New("plain")); code != "" {
		t.Fatalf("code = %q, want empty", code)
	}
}

func TestWithDetails(t *testing.T) {
	err := NewError(ErrorCodeCollaboratorFailure, "render failed").
		WithDetails(map[string]any{"exit_code": 2})
	if err.Details["exit_code"] != 2 {
		t.Fatalf("details = %v, want exit_code=2", err.Details)
	}
}
