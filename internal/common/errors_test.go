package common

import (
	"errors"
	"strings"
	"testing"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("DB_ERROR", "query failed", ErrDatabase)
	if !errors.Is(err, ErrDatabase) {
		t.Error("AppError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "DB_ERROR") || !strings.Contains(err.Error(), "query failed") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrapErrorNil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil must stay nil")
	}
	wrapped := WrapError(ErrNotFound, "load job")
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped error lost its cause")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("x", 600)
	got := Truncate(long, 500)
	if len(got) > 500+len("…") {
		t.Errorf("len = %d", len(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Error("truncated text missing ellipsis")
	}
	if Truncate("abc", 0) != "abc" {
		t.Error("n<=0 must be a no-op")
	}
}
