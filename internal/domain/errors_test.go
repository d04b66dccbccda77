package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinels_AreDistinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrNotFound, ErrAlreadyExists) {
		t.Fatal("ErrNotFound must not match ErrAlreadyExists")
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("director %q: %w", "Kim", ErrAlreadyExists)
	if !errors.Is(wrapped, ErrAlreadyExists) {
		t.Fatalf("errors.Is(%v, ErrAlreadyExists) = false", wrapped)
	}
	if got, want := wrapped.Error(), `director "Kim": already exists`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
