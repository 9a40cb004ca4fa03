package domain

import (
	"errors"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("wraps the underlying error", func(t *testing.T) {
		base := errors.New("strconv: invalid syntax")
		err := NewParseError("quantity", "abc", base)

		if !errors.Is(err, base) {
			t.Error("expected ParseError to wrap the underlying error")
		}

		want := `parse quantity "abc": strconv: invalid syntax`
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("unknown enum literal", func(t *testing.T) {
		err := NewParseError("side", "SIDEWAYS", ErrUnknownEnum)
		if !errors.Is(err, ErrUnknownEnum) {
			t.Error("expected ParseError to wrap ErrUnknownEnum")
		}
	})
}
