package style

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/termstyle/internal/errors"
)

func TestFormatUint_Grouping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		number uint64
		want   string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{999, "999"},
		{1000, "1,000"},
		{1234, "1,234"},
		{999999, "999,999"},
		{1000000, "1,000,000"},
		{123456789, "123,456,789"},
		{math.MaxUint64, "18,446,744,073,709,551,615"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			got, err := FormatUint(tt.number)
			if err != nil {
				t.Fatalf("FormatUint(%d) unexpected error: %v", tt.number, err)
			}
			if got != tt.want {
				t.Errorf("FormatUint(%d) = %q, want %q", tt.number, got, tt.want)
			}
		})
	}
}

func TestFormatUint_Tokens(t *testing.T) {
	t.Parallel()
	t.Run("tokens wrap the grouped digits", func(t *testing.T) {
		t.Parallel()
		got, err := FormatUint(1000, "yellow", "bold")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "\033[33m\033[1m1,000\033[0m"
		if got != want {
			t.Errorf("FormatUint(1000, yellow, bold) = %q, want %q", got, want)
		}
	})

	t.Run("token errors propagate unchanged", func(t *testing.T) {
		t.Parallel()
		_, err := FormatUint(5, "nope")
		var invalid apperrors.InvalidFormatError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %v, want InvalidFormatError", err)
		}
		if invalid.Reason != apperrors.ReasonUnknownToken {
			t.Errorf("reason = %v, want ReasonUnknownToken", invalid.Reason)
		}
	})
}
