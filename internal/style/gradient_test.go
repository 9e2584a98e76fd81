package style

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/termstyle/internal/errors"
)

// Fixed out-of-range indicators: red or green with blink and bold, composed
// exactly as FormatUint would with those tokens.
const (
	tooLowPrefix  = "\033[31m\033[5m\033[1m"
	tooHighPrefix = "\033[32m\033[5m\033[1m"
)

func TestGradientUint_InRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                     string
		number, minimum, maximum uint64
		want                     string
	}{
		{
			name:   "range start is pure red",
			number: 0, minimum: 0, maximum: 100,
			want: "\033[38;5;196m0\033[0m",
		},
		{
			name:   "midpoint is pure yellow",
			number: 50, minimum: 0, maximum: 100,
			want: "\033[38;5;226m50\033[0m",
		},
		{
			name:   "range end is pure green",
			number: 100, minimum: 0, maximum: 100,
			want: "\033[38;5;46m100\033[0m",
		},
		{
			name:   "degenerate interval hit renders pure green",
			number: 5, minimum: 5, maximum: 5,
			want: "\033[38;5;46m5\033[0m",
		},
		{
			name:   "reversed range keeps red at the original minimum",
			number: 100, minimum: 100, maximum: 0,
			want: "\033[38;5;196m100\033[0m",
		},
		{
			name:   "reversed range keeps green at the original maximum",
			number: 0, minimum: 100, maximum: 0,
			want: "\033[38;5;46m0\033[0m",
		},
		{
			name:   "grouped digits inside the gradient wrap",
			number: 2000, minimum: 0, maximum: 2000,
			want: "\033[38;5;46m2,000\033[0m",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := GradientUint(tt.number, tt.minimum, tt.maximum)
			if err != nil {
				t.Fatalf("GradientUint(%d, %d, %d) unexpected error: %v",
					tt.number, tt.minimum, tt.maximum, err)
			}
			if got != tt.want {
				t.Errorf("GradientUint(%d, %d, %d) = %q, want %q",
					tt.number, tt.minimum, tt.maximum, got, tt.want)
			}
		})
	}
}

func TestGradientUint_OutOfRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                     string
		number, minimum, maximum uint64
		wantPrefix               string
		wantDigits               string
	}{
		{
			name:   "below an ascending range",
			number: 0, minimum: 10, maximum: 100,
			wantPrefix: tooLowPrefix, wantDigits: "0",
		},
		{
			name:   "above an ascending range",
			number: 150, minimum: 0, maximum: 100,
			wantPrefix: tooHighPrefix, wantDigits: "150",
		},
		{
			name:   "above a descending range counts as too low",
			number: 150, minimum: 100, maximum: 10,
			wantPrefix: tooLowPrefix, wantDigits: "150",
		},
		{
			name:   "below a descending range counts as too high",
			number: 5, minimum: 100, maximum: 10,
			wantPrefix: tooHighPrefix, wantDigits: "5",
		},
		{
			name:   "degenerate interval miss counts as too low",
			number: 4, minimum: 5, maximum: 5,
			wantPrefix: tooLowPrefix, wantDigits: "4",
		},
		{
			name:   "degenerate interval miss from above",
			number: 6, minimum: 5, maximum: 5,
			wantPrefix: tooLowPrefix, wantDigits: "6",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// Caller styles are ignored for out-of-range values.
			got, err := GradientUint(tt.number, tt.minimum, tt.maximum, "underline")
			if err != nil {
				t.Fatalf("GradientUint(%d, %d, %d) unexpected error: %v",
					tt.number, tt.minimum, tt.maximum, err)
			}
			want := tt.wantPrefix + tt.wantDigits + Reset
			if got != want {
				t.Errorf("GradientUint(%d, %d, %d) = %q, want %q",
					tt.number, tt.minimum, tt.maximum, got, want)
			}
		})
	}
}

func TestGradientUint_Tokens(t *testing.T) {
	t.Parallel()
	t.Run("style tokens wrap the digits inside the gradient color", func(t *testing.T) {
		t.Parallel()
		got, err := GradientUint(50, 0, 100, "bold")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "\033[38;5;226m\033[1m50\033[0m\033[0m"
		if got != want {
			t.Errorf("GradientUint(50, 0, 100, bold) = %q, want %q", got, want)
		}
	})

	t.Run("any color token is rejected", func(t *testing.T) {
		t.Parallel()
		for _, color := range ColorNames() {
			_, err := GradientUint(50, 0, 100, "bold", color)
			var invalid apperrors.InvalidFormatError
			if !errors.As(err, &invalid) {
				t.Fatalf("GradientUint with %q: error = %v, want InvalidFormatError", color, err)
			}
			if invalid.Reason != apperrors.ReasonColorForbidden {
				t.Errorf("reason = %v, want ReasonColorForbidden", invalid.Reason)
			}
			if invalid.Token != color {
				t.Errorf("token = %q, want %q", invalid.Token, color)
			}
		}
	})

	t.Run("color check sees tokens past an empty slot", func(t *testing.T) {
		t.Parallel()
		_, err := GradientUint(50, 0, 100, "", "red")
		if !apperrors.IsInvalidFormat(err) {
			t.Fatalf("error = %v, want InvalidFormatError", err)
		}
	})

	t.Run("style errors propagate", func(t *testing.T) {
		t.Parallel()
		_, err := GradientUint(50, 0, 100, "bold", "bold")
		var invalid apperrors.InvalidFormatError
		if !errors.As(err, &invalid) {
			t.Fatalf("error = %v, want InvalidFormatError", err)
		}
		if invalid.Reason != apperrors.ReasonDuplicateStyle {
			t.Errorf("reason = %v, want ReasonDuplicateStyle", invalid.Reason)
		}
	})
}
