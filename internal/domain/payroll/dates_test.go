package payroll

import (
	"errors"
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "iso passthrough", raw: "2024-01-15", want: "2024-01-15"},
		{name: "day month year slashes", raw: "01/01/2024", want: "2024-01-01"},
		{name: "day month year wins over month day year", raw: "03/04/2024", want: "2024-04-03"},
		{name: "month day year fallback", raw: "12/25/2024", want: "2024-12-25"},
		{name: "day month year dashes", raw: "25-12-2024", want: "2024-12-25"},
		{name: "surrounding whitespace", raw: " 2024-06-30 ", want: "2024-06-30"},
		{name: "nonsense numbers", raw: "20-20-20", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "free text", raw: "next friday", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDate(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NormalizeDate(%q) = %q, want error", tc.raw, got)
				}
				var dfe *DateFormatError
				if !errors.As(err, &dfe) {
					t.Fatalf("expected *DateFormatError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDate(%q) failed: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeDate(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	inputs := []string{"2024-01-15", "01/01/2024", "12/25/2024", "25-12-2024"}
	for _, raw := range inputs {
		once, err := NormalizeDate(raw)
		if err != nil {
			t.Fatalf("first normalize of %q failed: %v", raw, err)
		}
		twice, err := NormalizeDate(once)
		if err != nil {
			t.Fatalf("second normalize of %q failed: %v", once, err)
		}
		if once != twice {
			t.Fatalf("normalize not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}
