package vigesimal

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		d    Digits
		mode Mode
		want string
	}{
		{"notation year", Digits{5, 1, 5}, Notation, "5,1,5₂₀"},
		{"notation zero", Digits{0}, Notation, "0₂₀"},
		{"notation two digits", Digits{19, 19}, Notation, "19,19₂₀"},
		{"expanded year", Digits{5, 1, 5}, Expanded, "5 × 20^2 • 1 × 20^1 • 5 × 20^0"},
		{"expanded single", Digits{7}, Expanded, "7 × 20^0"},
		{"expanded zeros", Digits{1, 0, 0}, Expanded, "1 × 20^2 • 0 × 20^1 • 0 × 20^0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.d, tt.mode); got != tt.want {
				t.Errorf("Format(%v, %v) = %q, want %q", tt.d, tt.mode, got, tt.want)
			}
		})
	}
}

func TestFormatExpandedExponents(t *testing.T) {
	for _, n := range []uint64{0, 1, 20, 399, 400, 2025, 160_000, 987_654_321} {
		d := ToDigits(n)
		terms := strings.Split(Format(d, Expanded), " • ")
		if len(terms) != len(d) {
			t.Fatalf("n=%d: %d terms, want %d", n, len(terms), len(d))
		}
		for i, term := range terms {
			want := fmt.Sprintf("%d × 20^%d", d[i], len(d)-1-i)
			if term != want {
				t.Errorf("n=%d term %d = %q, want %q", n, i, term, want)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"notation", Notation, false},
		{"", Notation, false},
		{"EXPANDED", Expanded, false},
		{"roman", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
