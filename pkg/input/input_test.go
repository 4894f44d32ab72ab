package input

import (
	"slices"
	"testing"

	"github.com/matzehuels/mayanum/pkg/errors"
	"github.com/matzehuels/mayanum/pkg/vigesimal"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint64
		wantErr bool
	}{
		{"zero", "0", 0, false},
		{"plain", "2025", 2025, false},
		{"whitespace", "  123\n", 123, false},
		{"leading zeros", "007", 7, false},
		{"max", "18446744073709551615", 18446744073709551615, false},

		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"negative", "-5", 0, true},
		{"plus sign", "+5", 0, true},
		{"fraction", "1.5", 0, true},
		{"exponent", "1e3", 0, true},
		{"letters", "12abc", 0, true},
		{"overflow", "18446744073709551616", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNumber(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidNumber) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidNumber)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    DateParts
		wantErr bool
	}{
		{"dashes", "05-01-2025", DateParts{Day: 5, Month: 1, Year: 2025}, false},
		{"slashes", "31/12/1999", DateParts{Day: 31, Month: 12, Year: 1999}, false},
		{"iso", "2025-01-05", DateParts{Day: 5, Month: 1, Year: 2025}, false},
		{"leap day", "29-02-2024", DateParts{Day: 29, Month: 2, Year: 2024}, false},
		{"trimmed", " 01-01-0001 ", DateParts{Day: 1, Month: 1, Year: 1}, false},

		{"empty", "", DateParts{}, true},
		{"single digit day", "5-01-2025", DateParts{}, true},
		{"two digit year", "05-01-25", DateParts{}, true},
		{"month 13", "05-13-2025", DateParts{}, true},
		{"month zero", "05-00-2025", DateParts{}, true},
		{"day zero", "00-01-2025", DateParts{}, true},
		{"april 31", "31-04-2025", DateParts{}, true},
		{"non leap", "29-02-2023", DateParts{}, true},
		{"century non leap", "29-02-1900", DateParts{}, true},
		{"text", "tomorrow", DateParts{}, true},
		{"iso slashes", "2025/01/05", DateParts{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidDate) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDate)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct{ month, year, want int }{
		{1, 2025, 31},
		{2, 2024, 29},
		{2, 2000, 29},
		{2, 2100, 28},
		{4, 2025, 30},
		{12, 2025, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.month, tt.year); got != tt.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestDateGroups(t *testing.T) {
	groups := DateParts{Day: 5, Month: 1, Year: 2025}.Groups()
	if len(groups) != 3 {
		t.Fatalf("len = %d, want 3", len(groups))
	}

	want := []struct {
		label  string
		digits vigesimal.Digits
	}{
		{LabelDay, vigesimal.Digits{5}},
		{LabelMonth, vigesimal.Digits{1}},
		{LabelYear, vigesimal.Digits{5, 1, 5}},
	}
	for i, w := range want {
		if groups[i].Label != w.label || !slices.Equal(groups[i].Digits, w.digits) {
			t.Errorf("group %d = %s %v, want %s %v", i, groups[i].Label, groups[i].Digits, w.label, w.digits)
		}
	}
}

func TestNumberGroups(t *testing.T) {
	groups := NumberGroups(400)
	if len(groups) != 1 || groups[0].Label != LabelNumber || !slices.Equal(groups[0].Digits, vigesimal.Digits{1, 0, 0}) {
		t.Errorf("NumberGroups(400) = %+v", groups)
	}
}

func TestDateString(t *testing.T) {
	if got := (DateParts{Day: 5, Month: 1, Year: 25}).String(); got != "05-01-0025" {
		t.Errorf("String() = %q", got)
	}
}
