// Package input validates raw user input before it reaches the numeral core.
//
// Parsers return a coded error instead of a value when input is unusable,
// so the decomposer only ever sees non-negative integers.
package input

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/mayanum/pkg/errors"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
	"github.com/matzehuels/mayanum/pkg/vigesimal"
)

// Group labels used for numbers and dates.
const (
	LabelNumber = "Number"
	LabelDay    = "Day"
	LabelMonth  = "Month"
	LabelYear   = "Year"
)

// ParseNumber accepts a base-10 integer in [0, 2^64-1]. Signs, fractions,
// exponents and surrounding text are rejected.
func ParseNumber(raw string) (uint64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidNumber, "number is empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.New(errors.ErrCodeInvalidNumber, "not a non-negative integer: %q", raw)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidNumber, err, "number out of range: %q", raw)
	}
	return n, nil
}

// NumberGroups decomposes n into a single group labelled "Number".
func NumberGroups(n uint64) []layout.Group {
	return []layout.Group{{Label: LabelNumber, Digits: vigesimal.ToDigits(n)}}
}

// DateParts is a validated Gregorian calendar date.
type DateParts struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

var (
	dayFirst  = regexp.MustCompile(`^(\d{2})[-/](\d{2})[-/](\d{4})$`)
	yearFirst = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// ParseDate accepts DD-MM-YYYY, DD/MM/YYYY or YYYY-MM-DD and checks that the
// day exists in the given month and year.
func ParseDate(raw string) (DateParts, error) {
	s := strings.TrimSpace(raw)

	var d DateParts
	switch {
	case dayFirst.MatchString(s):
		m := dayFirst.FindStringSubmatch(s)
		d = DateParts{Day: atoi(m[1]), Month: atoi(m[2]), Year: atoi(m[3])}
	case yearFirst.MatchString(s):
		m := yearFirst.FindStringSubmatch(s)
		d = DateParts{Day: atoi(m[3]), Month: atoi(m[2]), Year: atoi(m[1])}
	default:
		return DateParts{}, errors.New(errors.ErrCodeInvalidDate,
			"unrecognised date %q (use DD-MM-YYYY, DD/MM/YYYY, or YYYY-MM-DD)", raw)
	}

	if err := d.Validate(); err != nil {
		return DateParts{}, err
	}
	return d, nil
}

// Validate checks month range and that the day exists in that month.
func (d DateParts) Validate() error {
	if d.Year < 0 {
		return errors.New(errors.ErrCodeInvalidDate, "year must not be negative: %d", d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return errors.New(errors.ErrCodeInvalidDate, "month out of range [1,12]: %d", d.Month)
	}
	if d.Day < 1 || d.Day > DaysIn(d.Month, d.Year) {
		return errors.New(errors.ErrCodeInvalidDate, "day %d does not exist in %04d-%02d", d.Day, d.Year, d.Month)
	}
	return nil
}

// DaysIn returns the number of days in a Gregorian month.
func DaysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Groups decomposes the date into Day, Month and Year groups, left to right.
func (d DateParts) Groups() []layout.Group {
	return []layout.Group{
		{Label: LabelDay, Digits: vigesimal.ToDigits(uint64(d.Day))},
		{Label: LabelMonth, Digits: vigesimal.ToDigits(uint64(d.Month))},
		{Label: LabelYear, Digits: vigesimal.ToDigits(uint64(d.Year))},
	}
}

// String formats the date as DD-MM-YYYY.
func (d DateParts) String() string {
	return pad(d.Day, 2) + "-" + pad(d.Month, 2) + "-" + pad(d.Year, 4)
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// atoi is only called on regexp-matched digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
