package vigesimal

import (
	"fmt"

	"github.com/matzehuels/mayanum/pkg/errors"
)

// Base is the radix of the positional system.
const Base = 20

// BarValue is the amount a single bar contributes to a digit.
const BarValue = 5

// Digit is one positional unit of a vigesimal number, in [0, 19].
type Digit uint8

// Digits is a vigesimal number, most significant digit first.
type Digits []Digit

// ToDigits decomposes n into base-20 digits, most significant first.
// Zero yields [0].
func ToDigits(n uint64) Digits {
	if n == 0 {
		return Digits{0}
	}

	var rev Digits
	for n > 0 {
		rev = append(rev, Digit(n%Base))
		n /= Base
	}

	out := make(Digits, len(rev))
	for i, d := range rev {
		out[len(rev)-1-i] = d
	}
	return out
}

// FromInts converts a plain integer slice into Digits and validates it.
func FromInts(vals []int) (Digits, error) {
	out := make(Digits, len(vals))
	for i, v := range vals {
		if v < 0 || v >= Base {
			return nil, errors.New(errors.ErrCodeInvalidDigits, "digit %d out of range [0,%d]: %d", i, Base-1, v)
		}
		out[i] = Digit(v)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Value reconstructs the base-10 integer. Sequences whose value exceeds
// uint64 wrap around; ToDigits never produces one.
func (d Digits) Value() uint64 {
	var n uint64
	for _, v := range d {
		n = n*Base + uint64(v)
	}
	return n
}

// Exponent returns the place-value exponent of the digit at index i.
func (d Digits) Exponent(i int) int { return len(d) - 1 - i }

// Multiplier returns 20^Exponent(i).
func (d Digits) Multiplier(i int) uint64 { return Pow(d.Exponent(i)) }

// Contribution returns the base-10 amount the digit at index i adds to Value.
func (d Digits) Contribution(i int) uint64 { return uint64(d[i]) * d.Multiplier(i) }

// Ints returns the digits as plain integers, handy for JSON output.
func (d Digits) Ints() []int {
	out := make([]int, len(d))
	for i, v := range d {
		out[i] = int(v)
	}
	return out
}

// Validate reports whether d is a well-formed sequence: non-empty, every digit
// in range, and no leading zero unless the sequence is exactly [0].
func (d Digits) Validate() error {
	if len(d) == 0 {
		return errors.New(errors.ErrCodeInvalidDigits, "digit sequence is empty")
	}
	for i, v := range d {
		if v >= Base {
			return errors.New(errors.ErrCodeInvalidDigits, "digit %d out of range [0,%d]: %d", i, Base-1, v)
		}
	}
	if len(d) > 1 && d[0] == 0 {
		return errors.New(errors.ErrCodeInvalidDigits, "digit sequence has a leading zero")
	}
	return nil
}

// String implements fmt.Stringer.
func (d Digits) String() string { return fmt.Sprint(d.Ints()) }

// Pow returns 20^exp for exp >= 0.
func Pow(exp int) uint64 {
	p := uint64(1)
	for range exp {
		p *= Base
	}
	return p
}

// Bars returns how many bars draw d.
func Bars(d Digit) int { return int(d) / BarValue }

// Dots returns how many dots draw d.
func Dots(d Digit) int { return int(d) % BarValue }
