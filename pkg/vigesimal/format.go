package vigesimal

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects a textual form for [Format].
type Mode int

const (
	// Notation joins digits with commas and appends a base-20 subscript.
	Notation Mode = iota
	// Expanded lists each digit with its power of 20.
	Expanded
)

const (
	notationSeparator = ","
	expandedSeparator = " • "
	baseSubscript     = "₂₀"
)

// ParseMode maps "notation" and "expanded" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "notation", "":
		return Notation, nil
	case "expanded":
		return Expanded, nil
	default:
		return 0, fmt.Errorf("unknown format mode: %q (must be notation or expanded)", s)
	}
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == Expanded {
		return "expanded"
	}
	return "notation"
}

// Format renders d in the given mode.
func Format(d Digits, m Mode) string {
	switch m {
	case Expanded:
		parts := make([]string, len(d))
		for i, v := range d {
			parts[i] = fmt.Sprintf("%d × %d^%d", v, Base, d.Exponent(i))
		}
		return strings.Join(parts, expandedSeparator)
	default:
		parts := make([]string, len(d))
		for i, v := range d {
			parts[i] = strconv.Itoa(int(v))
		}
		return strings.Join(parts, notationSeparator) + baseSubscript
	}
}
