// Package vigesimal converts base-10 integers into base-20 positional digits.
//
// # Overview
//
// A vigesimal number is an ordered sequence of [Digit] values in [0, 19],
// most significant first. [ToDigits] produces the minimal-length sequence for
// any non-negative integer; zero is the single-element sequence [0], never an
// empty one.
//
//	d := vigesimal.ToDigits(2025) // [5 1 5]
//	d.Value()                     // 2025
//
// # Glyph Counts
//
// Each digit is drawn with bars (worth five) and dots (worth one). [Bars] and
// [Dots] give the counts; zero is special-cased by renderers and drawn as a
// single zero-glyph instead.
//
// # Text Forms
//
// [Format] derives two textual forms from a sequence without re-decomposing
// the source integer:
//
//	vigesimal.Format(d, vigesimal.Notation) // "5,1,5₂₀"
//	vigesimal.Format(d, vigesimal.Expanded) // "5 × 20^2 • 1 × 20^1 • 5 × 20^0"
package vigesimal
