// Package color holds the paint settings for rendered numerals: background,
// glyph colour and themes. Colours never influence geometry.
package color

import (
	"fmt"
	imgcolor "image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/mayanum/pkg/errors"
)

// RGBA is an 8-bit colour with a fractional alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

var (
	White       = RGBA{255, 255, 255, 1}
	Black       = RGBA{0, 0, 0, 1}
	Transparent = RGBA{0, 0, 0, 0}
)

var named = map[string]RGBA{
	"white":       White,
	"black":       Black,
	"transparent": Transparent,
}

// Parse reads a colour written as a name (white, black, transparent), hex
// (#rgb, #rrggbb, #rrggbbaa) or CSS rgb()/rgba().
func Parse(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "rgb") {
		return parseFunc(s)
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "invalid alpha in colour %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "invalid colour %q", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: roundAlpha(alpha)}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(s string) RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseFunc(s string) (RGBA, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "invalid colour %q", s)
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "colour %q needs 3 or 4 components", s)
	}

	var ch [3]uint8
	for i := range 3 {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "channel %d of %q out of range [0,255]", i, s)
		}
		ch[i] = uint8(v)
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || math.IsNaN(a) || a < 0 || a > 1 {
			return RGBA{}, errors.New(errors.ErrCodeInvalidColor, "alpha of %q out of range [0,1]", s)
		}
		alpha = a
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func roundAlpha(a float64) float64 {
	return math.Round(a*1000) / 1000
}

// CSS formats the colour as rgba(r, g, b, a).
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex formats the colour as #rrggbb, dropping alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer using the hex form when opaque.
func (c RGBA) String() string {
	if c.A >= 1 {
		return c.Hex()
	}
	return c.CSS()
}

// Opaque reports whether alpha is 1.
func (c RGBA) Opaque() bool { return c.A >= 1 }

// NRGBA converts to the image/color non-premultiplied form.
func (c RGBA) NRGBA() imgcolor.NRGBA {
	a := math.Max(0, math.Min(1, c.A))
	return imgcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// MarshalText implements encoding.TextMarshaler.
func (c RGBA) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *RGBA) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
