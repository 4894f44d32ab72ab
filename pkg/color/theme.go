package color

import (
	"strings"

	"github.com/matzehuels/mayanum/pkg/errors"
)

// Grid pattern settings.
const (
	GridSize   = 20.0
	GridStroke = 1.0
)

// GridColor is the stroke colour of the background grid.
var GridColor = RGBA{0xdd, 0xdd, 0xdd, 1}

// Paint bundles every display setting a renderer needs.
type Paint struct {
	Background RGBA
	Glyph      RGBA
	Grid       bool
}

// Theme is a named pair of background and glyph colours.
type Theme struct {
	Name       string
	Background RGBA
	Glyph      RGBA
}

var (
	Light = Theme{Name: "light", Background: White, Glyph: Black}
	Dark  = Theme{Name: "dark", Background: RGBA{0x11, 0x18, 0x27, 1}, Glyph: RGBA{0xf9, 0xfa, 0xfb, 1}}
)

// Themes lists the built-in themes.
var Themes = []Theme{Light, Dark}

// ThemeByName looks up a built-in theme. The empty string selects Light.
func ThemeByName(name string) (Theme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Light, nil
	}
	for _, t := range Themes {
		if t.Name == n {
			return t, nil
		}
	}
	return Theme{}, errors.New(errors.ErrCodeInvalidColor, "unknown theme %q (must be light or dark)", name)
}

// Paint returns the theme's colours with the grid flag.
func (t Theme) Paint(grid bool) Paint {
	return Paint{Background: t.Background, Glyph: t.Glyph, Grid: grid}
}

// DefaultPaint is the light theme without a grid.
func DefaultPaint() Paint { return Light.Paint(false) }
