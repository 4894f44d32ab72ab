package layout

import (
	"github.com/matzehuels/mayanum/pkg/vigesimal"
)

// Defaults for the canvas grid, in canvas units.
const (
	DefaultScale      = 1.0
	DefaultCellHeight = 100.0
	DefaultGroupWidth = 100.0
	DefaultSpacing    = 25.0
)

// Group is a digit sequence with a display label such as "Day" or "Number".
type Group struct {
	Label  string           `json:"label"`
	Digits vigesimal.Digits `json:"digits"`
}

// Digit identifies the place-value cell a primitive belongs to.
type Digit struct {
	Group        int             // index of the group, left to right
	Index        int             // position in the sequence, most significant first
	Value        vigesimal.Digit // digit value in [0, 19]
	Exponent     int             // place-value exponent
	Multiplier   uint64          // 20^Exponent
	Contribution uint64          // Value × Multiplier
}

// Primitive is one positioned glyph. X and Y are its centre.
type Primitive struct {
	Kind  Kind
	X, Y  float64
	Scale float64
	Digit Digit
}

// Width returns the drawn horizontal extent of the primitive.
func (p Primitive) Width() float64 {
	switch p.Kind {
	case KindDot:
		return 2 * DotRadius * p.Scale
	case KindBar:
		return BarWidth * p.Scale
	default:
		return ZeroWidth * p.Scale
	}
}

// Height returns the drawn vertical extent of the primitive.
func (p Primitive) Height() float64 {
	switch p.Kind {
	case KindDot:
		return 2 * DotRadius * p.Scale
	case KindBar:
		return BarStroke * p.Scale
	default:
		return ZeroHeight * p.Scale
	}
}

// Cell is the rectangle allocated to one digit. Left and Top are canvas
// coordinates; y grows downward.
type Cell struct {
	Digit
	Cluster
	Left, Top     float64
	Width, Height float64
}

// Bottom returns the y coordinate of the cell's lower edge.
func (c Cell) Bottom() float64 { return c.Top + c.Height }

// CenterX returns the horizontal centre of the cell.
func (c Cell) CenterX() float64 { return c.Left + c.Width/2 }

// Band is the horizontal strip one group occupies.
type Band struct {
	Label  string
	Left   float64
	Width  float64
	Height float64
	Digits vigesimal.Digits
}

// CenterX returns the horizontal centre of the band.
func (b Band) CenterX() float64 { return b.Left + b.Width/2 }

// Layout is the positioned result for one or more groups.
type Layout struct {
	Width      float64
	Height     float64
	Scale      float64
	CellHeight float64
	GroupWidth float64
	Spacing    float64
	Bands      []Band
	Cells      []Cell
	Primitives []Primitive
}

// Count returns the number of primitives of kind k.
func (l Layout) Count(k Kind) int {
	n := 0
	for _, p := range l.Primitives {
		if p.Kind == k {
			n++
		}
	}
	return n
}

// PrimitivesAt returns the primitives drawn for one digit cell.
func (l Layout) PrimitivesAt(group, index int) []Primitive {
	var out []Primitive
	for _, p := range l.Primitives {
		if p.Digit.Group == group && p.Digit.Index == index {
			out = append(out, p)
		}
	}
	return out
}

// Option configures [Build] and [BuildGroups].
type Option func(*config)

type config struct {
	scale      float64
	cellHeight float64
	groupWidth float64
	spacing    float64
}

// WithScale sets the glyph scale factor. Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithCellHeight sets the height allocated to each digit. Non-positive values are ignored.
func WithCellHeight(h float64) Option {
	return func(c *config) {
		if h > 0 {
			c.cellHeight = h
		}
	}
}

// WithGroupWidth sets the width of each group band. Non-positive values are ignored.
func WithGroupWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.groupWidth = w
		}
	}
}

// WithSpacing sets the gap between group bands. Negative values are ignored.
func WithSpacing(s float64) Option {
	return func(c *config) {
		if s >= 0 {
			c.spacing = s
		}
	}
}

// Build lays out a single group.
func Build(g Group, opts ...Option) Layout {
	return BuildGroups([]Group{g}, opts...)
}

// BuildGroups lays out groups side by side on one canvas. Bands are top
// aligned, so the canvas is as tall as the longest group. Within a band the
// most significant digit occupies the top cell.
func BuildGroups(groups []Group, opts ...Option) Layout {
	cfg := config{
		scale:      DefaultScale,
		cellHeight: DefaultCellHeight,
		groupWidth: DefaultGroupWidth,
		spacing:    DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := Layout{
		Scale:      cfg.scale,
		CellHeight: cfg.cellHeight,
		GroupWidth: cfg.groupWidth,
		Spacing:    cfg.spacing,
	}
	if len(groups) == 0 {
		return l
	}

	maxLen := 0
	for gi, g := range groups {
		band := Band{
			Label:  g.Label,
			Left:   float64(gi) * (cfg.groupWidth + cfg.spacing),
			Width:  cfg.groupWidth,
			Height: float64(len(g.Digits)) * cfg.cellHeight,
			Digits: g.Digits,
		}
		l.Bands = append(l.Bands, band)
		maxLen = max(maxLen, len(g.Digits))

		for i, d := range g.Digits {
			cell := Cell{
				Digit: Digit{
					Group:        gi,
					Index:        i,
					Value:        d,
					Exponent:     g.Digits.Exponent(i),
					Multiplier:   g.Digits.Multiplier(i),
					Contribution: g.Digits.Contribution(i),
				},
				Cluster: ClusterOf(d),
				Left:    band.Left,
				Top:     float64(i) * cfg.cellHeight,
				Width:   cfg.groupWidth,
				Height:  cfg.cellHeight,
			}
			l.Cells = append(l.Cells, cell)
			l.Primitives = append(l.Primitives, placeCell(cell, cfg.scale)...)
		}
	}

	n := float64(len(groups))
	l.Width = n*cfg.groupWidth + (n-1)*cfg.spacing
	l.Height = float64(maxLen) * cfg.cellHeight
	return l
}

// placeCell positions the glyphs of one cell. Bars stack upward from the
// cell bottom and the dot row sits directly above the top bar.
func placeCell(c Cell, scale float64) []Primitive {
	cx, bottom := c.CenterX(), c.Bottom()

	if c.Zero {
		return []Primitive{{
			Kind:  KindZero,
			X:     cx,
			Y:     bottom - ZeroHeight*scale/2,
			Scale: scale,
			Digit: c.Digit,
		}}
	}

	out := make([]Primitive, 0, c.Bars+c.Dots)
	barH := BarHeight * scale
	for k := range c.Bars {
		out = append(out, Primitive{
			Kind:  KindBar,
			X:     cx,
			Y:     bottom - (float64(k)+0.5)*barH,
			Scale: scale,
			Digit: c.Digit,
		})
	}

	if c.Dots > 0 {
		spacing := DotWidth * DotSpacingFactor * scale
		startX := cx - float64(c.Dots-1)*spacing/2
		y := bottom - float64(c.Bars)*barH - DotHeight*scale/2
		for i := range c.Dots {
			out = append(out, Primitive{
				Kind:  KindDot,
				X:     startX + float64(i)*spacing,
				Y:     y,
				Scale: scale,
				Digit: c.Digit,
			})
		}
	}
	return out
}
