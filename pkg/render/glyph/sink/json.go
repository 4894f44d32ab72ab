package sink

import (
	"encoding/json"

	"github.com/matzehuels/mayanum/pkg/color"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	paint *color.Paint
	size  *export.Size
}

// WithJSONPaint records the display settings in the output.
func WithJSONPaint(p color.Paint) JSONOption { return func(r *jsonRenderer) { r.paint = &p } }

// WithJSONSize records the resolved export size in the output.
func WithJSONSize(s export.Size) JSONOption { return func(r *jsonRenderer) { r.size = &s } }

type jsonOutput struct {
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Scale      float64         `json:"scale"`
	CellHeight float64         `json:"cell_height"`
	GroupWidth float64         `json:"group_width"`
	Spacing    float64         `json:"spacing"`
	Size       *export.Size    `json:"size,omitempty"`
	Paint      *jsonPaint      `json:"paint,omitempty"`
	Groups     []jsonGroup     `json:"groups"`
	Cells      []jsonCell      `json:"cells"`
	Primitives []jsonPrimitive `json:"primitives"`
}

type jsonPaint struct {
	Background string `json:"background"`
	Glyph      string `json:"glyph"`
	Grid       bool   `json:"grid,omitempty"`
}

type jsonGroup struct {
	Label  string  `json:"label"`
	Digits []int   `json:"digits"`
	Value  uint64  `json:"value"`
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonCell struct {
	Group        int     `json:"group"`
	Index        int     `json:"index"`
	Value        int     `json:"value"`
	Exponent     int     `json:"exponent"`
	Multiplier   uint64  `json:"multiplier"`
	Contribution uint64  `json:"contribution"`
	Bars         int     `json:"bars"`
	Dots         int     `json:"dots"`
	Zero         bool    `json:"zero,omitempty"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
}

type jsonPrimitive struct {
	Kind   string  `json:"kind"`
	Group  int     `json:"group"`
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Scale  float64 `json:"scale"`
}

// RenderJSON exports the layout with per-cell place values so external tools
// can inspect it without recomputing anything.
func RenderJSON(l layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      l.Width,
		Height:     l.Height,
		Scale:      l.Scale,
		CellHeight: l.CellHeight,
		GroupWidth: l.GroupWidth,
		Spacing:    l.Spacing,
		Size:       r.size,
		Groups:     make([]jsonGroup, 0, len(l.Bands)),
		Cells:      make([]jsonCell, 0, len(l.Cells)),
		Primitives: make([]jsonPrimitive, 0, len(l.Primitives)),
	}
	if r.paint != nil {
		out.Paint = &jsonPaint{
			Background: r.paint.Background.String(),
			Glyph:      r.paint.Glyph.String(),
			Grid:       r.paint.Grid,
		}
	}

	for _, b := range l.Bands {
		out.Groups = append(out.Groups, jsonGroup{
			Label:  b.Label,
			Digits: b.Digits.Ints(),
			Value:  b.Digits.Value(),
			X:      b.Left,
			Width:  b.Width,
			Height: b.Height,
		})
	}
	for _, c := range l.Cells {
		out.Cells = append(out.Cells, jsonCell{
			Group:        c.Group,
			Index:        c.Index,
			Value:        int(c.Value),
			Exponent:     c.Exponent,
			Multiplier:   c.Multiplier,
			Contribution: c.Contribution,
			Bars:         c.Bars,
			Dots:         c.Dots,
			Zero:         c.Zero,
			X:            c.Left,
			Y:            c.Top,
			Width:        c.Width,
			Height:       c.Height,
		})
	}
	for _, p := range l.Primitives {
		out.Primitives = append(out.Primitives, jsonPrimitive{
			Kind:   p.Kind.String(),
			Group:  p.Digit.Group,
			Index:  p.Digit.Index,
			X:      p.X,
			Y:      p.Y,
			Width:  p.Width(),
			Height: p.Height(),
			Scale:  p.Scale,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
