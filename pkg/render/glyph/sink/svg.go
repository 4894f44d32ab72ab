package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/mayanum/pkg/color"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

const gridID = "grid"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	paint color.Paint
	size  *export.Size
	title string
}

// WithPaint sets background, glyph colour and grid.
func WithPaint(p color.Paint) SVGOption { return func(r *svgRenderer) { r.paint = p } }

// WithSize sets the output width and height in pixels. The viewBox keeps
// the natural canvas size, so the drawing scales uniformly.
func WithSize(s export.Size) SVGOption { return func(r *svgRenderer) { r.size = &s } }

// WithTitle adds a <title> element for accessibility.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG renders the layout as standalone SVG markup.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	size := export.Size{Width: int(math.Round(l.Width)), Height: int(math.Round(l.Height))}
	if r.size != nil {
		size = *r.size
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%d" height="%d" preserveAspectRatio="xMidYMid meet">`+"\n",
		num(l.Width), num(l.Height), size.Width, size.Height)

	if r.title != "" {
		buf.WriteString("  <title>")
		_ = xml.EscapeText(&buf, []byte(r.title))
		buf.WriteString("</title>\n")
	}

	renderBackground(&buf, l, r.paint)
	renderCells(&buf, l, r.paint.Glyph)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{paint: color.DefaultPaint()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderBackground(buf *bytes.Buffer, l layout.Layout, p color.Paint) {
	if p.Background.A > 0 {
		fmt.Fprintf(buf, `  <rect x="0" y="0" width="%s" height="%s" %s/>`+"\n",
			num(l.Width), num(l.Height), paintAttr("fill", p.Background))
	}
	if !p.Grid {
		return
	}

	inset := 2 * color.GridStroke
	fmt.Fprintf(buf, `  <defs><pattern id="%s" width="%s" height="%s" patternUnits="userSpaceOnUse">`+
		`<path d="M %s 0 L 0 0 0 %s" fill="none" %s stroke-width="%s"/></pattern></defs>`+"\n",
		gridID, num(color.GridSize), num(color.GridSize), num(color.GridSize), num(color.GridSize),
		paintAttr("stroke", color.GridColor), num(color.GridStroke))
	fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="url(#%s)"/>`+"\n",
		num(inset), num(inset), num(max(0, l.Width-2*inset)), num(max(0, l.Height-2*inset)), gridID)
}

func renderCells(buf *bytes.Buffer, l layout.Layout, glyph color.RGBA) {
	byCell := groupPrimitives(l)

	fmt.Fprintf(buf, `  <g class="numeral" %s %s>`+"\n", paintAttr("fill", glyph), paintAttr("stroke", glyph))
	for _, c := range l.Cells {
		fmt.Fprintf(buf, `    <g class="digit" data-group="%d" data-digit-index="%d" data-digit-value="%d" data-digit-exponent="%d" data-digit-multiplier="%d" data-digit-contribution="%d">`+"\n",
			c.Group, c.Index, c.Value, c.Exponent, c.Multiplier, c.Contribution)
		for _, p := range byCell[cellKey{c.Group, c.Index}] {
			renderPrimitive(buf, p)
		}
		buf.WriteString("    </g>\n")
	}
	buf.WriteString("  </g>\n")
}

func renderPrimitive(buf *bytes.Buffer, p layout.Primitive) {
	switch p.Kind {
	case layout.KindDot:
		fmt.Fprintf(buf, `      <circle class="dot" cx="%s" cy="%s" r="%s" stroke="none"/>`+"\n",
			num(p.X), num(p.Y), num(layout.DotRadius*p.Scale))
	case layout.KindBar:
		half := layout.BarWidth / 2 * p.Scale
		fmt.Fprintf(buf, `      <path class="bar" d="M%s %s H%s" fill="none" stroke-width="%s"/>`+"\n",
			num(p.X-half), num(p.Y), num(p.X+half), num(layout.BarStroke*p.Scale))
	case layout.KindZero:
		renderShell(buf, p)
	}
}

// renderShell draws the zero glyph in path space under a transform that
// puts the ellipse centre on the primitive centre.
func renderShell(buf *bytes.Buffer, p layout.Primitive) {
	tx := p.X - layout.ShellCenter.X*p.Scale
	ty := p.Y - layout.ShellCenter.Y*p.Scale
	fmt.Fprintf(buf, `      <g class="zero" transform="translate(%s, %s) scale(%s)" fill="none" stroke-linecap="round" stroke-width="%s">`+"\n",
		num(tx), num(ty), num(p.Scale), num(layout.ZeroStroke))
	fmt.Fprintf(buf, `        <ellipse cx="%s" cy="%s" rx="%s" ry="%s"/>`+"\n",
		num(layout.ShellCenter.X), num(layout.ShellCenter.Y), num(layout.ShellRX), num(layout.ShellRY))
	for _, c := range layout.ShellCurves {
		fmt.Fprintf(buf, `        <path d="%s"/>`+"\n", curvePath(c))
	}
	buf.WriteString("      </g>\n")
}

func curvePath(c layout.Curve) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "M%s %s", num(c.Start.X), num(c.Start.Y))
	for _, s := range c.Segments {
		fmt.Fprintf(&b, " C%s %s %s %s %s %s",
			num(s[0].X), num(s[0].Y), num(s[1].X), num(s[1].Y), num(s[2].X), num(s[2].Y))
	}
	return b.String()
}

type cellKey struct{ group, index int }

func groupPrimitives(l layout.Layout) map[cellKey][]layout.Primitive {
	out := make(map[cellKey][]layout.Primitive, len(l.Cells))
	for _, p := range l.Primitives {
		k := cellKey{p.Digit.Group, p.Digit.Index}
		out[k] = append(out[k], p)
	}
	return out
}

// paintAttr writes a colour as a hex attribute plus an opacity attribute
// when the colour is translucent.
func paintAttr(name string, c color.RGBA) string {
	if c.A <= 0 {
		return name + `="none"`
	}
	if c.Opaque() {
		return fmt.Sprintf(`%s="%s"`, name, c.Hex())
	}
	return fmt.Sprintf(`%s="%s" %s-opacity="%s"`, name, c.Hex(), name, num(c.A))
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}
