package sink

import (
	"bytes"
	"context"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/mayanum/pkg/color"
	"github.com/matzehuels/mayanum/pkg/errors"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/render"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	paint color.Paint
	size  *export.Size
	rsvg  bool
}

// WithPNGPaint sets background, glyph colour and grid.
func WithPNGPaint(p color.Paint) PNGOption { return func(r *pngRenderer) { r.paint = p } }

// WithPNGSize sets the image size in pixels. The drawing is fitted
// uniformly and centred.
func WithPNGSize(s export.Size) PNGOption { return func(r *pngRenderer) { r.size = &s } }

// WithRsvg rasterises through rsvg-convert instead of the built-in painter.
func WithRsvg() PNGOption { return func(r *pngRenderer) { r.rsvg = true } }

// RenderPNG rasterises the layout.
func RenderPNG(ctx context.Context, l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{paint: color.DefaultPaint()}
	for _, opt := range opts {
		opt(&r)
	}

	size := export.Size{Width: int(math.Round(l.Width)), Height: int(math.Round(l.Height))}
	if r.size != nil {
		size = *r.size
	}
	if size.Width <= 0 || size.Height <= 0 {
		return nil, errors.New(errors.ErrCodeExportFailed, "cannot rasterise an empty %dx%d image", size.Width, size.Height)
	}

	if r.rsvg {
		svg := RenderSVG(l, WithPaint(r.paint), WithSize(size))
		return render.ToPNG(ctx, svg, size.Width, size.Height)
	}

	dc := gg.NewContext(size.Width, size.Height)
	paintPNG(dc, l, r.paint, size)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

// fit returns the uniform scale and offsets that centre the canvas in size.
func fit(l layout.Layout, size export.Size) (k, ox, oy float64) {
	if l.Width <= 0 || l.Height <= 0 {
		return 1, 0, 0
	}
	w, h := float64(size.Width), float64(size.Height)
	k = math.Min(w/l.Width, h/l.Height)
	return k, (w - l.Width*k) / 2, (h - l.Height*k) / 2
}

func paintPNG(dc *gg.Context, l layout.Layout, p color.Paint, size export.Size) {
	// The background also fills any letterbox margins.
	dc.SetColor(p.Background.NRGBA())
	dc.Clear()

	k, ox, oy := fit(l, size)
	dc.Translate(ox, oy)
	dc.Scale(k, k)

	if p.Grid {
		paintGrid(dc, l, k)
	}

	dc.SetColor(p.Glyph.NRGBA())
	for _, prim := range l.Primitives {
		switch prim.Kind {
		case layout.KindDot:
			dc.DrawCircle(prim.X, prim.Y, layout.DotRadius*prim.Scale)
			dc.Fill()
		case layout.KindBar:
			half := layout.BarWidth / 2 * prim.Scale
			dc.SetLineCapButt()
			dc.SetLineWidth(layout.BarStroke * prim.Scale * k)
			dc.DrawLine(prim.X-half, prim.Y, prim.X+half, prim.Y)
			dc.Stroke()
		case layout.KindZero:
			paintShell(dc, prim, k)
		}
	}
}

// paintGrid reproduces the SVG pattern: lines every GridSize units from the
// origin, clipped to the inset rectangle. Line widths are in device pixels,
// hence the multiplication by k.
func paintGrid(dc *gg.Context, l layout.Layout, k float64) {
	inset := 2 * color.GridStroke
	minX, minY := inset, inset
	maxX, maxY := l.Width-inset, l.Height-inset
	if maxX <= minX || maxY <= minY {
		return
	}

	dc.Push()
	dc.SetColor(color.GridColor.NRGBA())
	dc.SetLineCapButt()
	dc.SetLineWidth(color.GridStroke * k)
	for x := 0.0; x <= maxX; x += color.GridSize {
		if x >= minX {
			dc.DrawLine(x, minY, x, maxY)
		}
	}
	for y := 0.0; y <= maxY; y += color.GridSize {
		if y >= minY {
			dc.DrawLine(minX, y, maxX, y)
		}
	}
	dc.Stroke()
	dc.Pop()
}

func paintShell(dc *gg.Context, p layout.Primitive, k float64) {
	dc.Push()
	dc.SetLineCapRound()
	dc.SetLineWidth(layout.ZeroStroke * p.Scale * k)

	dc.DrawEllipse(p.X, p.Y, layout.ShellRX*p.Scale, layout.ShellRY*p.Scale)
	dc.Stroke()

	for _, c := range layout.ShellCurves {
		start := layout.ShellPoint(c.Start, p.X, p.Y, p.Scale)
		dc.MoveTo(start.X, start.Y)
		for _, s := range c.Segments {
			c1 := layout.ShellPoint(s[0], p.X, p.Y, p.Scale)
			c2 := layout.ShellPoint(s[1], p.X, p.Y, p.Scale)
			end := layout.ShellPoint(s[2], p.X, p.Y, p.Scale)
			dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		}
		dc.Stroke()
	}
	dc.Pop()
}
