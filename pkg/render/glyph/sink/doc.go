// Package sink provides output format renderers for numeral layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format.
// Sinks only paint; every position comes from the layout. This package
// provides renderers for:
//
//   - SVG: vector markup with per-digit data attributes
//   - PNG: raster image drawn natively with gg
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: layout data export for external tools
//   - Text: a character grid for terminals
//
// # SVG Output
//
// [RenderSVG] keeps the natural canvas in the viewBox and writes the
// requested export size as width and height, so any size scales the drawing
// uniformly. Each digit cell is a <g> carrying data-digit-index,
// data-digit-value, data-digit-exponent, data-digit-multiplier and
// data-digit-contribution.
//
//	svg := sink.RenderSVG(l,
//	    sink.WithPaint(color.Dark.Paint(true)),
//	    sink.WithSize(export.Size{Width: 1200, Height: 1029}),
//	)
//
// # PNG Output
//
// [RenderPNG] rasterises at the requested size, fitting the canvas
// uniformly and centring it. [WithRsvg] switches to rsvg-convert for
// output that matches librsvg's rendering exactly.
//
// # PDF Output
//
// [RenderPDF] renders SVG first, then converts via [render.ToPDF]. This
// requires librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # JSON Output
//
// [RenderJSON] exports groups, cells and primitives with their place
// values, plus the paint and export size when supplied.
//
// # Text Output
//
// [RenderText] draws dots as ●, bars as ━ and zero as ◎, optionally styled
// with lipgloss.
//
// [layout.Layout]: github.com/matzehuels/mayanum/pkg/render/glyph/layout.Layout
// [render.ToPDF]: github.com/matzehuels/mayanum/pkg/render.ToPDF
package sink
