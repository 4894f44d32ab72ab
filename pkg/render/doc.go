// Package render turns laid-out numerals into files.
//
// # Overview
//
// Rendering happens in two steps:
//
//   - [glyph/layout] positions dots, bars and shells on a canvas
//   - [glyph/sink] draws that layout as SVG, PNG, PDF, JSON or terminal text
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool
// (from librsvg). [ToPNG] does the same for PNG at a fixed pixel size; the
// PNG sink normally rasterises natively and only falls back to it on
// request.
//
//	svg := sink.RenderSVG(l, sink.WithSize(size))
//	pdf, err := render.ToPDF(ctx, svg)
//
// Conversion failures carry the EXPORT_FAILED error code.
//
// [glyph/layout]: github.com/matzehuels/mayanum/pkg/render/glyph/layout
// [glyph/sink]: github.com/matzehuels/mayanum/pkg/render/glyph/sink
package render
