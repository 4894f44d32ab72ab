package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/mayanum/pkg/color"
	"github.com/matzehuels/mayanum/pkg/errors"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/input"
	"github.com/matzehuels/mayanum/pkg/observability"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
	"github.com/matzehuels/mayanum/pkg/render/glyph/sink"
)

// Render generates output artifacts in the requested formats without
// touching any cache.
func Render(ctx context.Context, l layout.Layout, size export.Size, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	paint, err := opts.Paint()
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, l, size, paint, format, opts)
		if err != nil {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, nil
}

func renderFormat(ctx context.Context, l layout.Layout, size export.Size, paint color.Paint, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{
		sink.WithPaint(paint),
		sink.WithSize(size),
		sink.WithTitle(title(l)),
	}

	switch export.Format(format) {
	case export.FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case export.FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithPNGPaint(paint), sink.WithPNGSize(size)}
		if opts.Rsvg {
			pngOpts = append(pngOpts, sink.WithRsvg())
		}
		return sink.RenderPNG(ctx, l, pngOpts...)
	case export.FormatPDF:
		return sink.RenderPDF(ctx, l, sink.WithPDFSVGOptions(svgOpts...))
	case export.FormatJSON:
		return sink.RenderJSON(l, sink.WithJSONPaint(paint), sink.WithJSONSize(size))
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
	}
}

// title names the numeral from the laid out values, so every spelling of the
// same input renders identical bytes.
func title(l layout.Layout) string {
	if len(l.Bands) == 3 && l.Bands[0].Label == input.LabelDay {
		d := input.DateParts{
			Day:   int(l.Bands[0].Digits.Value()),
			Month: int(l.Bands[1].Digits.Value()),
			Year:  int(l.Bands[2].Digits.Value()),
		}
		return "Mayan numerals for " + d.String()
	}
	values := make([]string, len(l.Bands))
	for i, b := range l.Bands {
		values[i] = strconv.FormatUint(b.Digits.Value(), 10)
	}
	return "Mayan numeral for " + strings.Join(values, ", ")
}
