package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/observability"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

// GenerateLayout positions the glyphs for the given groups. Options are
// expected to carry layout defaults; unset values fall back to the engine's.
func GenerateLayout(ctx context.Context, groups []layout.Group, opts Options) layout.Layout {
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(groups), countDigits(groups))
	start := time.Now()

	l := layout.BuildGroups(groups, opts.LayoutOptions()...)

	hooks.OnLayoutComplete(ctx, len(l.Primitives), time.Since(start), nil)
	return l
}

// ResolveSize computes the export size for a layout.
func ResolveSize(l layout.Layout, opts Options) (export.Size, error) {
	preset, custom, err := opts.Export()
	if err != nil {
		return export.Size{}, err
	}
	return export.Resolve(preset, Dimensions(l), custom), nil
}

// Dimensions returns the natural canvas size of a layout.
func Dimensions(l layout.Layout) export.Dimensions {
	return export.Dimensions{Width: l.Width, Height: l.Height}
}
