package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/input"
	"github.com/matzehuels/mayanum/pkg/observability"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

// Parse validates the input and decomposes it into digit groups. It also
// returns the suggested export file base name.
func Parse(ctx context.Context, opts Options) ([]layout.Group, string, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, "", err
	}

	kind, raw := opts.Kind(), opts.Number
	if kind == KindDate {
		raw = opts.Date
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, kind, raw)
	start := time.Now()

	groups, base, err := parseInput(kind, raw)

	hooks.OnParseComplete(ctx, kind, raw, countDigits(groups), time.Since(start), err)
	if err != nil {
		return nil, "", err
	}
	return groups, base, nil
}

func parseInput(kind, raw string) ([]layout.Group, string, error) {
	if kind == KindDate {
		d, err := input.ParseDate(raw)
		if err != nil {
			return nil, "", err
		}
		return d.Groups(), export.DateFileBase(d.Day, d.Month, d.Year), nil
	}

	n, err := input.ParseNumber(raw)
	if err != nil {
		return nil, "", err
	}
	return input.NumberGroups(n), export.NumberFileBase(n), nil
}

func countDigits(groups []layout.Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Digits)
	}
	return n
}
