package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mayanum/pkg/cache"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/observability"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

// Runner encapsulates pipeline execution with artifact caching.
// The CLI, TUI and API all use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the expiry of cached artifacts. Zero or less means
	// cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLArtifact,
	}
}

// Execute runs the complete parse → layout → size → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Kind: opts.Kind()}

	// Stage 1: Parse
	parseStart := time.Now()
	groups, base, err := Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Groups = groups
	result.FileBase = base
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.GroupCount = len(groups)
	result.Stats.DigitCount = countDigits(groups)

	r.Logger.Debug("parsed input",
		"kind", result.Kind,
		"groups", result.Stats.GroupCount,
		"digits", result.Stats.DigitCount)

	// Stage 2: Layout
	layoutStart := time.Now()
	result.Layout = GenerateLayout(ctx, groups, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.PrimitiveCount = len(result.Layout.Primitives)

	r.Logger.Debug("computed layout",
		"width", result.Layout.Width,
		"height", result.Layout.Height,
		"primitives", result.Stats.PrimitiveCount,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Size
	size, err := ResolveSize(result.Layout, opts)
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	result.Size = size

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, hash, renderHit, err := r.render(ctx, result.Layout, size, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.LayoutHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"size", fmt.Sprintf("%dx%d", size.Width, size.Height),
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, size export.Size, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	artifacts, _, hit, err := r.render(ctx, l, size, opts)
	return artifacts, hit, err
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, size export.Size, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, size, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, l layout.Layout, size export.Size, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}
	paint, err := opts.Paint()
	if err != nil {
		return nil, "", false, err
	}

	// Compute cache key from layout data
	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	hooks := observability.Cache()
	keys := make(map[string]string, len(opts.Formats))
	for _, format := range opts.Formats {
		keys[format] = r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format, size, paint))
	}

	// Try to get all formats from cache
	if !opts.NoCache {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, keys[format])
			if err != nil || !hit {
				hooks.OnCacheMiss(ctx, "artifact")
				break
			}
			hooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, layoutHash, true, nil
		}
	}

	rendered, err := Render(ctx, l, size, opts)
	if err != nil {
		return nil, "", false, err
	}

	if !opts.NoCache {
		for format, data := range rendered {
			if err := r.Cache.Set(ctx, keys[format], data, r.artifactTTL()); err != nil {
				r.Logger.Warn("cache write failed", "format", format, "error", err)
				continue
			}
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, layoutHash, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) artifactTTL() time.Duration {
	if r.TTL <= 0 {
		return cache.TTLArtifact
	}
	return r.TTL
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
