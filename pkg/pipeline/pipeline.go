// Package pipeline provides the conversion pipeline for mayanum.
//
// This package implements the complete parse → layout → size → render
// pipeline used by the CLI, the TUI and the HTTP API. Centralizing it keeps
// defaults, validation and caching identical across every entry point.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Parse: validate a number or date and decompose it into digit groups
//  2. Layout: position glyph primitives on the canvas (always recomputed)
//  3. Size: resolve the export size from a preset or custom dimensions
//  4. Render: produce SVG, PNG, PDF or JSON, consulting the artifact cache
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Date:    "05-01-2025",
//	    Formats: []string{"svg", "png"},
//	    Size:    "medium",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Stages can also be run on their own:
//
//	groups, base, err := pipeline.Parse(ctx, opts)
//	l := pipeline.GenerateLayout(ctx, groups, opts)
//	artifacts, err := runner.Render(ctx, l, size, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mayanum/pkg/cache"
	"github.com/matzehuels/mayanum/pkg/color"
	"github.com/matzehuels/mayanum/pkg/errors"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and TUI
// =============================================================================

const (
	// DefaultScale is the glyph scale factor.
	DefaultScale = layout.DefaultScale

	// DefaultCellHeight is the canvas height allocated to one digit.
	DefaultCellHeight = layout.DefaultCellHeight

	// DefaultGroupWidth is the canvas width of one group band.
	DefaultGroupWidth = layout.DefaultGroupWidth

	// DefaultSpacing is the gap between group bands.
	DefaultSpacing = layout.DefaultSpacing

	// DefaultFormat is rendered when no format is requested.
	DefaultFormat = string(export.FormatSVG)

	// DefaultSize is the export preset used when none is given.
	DefaultSize = string(export.Original)
)

// Input kinds reported to hooks and logs.
const (
	KindNumber = "number"
	KindDate   = "date"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one conversion.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input: exactly one of Number or Date.
	Number string `json:"number,omitempty"`
	Date   string `json:"date,omitempty"`

	// Layout options
	Scale      float64  `json:"scale,omitempty"`
	CellHeight float64  `json:"cell_height,omitempty"`
	GroupWidth float64  `json:"group_width,omitempty"`
	Spacing    *float64 `json:"spacing,omitempty"`

	// Display options
	Theme      string `json:"theme,omitempty"`
	Background string `json:"background,omitempty"`
	Glyph      string `json:"glyph,omitempty"`
	Grid       bool   `json:"grid,omitempty"`

	// Export options
	Formats []string `json:"formats,omitempty"`
	Size    string   `json:"size,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Lock    string   `json:"lock,omitempty"`

	// Rsvg rasterises PNG through rsvg-convert instead of the native painter.
	Rsvg bool `json:"rsvg,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger `json:"-"`
	NoCache bool        `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Kind is KindNumber or KindDate.
	Kind string

	// Groups are the decomposed inputs in display order.
	Groups []layout.Group

	// Layout is the computed glyph layout.
	Layout layout.Layout

	// LayoutHash is the content hash of the layout.
	LayoutHash string

	// Size is the resolved export size.
	Size export.Size

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// FileBase is the suggested export file name without extension.
	FileBase string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	GroupCount     int
	DigitCount     int
	PrimitiveCount int
	ParseTime      time.Duration
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits. Layouts are never cached.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks that exactly one input is present.
func (o *Options) ValidateForParse() error {
	o.Number = strings.TrimSpace(o.Number)
	o.Date = strings.TrimSpace(o.Date)
	switch {
	case o.Number == "" && o.Date == "":
		return errors.New(errors.ErrCodeInvalidInput, "a number or a date is required")
	case o.Number != "" && o.Date != "":
		return errors.New(errors.ErrCodeInvalidInput, "give either a number or a date, not both")
	}
	o.setLogger()
	return nil
}

// Kind reports which input the options carry.
func (o *Options) Kind() string {
	if o.Date != "" {
		return KindDate
	}
	return KindNumber
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.CellHeight == 0 {
		o.CellHeight = DefaultCellHeight
	}
	if o.GroupWidth == 0 {
		o.GroupWidth = DefaultGroupWidth
	}
	if o.Spacing == nil {
		s := DefaultSpacing
		o.Spacing = &s
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	if err := errors.ValidatePositive("cell_height", o.CellHeight); err != nil {
		return err
	}
	if err := errors.ValidatePositive("group_width", o.GroupWidth); err != nil {
		return err
	}
	return errors.ValidateNonNegative("spacing", *o.Spacing)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Size == "" {
		o.Size = DefaultSize
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	formats, err := export.ParseFormats(o.Formats)
	if err != nil {
		return err
	}
	normalized := make([]string, 0, len(formats))
	for _, f := range formats {
		normalized = append(normalized, string(f))
	}
	o.Formats = normalized
	if _, err := o.Paint(); err != nil {
		return err
	}
	_, _, err = o.Export()
	return err
}

// LayoutOptions converts the options into layout engine options.
func (o *Options) LayoutOptions() []layout.Option {
	opts := []layout.Option{
		layout.WithScale(o.Scale),
		layout.WithCellHeight(o.CellHeight),
		layout.WithGroupWidth(o.GroupWidth),
	}
	if o.Spacing != nil {
		opts = append(opts, layout.WithSpacing(*o.Spacing))
	}
	return opts
}

// Paint resolves the theme and colour overrides.
func (o *Options) Paint() (color.Paint, error) {
	theme, err := color.ThemeByName(o.Theme)
	if err != nil {
		return color.Paint{}, err
	}
	p := theme.Paint(o.Grid)
	if o.Background != "" {
		if p.Background, err = color.Parse(o.Background); err != nil {
			return color.Paint{}, err
		}
	}
	if o.Glyph != "" {
		if p.Glyph, err = color.Parse(o.Glyph); err != nil {
			return color.Paint{}, err
		}
	}
	return p, nil
}

// Export parses the size preset and custom dimensions.
func (o *Options) Export() (export.Preset, export.CustomSize, error) {
	preset, err := export.ParsePreset(o.Size)
	if err != nil {
		return "", export.CustomSize{}, err
	}
	lock, err := export.ParseAxis(o.Lock)
	if err != nil {
		return "", export.CustomSize{}, err
	}
	if o.Width < 0 || o.Height < 0 {
		return "", export.CustomSize{}, errors.New(errors.ErrCodeInvalidSize, "size must not be negative, got %dx%d", o.Width, o.Height)
	}
	return preset, export.CustomSize{Width: o.Width, Height: o.Height, Lock: lock}, nil
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string, size export.Size, p color.Paint) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format:     format,
		Width:      size.Width,
		Height:     size.Height,
		Background: p.Background.String(),
		Glyph:      p.Glyph.String(),
		Grid:       p.Grid,
	}
	if format == string(export.FormatPNG) && o.Rsvg {
		opts.Engine = "rsvg"
	}
	return opts
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
