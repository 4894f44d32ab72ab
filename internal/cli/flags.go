package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/internal/config"
	"github.com/matzehuels/mayanum/pkg/pipeline"
)

// optionFlags binds the layout, display and export flags shared by render,
// layout, presets and tui onto pipeline options.
type optionFlags struct {
	opts    pipeline.Options
	date    string
	spacing float64
	formats string
}

func newOptionFlags() *optionFlags {
	return &optionFlags{
		opts: pipeline.Options{
			Scale:      pipeline.DefaultScale,
			CellHeight: pipeline.DefaultCellHeight,
			GroupWidth: pipeline.DefaultGroupWidth,
			Size:       pipeline.DefaultSize,
		},
		spacing: pipeline.DefaultSpacing,
	}
}

// registerInput adds --date. Numbers are passed as a positional argument.
func (f *optionFlags) registerInput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "date instead of a number (DD-MM-YYYY, DD/MM/YYYY or YYYY-MM-DD)")
}

func (f *optionFlags) registerLayout(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.opts.Scale, "scale", f.opts.Scale, "glyph scale factor")
	cmd.Flags().Float64Var(&f.opts.CellHeight, "cell-height", f.opts.CellHeight, "canvas height of one digit")
	cmd.Flags().Float64Var(&f.opts.GroupWidth, "group-width", f.opts.GroupWidth, "canvas width of one group")
	cmd.Flags().Float64Var(&f.spacing, "spacing", f.spacing, "gap between date groups")
}

func (f *optionFlags) registerDisplay(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.opts.Theme, "theme", "", "colour theme: light (default), dark")
	cmd.Flags().StringVar(&f.opts.Background, "background", "", "background colour (overrides theme)")
	cmd.Flags().StringVar(&f.opts.Glyph, "glyph", "", "glyph colour (overrides theme)")
	cmd.Flags().BoolVar(&f.opts.Grid, "grid", false, "draw a background grid")
}

func (f *optionFlags) registerExport(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&f.opts.Size, "size", "s", f.opts.Size, "size preset: original, small, medium, large, custom")
	cmd.Flags().IntVar(&f.opts.Width, "width", 0, "custom width in pixels (100-5000)")
	cmd.Flags().IntVar(&f.opts.Height, "height", 0, "custom height in pixels (100-5000)")
	cmd.Flags().StringVar(&f.opts.Lock, "lock", "", "keep aspect ratio from this side: width, height")
	cmd.Flags().BoolVar(&f.opts.Rsvg, "rsvg", false, "rasterise png with rsvg-convert")
}

// apply fills options from the config file where the flag was not given,
// then sets the input from args. It returns a copy ready for the pipeline.
func (f *optionFlags) apply(cmd *cobra.Command, cfg config.FileConfig, args []string) pipeline.Options {
	applyFloatConfig(cmd, "scale", &f.opts.Scale, cfg.Layout.Scale)
	applyFloatConfig(cmd, "cell-height", &f.opts.CellHeight, cfg.Layout.CellHeight)
	applyFloatConfig(cmd, "group-width", &f.opts.GroupWidth, cfg.Layout.GroupWidth)
	applyFloatConfig(cmd, "spacing", &f.spacing, cfg.Layout.Spacing)

	applyStringConfig(cmd, "theme", &f.opts.Theme, cfg.Display.Theme)
	applyStringConfig(cmd, "background", &f.opts.Background, cfg.Display.Background)
	applyStringConfig(cmd, "glyph", &f.opts.Glyph, cfg.Display.Glyph)
	applyBoolConfig(cmd, "grid", &f.opts.Grid, cfg.Display.Grid)

	applyStringConfig(cmd, "size", &f.opts.Size, cfg.Export.Size)
	applyIntConfig(cmd, "width", &f.opts.Width, cfg.Export.Width)
	applyIntConfig(cmd, "height", &f.opts.Height, cfg.Export.Height)
	applyStringConfig(cmd, "lock", &f.opts.Lock, cfg.Export.Lock)

	opts := f.opts
	spacing := f.spacing
	opts.Spacing = &spacing
	opts.Formats = parseFormats(f.formats)
	opts.Date = f.date
	if len(args) > 0 {
		opts.Number = args[0]
	}
	// Custom dimensions without an explicit preset mean a custom size.
	if !cmd.Flags().Changed("size") && cfg.Export.Size == nil && (opts.Width > 0 || opts.Height > 0) {
		opts.Size = "custom"
	}
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// inputArgs accepts a single number or none when --date is used.
func inputArgs(cmd *cobra.Command, args []string) error {
	if date, _ := cmd.Flags().GetString("date"); date != "" {
		return cobra.NoArgs(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
