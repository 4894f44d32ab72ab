package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/pkg/errors"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/pipeline"
	"github.com/matzehuels/mayanum/pkg/render"
)

// renderCommand creates the render command for exporting numerals.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	flags := newOptionFlags()

	cmd := &cobra.Command{
		Use:   "render [number]",
		Short: "Export a Mayan numeral to SVG, PNG, PDF or JSON",
		Long: `Export a number (or a date with --date) as image files.

The output size comes from a preset (original, small, medium, large) or from
custom dimensions. With --lock, one custom side is kept and the other follows
the numeral's aspect ratio. Custom sides are clamped to 100-5000 pixels.

By default files are named mayan-numeral-number-<n> or
mayan-numeral-date-<d>-<m>-<y> in the current directory.

Example:
  mayanum render 2025 -f svg,png --size medium
  mayanum render --date 05-01-2025 --theme dark --grid
  mayanum render 400 -f png --size custom --width 1000 --lock width`,
		Args: inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.apply(cmd, c.fileCfg, args)
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.registerInput(cmd)
	flags.registerLayout(cmd)
	flags.registerDisplay(cmd)
	flags.registerExport(cmd)

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if needsRsvg(opts) && !render.Available() {
		printWarning("rsvg-convert not found; install librsvg to export PDF")
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := basePath(output, result.FileBase)
	paths := make([]string, 0, len(opts.Formats))
	for _, f := range opts.Formats {
		path := outputPath(output, base, f, len(opts.Formats))
		if err := writeFile(path, result.Artifacts[f]); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", result.Kind)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.DigitCount, result.Stats.PrimitiveCount,
		fmt.Sprintf("%dx%d", result.Size.Width, result.Size.Height), result.CacheInfo.RenderHit)
	prog.done("Export complete", "formats", len(opts.Formats))
	return nil
}

// needsRsvg reports whether any requested format shells out to rsvg-convert.
func needsRsvg(opts pipeline.Options) bool {
	for _, f := range opts.Formats {
		if strings.EqualFold(strings.TrimSpace(f), string(export.FormatPDF)) {
			return true
		}
	}
	return false
}

// basePath derives the base output path. If output is empty the default
// file base is used. Known format extensions are stripped from output.
func basePath(output, fileBase string) string {
	if output == "" {
		return fileBase
	}
	ext := filepath.Ext(output)
	if _, err := export.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the path for one format. A single format writes to
// output verbatim when it is given.
func outputPath(output, base, format string, count int) string {
	if output != "" && count == 1 && filepath.Ext(output) != "" {
		return output
	}
	return base + "." + format
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeExportFailed, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write %s", path)
	}
	return nil
}
