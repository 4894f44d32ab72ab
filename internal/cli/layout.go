package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/pkg/pipeline"
	"github.com/matzehuels/mayanum/pkg/render/glyph/sink"
)

// layoutCommand creates the layout command for inspecting glyph positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var output string
	flags := newOptionFlags()

	cmd := &cobra.Command{
		Use:   "layout [number]",
		Short: "Print the glyph layout of a numeral as JSON",
		Long: `Compute the glyph layout for a number (or a date with --date) and print
it as JSON: canvas size, one band per group, one cell per digit with its place
value, and every positioned dot, bar and zero glyph.

Layouts are always recomputed; they are cheap and never cached.`,
		Args: inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.apply(cmd, c.fileCfg, args)
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	flags.registerInput(cmd)
	flags.registerLayout(cmd)
	flags.registerDisplay(cmd)

	return cmd
}

// runLayout computes the layout and writes it as JSON.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, opts pipeline.Options, output string) error {
	opts.Logger = c.Logger
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	paint, err := opts.Paint()
	if err != nil {
		return err
	}
	groups, _, err := pipeline.Parse(ctx, opts)
	if err != nil {
		return err
	}

	l := pipeline.GenerateLayout(ctx, groups, opts)
	data, err := sink.RenderJSON(l, sink.WithJSONPaint(paint))
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}

	if output == "" {
		_, err := fmt.Fprintln(w, string(data))
		return err
	}
	if err := writeFile(output, data); err != nil {
		return err
	}
	printSuccess("Layout complete")
	printFile(output)
	printStats(len(l.Cells), len(l.Primitives), fmt.Sprintf("%gx%g", l.Width, l.Height), false)
	printNewline()
	printNextStep("Export", appName+" render "+renderHint(opts))
	return nil
}

func renderHint(opts pipeline.Options) string {
	if opts.Date != "" {
		return "--date " + opts.Date
	}
	return opts.Number
}
