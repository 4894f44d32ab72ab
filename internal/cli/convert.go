package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/pkg/pipeline"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
	"github.com/matzehuels/mayanum/pkg/render/glyph/sink"
	"github.com/matzehuels/mayanum/pkg/vigesimal"
)

// printOpts controls how decomposed groups are shown.
type printOpts struct {
	noGlyphs bool
	asJSON   bool
}

// groupJSON is the --json output of convert and date.
type groupJSON struct {
	Label    string `json:"label"`
	Value    uint64 `json:"value"`
	Digits   []int  `json:"digits"`
	Notation string `json:"notation"`
	Expanded string `json:"expanded"`
}

// convertCommand creates the convert command for a single number.
func (c *CLI) convertCommand() *cobra.Command {
	var p printOpts

	cmd := &cobra.Command{
		Use:   "convert [number]",
		Short: "Convert a non-negative integer into a Mayan numeral",
		Long: `Convert a non-negative integer into base-20 digits and print them in
positional notation, in expanded form and as terminal glyphs.

Example:
  mayanum convert 123
  mayanum convert 400 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, pipeline.Options{Number: args[0]}, p)
		},
	}

	cmd.Flags().BoolVar(&p.noGlyphs, "no-glyphs", false, "omit the glyph preview")
	cmd.Flags().BoolVar(&p.asJSON, "json", false, "print JSON instead of text")

	return cmd
}

// runConvert decomposes the input and prints every group.
func (c *CLI) runConvert(cmd *cobra.Command, opts pipeline.Options, p printOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	groups, _, err := pipeline.Parse(ctx, opts)
	if err != nil {
		return err
	}
	logger.Debug("decomposed", "kind", opts.Kind(), "groups", len(groups))

	w := cmd.OutOrStdout()
	if p.asJSON {
		return writeGroupsJSON(w, groups)
	}

	for _, g := range groups {
		printGroup(w, g)
	}
	if !p.noGlyphs {
		fmt.Fprintln(w)
		fmt.Fprintln(w, glyphPreview(groups))
	}
	return nil
}

func printGroup(w io.Writer, g layout.Group) {
	printKeyValue(w, g.Label, strconv.FormatUint(g.Digits.Value(), 10))
	printKeyValue(w, "  digits", g.Digits.String())
	printKeyValue(w, "  notation", vigesimal.Format(g.Digits, vigesimal.Notation))
	printKeyValue(w, "  expanded", vigesimal.Format(g.Digits, vigesimal.Expanded))
}

func writeGroupsJSON(w io.Writer, groups []layout.Group) error {
	out := make([]groupJSON, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupJSON{
			Label:    g.Label,
			Value:    g.Digits.Value(),
			Digits:   g.Digits.Ints(),
			Notation: vigesimal.Format(g.Digits, vigesimal.Notation),
			Expanded: vigesimal.Format(g.Digits, vigesimal.Expanded),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// glyphPreview draws the groups with the terminal sink. Labels are shown
// when there is more than one group.
func glyphPreview(groups []layout.Group) string {
	opts := []sink.TextOption{sink.WithGlyphStyle(StyleGlyph), sink.WithLabelStyle(StyleLabel)}
	if len(groups) > 1 {
		opts = append(opts, sink.WithLabels())
	}
	return sink.RenderText(layout.BuildGroups(groups), opts...)
}
