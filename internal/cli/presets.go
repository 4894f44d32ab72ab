package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/pipeline"
)

// presetsCommand creates the presets command listing export sizes.
func (c *CLI) presetsCommand() *cobra.Command {
	flags := newOptionFlags()

	cmd := &cobra.Command{
		Use:   "presets [number]",
		Short: "List export sizes for a numeral",
		Long: `Show every size preset resolved for a number (or a date with --date).
The custom row uses --width, --height and --lock.`,
		Args: inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.apply(cmd, c.fileCfg, args)
			return c.runPresets(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags.registerInput(cmd)
	flags.registerLayout(cmd)
	cmd.Flags().IntVar(&flags.opts.Width, "width", 0, "custom width in pixels (100-5000)")
	cmd.Flags().IntVar(&flags.opts.Height, "height", 0, "custom height in pixels (100-5000)")
	cmd.Flags().StringVar(&flags.opts.Lock, "lock", "", "keep aspect ratio from this side: width, height")

	return cmd
}

func (c *CLI) runPresets(ctx context.Context, w io.Writer, opts pipeline.Options) error {
	opts.Logger = c.Logger
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	groups, _, err := pipeline.Parse(ctx, opts)
	if err != nil {
		return err
	}
	_, custom, err := opts.Export()
	if err != nil {
		return err
	}

	dims := pipeline.Dimensions(pipeline.GenerateLayout(ctx, groups, opts))
	choices := export.Presets(dims, custom)

	fmt.Fprintln(w, StyleTitle.Render("Export sizes"))
	fmt.Fprintln(w, presetTable(choices))
	return nil
}

func presetTable(choices []export.Choice) string {
	rows := make([][]string, 0, len(choices))
	for _, ch := range choices {
		rows = append(rows, []string{
			string(ch.Preset),
			ch.Label,
			strconv.Itoa(ch.Size.Width),
			strconv.Itoa(ch.Size.Height),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("PRESET", "LABEL", "WIDTH", "HEIGHT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return StyleTitle.Padding(0, 1)
			}
			if col >= 2 {
				return StyleNumber.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		}).
		String()
}
