package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/pkg/pipeline"
)

// dateCommand creates the date command.
func (c *CLI) dateCommand() *cobra.Command {
	var p printOpts

	cmd := &cobra.Command{
		Use:   "date [DD-MM-YYYY]",
		Short: "Convert a calendar date into three Mayan numerals",
		Long: `Convert a date into separate numerals for day, month and year.

Accepted forms are DD-MM-YYYY, DD/MM/YYYY and YYYY-MM-DD. The date must exist
in the Gregorian calendar.

Example:
  mayanum date 05-01-2025
  mayanum date 2024-02-29 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, pipeline.Options{Date: args[0]}, p)
		},
	}

	cmd.Flags().BoolVar(&p.noGlyphs, "no-glyphs", false, "omit the glyph preview")
	cmd.Flags().BoolVar(&p.asJSON, "json", false, "print JSON instead of text")

	return cmd
}
