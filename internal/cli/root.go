package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/internal/config"
	"github.com/matzehuels/mayanum/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the root command applies --verbose, loads the
// config file and attaches the logger to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "mayanum converts numbers and dates into Mayan numerals",
		Long: `mayanum decomposes non-negative integers and calendar dates into base-20
digits and draws them as Mayan numerals: dots for ones, bars for fives and a
shell for zero, stacked from the highest place value down.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.verbose {
				level = LogDebug
				registerLoggingHooks(c.Logger)
			}
			c.SetLogLevel(level)

			cfg, err := config.LoadConfig(c.configFile())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.fileCfg = cfg

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/mayanum/config.toml)")

	// Register all subcommands
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.dateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
