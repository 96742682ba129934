package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tenox",
	Short: "Utility-class style resolver for XHTML documents",
	Long: `Resolve utility class names such as "p-10px", "md:bg-$accent" or
"hover:rotate-45deg" into inline styles.
Breakpoint prefixes follow the viewport width, hover prefixes the pointer.`,
	// Default behavior: run apply when no subcommand is given.
	// loadConfig is called here because PreRunE of applyCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runApply(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	rootCmd.PersistentFlags().String("config", ".tenox.yaml", "Config file path")
	rootCmd.PersistentFlags().Float64("width", 0, "Viewport width in pixels (0 = 1024)")
	rootCmd.PersistentFlags().Bool("no-defaults", false, "Start from an empty property table")

	// The default command accepts apply's flags too.
	addApplyFlags(rootCmd)

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
