package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tenox"
	"github.com/yacobolo/tenox/internal/report"
)

// errLintFailed signals a failing lint run; the issues were already printed.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint [patterns...]",
	Short: "Report utility classes that would have no effect",
	Long: `Scan class attributes for utility classes with an unknown breakpoint
prefix or an unregistered type.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runLint,
}

func init() {
	addLintFlags(lintCmd)
}

func addLintFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("paths", nil, "File patterns to scan for class attributes")
	f.String("base-dir", ".", "Directory patterns and .gitignore are relative to")
	f.Bool("strict", false, "Also report unprefixed classes with unknown types, and fail on any issue")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (tenox) suffix on issues")
}

func runLint(cmd *cobra.Command, args []string) error {
	log := loggerFromConfig()
	defer func() { _ = log.Sync() }()

	config, err := buildLintConfig(args, log)
	if err != nil {
		return err
	}

	result, err := tenox.Lint(config)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		format := report.DetermineOutputFormat(getStringWithFallback("output-format", "lint.output-format", ""))
		if err := report.WriteLint(cmd.OutOrStdout(), result, format, reportOptions()); err != nil {
			return err
		}
	}

	// Errors always fail; strict mode fails on any issue.
	if result.ErrorCount > 0 || (config.Strict && len(result.Issues) > 0) {
		return errLintFailed
	}
	return nil
}
