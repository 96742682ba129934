package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/tenox"
	"github.com/yacobolo/tenox/internal/report"
)

var applyCmd = &cobra.Command{
	Use:   "apply [patterns...]",
	Short: "Apply utility classes to XHTML documents",
	Long: `Resolve the utility classes of every element into inline styles.
Documents are written under --output-dir, or printed to stdout when no
output directory is configured.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runApply,
}

func init() {
	addApplyFlags(applyCmd)
}

func addApplyFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for documents to process")
	f.String("base-dir", ".", "Directory patterns, outputs and .gitignore are relative to")
	f.String("output-dir", "", "Directory for rendered documents (empty = stdout)")
	f.Bool("dry-run", false, "Resolve without writing anything")
	f.Bool("hover", false, "Render every element in its hovered state")
	f.Bool("more-color", false, "Also resolve bg-/tc-/border- rgb(), rgba() and hex classes")
	f.String("output-format", "", "Summary format: summary|full|json")
}

func runApply(cmd *cobra.Command, args []string) error {
	log := loggerFromConfig()
	defer func() { _ = log.Sync() }()

	config, err := buildProcessConfig(args, log)
	if err != nil {
		return err
	}
	log.Debug("apply",
		zap.Strings("include", config.Includes),
		zap.Int("types", config.Registry.Len()),
		zap.String("output-dir", config.OutputDir))

	result, err := tenox.Process(config)
	if result == nil {
		return fmt.Errorf("apply failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	out := cmd.OutOrStdout()

	if config.OutputDir == "" && !config.DryRun {
		if werr := report.WriteContent(out, result); werr != nil {
			return werr
		}
		// The summary would mix with the documents on stdout.
		out = cmd.ErrOrStderr()
	}

	if !quiet {
		format := report.DetermineOutputFormat(getStringWithFallback("output-format", "apply.output-format", "summary"))
		if werr := report.WriteProcess(out, result, format, reportOptions()); werr != nil {
			return werr
		}
	}

	if err != nil {
		return fmt.Errorf("%d of %d files failed: %w",
			len(multierr.Errors(err)), len(result.Files), err)
	}
	return nil
}
