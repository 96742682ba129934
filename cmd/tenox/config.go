package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/tenox"
	"github.com/yacobolo/tenox/internal/report"
)

var k = koanf.New(".")

// configSections are the nested config blocks. Environment variables name them
// with their first segment: TENOX_APPLY_OUTPUT_DIR -> apply.output-dir.
var configSections = map[string]bool{"apply": true, "lint": true}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".tenox.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set are loaded. Defaults of unset flags
	// would shadow the nested apply.* and lint.* keys in the getters below.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}
	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// It is separate from loadConfig so tests can run without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("TENOX_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}
	return nil
}

// envKey maps an environment variable to a config key.
//
//	TENOX_WIDTH            -> width
//	TENOX_MORE_COLOR       -> more-color
//	TENOX_APPLY_OUTPUT_DIR -> apply.output-dir
func envKey(s string) string {
	parts := strings.Split(strings.ToLower(strings.TrimPrefix(s, "TENOX_")), "_")
	if len(parts) > 1 && configSections[parts[0]] {
		return parts[0] + "." + strings.Join(parts[1:], "-")
	}
	return strings.Join(parts, "-")
}

// buildRegistry creates the property table: the defaults unless no-defaults
// is set, with the `properties` block merged on top. Invalid entries are
// logged and skipped.
func buildRegistry(log *zap.Logger) *tenox.Registry {
	var props map[string][]string
	if !k.Bool("no-defaults") {
		props = tenox.DefaultProperties()
	}
	reg, err := tenox.NewRegistry(props)
	warnSkipped(log, err)

	if defs, ok := k.Get("properties").(map[string]any); ok {
		warnSkipped(log, reg.DefineProps(defs))
	}
	return reg
}

func warnSkipped(log *zap.Logger, err error) {
	for _, e := range multierr.Errors(err) {
		log.Warn("skipping property definition", zap.Error(e))
	}
}

// buildBreakpoints creates the breakpoint table. Entries from the
// `breakpoints` list are appended to the defaults, or replace them when
// no-defaults is set.
func buildBreakpoints() (*tenox.BreakpointTable, error) {
	table := tenox.DefaultBreakpoints()
	if k.Bool("no-defaults") {
		table = tenox.NewBreakpointTable()
	}

	if !k.Exists("breakpoints") {
		return table, nil
	}
	var extra []tenox.Breakpoint
	if err := k.Unmarshal("breakpoints", &extra); err != nil {
		return nil, fmt.Errorf("config breakpoints: %w", err)
	}
	for i, bp := range extra {
		if bp.Name == "" {
			return nil, fmt.Errorf("config breakpoints: entry %d has no name", i)
		}
	}
	table.Append(extra...)
	return table, nil
}

// buildStyles returns the `styles` selector declarations, if any.
func buildStyles() map[string]any {
	styles, _ := k.Get("styles").(map[string]any)
	return styles
}

// buildProcessConfig constructs the library's ProcessConfig from koanf state.
// Positional arguments replace the configured include patterns.
func buildProcessConfig(args []string, log *zap.Logger) (tenox.ProcessConfig, error) {
	reg := buildRegistry(log)
	bps, err := buildBreakpoints()
	if err != nil {
		return tenox.ProcessConfig{}, err
	}

	config := tenox.ProcessConfig{
		BaseDir:     getStringWithFallback("base-dir", "apply.base-dir", "."),
		OutputDir:   getStringWithFallback("output-dir", "apply.output-dir", ""),
		DryRun:      getBoolWithFallback("dry-run", "apply.dry-run", false),
		Width:       k.Float64("width"),
		Hover:       getBoolWithFallback("hover", "hover", false),
		MoreColor:   getBoolWithFallback("more-color", "more-color", false),
		Styles:      buildStyles(),
		Registry:    reg,
		Breakpoints: bps,
		Logger:      log,
	}

	switch {
	case len(args) > 0:
		config.Includes = args
	case len(k.Strings("include")) > 0:
		config.Includes = k.Strings("include")
	case len(k.Strings("apply.include")) > 0:
		config.Includes = k.Strings("apply.include")
	default:
		config.Includes = []string{"**/*.html", "**/*.xhtml"}
	}
	return config, nil
}

// buildLintConfig constructs the library's LintConfig from koanf state.
func buildLintConfig(args []string, log *zap.Logger) (tenox.LintConfig, error) {
	reg := buildRegistry(log)
	bps, err := buildBreakpoints()
	if err != nil {
		return tenox.LintConfig{}, err
	}

	var scanPaths []string
	switch {
	case len(args) > 0:
		scanPaths = args
	case len(k.Strings("paths")) > 0:
		scanPaths = k.Strings("paths")
	case len(k.Strings("lint.paths")) > 0:
		scanPaths = k.Strings("lint.paths")
	default:
		scanPaths = []string{"**/*.html", "**/*.xhtml"}
	}

	return tenox.LintConfig{
		ScanPaths:          scanPaths,
		BaseDir:            getStringWithFallback("base-dir", "apply.base-dir", "."),
		Registry:           reg,
		Breakpoints:        bps,
		Logger:             log,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
	}, nil
}

// reportOptions constructs reporter options from koanf state.
func reportOptions() report.Options {
	return report.Options{
		UseColors:        getBoolWithFallback("color", "color", false),
		NoColors:         getBoolWithFallback("no-color", "no-color", false),
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
	}
}

// loggerFromConfig builds the CLI logger from the verbose/quiet/color keys.
func loggerFromConfig() *zap.Logger {
	return newLogger(
		getBoolWithFallback("verbose", "verbose", false),
		getBoolWithFallback("quiet", "quiet", false),
		report.ShouldUseColors(reportOptions()),
	)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
