package report

import (
	"fmt"
	"io"

	"github.com/yacobolo/tenox"
)

// Format selects how results are written.
type Format string

// Output formats.
const (
	FormatIssues  Format = "issues"  // Issues only, golangci-lint style
	FormatSummary Format = "summary" // Statistics only
	FormatFull    Format = "full"    // Issues and statistics
	FormatJSON    Format = "json"    // Machine readable
)

// DetermineOutputFormat selects the output format from the flag value. An
// empty or unknown value selects FormatIssues.
func DetermineOutputFormat(formatFlag string) Format {
	switch Format(formatFlag) {
	case FormatIssues, FormatSummary, FormatFull, FormatJSON:
		return Format(formatFlag)
	}
	return FormatIssues
}

// WriteLint writes a lint result in the given format.
func WriteLint(w io.Writer, result *tenox.LintResult, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		return WriteLintJSON(w, result)
	case FormatSummary:
		NewSummaryReporter(w, ShouldUseColors(opts)).PrintLintStatistics(result)
	case FormatFull:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
		NewSummaryReporter(w, reporter.UseColors()).PrintLintStatistics(result)
	default:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}
	return nil
}

// WriteProcess writes an apply result. Every format other than JSON prints
// the summary; FormatFull also lists each file.
func WriteProcess(w io.Writer, result *tenox.ProcessResult, format Format, opts Options) error {
	if format == FormatJSON {
		return WriteProcessJSON(w, result)
	}
	NewSummaryReporter(w, ShouldUseColors(opts)).PrintProcessSummary(result, format == FormatFull)
	return nil
}

// WriteContent prints documents rendered without an output directory,
// each preceded by a comment naming its source.
func WriteContent(w io.Writer, result *tenox.ProcessResult) error {
	for _, f := range result.Files {
		if f.Err != nil || f.Content == "" {
			continue
		}
		if len(result.Files) > 1 {
			if _, err := fmt.Fprintf(w, "<!-- %s -->\n", f.Path); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, f.Content); err != nil {
			return err
		}
	}
	return nil
}
