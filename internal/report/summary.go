package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/yacobolo/tenox"
)

// SummaryReporter prints statistics for lint and apply runs.
type SummaryReporter struct {
	w         io.Writer
	useColors bool
}

// NewSummaryReporter creates a summary reporter.
func NewSummaryReporter(w io.Writer, useColors bool) *SummaryReporter {
	return &SummaryReporter{w: w, useColors: useColors}
}

func (r *SummaryReporter) header(title string) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, title, r.useColors))
	fmt.Fprintln(r.w, "------------------------")
}

// PrintLintStatistics outputs class counts from a lint run.
func (r *SummaryReporter) PrintLintStatistics(result *tenox.LintResult) {
	r.header("Lint Statistics")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "Files Ignored:     %d\n", result.FilesSkipped)
	}
	fmt.Fprintf(r.w, "Classes Found:     %d\n", result.ClassesFound)
	fmt.Fprintf(r.w, "Utility Classes:   %d\n", result.Utility)
	fmt.Fprintf(r.w, "Resolved:          %d (%.1f%%)\n", result.Resolved, percent(result.Resolved, result.Utility))

	modes := make([]string, 0, len(result.Modes))
	for m := range result.Modes {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	for _, m := range modes {
		fmt.Fprintf(r.w, "  %-15s %d\n", m+":", result.Modes[m])
	}
}

// PrintProcessSummary outputs totals and per-file results from an apply run.
func (r *SummaryReporter) PrintProcessSummary(result *tenox.ProcessResult, verbose bool) {
	if verbose {
		r.header("Files")
		for _, f := range result.Files {
			name := filepath.ToSlash(f.Path)
			if f.Err != nil {
				fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleRed, "✗", r.useColors), name)
				fmt.Fprintf(r.w, "    %s\n", f.Err)
				continue
			}
			fmt.Fprintf(r.w, "%s %s: %d elements, %d classes applied, %d ignored\n",
				RenderStyle(StyleGreen, "✓", r.useColors), name,
				f.ElementsStyled, f.ClassesApplied, f.ClassesIgnored)
			if f.Output != "" {
				fmt.Fprintf(r.w, "    → %s\n", filepath.ToSlash(f.Output))
			}
		}
	}

	r.header("Apply Summary")
	fmt.Fprintf(r.w, "Files Discovered:  %d\n", result.FilesDiscovered)
	fmt.Fprintf(r.w, "Files Processed:   %d\n", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "Files Ignored:     %d\n", result.FilesSkipped)
	}
	if failed := len(result.Files) - result.FilesScanned; failed > 0 {
		fmt.Fprintf(r.w, "Files Failed:      %s\n", RenderStyle(StyleRed, fmt.Sprint(failed), r.useColors))
	}
	fmt.Fprintf(r.w, "Files Written:     %d\n", result.FilesWritten)
	fmt.Fprintf(r.w, "Elements Styled:   %d\n", result.ElementsStyled)
	fmt.Fprintf(r.w, "Classes Applied:   %d\n", result.ClassesApplied)
	fmt.Fprintf(r.w, "Classes Ignored:   %d\n", result.ClassesIgnored)
	fmt.Fprintf(r.w, "Listeners:         %d\n", result.Listeners)
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
