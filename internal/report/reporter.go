// Package report renders lint, process and explain results for the terminal
// and as JSON.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/yacobolo/tenox"
)

// Options controls how results are printed.
type Options struct {
	UseColors        bool // Force colors on
	NoColors         bool // Force colors off
	PrintIssuedLines bool // Show source lines under each issue
	PrintLinterName  bool // Show the (tenox) suffix
}

// Reporter prints lint issues in golangci-lint format.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts),
		printLines:      opts.PrintIssuedLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors resolves the color setting: explicit flags first, then CI
// environment variables, then whether stdout is a terminal.
func ShouldUseColors(opts Options) bool {
	if opts.NoColors {
		return false
	}
	if opts.UseColors {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintIssues outputs issues ordered by file, line and column.
func (r *Reporter) PrintIssues(issues []tenox.Issue) {
	sorted := make([]tenox.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pos, sorted[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue writes `file:line:col: message (linter)` followed by the source
// line and a caret under the offending class.
func (r *Reporter) printIssue(issue tenox.Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Replacement != nil {
		text += fmt.Sprintf("; did you mean %q?", issue.Replacement.NewText)
	}

	style := StyleYellow
	if issue.Severity == tenox.SeverityError {
		style = StyleRed
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		RenderStyle(style, text, r.useColors),
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates a "^" aligned with column. Tabs in the prefix
// are kept so the caret lines up however the terminal expands them.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := min(column-1, len(sourceLine))
	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary.
func (r *Reporter) PrintSummary(result *tenox.LintResult) {
	totalIssues := len(result.Issues)
	truncated := result.TruncatedCount
	errors, warnings := result.ErrorCount, result.WarningCount

	fmt.Fprintln(r.w, "")

	// Severity breakdown only when both kinds are present.
	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details, pluralizeCount(errors, "error", "errors")+", "+
			pluralizeCount(warnings, "warning", "warnings"))
	}
	if truncated > 0 {
		details = append(details, pluralizeCount(truncated, "issue", "issues")+" truncated")
	}

	if len(details) > 0 {
		fmt.Fprintf(r.w, "%s (%s):\n", pluralizeCount(totalIssues, "issue", "issues"), strings.Join(details, "; "))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(totalIssues, "issue", "issues"))
	}

	categories := make([]string, 0, len(result.IssuesByCategory))
	for cat := range result.IssuesByCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	for _, cat := range categories {
		fmt.Fprintf(r.w, "* %s: %d\n", cat, len(result.IssuesByCategory[cat]))
	}

	if totalIssues > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
