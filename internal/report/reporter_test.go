package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tenox"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"p-10px\">",
			column:     15,
			want:       "              ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"sm:p-4px\">",
			column:     17,
			want:       "\t\t              ^",
		},
		{
			name:       "start of line",
			sourceLine: "class=\"m-0\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func sampleLintResult() *tenox.LintResult {
	prefixIssue := tenox.Issue{
		FromLinter:  "tenox",
		Text:        `unknown prefix "mdd" in class "mdd:p-10px"`,
		Severity:    tenox.SeverityError,
		SourceLines: []string{`<div class="mdd:p-10px">`},
		Pos:         tenox.IssuePos{Filename: "b.html", Line: 3, Column: 13},
		Replacement: &tenox.Replacement{NewText: "md:p-10px", InlineLength: 10},
	}
	typeIssue := tenox.Issue{
		FromLinter:  "tenox",
		Text:        `unknown type "pp" in class "sm:pp-1px"`,
		Severity:    tenox.SeverityWarning,
		SourceLines: []string{`<p class="sm:pp-1px">`},
		Pos:         tenox.IssuePos{Filename: "a.html", Line: 1, Column: 11},
	}
	return &tenox.LintResult{
		Issues: []tenox.Issue{prefixIssue, typeIssue},
		IssuesByCategory: map[string][]tenox.Issue{
			tenox.CategoryPrefix: {prefixIssue},
			tenox.CategoryType:   {typeIssue},
		},
		FilesScanned: 2,
		ClassesFound: 5,
		Utility:      4,
		Resolved:     2,
		Modes:        map[string]int{"immediate": 1, "hover": 1},
		ErrorCount:   1,
		WarningCount: 1,
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, Options{NoColors: true, PrintIssuedLines: true, PrintLinterName: true})

	r.PrintIssues(sampleLintResult().Issues)

	out := buf.String()
	assert.Contains(t, out, `a.html:1:11: unknown type "pp" in class "sm:pp-1px" (tenox)`)
	assert.Contains(t, out, `b.html:3:13: unknown prefix "mdd" in class "mdd:p-10px"; did you mean "md:p-10px"? (tenox)`)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a.html")), bytes.Index(buf.Bytes(), []byte("b.html")),
		"issues are sorted by file")
	assert.Contains(t, out, "\t            ^\n")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, Options{NoColors: true})

	r.PrintSummary(sampleLintResult())

	out := buf.String()
	assert.Contains(t, out, "2 issues (1 error, 1 warning):")
	assert.Contains(t, out, "* prefix: 1\n* type: 1\n")
	assert.Contains(t, out, "Hint:")
}

func TestPrintSummary_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, Options{NoColors: true}).PrintSummary(&tenox.LintResult{})

	assert.Equal(t, "\n0 issues:\n", buf.String())
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(Options{}))
	assert.False(t, ShouldUseColors(Options{NoColors: true, UseColors: true}))

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColors(Options{}))
	assert.True(t, ShouldUseColors(Options{UseColors: true}))
}
