package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/tenox"
)

// JSONVersion is the schema version of every JSON document written here.
const JSONVersion = "1.0"

// LintJSON is the JSON export of a lint run.
type LintJSON struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains class statistics.
type JSONStats struct {
	ClassesFound int            `json:"classes_found"`
	Utility      int            `json:"utility_classes"`
	Resolved     int            `json:"resolved"`
	Modes        map[string]int `json:"modes"`
}

// JSONIssue represents a single lint issue.
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Source     string `json:"source,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ProcessJSON is the JSON export of an apply run.
type ProcessJSON struct {
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Summary   JSONApplySummary  `json:"summary"`
	Files     []JSONFileSummary `json:"files"`
}

// JSONApplySummary contains apply totals.
type JSONApplySummary struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesProcessed  int `json:"files_processed"`
	FilesSkipped    int `json:"files_skipped"`
	FilesWritten    int `json:"files_written"`
	ElementsStyled  int `json:"elements_styled"`
	ClassesApplied  int `json:"classes_applied"`
	ClassesIgnored  int `json:"classes_ignored"`
	Listeners       int `json:"listeners"`
}

// JSONFileSummary is the outcome for one document.
type JSONFileSummary struct {
	Path           string `json:"path"`
	Output         string `json:"output,omitempty"`
	ElementsStyled int    `json:"elements_styled"`
	ClassesApplied int    `json:"classes_applied"`
	ClassesIgnored int    `json:"classes_ignored"`
	Error          string `json:"error,omitempty"`
}

// WriteLintJSON writes the lint result as indented JSON.
func WriteLintJSON(w io.Writer, result *tenox.LintResult) error {
	return encode(w, buildLintJSON(result))
}

// WriteProcessJSON writes the apply result as indented JSON.
func WriteProcessJSON(w io.Writer, result *tenox.ProcessResult) error {
	return encode(w, buildProcessJSON(result))
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func buildLintJSON(result *tenox.LintResult) LintJSON {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		if issue.Replacement != nil {
			ji.Suggestion = issue.Replacement.NewText
		}
		issues[i] = ji
	}

	modes := result.Modes
	if modes == nil {
		modes = map[string]int{}
	}

	return LintJSON{
		Version:   JSONVersion,
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			ClassesFound: result.ClassesFound,
			Utility:      result.Utility,
			Resolved:     result.Resolved,
			Modes:        modes,
		},
		Issues: issues,
	}
}

func buildProcessJSON(result *tenox.ProcessResult) ProcessJSON {
	files := make([]JSONFileSummary, len(result.Files))
	for i, f := range result.Files {
		fs := JSONFileSummary{
			Path:           f.Path,
			Output:         f.Output,
			ElementsStyled: f.ElementsStyled,
			ClassesApplied: f.ClassesApplied,
			ClassesIgnored: f.ClassesIgnored,
		}
		if f.Err != nil {
			fs.Error = f.Err.Error()
		}
		files[i] = fs
	}

	return ProcessJSON{
		Version:   JSONVersion,
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONApplySummary{
			FilesDiscovered: result.FilesDiscovered,
			FilesProcessed:  result.FilesScanned,
			FilesSkipped:    result.FilesSkipped,
			FilesWritten:    result.FilesWritten,
			ElementsStyled:  result.ElementsStyled,
			ClassesApplied:  result.ClassesApplied,
			ClassesIgnored:  result.ClassesIgnored,
			Listeners:       result.Listeners,
		},
		Files: files,
	}
}
