package tenox

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/yacobolo/tenox/internal/dom"
)

// LintConfig holds linting configuration.
type LintConfig struct {
	ScanPaths   []string         // Patterns to scan (e.g., "site/**/*.html")
	BaseDir     string           // Patterns and .gitignore are relative to this
	Registry    *Registry        // Required
	Breakpoints *BreakpointTable // Nil selects DefaultBreakpoints
	Logger      *zap.Logger

	// Strict also reports unprefixed classes whose type is unknown. Those are
	// usually ordinary classes such as "btn-primary", so they are off by default.
	Strict bool

	MaxIssuesPerLinter int // 0 = unlimited (default)
	MaxSameIssues      int // 0 = unlimited (default)
}

// LintResult contains linting analysis results.
type LintResult struct {
	Issues           []Issue
	IssuesByCategory map[string][]Issue

	FilesDiscovered int
	FilesSkipped    int
	FilesScanned    int
	ClassesFound    int            // Every class name in a class attribute
	Utility         int            // Class names matching the utility grammar
	Resolved        int            // Utility classes that would take effect
	Modes           map[string]int // Resolved classes per mode
	ErrorCount      int
	WarningCount    int
	TruncatedCount  int // Issues removed due to limits
}

// Lint scans markup for class attributes and reports utility classes that
// would have no effect: a prefix that is neither hover nor a known
// breakpoint, or a type with no registered properties.
func Lint(config LintConfig) (*LintResult, error) {
	if config.Registry == nil {
		return nil, ErrNoRegistry
	}
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("lint")

	// A window is attached so breakpoint prefixes classify as responsive.
	r, err := NewResolver(Config{
		Registry:    config.Registry,
		Breakpoints: config.Breakpoints,
		Window:      dom.NewWindow(dom.DefaultWidth),
	}, WithLogger(log))
	if err != nil {
		return nil, err
	}

	files, stats, err := expandIncludes(config.BaseDir, config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	result := &LintResult{
		FilesDiscovered:  stats.discovered,
		FilesSkipped:     stats.skipped,
		IssuesByCategory: make(map[string][]Issue),
		Modes:            make(map[string]int),
	}

	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			log.Warn("failed to scan file", zap.String("file", file), zap.Error(err))
			continue
		}
		result.FilesScanned++
		for _, ref := range refs {
			lintClass(r, config, displayPath(config.BaseDir, file), ref, result)
		}
	}

	sortIssues(result.Issues)
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	return result, nil
}

func lintClass(r *Resolver, config LintConfig, path string, ref ClassReference, result *LintResult) {
	result.ClassesFound++

	tok, ok := ParseClass(ref.ClassName)
	if !ok {
		return
	}
	result.Utility++

	if mode := r.ModeOf(tok); mode != ModeInert {
		result.Resolved++
		result.Modes[mode.String()]++
		return
	}

	var issue Issue
	switch {
	case !r.known(tok.Type):
		if tok.Prefix == "" && !config.Strict {
			return
		}
		severity := SeverityWarning
		if tok.Prefix == "" {
			severity = SeverityInfo
		}
		issue = newIssue(path, ref, severity, fmt.Sprintf(IssueUnknownType, tok.Type, ref.ClassName))
		result.IssuesByCategory[CategoryType] = append(result.IssuesByCategory[CategoryType], issue)
	default:
		issue = newIssue(path, ref, SeverityError, fmt.Sprintf(IssueUnknownPrefix, tok.Prefix, ref.ClassName))
		issue.Replacement = suggestPrefix(r.breakpoints, tok, ref.ClassName)
		result.IssuesByCategory[CategoryPrefix] = append(result.IssuesByCategory[CategoryPrefix], issue)
	}
	result.Issues = append(result.Issues, issue)
}

func newIssue(path string, ref ClassReference, severity, text string) Issue {
	return Issue{
		FromLinter:  "tenox",
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.Location.Text},
		Pos: IssuePos{
			Filename: path,
			Line:     ref.Location.Line,
			Column:   ref.Location.Column,
		},
	}
}

// suggestPrefix proposes the breakpoint closest in spelling to an unknown
// prefix, when one is close enough to be a likely typo.
func suggestPrefix(bps *BreakpointTable, tok Token, className string) *Replacement {
	best, bestDist := "", 3
	for _, bp := range bps.Entries() {
		if d := editDistance(tok.Prefix, bp.Name); d < bestDist {
			best, bestDist = bp.Name, d
		}
	}
	if best == "" {
		return nil
	}
	fixed := tok
	fixed.Prefix = best
	return &Replacement{NewText: fixed.String(), InlineLength: len(className)}
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// displayPath returns path relative to base when possible.
func displayPath(base, path string) string {
	if base == "" {
		return path
	}
	if rel, err := filepath.Rel(base, path); err == nil && !startsWithParent(rel) {
		return rel
	}
	return path
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints.
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Deduplication is by message text.
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears.
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}
	return filtered
}
