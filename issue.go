package tenox

// Issue is a single lint finding in golangci-lint format.
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "tenox"
	Text        string       `json:"Text"`        // "unknown prefix \"tablet\" in class \"tablet:p-10px\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"` // "site/index.html"
	Line     int    `json:"Line"`     // 12
	Column   int    `json:"Column"`   // 1-based start of the class name
}

// Replacement suggests a fix for an issue.
type Replacement struct {
	NewText      string // "md:p-10px"
	InlineLength int    // Length of text to replace
}

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue messages.
const (
	IssueUnknownPrefix = "unknown prefix %q in class %q"
	IssueUnknownType   = "unknown type %q in class %q"
)

// Issue categories used to group findings.
const (
	CategoryPrefix = "prefix"
	CategoryType   = "type"
)
