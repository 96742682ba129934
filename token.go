package tenox

import (
	"regexp"
	"strings"
)

// Token is one class name decomposed into its parts.
//
//	"sm:p-10px"  → {Prefix: "sm", Type: "p", Value: "10", Unit: "px"}
//	"bg-#fff"    → {Type: "bg", Value: "#fff"}
//	"[--c]-red"  → {Type: "[--c]", Value: "red"}
type Token struct {
	Prefix string // "sm", "hover", "max-lg" (empty when absent)
	Type   string // "p", "bg", "grid-row", "[--accent]"
	Value  string // "10", "red", "#fff", "[10px]", "$accent"
	Unit   string // "px", "rem", "%" (empty when absent)
}

// classPattern matches `[prefix:]type-value[unit]`.
// Go's regexp picks submatches leftmost-first, so the first alternative of
// each group that leads to an overall match wins.
var classPattern = regexp.MustCompile(
	`(?:([a-z-]+):)?` + // prefix
		`(-?[a-zA-Z0-9_]+(?:-[a-zA-Z0-9_]+)*|\[--[a-zA-Z0-9_-]+\])` + // type
		`-` +
		`(-?\d+(?:\.\d+)?` + // number
		`|[a-zA-Z0-9_]+(?:-[a-zA-Z0-9_]+)*` + // word
		`|#[0-9a-fA-F]+` + // hex
		`|\[[^\]]+\]` + // bracketed literal
		`|\$[^\s]+)` + // variable reference
		`([a-zA-Z%]*)`, // unit
)

// ParseClass parses a single class name. Class names that do not follow the
// grammar are reported as no match; most classes in a document are unrelated
// to styling, so this is not an error.
func ParseClass(className string) (Token, bool) {
	m := classPattern.FindStringSubmatch(className)
	if m == nil {
		return Token{}, false
	}
	return Token{
		Prefix: m[1],
		Type:   m[2],
		Value:  m[3],
		Unit:   m[4],
	}, true
}

// Fields splits a multi-class string on whitespace.
func Fields(classes string) []string {
	return strings.Fields(classes)
}

// String reassembles the token into its class name form.
func (t Token) String() string {
	var b strings.Builder
	if t.Prefix != "" {
		b.WriteString(t.Prefix)
		b.WriteByte(':')
	}
	b.WriteString(t.Type)
	b.WriteByte('-')
	b.WriteString(t.Value)
	b.WriteString(t.Unit)
	return b.String()
}

// IsHover reports whether the token is bound to pointer hover.
func (t Token) IsHover() bool {
	return strings.HasPrefix(t.Prefix, "hover")
}

// IsCustomProperty reports whether the type is the `[--name]` form.
func (t Token) IsCustomProperty() bool {
	return isCustomPropertyType(t.Type)
}

func isCustomPropertyType(typ string) bool {
	return strings.HasPrefix(typ, "[--") && strings.HasSuffix(typ, "]")
}
