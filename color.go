package tenox

import (
	"regexp"
	"strings"
)

// colorTypes maps the color class types to the properties MoreColor writes.
var colorTypes = []struct {
	typ      string
	property string
}{
	{"bg", "background"},
	{"tc", "color"},
	{"border", "border-color"},
}

type colorFormat struct {
	pattern func(typ string) *regexp.Regexp
	format  func(m []string) string
}

// Checked in order; a later format that also matches overwrites an earlier one.
var colorFormats = []colorFormat{
	{
		pattern: func(typ string) *regexp.Regexp {
			return regexp.MustCompile(regexp.QuoteMeta(typ) + `-rgb\(([^)]+)\)`)
		},
		format: func(m []string) string { return "rgb(" + joinArgs(m[1]) + ")" },
	},
	{
		pattern: func(typ string) *regexp.Regexp {
			return regexp.MustCompile(regexp.QuoteMeta(typ) + `-rgba\(([^)]+)\)`)
		},
		format: func(m []string) string { return "rgba(" + joinArgs(m[1]) + ")" },
	},
	{
		pattern: func(typ string) *regexp.Regexp {
			return regexp.MustCompile(regexp.QuoteMeta(typ) + `-([0-9a-fA-F]{3,6})`)
		},
		format: func(m []string) string { return "#" + m[1] },
	},
}

var colorPatterns = compileColorPatterns()

type colorPattern struct {
	property string
	re       *regexp.Regexp
	format   func(m []string) string
}

func compileColorPatterns() []colorPattern {
	var out []colorPattern
	for _, ct := range colorTypes {
		for _, f := range colorFormats {
			out = append(out, colorPattern{
				property: ct.property,
				re:       f.pattern(ct.typ),
				format:   f.format,
			})
		}
	}
	return out
}

// MoreColor scans the raw class attribute of el for rgb(), rgba() and bare
// hex colors on the bg, tc and border types, e.g. `bg-rgb(0,0,0)` or
// `tc-ff0000`, and writes them directly. It works outside the main grammar
// and registry and reports whether anything was written.
func MoreColor(el Element) bool {
	attr := el.ClassAttr()
	if attr == "" {
		return false
	}
	wrote := false
	for _, p := range colorPatterns {
		if m := p.re.FindStringSubmatch(attr); m != nil {
			el.SetStyle(p.property, p.format(m))
			wrote = true
		}
	}
	return wrote
}

func joinArgs(s string) string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ",")
}
