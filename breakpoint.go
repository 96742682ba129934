package tenox

import "slices"

// Breakpoint is a named viewport width range. Either bound may be absent;
// present bounds are inclusive.
type Breakpoint struct {
	Name string   `koanf:"name" json:"name"`
	Min  *float64 `koanf:"min" json:"min,omitempty"`
	Max  *float64 `koanf:"max" json:"max,omitempty"`
}

// Contains reports whether width satisfies every present bound.
func (b Breakpoint) Contains(width float64) bool {
	if b.Min != nil && width < *b.Min {
		return false
	}
	if b.Max != nil && width > *b.Max {
		return false
	}
	return true
}

// Bound is a convenience for building breakpoint literals.
func Bound(v float64) *float64 {
	return &v
}

// BreakpointTable is an ordered list of breakpoints. Lookups return the first
// matching entry, so earlier entries take precedence over later ones with the
// same name.
type BreakpointTable struct {
	entries []Breakpoint
}

// DefaultBreakpoints returns the standard mobile-first table.
func DefaultBreakpoints() *BreakpointTable {
	return NewBreakpointTable(
		Breakpoint{Name: "max-sm", Max: Bound(639.9)},
		Breakpoint{Name: "sm", Min: Bound(640)},
		Breakpoint{Name: "max-md", Max: Bound(767.9)},
		Breakpoint{Name: "md", Min: Bound(768)},
		Breakpoint{Name: "max-lg", Max: Bound(1023.9)},
		Breakpoint{Name: "lg", Min: Bound(1024)},
		Breakpoint{Name: "max-xl", Max: Bound(1279.9)},
		Breakpoint{Name: "xl", Min: Bound(1280)},
	)
}

// NewBreakpointTable builds a table from the given entries.
func NewBreakpointTable(entries ...Breakpoint) *BreakpointTable {
	return &BreakpointTable{entries: slices.Clone(entries)}
}

// Append adds entries to the end of the table.
func (t *BreakpointTable) Append(entries ...Breakpoint) {
	t.entries = append(t.entries, entries...)
}

// Match returns the first entry named name whose range contains width.
func (t *BreakpointTable) Match(name string, width float64) (Breakpoint, bool) {
	for _, bp := range t.entries {
		if bp.Name == name && bp.Contains(width) {
			return bp, true
		}
	}
	return Breakpoint{}, false
}

// Has reports whether any entry is named name.
func (t *BreakpointTable) Has(name string) bool {
	return slices.ContainsFunc(t.entries, func(bp Breakpoint) bool {
		return bp.Name == name
	})
}

// Entries returns a copy of the table.
func (t *BreakpointTable) Entries() []Breakpoint {
	return slices.Clone(t.entries)
}

// Clone returns an independent copy of the table.
func (t *BreakpointTable) Clone() *BreakpointTable {
	return NewBreakpointTable(t.entries...)
}
