package tenox

import "strings"

// Write is a single inline style assignment produced by resolution.
type Write struct {
	Property string // kebab-case property, or "--name" for custom properties
	Value    string
	Custom   bool // set through the custom property setter
}

// StyleReader returns the current inline value of a property.
type StyleReader func(property string) string

// Resolve computes the writes a (type, value, unit) triple produces, in
// registry order. current supplies existing values for the kinds that append
// to a function chain; it may be nil when the element has no inline style.
// An unknown type yields no writes.
func (r *Registry) Resolve(typ, value, unit string, current StyleReader) []Write {
	if isCustomPropertyType(typ) {
		return []Write{{
			Property: typ[1 : len(typ)-1],
			Value:    value + unit,
			Custom:   true,
		}}
	}

	targets, ok := r.targets[typ]
	if !ok {
		return nil
	}
	if current == nil {
		current = func(string) string { return "" }
	}

	writes := make([]Write, 0, len(targets))
	// Later writes to the same chain must see earlier ones.
	pending := make(map[string]string)
	read := func(prop string) string {
		if v, ok := pending[prop]; ok {
			return v
		}
		return current(prop)
	}

	for _, t := range targets {
		v := t.format(value, unit, read)
		pending[t.Property] = v
		writes = append(writes, Write{Property: t.Property, Value: v})
	}
	return writes
}

// format applies the resolution precedence: function-chain kinds, then the
// structural kinds, then variable references, bracketed literals, and finally
// the raw value.
func (t Target) format(value, unit string, current StyleReader) string {
	switch t.Kind {
	case KindFilter, KindBackdropFilter, KindTransform:
		return appendFunc(current(t.Property), t.Func+"("+value+unit+")")
	case KindGridTemplate:
		return "repeat(" + value + unit + ", 1fr)"
	case KindGridAutoFit:
		return "repeat(auto-fit, minmax(" + value + unit + ", 1fr))"
	case KindFlexShorthand:
		return t.Func + " " + value + unit
	}
	return FormatValue(value, unit)
}

// FormatValue renders a value/unit pair for a direct property.
//
//	"$accent"        → "var(--accent)"
//	"[--accent]"     → "var(--accent)"
//	"[1px\_solid]"   → "1px solid"
//	"10", "px"       → "10px"
func FormatValue(value, unit string) string {
	if strings.HasPrefix(value, "$") {
		return "var(--" + value[1:] + ")"
	}
	if len(value) >= 2 && strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		inner := strings.ReplaceAll(value[1:len(value)-1], `\_`, " ")
		if strings.HasPrefix(inner, "--") {
			return "var(" + inner + ")"
		}
		return inner
	}
	return value + unit
}

func appendFunc(existing, fn string) string {
	existing = strings.TrimSpace(existing)
	if existing == "" {
		return fn
	}
	return existing + " " + fn
}
