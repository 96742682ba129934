package tenox

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"unicode"

	"go.uber.org/multierr"
)

// Kind selects how a target turns a value into a CSS value string.
type Kind int

const (
	// KindDirect writes the formatted value to the property.
	KindDirect Kind = iota
	// KindFilter appends `type(value)` to the filter chain.
	KindFilter
	// KindBackdropFilter appends `fn(value)` to the backdrop-filter chain.
	KindBackdropFilter
	// KindTransform appends `fn(value)` to the transform chain.
	KindTransform
	// KindGridTemplate writes `repeat(value, 1fr)`.
	KindGridTemplate
	// KindGridAutoFit writes `repeat(auto-fit, minmax(value, 1fr))`.
	KindGridAutoFit
	// KindFlexShorthand writes `<grow> <shrink> value`.
	KindFlexShorthand
)

var kindNames = map[Kind]string{
	KindDirect:         "direct",
	KindFilter:         "filter",
	KindBackdropFilter: "backdrop-filter",
	KindTransform:      "transform",
	KindGridTemplate:   "grid-template",
	KindGridAutoFit:    "grid-auto-fit",
	KindFlexShorthand:  "flex-shorthand",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Appends reports whether writes of this kind extend the existing value
// instead of replacing it.
func (k Kind) Appends() bool {
	return k == KindFilter || k == KindBackdropFilter || k == KindTransform
}

// Target is one compiled destination of a type.
type Target struct {
	Kind     Kind
	Property string // kebab-case CSS property
	Func     string // CSS function for filter/backdrop/transform, flex prefix for shorthand
}

// Reserved property tags. A property list entry equal to one of these selects
// a function-chain kind instead of naming a CSS property directly.
const (
	TagFilter         = "ftr"
	TagBackdropFilter = "bFt"
	TagTransform      = "tra"
)

var backdropFunctions = map[string]string{
	"back-blur":       "blur",
	"back-sepia":      "sepia",
	"back-saturate":   "saturate",
	"back-grayscale":  "grayscale",
	"back-brightness": "brightness",
	"back-invert":     "invert",
	"back-contrast":   "contrast",
}

var transformFunctions = map[string]string{
	"translate": "translate",
	"rt":        "rotate",
	"rotate":    "rotate",
	"move-x":    "translateX",
	"move-y":    "translateY",
	"move-z":    "translateZ",
	"matrix":    "matrix",
	"matrix-3d": "matrix3d",
	"scale":     "scale",
	"scale-3d":  "scale3d",
	"scale-x":   "scaleX",
	"scale-y":   "scaleY",
	"scale-z":   "scaleZ",
	"skew-x":    "skewX",
	"skew-y":    "skewY",
}

// compileTarget resolves the kind of a single (type, property) pair.
// ok is false when the pair can never produce a write.
func compileTarget(typ, property string) (Target, bool) {
	switch property {
	case TagFilter, "filter":
		return Target{Kind: KindFilter, Property: "filter", Func: typ}, true
	case TagBackdropFilter, "backdropFilter", "backdrop-filter":
		fn, ok := backdropFunctions[typ]
		return Target{Kind: KindBackdropFilter, Property: "backdrop-filter", Func: fn}, ok
	case TagTransform, "transform":
		fn, ok := transformFunctions[typ]
		return Target{Kind: KindTransform, Property: "transform", Func: fn}, ok
	}

	prop := KebabCase(property)
	switch typ {
	case "grid-row", "grid-col":
		return Target{Kind: KindGridTemplate, Property: prop}, true
	case "auto-grid-row", "auto-grid-col":
		return Target{Kind: KindGridAutoFit, Property: prop}, true
	case "flex-auto":
		return Target{Kind: KindFlexShorthand, Property: prop, Func: "1 1"}, true
	case "initial-flex":
		return Target{Kind: KindFlexShorthand, Property: prop, Func: "0 1"}, true
	}
	return Target{Kind: KindDirect, Property: prop}, true
}

// KebabCase converts a DOM-style property name (backgroundColor) into its CSS
// form (background-color). Custom properties and names that are already
// kebab-case pass through unchanged.
func KebabCase(property string) string {
	if strings.HasPrefix(property, "--") {
		return property
	}
	var b strings.Builder
	for i, r := range property {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Registry maps class types to the CSS properties they write.
// Entries are compiled once when defined.
type Registry struct {
	props   map[string][]string
	targets map[string][]Target
}

// NewRegistry builds a registry from type → property list pairs. Malformed
// entries are skipped and reported together in the returned error; the
// registry holds every valid entry either way.
func NewRegistry(props map[string][]string) (*Registry, error) {
	r := newRegistry(len(props))
	var errs error
	for _, typ := range slices.Sorted(maps.Keys(props)) {
		if err := r.Define(typ, props[typ]...); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return r, errs
}

func newRegistry(size int) *Registry {
	return &Registry{
		props:   make(map[string][]string, size),
		targets: make(map[string][]Target, size),
	}
}

// Define sets the properties for a type, replacing any earlier definition.
func (r *Registry) Define(typ string, properties ...string) error {
	if typ == "" {
		return fmt.Errorf("%w: empty type", ErrInvalidProperty)
	}
	if len(properties) == 0 {
		return fmt.Errorf("%w: type %q has no properties", ErrInvalidProperty, typ)
	}

	targets := make([]Target, 0, len(properties))
	for _, p := range properties {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: type %q has an empty property name", ErrInvalidProperty, typ)
		}
		if t, ok := compileTarget(typ, p); ok {
			targets = append(targets, t)
		}
	}

	r.props[typ] = slices.Clone(properties)
	r.targets[typ] = targets
	return nil
}

// DefineProps merges loosely typed definitions, the shape produced by config
// files: each value must be a string or a list of strings. Invalid entries are
// skipped and reported together; valid ones are still defined.
func (r *Registry) DefineProps(defs map[string]any) error {
	var errs error

	// Sorted for deterministic error order.
	keys := slices.Sorted(maps.Keys(defs))
	for _, typ := range keys {
		list, ok := stringList(defs[typ])
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q must be a string or a list of strings, got %T",
				ErrInvalidProperty, typ, defs[typ]))
			continue
		}
		if err := r.Define(typ, list...); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func stringList(v any) ([]string, bool) {
	switch val := v.(type) {
	case string:
		return []string{val}, true
	case []string:
		return val, true
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// Merge copies every definition of other into r. Types present in both take
// other's definition.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	for typ, list := range other.props {
		r.props[typ] = slices.Clone(list)
		r.targets[typ] = slices.Clone(other.targets[typ])
	}
}

// Targets returns the compiled targets of a type in definition order.
func (r *Registry) Targets(typ string) ([]Target, bool) {
	t, ok := r.targets[typ]
	return t, ok
}

// Properties returns the properties a type was defined with.
func (r *Registry) Properties(typ string) ([]string, bool) {
	p, ok := r.props[typ]
	return p, ok
}

// Types returns all defined types, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.props))
	for typ := range r.props {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Len returns the number of defined types.
func (r *Registry) Len() int {
	return len(r.props)
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	c := newRegistry(len(r.props))
	c.Merge(r)
	return c
}
