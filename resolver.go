package tenox

import (
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Config holds everything a resolver owns.
type Config struct {
	// Registry maps class types to properties. Required.
	Registry *Registry
	// Breakpoints used for responsive prefixes. Nil selects DefaultBreakpoints.
	Breakpoints *BreakpointTable
	// Window supplies the viewport for responsive prefixes. Without one,
	// responsive classes are inert.
	Window Window
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// Resolver applies utility classes to elements.
//
// A resolver is not safe for concurrent use; like the document it styles, it
// is driven from a single event loop.
type Resolver struct {
	registry    *Registry
	breakpoints *BreakpointTable
	window      Window
	log         *zap.Logger
	bindings    []*Binding
}

// NewResolver creates a resolver. It fails with ErrNoRegistry when cfg has no
// registry.
func NewResolver(cfg Config, opts ...Option) (*Resolver, error) {
	if cfg.Registry == nil {
		return nil, ErrNoRegistry
	}
	bps := cfg.Breakpoints
	if bps == nil {
		bps = DefaultBreakpoints()
	}
	r := &Resolver{
		registry:    cfg.Registry,
		breakpoints: bps,
		window:      cfg.Window,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.Named("resolver")
	return r, nil
}

// Registry returns the registry the resolver resolves against.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Breakpoints returns the resolver's breakpoint table.
func (r *Resolver) Breakpoints() *BreakpointTable {
	return r.breakpoints
}

// Mode is how a token is applied.
type Mode int

const (
	// ModeInert tokens produce no effect.
	ModeInert Mode = iota
	// ModeImmediate tokens are written once, now.
	ModeImmediate
	// ModeResponsive tokens follow the viewport width.
	ModeResponsive
	// ModeHover tokens follow the pointer.
	ModeHover
)

func (m Mode) String() string {
	switch m {
	case ModeImmediate:
		return "immediate"
	case ModeResponsive:
		return "responsive"
	case ModeHover:
		return "hover"
	}
	return "inert"
}

// ModeOf reports how tok would be applied.
func (r *Resolver) ModeOf(tok Token) Mode {
	if !r.known(tok.Type) {
		return ModeInert
	}
	switch {
	case tok.Prefix == "":
		return ModeImmediate
	case tok.IsHover():
		return ModeHover
	case r.window != nil && r.breakpoints.Has(tok.Prefix):
		return ModeResponsive
	}
	return ModeInert
}

// Apply applies one class name to el. The returned binding owns any listeners
// the class needed.
func (r *Resolver) Apply(el Element, className string) *Binding {
	b := r.newBinding()
	b.record(r.apply(el, className, b))
	return b
}

// ApplyMulti applies a whitespace separated list of class names. Each class
// resolves independently.
func (r *Resolver) ApplyMulti(el Element, classes string) *Binding {
	b := r.newBinding()
	for _, c := range Fields(classes) {
		b.record(r.apply(el, c, b))
	}
	return b
}

// ApplyElement applies every class in el's class list.
func (r *Resolver) ApplyElement(el Element) *Binding {
	b := r.newBinding()
	for _, c := range el.ClassNames() {
		b.record(r.apply(el, c, b))
	}
	return b
}

// ApplyStyle writes a type/value/unit triple to el immediately, without
// parsing. It reports whether anything was written.
func (r *Resolver) ApplyStyle(el Element, typ, value, unit string) bool {
	writes := r.registry.Resolve(typ, value, unit, el.StyleValue)
	if len(writes) == 0 {
		r.log.Debug("unknown type", zap.String("type", typ))
		return false
	}
	writeStyles(el, writes)
	return true
}

// Close detaches every listener attached by this resolver.
func (r *Resolver) Close() {
	for _, b := range r.bindings {
		b.Close()
	}
	r.bindings = nil
}

func (r *Resolver) apply(el Element, className string, b *Binding) Mode {
	tok, ok := ParseClass(className)
	if !ok {
		r.log.Debug("class does not match", zap.String("class", className))
		return ModeInert
	}

	mode := r.ModeOf(tok)
	switch mode {
	case ModeImmediate:
		r.ApplyStyle(el, tok.Type, tok.Value, tok.Unit)
	case ModeResponsive:
		r.bindResponsive(el, tok, b)
	case ModeHover:
		r.bindHover(el, tok, b)
	default:
		r.log.Debug("inert class", zap.String("class", className), zap.String("prefix", tok.Prefix))
	}
	return mode
}

// bindResponsive applies tok while the viewport is inside the breakpoint and
// clears its properties while outside, re-evaluating on every resize.
func (r *Resolver) bindResponsive(el Element, tok Token, b *Binding) {
	props := r.properties(tok.Type)
	baseline := snapshot(el, props)

	evaluate := func() {
		width := r.window.Width()
		if _, ok := r.breakpoints.Match(tok.Prefix, width); ok {
			writeStyles(el, r.registry.Resolve(tok.Type, tok.Value, tok.Unit, baseline.read))
			return
		}
		for _, p := range props {
			setProperty(el, p, "")
		}
	}

	evaluate()
	b.add(r.window.AddEventListener(EventResize, evaluate))
}

// bindHover applies tok on mouseover and restores the values captured here on
// mouseout.
func (r *Resolver) bindHover(el Element, tok Token, b *Binding) {
	props := r.properties(tok.Type)
	baseline := snapshot(el, props)

	b.add(el.AddEventListener(EventMouseOver, func() {
		writeStyles(el, r.registry.Resolve(tok.Type, tok.Value, tok.Unit, baseline.read))
	}))
	b.add(el.AddEventListener(EventMouseOut, func() {
		for _, p := range props {
			setProperty(el, p, baseline[p])
		}
	}))
}

func (r *Resolver) known(typ string) bool {
	if isCustomPropertyType(typ) {
		return true
	}
	t, ok := r.registry.Targets(typ)
	return ok && len(t) > 0
}

// properties lists the distinct properties typ writes, in order.
func (r *Resolver) properties(typ string) []string {
	if isCustomPropertyType(typ) {
		return []string{typ[1 : len(typ)-1]}
	}
	targets, _ := r.registry.Targets(typ)
	props := make([]string, 0, len(targets))
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		if !seen[t.Property] {
			seen[t.Property] = true
			props = append(props, t.Property)
		}
	}
	return props
}

// newBinding returns a binding the resolver tracks only once it holds a
// listener; bindings of immediate classes are never retained.
func (r *Resolver) newBinding() *Binding {
	return &Binding{onListen: func(b *Binding) {
		r.bindings = append(r.bindings, b)
	}}
}

type styleSnapshot map[string]string

func snapshot(el Element, props []string) styleSnapshot {
	s := make(styleSnapshot, len(props))
	for _, p := range props {
		s[p] = el.StyleValue(p)
	}
	return s
}

func (s styleSnapshot) read(property string) string {
	return s[property]
}

func writeStyles(el Element, writes []Write) {
	for _, w := range writes {
		if w.Custom {
			el.SetCustomProperty(w.Property, w.Value)
			continue
		}
		el.SetStyle(w.Property, w.Value)
	}
}

func setProperty(el Element, property, value string) {
	if strings.HasPrefix(property, "--") {
		el.SetCustomProperty(property, value)
		return
	}
	el.SetStyle(property, value)
}

// Use extends the resolver at runtime: breakpoints are appended to the table
// and property definitions are merged over existing types. Invalid property
// definitions are logged and skipped.
func (r *Resolver) Use(breakpoints []Breakpoint, props ...map[string]any) {
	r.breakpoints.Append(breakpoints...)
	for _, p := range props {
		if err := r.registry.DefineProps(p); err != nil {
			for _, e := range multierr.Errors(err) {
				r.log.Warn("skipping property definition", zap.Error(e))
			}
		}
	}
}
