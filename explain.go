package tenox

// Explanation describes what a class name would do without touching an
// element.
type Explanation struct {
	Class      string
	Token      Token
	Matched    bool        // Class follows the grammar
	Mode       Mode        // How the class would be applied
	Targets    []Target    // Compiled targets of the type
	Writes     []Write     // Declarations written when the class is active
	Breakpoint *Breakpoint // Breakpoint the prefix names, for responsive classes
	Active     bool        // Responsive classes: the breakpoint contains the current width
}

// Explain resolves className against an empty element and reports the
// outcome.
func (r *Resolver) Explain(className string) Explanation {
	ex := Explanation{Class: className}

	tok, ok := ParseClass(className)
	if !ok {
		return ex
	}
	ex.Token = tok
	ex.Matched = true
	ex.Mode = r.ModeOf(tok)
	ex.Targets, _ = r.registry.Targets(tok.Type)

	if ex.Mode == ModeInert {
		return ex
	}
	ex.Writes = r.registry.Resolve(tok.Type, tok.Value, tok.Unit, func(string) string { return "" })

	if ex.Mode == ModeResponsive {
		for _, bp := range r.breakpoints.Entries() {
			if bp.Name == tok.Prefix {
				ex.Breakpoint = &bp
				break
			}
		}
		_, ex.Active = r.breakpoints.Match(tok.Prefix, r.window.Width())
	}
	return ex
}
