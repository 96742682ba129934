// Package tenox turns utility class names into inline styles.
//
// A class name has the form
//
//	[prefix:]type-value[unit]
//
// where type is looked up in a Registry to find the CSS properties it writes:
//
//	p-10px          → padding: 10px
//	ph-2rem         → padding-left: 2rem; padding-right: 2rem
//	bg-$accent      → background: var(--accent)
//	w-[calc(100%\_-\_2rem)] → width: calc(100% - 2rem)
//	[--gap]-4px     → --gap: 4px
//	rotate-45deg    → transform: rotate(45deg), appended to any existing chain
//
// A breakpoint prefix (sm, max-lg, ...) applies the class only while the
// viewport width is inside the breakpoint and re-evaluates on resize. The
// hover prefix applies it on mouseover and restores the previous values on
// mouseout. Unknown types and prefixes are ignored.
//
// # Resolving
//
// The resolver works against the Element, Window and Document interfaces;
// internal/dom provides an XHTML implementation:
//
//	reg, _ := tenox.NewRegistry(tenox.DefaultProperties())
//	r, err := tenox.NewResolver(tenox.Config{
//		Registry: reg,
//		Window:   win,
//	})
//	b := r.ApplyElement(el)
//	defer b.Close()
//
// # Files
//
// Process applies classes to every document matching a set of globs, and
// Lint reports classes that would have no effect. The tenox command wraps
// both:
//
//	go install github.com/yacobolo/tenox/cmd/tenox@latest
package tenox
