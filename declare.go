package tenox

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// MakeStyle applies a multi-class string to every element matching selector
// and returns how many elements were styled.
func (r *Resolver) MakeStyle(doc Document, selector, classes string) (int, error) {
	els, err := doc.QuerySelectorAll(selector)
	if err != nil {
		return 0, fmt.Errorf("make style %q: %w", selector, err)
	}
	for _, el := range els {
		r.ApplyMulti(el, classes)
	}
	return len(els), nil
}

// MakeStyles applies selector → classes declarations. A value is either a
// class string or a nested map whose keys are descendant selectors of the
// parent key:
//
//	r.MakeStyles(doc, map[string]any{
//		".card": "p-1rem br-8px",
//		"nav": map[string]any{
//			"a":       "tc-white",
//			".active": "fw-600",
//		},
//	})
//
// It returns the top-level declarations keyed by selector. Invalid values and
// selectors are reported together; the remaining declarations still apply.
func (r *Resolver) MakeStyles(doc Document, decls ...map[string]any) (map[string]any, error) {
	defined := make(map[string]any)
	var errs error

	for _, d := range decls {
		for _, selector := range slices.Sorted(maps.Keys(d)) {
			styles := d[selector]
			errs = multierr.Append(errs, r.declare(doc, selector, styles))
			defined[selector] = styles
		}
	}
	return defined, errs
}

func (r *Resolver) declare(doc Document, selector string, styles any) error {
	switch v := styles.(type) {
	case string:
		_, err := r.MakeStyle(doc, selector, v)
		return err
	case map[string]any:
		var errs error
		for _, child := range slices.Sorted(maps.Keys(v)) {
			errs = multierr.Append(errs, r.declare(doc, selector+" "+child, v[child]))
		}
		return errs
	case map[string]string:
		var errs error
		for _, child := range slices.Sorted(maps.Keys(v)) {
			errs = multierr.Append(errs, r.declare(doc, selector+" "+child, v[child]))
		}
		return errs
	}
	r.log.Warn("invalid styles declaration",
		zap.String("selector", selector),
		zap.String("type", fmt.Sprintf("%T", styles)))
	return fmt.Errorf("%w for %q: got %T", ErrInvalidStyles, selector, styles)
}
