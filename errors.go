package tenox

import "errors"

var (
	// ErrNoRegistry is returned when a resolver is built without any
	// type → property mapping. Nothing can be styled without one.
	ErrNoRegistry = errors.New("tenox: no property registry configured")

	// ErrInvalidProperty marks a registry entry whose value is not a string
	// or a sequence of strings.
	ErrInvalidProperty = errors.New("invalid property definition")

	// ErrInvalidSelector is returned by hosts that cannot parse a selector.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrInvalidStyles marks a bulk declaration whose value is neither a
	// class string nor a nested declaration map.
	ErrInvalidStyles = errors.New("invalid styles declaration")
)
