package tenox

// Event names the resolver subscribes to.
const (
	EventResize    = "resize"
	EventMouseOver = "mouseover"
	EventMouseOut  = "mouseout"
)

// Element is the part of a document element the resolver needs.
// Style properties are addressed in kebab-case.
type Element interface {
	// ClassNames returns the element's class list in document order.
	ClassNames() []string
	// ClassAttr returns the raw class attribute.
	ClassAttr() string
	// StyleValue returns the inline value of a property, or "".
	StyleValue(property string) string
	// SetStyle sets an inline property; an empty value removes it.
	SetStyle(property, value string)
	// SetCustomProperty sets a `--name` custom property.
	SetCustomProperty(name, value string)
	// AddEventListener subscribes to an element event and returns a function
	// that removes the subscription.
	AddEventListener(event string, listener func()) (remove func())
}

// Window is the viewport hosting the elements.
type Window interface {
	// Width returns the current viewport width in CSS pixels.
	Width() float64
	// AddEventListener subscribes to a window event and returns a function
	// that removes the subscription.
	AddEventListener(event string, listener func()) (remove func())
}

// Document resolves selectors to elements.
type Document interface {
	QuerySelectorAll(selector string) ([]Element, error)
}
