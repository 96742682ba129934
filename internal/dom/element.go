package dom

import (
	"strings"

	"github.com/beevik/etree"
)

// Element wraps an XHTML element with an inline style object and event
// listeners. Every style change is written back to the style attribute.
type Element struct {
	node      *etree.Element
	doc       *Document
	style     *inlineStyle
	listeners listeners
}

func newElement(node *etree.Element, doc *Document) *Element {
	return &Element{
		node:  node,
		doc:   doc,
		style: parseInlineStyle(node.SelectAttrValue("style", "")),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Tag
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.node.SelectAttrValue("id", "")
}

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	a := e.node.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// ClassAttr returns the raw class attribute.
func (e *Element) ClassAttr() string {
	return e.node.SelectAttrValue("class", "")
}

// ClassNames returns the class list.
func (e *Element) ClassNames() []string {
	return strings.Fields(e.ClassAttr())
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.ClassNames() {
		if c == name {
			return true
		}
	}
	return false
}

// StyleValue returns the inline value of property.
func (e *Element) StyleValue(property string) string {
	return e.style.get(property)
}

// SetStyle sets an inline property; an empty value removes it.
func (e *Element) SetStyle(property, value string) {
	e.style.set(property, value)
	e.syncStyle()
}

// SetCustomProperty sets a custom property. Names without the leading
// dashes are accepted.
func (e *Element) SetCustomProperty(name, value string) {
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	e.SetStyle(name, value)
}

// Style returns the serialized inline style.
func (e *Element) Style() string {
	return e.style.String()
}

// AddEventListener subscribes listener to event.
func (e *Element) AddEventListener(event string, listener func()) func() {
	return e.listeners.add(event, listener)
}

// Dispatch fires event on the element and returns how many listeners ran.
func (e *Element) Dispatch(event string) int {
	return e.listeners.dispatch(event)
}

// ListenerCount returns the number of listeners registered for event.
func (e *Element) ListenerCount(event string) int {
	return e.listeners.count(event)
}

// Parent returns the parent element, or nil at the root.
func (e *Element) Parent() *Element {
	p := e.node.Parent()
	if p == nil || p.Tag == "" {
		return nil
	}
	return e.doc.wrap(p)
}

func (e *Element) syncStyle() {
	if e.style.len() == 0 {
		e.node.RemoveAttr("style")
		return
	}
	e.node.CreateAttr("style", e.style.String())
}
