// Package dom is a small in-memory document used as the styling host: it
// loads XHTML, resolves selectors, keeps inline styles in sync with the style
// attribute and dispatches element and window events.
package dom

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
)

// Document is a parsed XHTML document.
type Document struct {
	tree     *etree.Document
	elements map[*etree.Element]*Element
}

func newDocument(tree *etree.Document) *Document {
	return &Document{
		tree:     tree,
		elements: make(map[*etree.Element]*Element),
	}
}

func readSettings() etree.ReadSettings {
	return etree.ReadSettings{
		Permissive: true,
		// HTML entities such as &nbsp; are common in hand-written pages.
		Entity: map[string]string{
			"nbsp":  " ",
			"copy":  "©",
			"mdash": "—",
			"ndash": "–",
		},
	}
}

// Load parses a document from r.
func Load(r io.Reader) (*Document, error) {
	tree := etree.NewDocument()
	tree.ReadSettings = readSettings()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("parse document: no root element")
	}
	return newDocument(tree), nil
}

// LoadString parses a document from s.
func LoadString(s string) (*Document, error) {
	tree := etree.NewDocument()
	tree.ReadSettings = readSettings()
	if err := tree.ReadFromString(s); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("parse document: no root element")
	}
	return newDocument(tree), nil
}

// LoadFile parses the document stored at path.
func LoadFile(path string) (*Document, error) {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Root returns the document element.
func (d *Document) Root() *Element {
	return d.wrap(d.tree.Root())
}

// Elements returns every element in document order.
func (d *Document) Elements() []*Element {
	var out []*Element
	var walk func(n *etree.Element)
	walk = func(n *etree.Element) {
		out = append(out, d.wrap(n))
		for _, c := range n.ChildElements() {
			walk(c)
		}
	}
	walk(d.tree.Root())
	return out
}

// QuerySelectorAll returns the elements matching selector in document order.
func (d *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	var out []*Element
	for _, el := range d.Elements() {
		if sel.Match(el) {
			out = append(out, el)
		}
	}
	return out, nil
}

// WriteTo serializes the document, including every inline style change.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.tree.WriteTo(w)
}

// String serializes the document.
func (d *Document) String() string {
	s, err := d.tree.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// wrap returns the single Element wrapper for node, so that listeners and
// style state survive repeated lookups.
func (d *Document) wrap(node *etree.Element) *Element {
	if el, ok := d.elements[node]; ok {
		return el
	}
	el := newElement(node, d)
	d.elements[node] = el
	return el
}
