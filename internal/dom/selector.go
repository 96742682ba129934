package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrSelector is returned for selectors outside the supported subset.
var ErrSelector = errors.New("unsupported selector")

// Selector is a parsed selector list. Supported: type and universal
// selectors, .class, #id, [attr] and [attr=value], descendant and child
// combinators, and comma separated lists.
type Selector struct {
	groups []complexSelector
}

type complexSelector struct {
	parts []compound
	combs []byte // combs[i] joins parts[i] and parts[i+1]: ' ' or '>'
}

type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrCond
}

type attrCond struct {
	name     string
	value    string
	hasValue bool
}

type selToken struct {
	tt   css.TokenType
	data string
}

// ParseSelector parses a selector list.
func ParseSelector(selector string) (*Selector, error) {
	tokens := lexSelector(selector)
	p := &selParser{tokens: tokens, src: selector}

	sel := &Selector{}
	for {
		p.skipSpace()
		cs, err := p.complex()
		if err != nil {
			return nil, err
		}
		sel.groups = append(sel.groups, cs)
		p.skipSpace()
		if p.done() {
			return sel, nil
		}
		if p.peek().tt != css.CommaToken {
			return nil, p.errorf("unexpected %q", p.peek().data)
		}
		p.pos++
	}
}

func lexSelector(s string) []selToken {
	l := css.NewLexer(parse.NewInputString(s))
	var out []selToken
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			return out
		}
		if tt == css.CommentToken {
			continue
		}
		out = append(out, selToken{tt: tt, data: string(data)})
	}
}

type selParser struct {
	tokens []selToken
	pos    int
	src    string
}

func (p *selParser) done() bool { return p.pos >= len(p.tokens) }

func (p *selParser) peek() selToken {
	if p.done() {
		return selToken{tt: css.ErrorToken}
	}
	return p.tokens[p.pos]
}

func (p *selParser) skipSpace() bool {
	skipped := false
	for !p.done() && p.peek().tt == css.WhitespaceToken {
		p.pos++
		skipped = true
	}
	return skipped
}

func (p *selParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrSelector, p.src, fmt.Sprintf(format, args...))
}

func isDelim(t selToken, c string) bool {
	return t.tt == css.DelimToken && t.data == c
}

func (p *selParser) complex() (complexSelector, error) {
	var cs complexSelector
	for {
		c, err := p.compound()
		if err != nil {
			return cs, err
		}
		cs.parts = append(cs.parts, c)

		spaced := p.skipSpace()
		next := p.peek()
		switch {
		case p.done() || next.tt == css.CommaToken:
			return cs, nil
		case isDelim(next, ">"):
			p.pos++
			p.skipSpace()
			cs.combs = append(cs.combs, '>')
		case spaced:
			cs.combs = append(cs.combs, ' ')
		default:
			return cs, p.errorf("unexpected %q", next.data)
		}
	}
}

func (p *selParser) compound() (compound, error) {
	var c compound
	start := p.pos

	switch t := p.peek(); {
	case t.tt == css.IdentToken:
		c.tag = strings.ToLower(t.data)
		p.pos++
	case isDelim(t, "*"):
		p.pos++
	}

	for !p.done() {
		t := p.peek()
		switch {
		case t.tt == css.HashToken:
			c.id = unescape(strings.TrimPrefix(t.data, "#"))
			p.pos++
		case isDelim(t, "."):
			p.pos++
			name := p.peek()
			if name.tt != css.IdentToken {
				return c, p.errorf("expected class name after '.'")
			}
			c.classes = append(c.classes, unescape(name.data))
			p.pos++
		case t.tt == css.LeftBracketToken:
			p.pos++
			a, err := p.attribute()
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, a)
		case t.tt == css.ColonToken:
			return c, p.errorf("pseudo-classes are not supported")
		default:
			if p.pos == start {
				return c, p.errorf("expected a selector, got %q", t.data)
			}
			return c, nil
		}
	}
	if p.pos == start {
		return c, p.errorf("empty selector")
	}
	return c, nil
}

func (p *selParser) attribute() (attrCond, error) {
	var a attrCond
	p.skipSpace()
	name := p.peek()
	if name.tt != css.IdentToken {
		return a, p.errorf("expected attribute name")
	}
	a.name = name.data
	p.pos++
	p.skipSpace()

	if isDelim(p.peek(), "=") {
		p.pos++
		p.skipSpace()
		v := p.peek()
		switch v.tt {
		case css.IdentToken, css.NumberToken:
			a.value = v.data
		case css.StringToken:
			a.value = v.data[1 : len(v.data)-1]
		default:
			return a, p.errorf("expected attribute value")
		}
		a.hasValue = true
		p.pos++
		p.skipSpace()
	}

	if p.peek().tt != css.RightBracketToken {
		return a, p.errorf("expected ']'")
	}
	p.pos++
	return a, nil
}

// unescape drops CSS escape backslashes, so `.hover\:tc-red` selects the
// class "hover:tc-red".
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// Match reports whether el matches any selector in the list.
func (s *Selector) Match(el *Element) bool {
	for _, g := range s.groups {
		if g.matchAt(el, len(g.parts)-1) {
			return true
		}
	}
	return false
}

func (cs complexSelector) matchAt(el *Element, i int) bool {
	if !cs.parts[i].match(el) {
		return false
	}
	if i == 0 {
		return true
	}
	if cs.combs[i-1] == '>' {
		parent := el.Parent()
		return parent != nil && cs.matchAt(parent, i-1)
	}
	for anc := el.Parent(); anc != nil; anc = anc.Parent() {
		if cs.matchAt(anc, i-1) {
			return true
		}
	}
	return false
}

func (c compound) match(el *Element) bool {
	if c.tag != "" && !strings.EqualFold(el.Tag(), c.tag) {
		return false
	}
	if c.id != "" && el.ID() != c.id {
		return false
	}
	for _, cls := range c.classes {
		if !el.HasClass(cls) {
			return false
		}
	}
	for _, a := range c.attrs {
		v, ok := el.Attr(a.name)
		if !ok || (a.hasValue && v != a.value) {
			return false
		}
	}
	return true
}
