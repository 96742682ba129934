package dom

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// declaration is one `property: value` pair of an inline style.
type declaration struct {
	property string
	value    string
}

// inlineStyle keeps declarations in first-insertion order, the way a browser
// serializes element.style.
type inlineStyle struct {
	decls []declaration
}

// parseInlineStyle reads a style attribute. Malformed declarations are
// dropped, as a browser would.
func parseInlineStyle(attr string) *inlineStyle {
	s := &inlineStyle{}
	if strings.TrimSpace(attr) == "" {
		return s
	}

	p := css.NewParser(parse.NewInputString(attr), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return s
		case css.DeclarationGrammar:
			s.set(strings.ToLower(string(data)), joinTokens(p.Values()))
		case css.CustomPropertyGrammar:
			s.set(string(data), joinTokens(p.Values()))
		}
	}
}

// joinTokens rebuilds a value from tokens, collapsing whitespace runs.
func joinTokens(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			continue
		}
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

func (s *inlineStyle) get(property string) string {
	for _, d := range s.decls {
		if d.property == property {
			return d.value
		}
	}
	return ""
}

// set replaces a declaration in place, appends a new one, or removes it when
// value is empty.
func (s *inlineStyle) set(property, value string) {
	value = strings.TrimSpace(value)
	for i, d := range s.decls {
		if d.property != property {
			continue
		}
		if value == "" {
			s.decls = append(s.decls[:i], s.decls[i+1:]...)
			return
		}
		s.decls[i].value = value
		return
	}
	if value != "" {
		s.decls = append(s.decls, declaration{property: property, value: value})
	}
}

func (s *inlineStyle) len() int {
	return len(s.decls)
}

func (s *inlineStyle) String() string {
	parts := make([]string, 0, len(s.decls))
	for _, d := range s.decls {
		parts = append(parts, d.property+": "+d.value)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}
