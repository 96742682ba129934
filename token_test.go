package tenox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		class string
		want  Token
	}{
		{"p-10px", Token{Type: "p", Value: "10", Unit: "px"}},
		{"sm:p-10px", Token{Prefix: "sm", Type: "p", Value: "10", Unit: "px"}},
		{"max-sm:m-0", Token{Prefix: "max-sm", Type: "m", Value: "0"}},
		{"p-1.5rem", Token{Type: "p", Value: "1.5", Unit: "rem"}},
		{"w-50%", Token{Type: "w", Value: "50", Unit: "%"}},
		{"-mt-10px", Token{Type: "-mt", Value: "10", Unit: "px"}},
		{"rotate--45deg", Token{Type: "rotate", Value: "-45", Unit: "deg"}},
		{"hover:rotate-45deg", Token{Prefix: "hover", Type: "rotate", Value: "45", Unit: "deg"}},
		{"bg-#ff0000", Token{Type: "bg", Value: "#ff0000"}},
		{"bg-$accent", Token{Type: "bg", Value: "$accent"}},
		{"ml-auto", Token{Type: "ml", Value: "auto"}},
		{"w-[calc(100%\\_-\\_2rem)]", Token{Type: "w", Value: "[calc(100%\\_-\\_2rem)]"}},
		{"[--gap]-4px", Token{Type: "[--gap]", Value: "4", Unit: "px"}},
		{"grid-row-3", Token{Type: "grid-row", Value: "3"}},
		{"auto-grid-col-200px", Token{Type: "auto-grid-col", Value: "200", Unit: "px"}},
		{"scale-1.5", Token{Type: "scale", Value: "1.5"}},
		{"move-x-10px", Token{Type: "move-x", Value: "10", Unit: "px"}},
		{"btn-primary", Token{Type: "btn", Value: "primary"}},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			got, ok := ParseClass(tt.class)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseClass_NoMatch(t *testing.T) {
	for _, class := range []string{"", "card", "active", "-"} {
		_, ok := ParseClass(class)
		assert.False(t, ok, class)
	}
}

func TestParseClass_Deterministic(t *testing.T) {
	a, _ := ParseClass("md:ph-2rem")
	b, _ := ParseClass("md:ph-2rem")
	assert.Equal(t, a, b)
}

func TestTokenString(t *testing.T) {
	for _, class := range []string{"sm:p-10px", "bg-#fff", "[--c]-red", "hover:scale-2"} {
		tok, ok := ParseClass(class)
		require.True(t, ok)
		assert.Equal(t, class, tok.String())
	}
}

func TestTokenPredicates(t *testing.T) {
	tok, _ := ParseClass("hover:tc-red")
	assert.True(t, tok.IsHover())
	assert.False(t, tok.IsCustomProperty())

	tok, _ = ParseClass("[--accent]-blue")
	assert.True(t, tok.IsCustomProperty())
	assert.False(t, tok.IsHover())
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"p-1px", "m-0"}, Fields("  p-1px\n\tm-0 "))
	assert.Empty(t, Fields("   "))
}
