package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tenox"
)

func TestCategorizeProperty(t *testing.T) {
	tests := map[string]Category{
		"padding":          CategoryLayout,
		"padding-left":     CategoryLayout,
		"background":       CategoryVisual,
		"border-top-width": CategoryVisual,
		"font-size":        CategoryTypography,
		"transform":        CategoryEffects,
		"--accent":         CategoryCustom,
	}
	for prop, want := range tests {
		assert.Equal(t, want, CategorizeProperty(prop), prop)
	}
}

func TestCategorizeWrites(t *testing.T) {
	groups := CategorizeWrites([]tenox.Write{
		{Property: "padding-right", Value: "4px"},
		{Property: "padding-left", Value: "4px"},
		{Property: "color", Value: "var(--fg)"},
	})

	require.Len(t, groups[CategoryLayout], 2)
	assert.Equal(t, "padding-left", groups[CategoryLayout][0].Property)
	require.Len(t, groups[CategoryVisual], 1)
	assert.True(t, groups[CategoryVisual][0].IsVar)
}

func TestPrintExplain(t *testing.T) {
	reg, err := tenox.NewRegistry(tenox.DefaultProperties())
	require.NoError(t, err)
	r, err := tenox.NewResolver(tenox.Config{
		Registry: reg,
		Window:   fixedWindow(800),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintExplain(&buf, []tenox.Explanation{
		r.Explain("md:ph-10px"),
		r.Explain("rotate-45deg"),
		r.Explain("card"),
	}, false)

	out := buf.String()
	assert.Contains(t, out, "mode:   responsive")
	assert.Contains(t, out, "range:  768px – ∞px (active)")
	assert.Contains(t, out, "padding-left: 10px;")
	assert.Contains(t, out, "kind:   transform rotate")
	assert.Contains(t, out, "transform: rotate(45deg);")
	assert.Contains(t, out, "card\n  not a utility class")
}

type fixedWindow float64

func (w fixedWindow) Width() float64 { return float64(w) }

func (w fixedWindow) AddEventListener(string, func()) func() { return func() {} }
