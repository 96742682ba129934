package tenox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	r, _ := newTestResolver(t, 500)

	ex := r.Explain("md:ph-10px")
	assert.True(t, ex.Matched)
	assert.Equal(t, ModeResponsive, ex.Mode)
	assert.False(t, ex.Active)
	require.NotNil(t, ex.Breakpoint)
	assert.Equal(t, "md", ex.Breakpoint.Name)
	assert.Equal(t, []Write{
		{Property: "padding-left", Value: "10px"},
		{Property: "padding-right", Value: "10px"},
	}, ex.Writes)

	ex = r.Explain("max-sm:d-none")
	assert.True(t, ex.Active)
}

func TestExplain_Inert(t *testing.T) {
	r, _ := newTestResolver(t, 1024)

	ex := r.Explain("card")
	assert.False(t, ex.Matched)
	assert.Equal(t, ModeInert, ex.Mode)

	ex = r.Explain("tablet:p-1px")
	assert.True(t, ex.Matched)
	assert.Equal(t, ModeInert, ex.Mode)
	assert.Empty(t, ex.Writes)
	assert.NotEmpty(t, ex.Targets)
}

func TestExplain_HoverUsesEmptyBaseline(t *testing.T) {
	r, _ := newTestResolver(t, 1024)

	ex := r.Explain("hover:rotate-45deg")
	assert.Equal(t, ModeHover, ex.Mode)
	assert.Equal(t, []Write{{Property: "transform", Value: "rotate(45deg)"}}, ex.Writes)
	assert.Nil(t, ex.Breakpoint)
}
