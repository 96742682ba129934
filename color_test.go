package tenox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoreColor(t *testing.T) {
	tests := []struct {
		class    string
		property string
		want     string
	}{
		{"bg-rgb(0, 0, 0)", "background", "rgb(0,0,0)"},
		{"bg-rgba(1,2,3,0.5)", "background", "rgba(1,2,3,0.5)"},
		{"tc-ff0000", "color", "#ff0000"},
		{"border-abc", "border-color", "#abc"},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			el := element(t, `<div class="`+tt.class+`"/>`)

			assert.True(t, MoreColor(el))
			assert.Equal(t, tt.want, el.StyleValue(tt.property))
		})
	}
}

func TestMoreColor_NoMatch(t *testing.T) {
	assert.False(t, MoreColor(element(t, `<div class="p-10px card"/>`)))
	assert.False(t, MoreColor(element(t, `<div/>`)))
}
