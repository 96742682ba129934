package tenox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClassColumns(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		className string
		wantCol   int
	}{
		{
			name:      "single class",
			line:      `<div class="p-1px">`,
			className: "p-1px",
			wantCol:   13,
		},
		{
			name:      "multiple classes - second",
			line:      `<div class="p-1px sm:p-2px">`,
			className: "sm:p-2px",
			wantCol:   19,
		},
		{
			name:      "with leading spaces",
			line:      `  <div class="p-1px m-0">`,
			className: "m-0",
			wantCol:   21,
		},
		{
			name:      "single quotes",
			line:      `<div class='icon tc-red'>`,
			className: "tc-red",
			wantCol:   18,
		},
		{
			name:      "extra whitespace inside attribute",
			line:      `<i class="  a   b-1">`,
			className: "b-1",
			wantCol:   17,
		},
		{
			name:      "class not found",
			line:      `<div class="p-1px">`,
			className: "nonexistent",
			wantCol:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := 0
			for _, ref := range extractClassesFromLine(tt.line, 1, "page.html") {
				if ref.ClassName == tt.className {
					col = ref.Location.Column
					break
				}
			}
			require.Equal(t, tt.wantCol, col)
		})
	}
}

func TestExtractClassesFromLine(t *testing.T) {
	line := `<a class="x-1" href="/"><b class='y-2 z-3'>`
	refs := extractClassesFromLine(line, 7, "f.html")

	require.Len(t, refs, 3)
	assert.Equal(t, "x-1", refs[0].ClassName)
	assert.Equal(t, 11, refs[0].Location.Column)
	assert.Equal(t, "y-2 z-3", refs[1].Attribute)
	assert.Equal(t, 7, refs[2].Location.Line)
	assert.Equal(t, "f.html", refs[2].Location.File)
	assert.Equal(t, "z-3", line[refs[2].Location.Column-1:refs[2].Location.Column+2])
}

func TestExtractClassesFromLine_IgnoresOtherAttributes(t *testing.T) {
	assert.Empty(t, extractClassesFromLine(`<div data-class="p-1px" subclass="m-0">`, 1, ""))
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.html")
	writeFile(t, path, "<p class=\"a-1\">\n\n<p class=\"b-2 c-3\">\n")

	refs, err := scanFile(path)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, 3, refs[1].Location.Line)

	_, err = scanFile(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}
