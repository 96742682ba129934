package tenox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "dist")

	writeFile(t, filepath.Join(dir, ".gitignore"), "ignored/\n")
	writeFile(t, filepath.Join(dir, "index.html"), `<html><body><div class="p-10px card">x</div></body></html>`)
	writeFile(t, filepath.Join(dir, "pages", "about.html"), `<html><body><p class="tc-red hover:tc-blue">y</p></body></html>`)
	writeFile(t, filepath.Join(dir, "ignored", "skip.html"), `<html class="p-1px"/>`)
	writeFile(t, filepath.Join(dir, "broken.html"), `just text, no markup`)

	result, err := Process(ProcessConfig{
		Includes:  []string{"**/*.html"},
		BaseDir:   dir,
		OutputDir: out,
		Registry:  testRegistry(t, DefaultProperties()),
		Logger:    zaptest.NewLogger(t),
	})
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.Contains(t, err.Error(), "broken.html")

	assert.Equal(t, 4, result.FilesDiscovered)
	assert.Equal(t, 1, result.FilesSkipped)
	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 2, result.FilesWritten)
	assert.Equal(t, 2, result.ElementsStyled)
	assert.Equal(t, 3, result.ClassesApplied)
	assert.Equal(t, 1, result.ClassesIgnored)
	assert.Equal(t, 2, result.Listeners)
	assert.Len(t, result.Files, 3)

	assert.Contains(t, readFile(t, filepath.Join(out, "index.html")), `style="padding: 10px;"`)
	assert.Contains(t, readFile(t, filepath.Join(out, "pages", "about.html")), `style="color: red;"`)
	assert.NoFileExists(t, filepath.Join(out, "ignored", "skip.html"))
}

func TestProcess_ContentWithoutOutputDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), `<div class="md:p-1px sm:m-0"/>`)

	result, err := Process(ProcessConfig{
		Includes: []string{"a.html"},
		BaseDir:  dir,
		Width:    700,
		Registry: testRegistry(t, DefaultProperties()),
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	content := result.Files[0].Content
	assert.Contains(t, content, `style="margin: 0;"`)
	assert.NotContains(t, content, "padding")
	assert.Empty(t, result.Files[0].Output)
}

func TestProcess_DryRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "dist")
	writeFile(t, filepath.Join(dir, "a.html"), `<div class="p-1px"/>`)

	result, err := Process(ProcessConfig{
		Includes:  []string{"*.html"},
		BaseDir:   dir,
		OutputDir: out,
		DryRun:    true,
		Registry:  testRegistry(t, DefaultProperties()),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ClassesApplied)
	assert.Equal(t, 0, result.FilesWritten)
	assert.Empty(t, result.Files[0].Content)
	assert.NoDirExists(t, out)
}

func TestProcess_HoverStylesAndMoreColor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"),
		`<body><a class="tc-red hover:tc-blue">x</a><p>t</p><i class="bg-rgb(1,2,3)"/></body>`)

	result, err := Process(ProcessConfig{
		Includes:  []string{"a.html"},
		BaseDir:   dir,
		Hover:     true,
		MoreColor: true,
		Styles:    map[string]any{"p": "fw-600"},
		Registry:  testRegistry(t, DefaultProperties()),
	})
	require.NoError(t, err)

	content := result.Files[0].Content
	assert.Contains(t, content, `style="color: blue;"`)
	assert.Contains(t, content, `style="font-weight: 600;"`)
	assert.Contains(t, content, `style="background: rgb(1,2,3);"`)
	assert.Equal(t, 2, result.ElementsStyled)
}

func TestProcess_CustomBreakpoints(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"), `<div class="tablet:p-2px"/>`)

	result, err := Process(ProcessConfig{
		Includes:    []string{"a.html"},
		BaseDir:     dir,
		Width:       650,
		Registry:    testRegistry(t, DefaultProperties()),
		Breakpoints: NewBreakpointTable(Breakpoint{Name: "tablet", Min: Bound(600), Max: Bound(700)}),
	})
	require.NoError(t, err)
	assert.Contains(t, result.Files[0].Content, `style="padding: 2px;"`)
}

func TestProcess_NoRegistry(t *testing.T) {
	_, err := Process(ProcessConfig{})
	assert.ErrorIs(t, err, ErrNoRegistry)
}

func TestProcess_BadPattern(t *testing.T) {
	_, err := Process(ProcessConfig{
		Includes: []string{"[unterminated"},
		BaseDir:  t.TempDir(),
		Registry: testRegistry(t, nil),
	})
	require.Error(t, err)
}

func TestOutputRel(t *testing.T) {
	sep := string(filepath.Separator)
	assert.Equal(t, filepath.Join("pages", "a.html"), outputRel("site", filepath.Join("site", "pages", "a.html")))
	assert.Equal(t, "a.html", outputRel("site", ".."+sep+"a.html"))
	assert.Equal(t, filepath.Join("x", "a.html"), outputRel("", filepath.Join("x", "a.html")))
}
