package tenox

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/tenox/internal/dom"
)

// ProcessConfig controls Process.
type ProcessConfig struct {
	Includes    []string         // ["site/**/*.html"]
	BaseDir     string           // Output paths are relative to this; also where .gitignore is read
	OutputDir   string           // "dist"; empty keeps results in FileResult.Content
	DryRun      bool             // Resolve but never write
	Width       float64          // Viewport width; 0 selects dom.DefaultWidth
	Hover       bool             // Render every element in its hovered state
	MoreColor   bool             // Run the rgb/rgba/hex color matcher after the resolver
	Styles      map[string]any   // Selector declarations applied after class attributes
	Registry    *Registry        // Required
	Breakpoints *BreakpointTable // Nil selects DefaultBreakpoints
	Logger      *zap.Logger
}

// ProcessResult aggregates per-file results.
type ProcessResult struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int
	FilesWritten    int
	ElementsStyled  int
	ClassesApplied  int
	ClassesIgnored  int
	Listeners       int
	Files           []FileResult
}

// FileResult describes one processed document.
type FileResult struct {
	Path           string
	Output         string // Written file, empty when nothing was written
	Content        string // Rendered document when OutputDir is empty
	ElementsStyled int
	ClassesApplied int
	ClassesIgnored int
	Listeners      int
	Err            error
}

// Process applies utility classes to every document matching the include
// patterns. A file that fails is recorded and does not stop the others; the
// returned error aggregates every failure.
func Process(cfg ProcessConfig) (*ProcessResult, error) {
	if cfg.Registry == nil {
		return nil, ErrNoRegistry
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("process")

	files, stats, err := expandIncludes(cfg.BaseDir, cfg.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &ProcessResult{
		FilesDiscovered: stats.discovered,
		FilesSkipped:    stats.skipped,
	}
	if stats.skipped > 0 {
		log.Debug("skipped ignored files", zap.Int("count", stats.skipped))
	}

	var errs error
	for _, file := range files {
		fr := processFile(file, cfg, log)
		result.Files = append(result.Files, fr)
		if fr.Err != nil {
			log.Warn("file failed", zap.String("file", file), zap.Error(fr.Err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, fr.Err))
			continue
		}
		result.FilesScanned++
		if fr.Output != "" {
			result.FilesWritten++
		}
		result.ElementsStyled += fr.ElementsStyled
		result.ClassesApplied += fr.ClassesApplied
		result.ClassesIgnored += fr.ClassesIgnored
		result.Listeners += fr.Listeners
	}

	return result, errs
}

func processFile(path string, cfg ProcessConfig, log *zap.Logger) FileResult {
	fr := FileResult{Path: path}

	doc, err := dom.LoadFile(path)
	if err != nil {
		fr.Err = err
		return fr
	}

	width := cfg.Width
	if width <= 0 {
		width = dom.DefaultWidth
	}
	win := dom.NewWindow(width)

	bps := cfg.Breakpoints
	if bps != nil {
		bps = bps.Clone()
	}
	r, err := NewResolver(Config{
		Registry:    cfg.Registry,
		Breakpoints: bps,
		Window:      win,
	}, WithLogger(log))
	if err != nil {
		fr.Err = err
		return fr
	}
	// Listeners are only needed while the document is live.
	defer r.Close()

	var styled []*dom.Element
	for _, el := range doc.Elements() {
		if el.ClassAttr() == "" {
			continue
		}
		b := r.ApplyElement(el)
		fr.ClassesApplied += b.Applied()
		fr.ClassesIgnored += b.Count(ModeInert)
		fr.Listeners += b.Listeners()
		if b.Applied() > 0 {
			styled = append(styled, el)
		}
		if cfg.MoreColor && MoreColor(el) && b.Applied() == 0 {
			styled = append(styled, el)
		}
	}
	fr.ElementsStyled = len(styled)

	if len(cfg.Styles) > 0 {
		if _, err := r.MakeStyles(domDocument{doc}, cfg.Styles); err != nil {
			for _, e := range multierr.Errors(err) {
				log.Warn("styles declaration skipped", zap.String("file", path), zap.Error(e))
			}
		}
	}

	if cfg.Hover {
		for _, el := range doc.Elements() {
			el.Dispatch(EventMouseOver)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		fr.Err = fmt.Errorf("render: %w", err)
		return fr
	}

	switch {
	case cfg.DryRun:
	case cfg.OutputDir == "":
		fr.Content = buf.String()
	default:
		out := filepath.Join(cfg.OutputDir, outputRel(cfg.BaseDir, path))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			fr.Err = fmt.Errorf("create output dir: %w", err)
			return fr
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			fr.Err = fmt.Errorf("write output: %w", err)
			return fr
		}
		fr.Output = out
	}
	return fr
}

// outputRel returns path relative to base, falling back to the file name for
// paths outside base.
func outputRel(base, path string) string {
	if base != "" {
		if rel, err := filepath.Rel(base, path); err == nil && !startsWithParent(rel) {
			return rel
		}
	}
	if filepath.IsAbs(path) || startsWithParent(path) {
		return filepath.Base(path)
	}
	return path
}

func startsWithParent(p string) bool {
	return len(p) >= 3 && p[:3] == ".."+string(filepath.Separator)
}

type scanStats struct {
	discovered int
	skipped    int
}

// expandIncludes expands glob patterns under base into a deduplicated list of
// files, skipping anything the project's .gitignore excludes.
func expandIncludes(base string, patterns []string) ([]string, scanStats, error) {
	var stats scanStats
	var files []string
	seen := make(map[string]bool)
	gi := loadGitIgnore(base)

	for _, pattern := range patterns {
		full := pattern
		if base != "" && !filepath.IsAbs(pattern) {
			full = filepath.Join(base, pattern)
		}
		matches, err := doublestar.FilepathGlob(full)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.discovered++

			if isIgnored(gi, base, match) {
				stats.skipped++
				continue
			}
			files = append(files, match)
		}
	}
	return files, stats, nil
}

// loadGitIgnore reads base/.gitignore. A missing file means nothing is
// ignored.
func loadGitIgnore(base string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(base, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

func isIgnored(gi *ignore.GitIgnore, base, path string) bool {
	if gi == nil {
		return false
	}
	rel := path
	if base != "" {
		r, err := filepath.Rel(base, path)
		if err != nil {
			return false
		}
		rel = r
	}
	// Only paths inside the project are subject to its .gitignore.
	if filepath.IsAbs(rel) || startsWithParent(rel) {
		return false
	}
	return gi.MatchesPath(filepath.ToSlash(rel))
}

// domDocument adapts a dom.Document to the Document interface.
type domDocument struct {
	doc *dom.Document
}

func (d domDocument) QuerySelectorAll(selector string) ([]Element, error) {
	els, err := d.doc.QuerySelectorAll(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelector, err)
	}
	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out, nil
}
