package cssbundle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// importPattern matches @import url('path') and @import url("path"),
// optionally followed by a media query up to the terminating semicolon.
var importPattern = regexp.MustCompile(`@import\s+url\(['"](.+?)['"]\)(?:\s+(.+?))?;`)

// ResolveOptions controls which imports are inlined
type ResolveOptions struct {
	Preserve []string // Doublestar globs matched against the import path as written

	// Transform, when set, is applied to the text of every file before it is
	// scanned. Comments generated by the resolver are added afterwards.
	Transform func(string) string
}

// resolverState carries the active import chain and collected diagnostics
// through one resolution.
type resolverState struct {
	opts        ResolveOptions
	chain       map[string]bool // Canonical paths currently being inlined
	diagnostics []Diagnostic
}

// ResolveImports inlines every @import url(...) in content. Relative import
// paths are resolved against contextDir. Imports that cannot be inlined are
// replaced by a placeholder comment and reported as diagnostics.
func ResolveImports(content, contextDir string, opts ResolveOptions) (string, []Diagnostic) {
	s := &resolverState{opts: opts, chain: make(map[string]bool)}
	return s.resolve(content, contextDir), s.diagnostics
}

// ResolveFile inlines the imports of an already-read root stylesheet. The
// root itself is part of the import chain, so a file importing itself is
// reported as a cycle.
func ResolveFile(path, content string, opts ResolveOptions) (string, []Diagnostic) {
	s := &resolverState{opts: opts, chain: make(map[string]bool)}
	key := canonicalPath(path)
	s.chain[key] = true
	return s.resolve(content, filepath.Dir(path)), s.diagnostics
}

func (s *resolverState) resolve(content, contextDir string) string {
	if s.opts.Transform != nil {
		content = s.opts.Transform(content)
	}

	matches := importPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(content[last:m[0]])
		last = m[1]

		importPath := content[m[2]:m[3]]
		mediaQuery := ""
		if m[4] >= 0 {
			mediaQuery = strings.TrimSpace(content[m[4]:m[5]])
		}

		if s.preserved(importPath) {
			b.WriteString(content[m[0]:m[1]])
			continue
		}

		b.WriteString(s.inline(importPath, mediaQuery, contextDir))
	}
	b.WriteString(content[last:])

	return b.String()
}

// inline returns the replacement text for a single import directive
func (s *resolverState) inline(importPath, mediaQuery, contextDir string) string {
	target := importTarget(contextDir, importPath)
	diag := Diagnostic{Path: importPath, Target: target, Importer: contextDir}

	if _, err := os.Stat(target); err != nil {
		diag.Kind = DiagnosticMissing
		s.diagnostics = append(s.diagnostics, diag)
		return fmt.Sprintf("/* Import not found: %s */", importPath)
	}

	key := canonicalPath(target)
	if s.chain[key] {
		diag.Kind = DiagnosticCycle
		s.diagnostics = append(s.diagnostics, diag)
		return fmt.Sprintf("/* Import cycle: %s */", importPath)
	}

	// #nosec G304 - path comes from an @import in a trusted stylesheet
	data, err := os.ReadFile(target)
	if err != nil {
		diag.Kind = DiagnosticUnreadable
		diag.Err = err
		s.diagnostics = append(s.diagnostics, diag)
		return fmt.Sprintf("/* Import failed: %s */", importPath)
	}

	s.chain[key] = true
	imported := s.resolve(string(data), filepath.Dir(target))
	delete(s.chain, key)

	if mediaQuery != "" {
		return fmt.Sprintf("/* From %s */\n@media %s {\n%s\n}", importPath, mediaQuery, imported)
	}
	return fmt.Sprintf("/* From %s */\n%s", importPath, imported)
}

// preserved reports whether an import must be left as written
func (s *resolverState) preserved(importPath string) bool {
	if isRemoteImport(importPath) {
		return true
	}
	for _, pattern := range s.opts.Preserve {
		if ok, err := doublestar.Match(pattern, importPath); err == nil && ok {
			return true
		}
	}
	return false
}

// isRemoteImport detects URLs that never refer to a local file
func isRemoteImport(importPath string) bool {
	return strings.HasPrefix(importPath, "//") ||
		strings.HasPrefix(importPath, "data:") ||
		strings.Contains(importPath, "://")
}

// importTarget joins an import path onto its resolution context
func importTarget(contextDir, importPath string) string {
	target := importPath
	if !filepath.IsAbs(importPath) {
		target = filepath.Join(contextDir, filepath.FromSlash(importPath))
	}
	if abs, err := filepath.Abs(target); err == nil {
		return abs
	}
	return filepath.Clean(target)
}

// canonicalPath resolves symlinks so the same file reached through
// different paths is recognized in the import chain
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}
