// Package cssbundle inlines CSS @import directives into a single stylesheet.
//
// Every @import url('path') is replaced by the content of the referenced file,
// resolved recursively relative to the importing file. Imports with a media
// query are wrapped in an @media block. The result can be written raw, with
// comments stripped, or minified, behind a generated header.
//
// # Compiling one stylesheet
//
//	result, err := cssbundle.Compile(cssbundle.CompileOptions{
//		Source: "static/css/base.css",
//		Output: "static/css/app.css",
//		Mode:   cssbundle.ModeMinify,
//	})
//
// # Compiling a manifest
//
// A manifest (compiler_config.json) maps source files to outputs:
//
//	{
//	    "base.css": "app.css"
//	}
//
// Run compiles every entry in order:
//
//	result, err := cssbundle.Run(cssbundle.RunOptions{Dir: "static/css"}, nil)
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssbundle/cmd/cssbundle@latest
package cssbundle

import (
	engine "github.com/yacobolo/cssbundle/internal/cssbundle"
)

type (
	Mode           = engine.Mode
	Diagnostic     = engine.Diagnostic
	DiagnosticKind = engine.DiagnosticKind
	Entry          = engine.Entry
	CompileOptions = engine.CompileOptions
	CompileResult  = engine.CompileResult
	ResolveOptions = engine.ResolveOptions
	RunOptions     = engine.RunOptions
	RunResult      = engine.RunResult
	EventSink      = engine.EventSink
)

const (
	ModeRaw           = engine.ModeRaw
	ModeStripComments = engine.ModeStripComments
	ModeMinify        = engine.ModeMinify

	DiagnosticMissing    = engine.DiagnosticMissing
	DiagnosticUnreadable = engine.DiagnosticUnreadable
	DiagnosticCycle      = engine.DiagnosticCycle
)

var (
	ErrReadSource      = engine.ErrReadSource
	ErrSourceMissing   = engine.ErrSourceMissing
	ErrWriteOutput     = engine.ErrWriteOutput
	ErrReadManifest    = engine.ErrReadManifest
	ErrInvalidManifest = engine.ErrInvalidManifest
)

// Compile inlines, normalizes and writes a single stylesheet
func Compile(opts CompileOptions) (*CompileResult, error) {
	return engine.Compile(opts)
}

// Run compiles every entry of the manifest in opts.Dir. A nil sink discards
// progress events.
func Run(opts RunOptions, sink EventSink) (*RunResult, error) {
	return engine.Run(opts, sink)
}

// ResolveImports inlines the imports of content relative to contextDir.
// content has no file of its own, so it is not part of the import chain; use
// ResolveFile to catch a root stylesheet that imports itself.
func ResolveImports(content, contextDir string, opts ResolveOptions) (string, []Diagnostic) {
	return engine.ResolveImports(content, contextDir, opts)
}

// ResolveFile inlines the imports of the stylesheet at path, whose content
// has already been read. An import of path itself is reported as a cycle.
func ResolveFile(path, content string, opts ResolveOptions) (string, []Diagnostic) {
	return engine.ResolveFile(path, content, opts)
}

// StripComments removes all /* ... */ comments
func StripComments(content string) string {
	return engine.StripComments(content)
}

// Minify removes comments and non-essential whitespace
func Minify(content string) string {
	return engine.Minify(content)
}

// ParseMode converts "raw", "comments" or "minify" into a Mode
func ParseMode(s string) (Mode, error) {
	return engine.ParseMode(s)
}
