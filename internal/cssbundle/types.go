package cssbundle

import (
	"errors"
	"fmt"
)

// Mode selects which normalization is applied after imports are inlined
type Mode string

const (
	// ModeRaw writes the inlined stylesheet as is
	ModeRaw Mode = "raw"
	// ModeStripComments removes block comments but keeps formatting (default)
	ModeStripComments Mode = "comments"
	// ModeMinify removes comments and non-essential whitespace
	ModeMinify Mode = "minify"
)

// DefaultMode is used when no mode is configured
const DefaultMode = ModeStripComments

// ParseMode converts a user-supplied mode name into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "":
		return DefaultMode, nil
	case "raw", "none":
		return ModeRaw, nil
	case "comments", "strip-comments", "comments-stripped":
		return ModeStripComments, nil
	case "minify", "minified", "min":
		return ModeMinify, nil
	}
	return "", fmt.Errorf("unknown mode %q (want raw|comments|minify)", s)
}

// Normalized reports whether the mode transforms the inlined text
func (m Mode) Normalized() bool {
	return m == ModeStripComments || m == ModeMinify
}

// DiagnosticKind classifies an import that could not be inlined
type DiagnosticKind string

const (
	DiagnosticMissing    DiagnosticKind = "missing"
	DiagnosticUnreadable DiagnosticKind = "unreadable"
	DiagnosticCycle      DiagnosticKind = "cycle"
)

// Diagnostic describes an import the resolver replaced with a placeholder
type Diagnostic struct {
	Kind     DiagnosticKind
	Path     string // Import path as written: "components/button.css"
	Target   string // Absolute path it resolved to
	Importer string // Directory the import was resolved against
	Err      error  // Underlying read error (unreadable only)
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticMissing:
		return fmt.Sprintf("import not found: %s", d.Target)
	case DiagnosticCycle:
		return fmt.Sprintf("import cycle: %s", d.Target)
	case DiagnosticUnreadable:
		return fmt.Sprintf("import not readable: %s: %v", d.Target, d.Err)
	}
	return string(d.Kind) + ": " + d.Target
}

// Entry is one source -> output pair from the manifest
type Entry struct {
	Source string // "base.css"
	Output string // "app.css"
}

// CompileOptions holds the inputs of a single compilation
type CompileOptions struct {
	Source   string   // Root stylesheet
	Output   string   // Destination file
	Mode     Mode     // Normalization mode
	Preserve []string // Doublestar globs of imports to leave untouched
	Title    string   // Project name in the generated header (default: "Project")
}

// CompileResult contains compilation stats
type CompileResult struct {
	Source       string
	Output       string
	Mode         Mode
	OriginalSize int // Bytes in the root source file
	CompiledSize int // Bytes written, header included
	Diagnostics  []Diagnostic
}

// Savings is the number of bytes saved relative to the root source.
// It is negative when inlining added more than normalization removed.
func (r *CompileResult) Savings() int {
	return r.OriginalSize - r.CompiledSize
}

// SavingsPercent returns Savings as a percentage of the original size,
// or 0 when the original file is empty.
func (r *CompileResult) SavingsPercent() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.Savings()) / float64(r.OriginalSize) * 100
}

// RunOptions configures a manifest-driven run
type RunOptions struct {
	Dir      string   // Directory holding the manifest and stylesheets
	Manifest string   // Manifest file name (default: compiler_config.json)
	Mode     Mode     // Normalization mode for every entry
	Preserve []string // Passed through to every compilation
	Title    string   // Passed through to every compilation
}

// RunResult summarizes a manifest-driven run
type RunResult struct {
	ManifestPath string
	Created      bool // Default manifest was written during this run
	Compiled     []*CompileResult
	Skipped      int
	Failed       int
}

var (
	// ErrReadSource is returned when the root stylesheet cannot be read
	ErrReadSource = errors.New("read source")
	// ErrSourceMissing is returned when a manifest entry names a file that does not exist
	ErrSourceMissing = errors.New("source not found")
	// ErrWriteOutput is returned when the compiled stylesheet cannot be written
	ErrWriteOutput = errors.New("write output")
	// ErrReadManifest is returned when the manifest exists but cannot be read
	ErrReadManifest = errors.New("read manifest")
	// ErrInvalidManifest is returned when the manifest is not a JSON object of strings
	ErrInvalidManifest = errors.New("invalid manifest")
)
