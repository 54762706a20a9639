package cssbundle

import (
	"fmt"
	"os"
	"path/filepath"
)

// Compile inlines the imports of opts.Source, normalizes the result
// according to opts.Mode and writes it with a generated header to
// opts.Output. Import problems are reported as diagnostics on the result,
// only source read and output write failures are returned as errors.
func Compile(opts CompileOptions) (*CompileResult, error) {
	mode := opts.Mode
	if mode == "" {
		mode = DefaultMode
	}

	// #nosec G304 - path comes from trusted configuration
	source, err := os.ReadFile(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadSource, opts.Source, err)
	}

	// 1. Inline imports relative to the source directory. Comments are
	// stripped per file so provenance comments survive.
	resolveOpts := ResolveOptions{Preserve: opts.Preserve}
	if mode.Normalized() {
		resolveOpts.Transform = StripComments
	}
	compiled, diagnostics := ResolveFile(opts.Source, string(source), resolveOpts)

	// 2. Minify the inlined stylesheet as a whole
	if mode == ModeMinify {
		compiled = Minify(compiled)
	}

	// 3. Header
	compiled = Header(opts.Title, opts.Source, mode == ModeMinify) + compiled

	// 4. Write
	if err := os.MkdirAll(filepath.Dir(opts.Output), 0755); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWriteOutput, opts.Output, err)
	}
	if err := os.WriteFile(opts.Output, []byte(compiled), 0644); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrWriteOutput, opts.Output, err)
	}

	return &CompileResult{
		Source:       opts.Source,
		Output:       opts.Output,
		Mode:         mode,
		OriginalSize: len(source),
		CompiledSize: len(compiled),
		Diagnostics:  diagnostics,
	}, nil
}
