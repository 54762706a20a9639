package cssbundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// EventSink receives progress events from Run. Reporter is the console
// implementation.
type EventSink interface {
	ManifestCreated(path string, entries []Entry)
	EntryStarted(entry Entry, opts CompileOptions)
	EntrySkipped(entry Entry, err error)
	EntryFailed(entry Entry, err error)
	EntryCompiled(result *CompileResult)
}

// Run compiles every manifest entry in order. Manifest errors abort the run
// before any compilation; entry errors are reported to sink, the run moves
// on, and all of them are returned combined.
func Run(opts RunOptions, sink EventSink) (*RunResult, error) {
	if sink == nil {
		sink = nopSink{}
	}

	if opts.Mode == "" {
		opts.Mode = DefaultMode
	}

	name := opts.Manifest
	if name == "" {
		name = DefaultManifestName
	}

	manifest, err := LoadManifest(joinIfRelative(opts.Dir, name))
	if err != nil {
		return nil, err
	}

	result := &RunResult{ManifestPath: manifest.Path, Created: manifest.Created}
	if manifest.Created {
		sink.ManifestCreated(manifest.Path, manifest.Entries)
	}

	var errs error
	for _, entry := range manifest.Entries {
		compileOpts := CompileOptions{
			Source:   joinIfRelative(manifest.Dir(), entry.Source),
			Output:   joinIfRelative(manifest.Dir(), entry.Output),
			Mode:     opts.Mode,
			Preserve: opts.Preserve,
			Title:    opts.Title,
		}

		if _, err := os.Stat(compileOpts.Source); errors.Is(err, fs.ErrNotExist) {
			skipErr := fmt.Errorf("%w: %s", ErrSourceMissing, entry.Source)
			sink.EntrySkipped(entry, skipErr)
			result.Skipped++
			errs = multierr.Append(errs, skipErr)
			continue
		}

		sink.EntryStarted(entry, compileOpts)

		if entry.Output == "" {
			failErr := fmt.Errorf("%w: empty output path for %s", ErrWriteOutput, entry.Source)
			sink.EntryFailed(entry, failErr)
			result.Failed++
			errs = multierr.Append(errs, failErr)
			continue
		}

		compiled, err := Compile(compileOpts)
		if err != nil {
			sink.EntryFailed(entry, err)
			result.Failed++
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", entry.Source, err))
			continue
		}

		result.Compiled = append(result.Compiled, compiled)
		sink.EntryCompiled(compiled)
	}

	return result, errs
}

func joinIfRelative(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

type nopSink struct{}

func (nopSink) ManifestCreated(string, []Entry) {}
func (nopSink) EntryStarted(Entry, CompileOptions) {}
func (nopSink) EntrySkipped(Entry, error) {}
func (nopSink) EntryFailed(Entry, error) {}
func (nopSink) EntryCompiled(*CompileResult) {}
