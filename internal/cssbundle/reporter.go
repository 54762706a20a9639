package cssbundle

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// Reporter prints compilation progress, import diagnostics and byte
// statistics. It implements EventSink.
type Reporter struct {
	w         io.Writer
	useColors bool
	logger    *log.Logger
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "cssbundle",
	})
	return &Reporter{
		w:         w,
		useColors: useColors,
		logger:    logger,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// ManifestCreated shows the default manifest that was just written
func (r *Reporter) ManifestCreated(path string, entries []Entry) {
	r.logger.Warn("manifest not found, created default", "path", path)
	for _, e := range entries {
		fmt.Fprintf(r.w, "  %s -> %s\n", e.Source, e.Output)
	}
}

// EntryStarted prints the header of an entry
func (r *Reporter) EntryStarted(entry Entry, opts CompileOptions) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, fmt.Sprintf("--- %s -> %s ---", entry.Source, entry.Output), r.useColors))
	r.printField("Source", opts.Source)
	r.printField("Output", opts.Output)
	r.printField("Mode", string(opts.Mode))
}

// EntrySkipped reports an entry whose source file does not exist
func (r *Reporter) EntrySkipped(entry Entry, err error) {
	r.logger.Warn("skipped", "source", entry.Source, "err", err)
}

// EntryFailed reports an entry that could not be compiled
func (r *Reporter) EntryFailed(entry Entry, err error) {
	r.logger.Error("compilation failed", "source", entry.Source, "err", err)
}

// EntryCompiled prints diagnostics and size statistics of a compilation
func (r *Reporter) EntryCompiled(result *CompileResult) {
	r.PrintDiagnostics(result.Diagnostics)
	r.PrintStats(result)
}

// PrintDiagnostics prints one warning per import that was not inlined
func (r *Reporter) PrintDiagnostics(diagnostics []Diagnostic) {
	for _, d := range diagnostics {
		switch d.Kind {
		case DiagnosticMissing:
			r.logger.Warn("import not found", "path", d.Path, "target", d.Target)
		case DiagnosticCycle:
			r.logger.Warn("import cycle", "path", d.Path, "target", d.Target)
		case DiagnosticUnreadable:
			r.logger.Warn("import not readable", "path", d.Path, "err", d.Err)
		default:
			r.logger.Warn(d.String())
		}
	}
}

// PrintStats prints the original and compiled sizes and, for normalized
// output, the savings relative to the root source file
func (r *Reporter) PrintStats(result *CompileResult) {
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "✓ Done", r.useColors))
	r.printField("Original", formatBytes(result.OriginalSize))
	r.printField("Size", formatBytes(result.CompiledSize))
	if result.Mode.Normalized() {
		r.printField("Saved", fmt.Sprintf("%s (%.1f%%)", formatBytes(result.Savings()), result.SavingsPercent()))
	}
}

// PrintSummary outputs the entry count summary of a run
func (r *Reporter) PrintSummary(result *RunResult) {
	fmt.Fprintln(r.w, "")

	line := fmt.Sprintf("%s compiled", pluralizeCount(len(result.Compiled), "entry", "entries"))
	if result.Skipped > 0 {
		line += fmt.Sprintf(", %d skipped", result.Skipped)
	}
	if result.Failed > 0 {
		line += fmt.Sprintf(", %d failed", result.Failed)
	}

	style := StyleGreen
	switch {
	case result.Failed > 0:
		style = StyleRed
	case result.Skipped > 0:
		style = StyleYellow
	}
	fmt.Fprintln(r.w, RenderStyle(style, line, r.useColors))
}

func (r *Reporter) printField(label, value string) {
	fmt.Fprintf(r.w, "  %s %s\n", RenderStyle(StyleGray, label+":", r.useColors), value)
}

// formatBytes renders a byte count with thousands separators: "1,234 bytes"
func formatBytes(n int) string {
	return humanize.Comma(int64(n)) + " bytes"
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
