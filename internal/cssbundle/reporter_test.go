package cssbundle

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_PrintStats(t *testing.T) {
	tests := []struct {
		name     string
		result   *CompileResult
		contains []string
		excludes []string
	}{
		{
			name:     "normalized output shows savings",
			result:   &CompileResult{Mode: ModeStripComments, OriginalSize: 2000, CompiledSize: 1500},
			contains: []string{"✓ Done", "Original: 2,000 bytes", "Size: 1,500 bytes", "Saved: 500 bytes (25.0%)"},
		},
		{
			name:     "raw output has no savings line",
			result:   &CompileResult{Mode: ModeRaw, OriginalSize: 10, CompiledSize: 1234567},
			contains: []string{"Original: 10 bytes", "Size: 1,234,567 bytes"},
			excludes: []string{"Saved:"},
		},
		{
			name:     "empty source does not divide by zero",
			result:   &CompileResult{Mode: ModeMinify, OriginalSize: 0, CompiledSize: 120},
			contains: []string{"Original: 0 bytes", "Saved: -120 bytes (0.0%)"},
			excludes: []string{"NaN", "Inf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, false).PrintStats(tt.result)

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestReporter_Diagnostics(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	r.EntryCompiled(&CompileResult{
		Mode: ModeStripComments,
		Diagnostics: []Diagnostic{
			{Kind: DiagnosticMissing, Path: "gone.css", Target: "/css/gone.css"},
			{Kind: DiagnosticCycle, Path: "loop.css", Target: "/css/loop.css"},
			{Kind: DiagnosticUnreadable, Path: "dir.css", Err: errors.New("is a directory")},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "import not found")
	assert.Contains(t, out, "gone.css")
	assert.Contains(t, out, "import cycle")
	assert.Contains(t, out, "loop.css")
	assert.Contains(t, out, "import not readable")
	assert.Contains(t, out, "is a directory")
}

func TestReporter_EntryEvents(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	entry := Entry{Source: "base.css", Output: "app.css"}
	r.ManifestCreated("/css/compiler_config.json", []Entry{entry})
	r.EntryStarted(entry, CompileOptions{Source: "/css/base.css", Output: "/css/app.css", Mode: ModeStripComments})
	r.EntrySkipped(Entry{Source: "other.css"}, ErrSourceMissing)
	r.EntryFailed(entry, ErrWriteOutput)

	out := buf.String()
	assert.Contains(t, out, "created default")
	assert.Contains(t, out, "  base.css -> app.css\n")
	assert.Contains(t, out, "--- base.css -> app.css ---")
	assert.Contains(t, out, "Source: /css/base.css")
	assert.Contains(t, out, "Mode: comments")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "other.css")
	assert.Contains(t, out, "compilation failed")
}

func TestReporter_PrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result *RunResult
		want   string
	}{
		{
			name:   "single entry",
			result: &RunResult{Compiled: []*CompileResult{{}}},
			want:   "1 entry compiled\n",
		},
		{
			name:   "with skipped and failed",
			result: &RunResult{Compiled: []*CompileResult{{}, {}}, Skipped: 1, Failed: 2},
			want:   "2 entries compiled, 1 skipped, 2 failed\n",
		},
		{
			name:   "nothing compiled",
			result: &RunResult{},
			want:   "0 entries compiled\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf, false).PrintSummary(tt.result)
			assert.Equal(t, "\n"+tt.want, buf.String())
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 entry", pluralizeCount(1, "entry", "entries"))
	assert.Equal(t, "3 entries", pluralizeCount(3, "entry", "entries"))
}
