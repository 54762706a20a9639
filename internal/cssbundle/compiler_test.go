package cssbundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	want := "/*\n" +
		" * Project - Compiled CSS\n" +
		" * Generated automatically - DO NOT EDIT\n" +
		" * Source: base.css\n" +
		" * Minified: false\n" +
		" */\n\n"
	assert.Equal(t, want, Header("", "/srv/static/css/base.css", false))

	assert.Contains(t, Header("Shop", "base.css", true), " * Shop - Compiled CSS\n")
	assert.Contains(t, Header("Shop", "base.css", true), " * Minified: true\n")
}

func TestCompile(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "base.css", "@import url('reset.css');\nbody{color:red}")
	writeFile(t, dir, "reset.css", "/* Reset */\n* { margin: 0; }")

	tests := []struct {
		name     string
		mode     Mode
		minified bool
		body     string
	}{
		{
			name: "raw",
			mode: ModeRaw,
			body: "/* From reset.css */\n/* Reset */\n* { margin: 0; }\nbody{color:red}",
		},
		{
			name: "comments stripped keeps provenance",
			mode: ModeStripComments,
			body: "/* From reset.css */\n\n* { margin: 0; }\nbody{color:red}",
		},
		{
			name:     "minified",
			mode:     ModeMinify,
			minified: true,
			body:     "*{margin:0;}body{color:red}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(dir, string(tt.mode)+".css")

			result, err := Compile(CompileOptions{Source: source, Output: output, Mode: tt.mode})
			require.NoError(t, err)

			data, err := os.ReadFile(output)
			require.NoError(t, err)

			want := Header("", source, tt.minified) + tt.body
			assert.Equal(t, want, string(data))
			assert.NotContains(t, string(data), "@import")

			assert.Equal(t, tt.mode, result.Mode)
			assert.Equal(t, len("@import url('reset.css');\nbody{color:red}"), result.OriginalSize)
			assert.Equal(t, len(want), result.CompiledSize)
			assert.Empty(t, result.Diagnostics)
		})
	}
}

func TestCompile_DefaultModeStripsComments(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "base.css", "/* note */a{}")
	output := filepath.Join(dir, "app.css")

	result, err := Compile(CompileOptions{Source: source, Output: output})
	require.NoError(t, err)
	assert.Equal(t, ModeStripComments, result.Mode)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, Header("", source, false)+"a{}", string(data))
}

func TestCompile_EmptySource(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "base.css", "")
	output := filepath.Join(dir, "app.css")

	result, err := Compile(CompileOptions{Source: source, Output: output, Mode: ModeMinify})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, Header("", source, true), string(data))

	assert.Equal(t, 0, result.OriginalSize)
	assert.Less(t, result.Savings(), 0)
	assert.InDelta(t, 0.0, result.SavingsPercent(), 0.001)
}

func TestCompile_MediaQuery(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "base.css", "@import url('mobile.css') screen and (max-width: 600px);")
	writeFile(t, dir, "mobile.css", ".nav { display: none; }")
	output := filepath.Join(dir, "app.css")

	_, err := Compile(CompileOptions{Source: source, Output: output, Mode: ModeRaw})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@media screen and (max-width: 600px) {\n.nav { display: none; }\n}")
}

func TestCompile_MissingImportIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "base.css", "@import url('gone.css');\na{}")
	output := filepath.Join(dir, "app.css")

	result, err := Compile(CompileOptions{Source: source, Output: output, Mode: ModeStripComments})
	require.NoError(t, err)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, DiagnosticMissing, result.Diagnostics[0].Kind)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/* Import not found: gone.css */")
}

func TestCompile_CreatesOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "base.css", "a{}")
	output := filepath.Join(dir, "dist", "css", "app.css")

	_, err := Compile(CompileOptions{Source: source, Output: output})
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestCompile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("unreadable source", func(t *testing.T) {
		_, err := Compile(CompileOptions{
			Source: filepath.Join(dir, "nope.css"),
			Output: filepath.Join(dir, "out.css"),
		})
		require.ErrorIs(t, err, ErrReadSource)
		assert.NoFileExists(t, filepath.Join(dir, "out.css"))
	})

	t.Run("unwritable output", func(t *testing.T) {
		source := writeFile(t, dir, "base.css", "a{}")
		blocker := writeFile(t, dir, "blocker", "")

		_, err := Compile(CompileOptions{
			Source: source,
			Output: filepath.Join(blocker, "app.css"),
		})
		require.ErrorIs(t, err, ErrWriteOutput)
	})
}

func TestCompileResult_Savings(t *testing.T) {
	r := &CompileResult{OriginalSize: 2000, CompiledSize: 1500}
	assert.Equal(t, 500, r.Savings())
	assert.InDelta(t, 25.0, r.SavingsPercent(), 0.001)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", ModeStripComments},
		{"raw", ModeRaw},
		{"comments", ModeStripComments},
		{"comments-stripped", ModeStripComments},
		{"minify", ModeMinify},
		{"minified", ModeMinify},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMode("gzip")
	require.Error(t, err)
}
