package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbundle"
	engine "github.com/yacobolo/cssbundle/internal/cssbundle"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"b"},
	Short:   "Compile every stylesheet listed in the manifest",
	Long: `Read the manifest and compile each source stylesheet into its output.
A missing manifest is created with the default entry base.css -> app.css.
Entries are processed in manifest order; a failing entry does not stop the run.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	addCompileFlags(buildCmd)
}

// addCompileFlags registers the flags shared by build and compile
func addCompileFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("mode", "", "Normalization: raw|comments|minify (default: comments)")
	f.Bool("minify", false, "Shortcut for --mode minify")
	f.StringSlice("preserve", nil, "Glob patterns of imports to leave untouched")
	f.String("title", "", "Project name in the generated header (default: Project)")
}

// newReporter returns nil when output is suppressed
func newReporter(cmd *cobra.Command) *engine.Reporter {
	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}
	useColors := engine.ShouldUseColors(getBoolWithFallback("color", "color", false))
	return engine.NewReporter(cmd.OutOrStdout(), useColors)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	opts, err := buildRunOptions()
	if err != nil {
		return err
	}

	var sink cssbundle.EventSink
	reporter := newReporter(cmd)
	if reporter != nil {
		sink = reporter
		fmt.Fprintln(cmd.OutOrStdout(), engine.RenderStyle(engine.StyleCyan, "Compiling CSS...", reporter.UseColors()))
	}

	result, err := cssbundle.Run(opts, sink)
	if result == nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if reporter != nil {
		reporter.PrintSummary(result)
	}

	if err != nil {
		return fmt.Errorf("build incomplete: %w", err)
	}
	return nil
}
