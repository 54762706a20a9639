package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbundle"
)

var compileCmd = &cobra.Command{
	Use:   "compile SOURCE OUTPUT",
	Short: "Compile a single stylesheet without a manifest",
	Args:  cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompile,
}

func init() {
	addCompileFlags(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	runOpts, err := buildRunOptions()
	if err != nil {
		return err
	}

	opts := cssbundle.CompileOptions{
		Source:   args[0],
		Output:   args[1],
		Mode:     runOpts.Mode,
		Preserve: runOpts.Preserve,
		Title:    runOpts.Title,
	}
	entry := cssbundle.Entry{Source: args[0], Output: args[1]}

	reporter := newReporter(cmd)
	if reporter != nil {
		reporter.EntryStarted(entry, opts)
	}

	result, err := cssbundle.Compile(opts)
	if err != nil {
		if reporter != nil {
			reporter.EntryFailed(entry, err)
		}
		return fmt.Errorf("compile failed: %w", err)
	}

	if reporter != nil {
		reporter.EntryCompiled(result)
	}
	return nil
}
