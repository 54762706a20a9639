package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	engine "github.com/yacobolo/cssbundle/internal/cssbundle"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssbundle.yaml and manifest",
	Long: `Create a .cssbundle.yaml configuration file in the current directory with sensible defaults,
and the default manifest in the stylesheet directory when it does not exist yet.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		out := cmd.OutOrStdout()

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n", defaultConfigFile)

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = defaultDir
		}
		manifest, err := engine.LoadManifest(filepath.Join(dir, engine.DefaultManifestName))
		if err != nil {
			return err
		}
		if manifest.Created {
			fmt.Fprintf(out, "Created %s\n", manifest.Path)
		}
		return nil
	},
}

const defaultConfig = `# cssbundle configuration

# Directory holding the manifest and the stylesheets it lists
dir: static/css
manifest: compiler_config.json
color: false
quiet: false

# Build settings
build:
  mode: comments          # raw | comments | minify
  title: Project          # Name in the generated header
  preserve: []            # Import globs left untouched, e.g. "vendor/**"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
