package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssbundle"
	engine "github.com/yacobolo/cssbundle/internal/cssbundle"
)

const (
	defaultConfigFile = ".cssbundle.yaml"
	defaultDir        = "static/css"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSBUNDLE_* prefix)
	if err := k.Load(env.Provider("CSSBUNDLE_", ".", func(s string) string {
		// CSSBUNDLE_BUILD_MODE -> build.mode
		// CSSBUNDLE_DIR -> dir
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSBUNDLE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRunOptions constructs the library's RunOptions from koanf state.
func buildRunOptions() (cssbundle.RunOptions, error) {
	mode, err := buildMode()
	if err != nil {
		return cssbundle.RunOptions{}, err
	}

	return cssbundle.RunOptions{
		Dir:      getStringWithFallback("dir", "dir", defaultDir),
		Manifest: getStringWithFallback("manifest", "manifest", engine.DefaultManifestName),
		Mode:     mode,
		Preserve: getStringsWithFallback("preserve", "build.preserve"),
		Title:    getStringWithFallback("title", "build.title", engine.DefaultTitle),
	}, nil
}

// buildMode resolves the normalization mode; --minify wins over --mode.
func buildMode() (cssbundle.Mode, error) {
	if k.Bool("minify") {
		return cssbundle.ModeMinify, nil
	}
	return cssbundle.ParseMode(getStringWithFallback("mode", "build.mode", string(engine.DefaultMode)))
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key.
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	return k.Strings(configKey)
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
