package cmd

import (
	"fmt"
	"strings"

	"github.com/kspace-org/kspace/internal/config"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `kspace init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// isRemote reports whether the data file is fetched over HTTP.
func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// watchPaths returns the local inputs of the site.
func watchPaths(cfg *config.Config) []string {
	paths := []string{cfg.ContentDir}
	if !isRemote(cfg.DataFile) {
		paths = append(paths, cfg.DataFile)
	}
	return paths
}
