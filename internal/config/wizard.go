package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to kspace! Let's set up your learning path site.")
	fmt.Println()

	cfg := DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Existing config found at %s; its values are used as defaults.\n\n", path)
		if existing, err := Load(path); err == nil {
			cfg = existing
		}
	}

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = strings.TrimSpace(title)

	// 2. Data file.
	dataPrompt := promptui.Prompt{
		Label:   "Learning path data file",
		Default: cfg.DataFile,
		Validate: func(s string) error {
			if !strings.HasSuffix(strings.TrimSpace(s), ".json") {
				return fmt.Errorf("data file must be a .json file")
			}
			return nil
		},
	}
	dataFile, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data file: %w", err)
	}
	cfg.DataFile = strings.TrimSpace(dataFile)

	// 3. Content and output directories.
	contentPrompt := promptui.Prompt{
		Label:   "Directory holding topic pages (Markdown)",
		Default: cfg.ContentDir,
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	cfg.ContentDir = strings.TrimSpace(contentDir)

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	// 4. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if extra := splitAndTrim(excludeStr); len(extra) > 0 {
		cfg.Exclude = append(append([]string{}, cfg.Exclude...), extra...)
	}

	// 5. Editing server.
	portPrompt := promptui.Prompt{
		Label:   "Editing server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	publishPrompt := promptui.Select{
		Label: "Publish saved changes with git push?",
		Items: []string{"yes", "no (commit only)"},
	}
	publishIdx, _, err := publishPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("publish selection: %w", err)
	}
	cfg.Git.Push = publishIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
