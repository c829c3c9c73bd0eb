package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kspace-org/kspace/internal/config"
	"github.com/kspace-org/kspace/internal/curriculum"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kspace configuration with an interactive wizard",
	Long: `Runs an interactive wizard to configure kspace for your project, generates a
.kspace.yml file and, when the data file does not exist yet, writes a starter
learning path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		if isRemote(cfg.DataFile) {
			return nil
		}
		if _, err := os.Stat(cfg.DataFile); err == nil {
			return nil
		}

		if err := curriculum.Save(cfg.DataFile, starterDocument(cfg.SiteTitle)); err != nil {
			return fmt.Errorf("writing starter data file: %w", err)
		}
		fmt.Printf("Starter learning path written to %s\n", cfg.DataFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func starterDocument(title string) *curriculum.Document {
	return &curriculum.Document{
		Meta: curriculum.Meta{Title: title, Version: "0.1"},
		Sections: []curriculum.Section{{
			ID:          "basics",
			Title:       "Basics",
			Description: "Where everyone starts",
			Items: []curriculum.Item{
				{ID: "intro", Title: "Introduction", Link: "./topics/intro.html", Tags: []string{"start"}},
				{ID: "next", Title: "Next Steps", Link: curriculum.PendingLink},
			},
		}},
	}
}
