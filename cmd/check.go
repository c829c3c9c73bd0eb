package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kspace-org/kspace/internal/curriculum"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the learning path data file",
	Long:  `Loads and validates the data file, then reports how many sections and items it has and which items are still coming soon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		doc, err := curriculum.Open(context.Background(), cfg.DataFile)
		if err != nil {
			return fmt.Errorf("checking %s: %w", cfg.DataFile, err)
		}

		fmt.Printf("%s is valid\n", cfg.DataFile)
		if doc.Meta.Title != "" {
			fmt.Printf("  Title:    %s (version %s, updated %s)\n", doc.Meta.Title, doc.Meta.Version, doc.Meta.Updated)
		}
		fmt.Printf("  Sections: %d\n", len(doc.Sections))
		fmt.Printf("  Items:    %d\n", doc.ItemCount())
		fmt.Printf("  Pending:  %d\n", doc.PendingCount())

		if doc.PendingCount() > 0 {
			fmt.Println()
			fmt.Println("Coming soon:")
			for _, s := range doc.Sections {
				for _, it := range s.Items {
					if it.IsPending() {
						fmt.Printf("  %s / %s\n", s.Title, it.Title)
					}
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
