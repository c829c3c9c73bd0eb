package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kspace-org/kspace/internal/curriculum"
)

// navResult is the JSON printed by `kspace nav`.
type navResult struct {
	Page  string                `json:"page"`
	Found bool                  `json:"found"`
	Prev  *curriculum.FlatEntry `json:"prev"`
	Next  *curriculum.FlatEntry `json:"next"`
}

var navCmd = &cobra.Command{
	Use:   "nav <page-path>",
	Short: "Print the previous and next topics of a page",
	Long:  `Locates a page (e.g. topics/array.html) in the learning path and prints the topics directly before and after it as JSON. A neighbor with link "#" is not published yet.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		doc, err := curriculum.Open(context.Background(), cfg.DataFile)
		if err != nil {
			return fmt.Errorf("loading %s: %w", cfg.DataFile, err)
		}

		prev, next, found := curriculum.Neighbors(curriculum.Flatten(doc), args[0])
		if !found {
			fmt.Fprintf(os.Stderr, "Warning: %s is not in the learning path\n", args[0])
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(navResult{Page: args[0], Found: found, Prev: prev, Next: next})
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}
