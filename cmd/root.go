package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kspace",
	Short: "Learning path knowledge base",
	Long: `kspace renders a curated learning path (sections of topics, stored as a
single JSON data file) into a browsable site with search, topic pages and
previous/next navigation. It also serves an editing API that saves the data
file and publishes it with git.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".kspace.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
