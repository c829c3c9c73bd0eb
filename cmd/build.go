package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kspace-org/kspace/internal/config"
	"github.com/kspace-org/kspace/internal/curriculum"
	"github.com/kspace-org/kspace/internal/livereload"
	"github.com/kspace-org/kspace/internal/progress"
	"github.com/kspace-org/kspace/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static learning path site",
	Long: `Renders the index page, every topic page under the content directory and
the site assets into the output directory. With --watch the site is rebuilt
whenever the data file or a topic changes.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	buildCmd.Flags().Bool("watch", false, "rebuild when the data file or content changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputDir = output
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = build(ctx, cfg, progress.NewReporter("Rendering topics"))
	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return err
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	w, err := livereload.NewWatcher(watchPaths(cfg), livereload.WithOnChange(func() {
		fmt.Println("Change detected, rebuilding...")
		if err := build(ctx, cfg, progress.Nop{}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}))
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Stop()

	fmt.Println("Watching for changes, press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}

// build runs one generation and prints its summary. A data load failure is
// reported but still leaves a complete site with the diagnostic index.
func build(ctx context.Context, cfg *config.Config, reporter progress.Reporter) error {
	start := time.Now()
	g := site.NewGenerator(cfg)
	g.Reporter = reporter

	res, err := g.Generate(ctx)
	if err != nil && !isDataError(err) {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Println()
	if err != nil {
		fmt.Printf("Site generated with errors: %v\n", err)
	} else {
		fmt.Println("Site generated!")
	}
	fmt.Printf("  Sections:    %d\n", res.Sections)
	fmt.Printf("  Items:       %d (%d coming soon)\n", res.Items, res.Pending)
	fmt.Printf("  Topic pages: %d\n", res.Topics)
	if verbose {
		for _, p := range res.Unlisted {
			fmt.Printf("  Not in the learning path: %s\n", p)
		}
	} else if len(res.Unlisted) > 0 {
		fmt.Printf("  Unlisted:    %d (use -v to list)\n", len(res.Unlisted))
	}
	fmt.Printf("  Duration:    %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("  Output:      %s\n", cfg.OutputDir)

	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	return nil
}

func isDataError(err error) bool {
	return errors.Is(err, curriculum.ErrDataUnavailable) || errors.Is(err, curriculum.ErrDataMalformed)
}
