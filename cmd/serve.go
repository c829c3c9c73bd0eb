package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kspace-org/kspace/internal/db"
	"github.com/kspace-org/kspace/internal/editor"
	"github.com/kspace-org/kspace/internal/history"
	"github.com/kspace-org/kspace/internal/livereload"
	"github.com/kspace-org/kspace/internal/publish"
	"github.com/kspace-org/kspace/internal/server"
	"github.com/kspace-org/kspace/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the learning path with the editing API",
	Long: `Serves the site dynamically (the data file is read on every request),
together with the editing API: /api/topics, /api/save-topics, /api/git-push
and /api/history. With --watch, open pages reload when the data file or a
topic changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", false, "reload open pages when inputs change")
	serveCmd.Flags().Bool("open", false, "open the browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	watch, _ := cmd.Flags().GetBool("watch")

	database, err := db.Open(cfg.Server.HistoryDB)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer database.Close()

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, database)
	r := srv.Router()

	if watch {
		hub := livereload.NewHub()
		hub.RegisterRoutes(r)

		w, err := livereload.NewWatcher(watchPaths(cfg), livereload.WithOnChange(func() {
			if verbose {
				fmt.Fprintf(os.Stderr, "Change detected, reloading %d page(s)\n", hub.Count())
			}
			hub.Broadcast()
		}))
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Stop()
	}

	historyStore := history.NewStore(database)
	history.RegisterRoutes(r, historyStore)

	if isRemote(cfg.DataFile) {
		fmt.Fprintf(os.Stderr, "Editing API disabled: %s is not a local file\n", cfg.DataFile)
	} else {
		editor.RegisterRoutes(r, &editor.Editor{
			DataFile:  cfg.DataFile,
			Publisher: publish.NewGit(cfg.Git, "."),
			History:   historyStore,
			OnChange: func() {
				if verbose {
					fmt.Fprintf(os.Stderr, "Saved %s\n", cfg.DataFile)
				}
			},
		})
	}

	site.NewHandler(cfg, watch).RegisterRoutes(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	fmt.Fprintf(os.Stderr, "kspace v%s serving %s at %s\n", Version, cfg.DataFile, url)
	fmt.Fprintf(os.Stderr, "  History: %s\n", database.Path())
	fmt.Fprintf(os.Stderr, "  Topics:  %s\n", cfg.ContentDir)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
