package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/rfplens-labs/rfplens-cli/internal/logger"
)

// settleDelay gives writers time to finish before a created file is
// ingested.
const settleDelay = 500 * time.Millisecond

// watchExtensions are the file types picked up automatically.
var watchExtensions = map[string]struct{}{
	".pdf": {}, ".txt": {}, ".md": {}, ".markdown": {}, ".csv": {},
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and ingest new documents",
	Long: `Watches a directory and automatically ingests every supported
document dropped into it. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := requireServices(ctx); err != nil {
		return err
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch target %s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	cmd.Printf("Watching %s (ctrl-c to stop)\n", dir)

	for {
		select {
		case <-ctx.Done():
			cmd.Println("Stopped.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if _, watched := watchExtensions[strings.ToLower(filepath.Ext(event.Name))]; !watched {
				continue
			}

			// Let the writer finish before reading the file.
			time.Sleep(settleDelay)

			raw, err := readRawDocument(event.Name)
			if err != nil {
				logger.Warn("Skipping %s: %v", event.Name, err)
				continue
			}
			raw.Title = raw.FileName

			documentID, err := ingestionService.Ingest(ctx, raw)
			if err != nil {
				logger.Warn("Ingest failed for %s: %v", event.Name, err)
				continue
			}
			cmd.Printf("Ingested %s as %s\n", raw.FileName, documentID)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
