package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/readable-cli/internal/logger"
	"github.com/custodia-labs/readable-cli/readability"
)

// debounceDelay absorbs editor save bursts (truncate+write, or
// write-to-temp-then-rename) into a single rescore.
const debounceDelay = 200 * time.Millisecond

var watchNoColor bool

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Rescore a file whenever it changes",
	Long: `Watches a file and reprints its readability scores after every
change. Useful while editing a draft to see the scores move. Exits
when the file is removed or on interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchNoColor, "no-color", false, "disable coloured output")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := filepath.Clean(args[0])
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory: editors commonly replace the file
	// via rename, which drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rescore(cmd, path); err != nil {
		return err
	}

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			logger.Info("event: %s", event)

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if _, err := os.Stat(path); err != nil {
					cmd.Printf("%s removed, exiting\n", path)
					return nil
				}
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.After(debounceDelay)
			}

		case <-pending:
			pending = nil
			if err := rescore(cmd, path); err != nil {
				// The file may be mid-save; report and keep watching.
				logger.Warn("rescore failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// rescore reads the file and prints a fresh score table.
func rescore(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	scores := readability.Metrics(string(data))

	cmd.Printf("%s  %s\n", time.Now().Format("15:04:05"), path)
	cmd.Print(renderScoreTable(scores, colorEnabled(watchNoColor)))
	cmd.Println()
	return nil
}
