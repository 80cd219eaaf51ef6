package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/logger"
)

var (
	watchFlags  decorationFlags
	watchOutput string
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Decorate a file again every time it changes",
	Long: `Watch a file and decorate its contents each time it is written.

With --output the result replaces that file atomically on every change;
otherwise each rendering is printed to stdout. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchFlags.register(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "write to FILE instead of stdout")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if decorationService == nil {
		return errors.New("decoration service not configured")
	}

	opts, err := watchFlags.resolve(cmd)
	if err != nil {
		return err
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}
	if abs, err := filepath.Abs(watchOutput); watchOutput != "" && err == nil && abs == path {
		return errors.New("output must differ from the watched file")
	}

	render := func() error {
		return renderFile(cmd, path, watchOutput, opts)
	}
	return watchFile(cmd.Context(), path, render)
}

// renderFile decorates the current contents of path into output.
func renderFile(cmd *cobra.Command, path, outputPath string, opts resolvedOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	out, err := openOutput(cmd, outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := decorateTo(cmd, out, f, opts); err != nil {
		return err
	}
	if !out.isFile() {
		fmt.Fprintln(out)
	}
	return out.Commit()
}

// watchFile calls render once, then again after every change to path,
// until ctx is done. The parent directory is watched so files replaced by
// editors keep being followed.
func watchFile(ctx context.Context, path string, render func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	if err := render(); err != nil {
		return err
	}
	logger.Info("Watching %s", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isContentChange(event, path) {
				continue
			}
			logger.Debug("%s: %s", event.Op, event.Name)
			if err := render(); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				logger.Warn("render %s: %v", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)
		}
	}
}

// isContentChange reports whether event may have changed the contents of path.
func isContentChange(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
