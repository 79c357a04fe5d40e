package loop

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/itsmostafa/rpncalc/internal/source"
)

const defaultDebounce = 100 * time.Millisecond

// Watch runs a file source once and then again every time the file is
// written, each run starting from an empty execution context. It returns
// when ctx is cancelled.
func Watch(ctx context.Context, cfg Config) error {
	cfg = withDefaults(cfg)

	file, ok := cfg.Source.(source.File)
	if !ok {
		return fmt.Errorf("watch requires a file source, got %T", cfg.Source)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file rather than
	// writing it in place, which drops a watch on the file itself.
	target := filepath.Clean(file.Path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", file.Path, err)
	}

	runOnce := func() {
		if _, err := Run(ctx, cfg); err != nil && ctx.Err() == nil {
			FormatError(cfg.Err, err, cfg.NoColor)
		}
	}

	runOnce()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			cfg.Logger.Debug("watch event", "file", event.Name, "op", event.Op.String())
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				pending = time.After(cfg.Debounce)
			}

		case <-pending:
			pending = nil
			FormatRerun(cfg.Err, file.Path, cfg.NoColor)
			runOnce()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cfg.Logger.Warn("watch error", "err", err)
		}
	}
}
