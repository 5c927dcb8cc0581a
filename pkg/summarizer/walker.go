// --- START OF FINAL REVISED FILE pkg/summarizer/walker.go ---
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileEntry is a regular file found directly inside the scanned folder.
type FileEntry struct {
	Name string
	Path string
	Size int64
}

// WalkerFactory defines a function type for creating Walkers.
type WalkerFactory func(opts *Options, loggerHandler slog.Handler) *Walker

// Walker lists the regular files directly inside the input folder.
// Subdirectories are never descended into.
type Walker struct {
	opts   *Options
	hooks  Hooks
	logger *slog.Logger
}

// NewWalker creates a new Walker instance.
func NewWalker(opts *Options, loggerHandler slog.Handler) *Walker { // Minimal comment
	hooks := opts.EventHooks
	if hooks == nil {
		hooks = &NoOpHooks{}
	}
	return &Walker{
		opts:   opts,
		hooks:  hooks,
		logger: slog.New(loggerHandler).With(slog.String("component", "walker")),
	}
}

// List returns the regular files of the input folder ordered by name.
// Symbolic links are followed, so a link to a regular file is included.
// Directories, devices, sockets, pipes and entries that cannot be stat'ed are
// skipped. Failure to read the folder itself wraps ErrListFailed.
func (w *Walker) List(ctx context.Context) ([]FileEntry, error) {
	w.logger.Debug("Listing folder", slog.String("path", w.opts.InputPath))
	dirEntries, err := os.ReadDir(w.opts.InputPath)
	if err != nil {
		w.logger.Error("Failed to read folder", slog.String("path", w.opts.InputPath), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: '%s': %w", ErrListFailed, w.opts.InputPath, err)
	}

	files := make([]FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			w.logger.Info("Folder listing cancelled", slog.String("reason", err.Error()))
			return nil, err
		}

		fullPath := filepath.Join(w.opts.InputPath, de.Name())
		info, err := os.Stat(fullPath)
		if err != nil {
			w.logger.Warn("Skipping unreadable entry", slog.String("name", de.Name()), slog.String("error", err.Error()))
			continue
		}
		if !info.Mode().IsRegular() {
			w.logger.Debug("Skipping non-regular entry", slog.String("name", de.Name()), slog.String("mode", info.Mode().String()))
			continue
		}

		files = append(files, FileEntry{Name: de.Name(), Path: fullPath, Size: info.Size()})
		if hookErr := w.hooks.OnFileDiscovered(de.Name()); hookErr != nil {
			w.logger.Warn("Error reported by OnFileDiscovered hook", slog.String("name", de.Name()), slog.String("hookError", hookErr.Error()))
		}
	}

	w.logger.Debug("Folder listed", slog.Int("entries", len(dirEntries)), slog.Int("files", len(files)))
	return files, nil
}

// --- END OF FINAL REVISED FILE pkg/summarizer/walker.go ---
