package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/sigrender/internal/foundation/errors"
	"git.home.luguber.info/inful/sigrender/internal/logfields"
)

// watchDebounce coalesces editor write bursts into one re-render.
const watchDebounce = 250 * time.Millisecond

// watchAndRender re-renders whenever the model or rules file changes, until
// interrupted.
func watchAndRender(logger *slog.Logger, req renderRequest) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create file watcher").Build()
	}
	defer watcher.Close()

	paths := []string{req.ModelPath}
	if req.RulesPath != "" {
		paths = append(paths, req.RulesPath)
	}
	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to watch file").
				WithContext("path", path).
				Build()
		}
	}
	logger.Info("watching for changes", logfields.Count(len(paths)))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Editors replace files on save; re-add dropped watches.
			if event.Op&fsnotify.Rename != 0 {
				_ = watcher.Add(event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			logger.Debug("change detected, re-rendering", logfields.Path(req.ModelPath))
			if err := renderOnce(logger, req, os.Stdout); err != nil {
				// Keep watching through bad intermediate saves; report and continue.
				logger.Warn("re-render failed", logfields.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logfields.Error(err))
		case <-stop:
			logger.Info("stopping watch")
			return nil
		}
	}
}
