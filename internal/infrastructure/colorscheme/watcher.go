package colorscheme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/themesync/internal/logging"
)

// DefaultPollInterval is how often the watcher re-queries detectors
// when no file event arrives.
const DefaultPollInterval = 5 * time.Second

// Watcher refreshes a Monitor when desktop settings files change and on a ticker.
type Watcher struct {
	monitor  *Monitor
	interval time.Duration
	paths    []string
}

// NewWatcher creates a watcher. interval <= 0 disables polling; paths may be empty.
func NewWatcher(monitor *Monitor, interval time.Duration, paths ...string) *Watcher {
	return &Watcher{
		monitor:  monitor,
		interval: interval,
		paths:    paths,
	}
}

// DefaultWatchPaths returns the dconf user database, which GNOME rewrites
// whenever color-scheme changes.
func DefaultWatchPaths() []string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		configHome = filepath.Join(home, ".config")
	}
	return []string{filepath.Join(configHome, "dconf", "user")}
}

// Run blocks until ctx is done, refreshing the monitor on file events and ticks.
// A failure to set up file watching degrades to polling only.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	w.monitor.Refresh()

	var events <-chan fsnotify.Event
	var errs <-chan error
	targets := make(map[string]struct{}, len(w.paths))

	if len(w.paths) > 0 {
		fsw, err := fsnotify.NewWatcher()
		if err != nil {
			log.Warn().Err(err).Msg("file watching unavailable, polling only")
		} else {
			defer fsw.Close()
			for _, p := range w.paths {
				// Watch the directory: settings files are replaced atomically.
				if addErr := fsw.Add(filepath.Dir(p)); addErr != nil {
					log.Debug().Err(addErr).Str("path", p).Msg("cannot watch settings directory")
					continue
				}
				targets[filepath.Clean(p)] = struct{}{}
			}
			events, errs = fsw.Events, fsw.Errors
		}
	}

	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	if events == nil && tick == nil {
		return fmt.Errorf("nothing to watch: no settings paths and polling disabled")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if _, watched := targets[filepath.Clean(ev.Name)]; !watched {
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("settings change detected")
			w.monitor.Refresh()
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn().Err(err).Msg("settings watcher error")
		case <-tick:
			w.monitor.Refresh()
		}
	}
}
