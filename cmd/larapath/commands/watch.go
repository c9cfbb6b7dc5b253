package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/larapath/internal/config"
	"github.com/abdul-hamid-achik/larapath/pkg/annotate"
	"github.com/abdul-hamid-achik/larapath/pkg/scanner"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-annotate route files as they change",
	Long: `Watch a routes directory and print the annotations that change every
time a route file is written.

Changes to the same file are debounced (500ms by default, see the
"debounce" config key). Deleting a file drops its annotations. Editing
the config file picks up "larapath toggle" without a restart.

Examples:
  larapath watch
  larapath watch app/routes
  larapath watch --debounce 1s`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

// Flags
var watchDebounce time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "Delay after the last change before re-annotating (default from config)")
}

// routeWatcher turns file events into annotation updates.
type routeWatcher struct {
	session   *annotate.Session
	debouncer *annotate.Debouncer
	logger    *slog.Logger

	mu  sync.Mutex
	out io.Writer
}

func newRouteWatcher(session *annotate.Session, debounce time.Duration, out io.Writer, logger *slog.Logger) *routeWatcher {
	return &routeWatcher{
		session:   session,
		debouncer: annotate.NewDebouncer(debounce),
		logger:    logger,
		out:       out,
	}
}

// handle reacts to one watcher event.
func (w *routeWatcher) handle(event fsnotify.Event) {
	if !scanner.IsRouteFile(event.Name) {
		return
	}

	switch {
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.debouncer.Cancel(event.Name)
		w.remove(event.Name)
	case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
		path := event.Name
		w.debouncer.Trigger(path, func() { w.refresh(path) })
	}
}

// refresh re-reads path and prints the annotations that changed.
func (w *routeWatcher) refresh(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("failed to read route file", "file", path, "error", err)
		w.remove(path)
		return
	}

	d := w.session.Update(path, string(content))
	if d.Empty() {
		w.logger.Debug("annotations unchanged", "file", path)
		return
	}
	w.print(path, d)
}

// remove drops the annotations of a deleted file.
func (w *routeWatcher) remove(path string) {
	if removed := w.session.Clear(path); len(removed) > 0 {
		w.print(path, annotate.Diff{Removed: removed})
	}
}

// refreshAll re-annotates every route file under dir.
func (w *routeWatcher) refreshAll(dir string) int {
	count := 0
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != dir && skipWatchDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if scanner.IsRouteFile(path) {
			w.refresh(path)
			count++
		}
		return nil
	})
	return count
}

// setEnabled applies a changed toggle and reports whether it changed.
// Disabling prints every cleared annotation as removed.
func (w *routeWatcher) setEnabled(enabled bool) bool {
	changed, cleared := w.session.SetEnabled(enabled)

	paths := make([]string, 0, len(cleared))
	for path := range cleared {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if anns := cleared[path]; len(anns) > 0 {
			w.print(path, annotate.Diff{Removed: anns})
		}
	}
	return changed
}

func (w *routeWatcher) print(path string, d annotate.Diff) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	w.mu.Lock()
	defer w.mu.Unlock()

	timestamp := time.Now().Format("15:04:05")
	for _, a := range d.Removed {
		fmt.Fprintf(w.out, "  [%s] %s %s %s\n", timestamp, red("-"), dim(fmt.Sprintf("%s:%d", path, a.Line+1)), a.Label)
	}
	for _, a := range d.Added {
		fmt.Fprintf(w.out, "  [%s] %s %s %s %s\n", timestamp, green("+"), dim(fmt.Sprintf("%s:%d", path, a.Line+1)), a.Route.Method, a.Label)
	}
}

func skipWatchDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "vendor" || name == "node_modules"
}

func runWatch(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	cfg := loadConfig()

	dir := cfg.RoutesDir
	if len(args) > 0 {
		dir = args[0]
	}
	debounce := cfg.Debounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	if _, err := os.Stat(dir); err != nil {
		exitWithError(fmt.Errorf("routes directory not found: %s", dir))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	session := annotate.NewSession(cfg.Rules())
	session.SetEnabled(cfg.Enabled)
	w := newRouteWatcher(session, debounce, os.Stdout, logger)
	defer w.debouncer.Stop()

	fmt.Printf("\n  %s Route Watcher\n\n", cyan("larapath"))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		exitWithError(fmt.Errorf("failed to create file watcher: %w", err))
	}
	defer func() { _ = watcher.Close() }()

	// Watch directories recursively
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != dir && skipWatchDir(info.Name()) {
				return filepath.SkipDir
			}
			if err := watcher.Add(path); err != nil {
				logger.Warn("failed to watch directory", "dir", path, "error", err)
			}
		}
		return nil
	})

	if cfg.File != "" {
		if err := watcher.Add(cfg.File); err != nil {
			logger.Warn("failed to watch config file", "file", cfg.File, "error", err)
		}
	}

	if session.Enabled() {
		count := w.refreshAll(dir)
		fmt.Printf("\n  %s Annotated %d route files\n", green("✓"), count)
	} else {
		fmt.Printf("  %s Annotations are disabled (run \"larapath toggle\")\n", yellow("!"))
	}
	fmt.Printf("  %s Watching %s for changes...\n\n", green("✓"), dir)

	// Signal handling
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if cfg.File != "" && filepath.Clean(event.Name) == filepath.Clean(cfg.File) {
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				reloaded, err := config.Load(cfgFile)
				if err != nil {
					logger.Warn("failed to reload config", "error", err)
					continue
				}
				if w.setEnabled(reloaded.Enabled) {
					logger.Info("annotations toggled", "enabled", reloaded.Enabled)
					if reloaded.Enabled {
						w.refreshAll(dir)
					}
				}
				continue
			}

			// New directories need their own watch
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skipWatchDir(info.Name()) {
					_ = watcher.Add(event.Name)
					continue
				}
			}

			w.handle(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)

		case <-signals:
			fmt.Println("\n  Shutting down...")
			return
		}
	}
}
