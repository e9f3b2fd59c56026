package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/cli/model"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/config"
	"github.com/bnema/themesync/internal/infrastructure/dom"
	"github.com/bnema/themesync/internal/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of the theme, its toggle and the system color scheme",
	Long: `Open an interactive view that behaves like a page using themesync.

Press t to click the theme toggle: the theme flips and is stored. While no
choice is stored, changes to the desktop color scheme are followed live;
once one is stored they are shown but ignored.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// togglePage builds a document with one control matching the configured selector.
func togglePage(sel port.ToggleSelector) string {
	attrs := ""
	if sel.Class != "" {
		attrs += fmt.Sprintf(` class="%s"`, html.EscapeString(sel.Class))
	}
	if sel.ID != "" {
		attrs += fmt.Sprintf(` id="%s"`, html.EscapeString(sel.ID))
	}
	return fmt.Sprintf(`<html><body><button type="button"%s></button></body></html>`, attrs)
}

func runWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()
	// Log lines would tear the TUI; the view shows every event instead.
	ctx = logging.WithContext(ctx, zerolog.Nop())

	doc, err := dom.ParseString(togglePage(app.Config.ToggleSelector()))
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	ctrl := app.NewController(doc, nil, nil)
	defer ctrl.Close()
	ctrl.Start(ctx)
	doc.MarkReady()

	p := tea.NewProgram(model.NewWatchModel(ctx, ctrl, func() { app.Monitor.Refresh() }), tea.WithAltScreen())

	// Registered after the controller's own subscription, so the view
	// reads the already-updated theme.
	unsubscribe := app.Monitor.OnChange(func(pref port.ColorSchemePreference) {
		p.Send(model.SystemChangedMsg{PrefersDark: pref.PrefersDark, Source: pref.Source})
	})
	defer unsubscribe()

	if app.ConfigManager != nil && app.ConfigErr == nil {
		if err := app.ConfigManager.Watch(); err == nil {
			app.ConfigManager.OnConfigChange(func(_ *config.Config, changes []config.KeyChange) {
				p.Send(model.ConfigReloadedMsg{Changed: config.ChangedKeys(changes)})
			})
		}
	}

	watcher := colorscheme.NewWatcher(app.Monitor, app.Config.System.PollInterval, colorscheme.DefaultWatchPaths()...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Without anything to watch the view still works, just without live system updates.
		_ = watcher.Run(gctx)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})
	return g.Wait()
}
