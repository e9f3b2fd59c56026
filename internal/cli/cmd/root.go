// Package cmd provides Cobra CLI commands for themesync.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "themesync",
		Short: "Keep light/dark themes in sync with the user and the system",
		Long: `themesync decides whether a document shows its light or dark theme.

An explicit choice made with a toggle is stored and always wins. Without one,
the system color scheme decides, and changes to it are followed live. The
chosen theme is written to the root data-theme attribute and every toggle
control gets a matching glyph, aria-label, aria-pressed and title.

The same logic ships as a WebAssembly build for browsers; this CLI drives
it against HTML files, a SQLite preference store and the desktop's color
scheme (GTK_THEME, gsettings or macOS defaults).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&appOpts.SystemOverride, "system", "",
		"pin the system color scheme (dark, light) instead of detecting it")
	rootCmd.PersistentFlags().StringVar(&appOpts.DatabasePath, "db", "",
		"preference database path (default $XDG_DATA_HOME/themesync/themesync.db)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
