package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/infrastructure/dom"
)

var togglePlain bool

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip the theme and store it as the explicit choice",
	Long: `Do what a click on a theme toggle does: take the current theme, switch to
the opposite one and store it. From then on the stored choice wins over the
system color scheme.`,
	Args: cobra.NoArgs,
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().BoolVar(&togglePlain, "plain", false, "print only the new theme name (default when stdout is not a terminal)")
}

func runToggle(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	doc, err := dom.ParseString("<html></html>")
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	ctrl := app.NewController(doc, nil, nil)
	defer ctrl.Close()

	ctrl.Start(ctx)
	out := ctrl.Toggle(ctx)

	if togglePlain || !cli.IsTerminal(cmd.OutOrStdout()) {
		fmt.Fprintln(cmd.OutOrStdout(), out.Current)
		return nil
	}

	// Render with the new theme's palette.
	renderer := styles.NewThemeRenderer(styles.NewTheme(out.Current))
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderToggle(out.Previous, out.Current, out.Persisted))
	return nil
}
