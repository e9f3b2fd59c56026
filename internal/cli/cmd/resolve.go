package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli"
	"github.com/bnema/themesync/internal/cli/styles"
)

var resolvePlain bool

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the theme a document would start with",
	Long: `Resolve the theme from the stored preference, falling back to the system
color scheme, and print it with the source that decided it.

With --plain only "light" or "dark" is printed, for use in scripts:

  themesync resolve --plain`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolvePlain, "plain", false, "print only the theme name (default when stdout is not a terminal)")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	res := app.ResolveUC.Resolve(app.Ctx())
	if resolvePlain || !cli.IsTerminal(cmd.OutOrStdout()) {
		fmt.Fprintln(cmd.OutOrStdout(), res.Theme)
		return nil
	}

	source := res.Source
	if source == usecase.SourceSystem {
		// Name the detector that answered.
		source = fmt.Sprintf("%s (%s)", source, app.Monitor.Current().Source)
	}

	renderer := styles.NewThemeRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderResolution(res.Theme, source))
	return nil
}
