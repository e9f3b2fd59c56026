package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, storage and color scheme detection",
	Long: `Doctor checks that the config file loads, that the preference database
opens, and asks every color scheme detector for its answer, marking the one
in use. It exits non-zero when the config or the database needs attention.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	version, dbErr := app.CheckDatabase(ctx)
	report := styles.DoctorReport{
		ConfigErr:     app.ConfigErr,
		Database:      app.DatabasePath(),
		DatabaseErr:   dbErr,
		SchemaVersion: version,
		ColorScheme:   usecase.NewCheckColorSchemeUseCase(app.Monitor, app.ResolveUC).Execute(ctx),
	}
	if app.ConfigManager != nil {
		report.ConfigFile = app.ConfigManager.GetConfigFile()
	}

	renderer := styles.NewDoctorRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(report))

	if !report.OK() {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}
