package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/infrastructure/config"
)

var (
	configKeysJSON      bool
	configKeysSection   string
	configWriteDefaults bool
	configWriteOutput   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the effective configuration, write it back as TOML, print its JSON Schema, or document every key.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print the config file in use and every value after defaults and THEMESYNC_* environment overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.toml",
	Long: `Print the JSON Schema describing config.toml, for editor completion:

  themesync config schema > ~/.config/themesync/config.schema.json`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Document every configuration key",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Print the configuration as TOML",
	Long: `Print the effective configuration (or the defaults) as a complete config.toml.

  themesync config write --defaults -o ~/.config/themesync/config.toml`,
	Args: cobra.NoArgs,
	RunE: runConfigWrite,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolVar(&configWriteDefaults, "defaults", false, "write the default configuration")
	configWriteCmd.Flags().StringVarP(&configWriteOutput, "output", "o", "", "write to file instead of stdout")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only keys of this section (e.g. Toggles)")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	if app.ConfigErr != nil {
		fmt.Fprint(out, renderer.RenderError(app.ConfigErr))
	}

	path := ""
	if app.ConfigManager != nil {
		path = app.ConfigManager.GetConfigFile()
	}
	fmt.Fprint(out, renderer.RenderConfigInfo(path))
	fmt.Fprintln(out)
	fmt.Fprint(out, renderer.RenderValues(configValues(app.Config, app.DatabasePath())))
	return nil
}

// configValues flattens cfg for display, with the database path resolved.
func configValues(cfg *config.Config, dbPath string) []styles.ConfigValue {
	settings := config.Settings(cfg)
	values := make([]styles.ConfigValue, 0, len(settings))
	for _, s := range settings {
		if s.Key == "database.path" {
			s.Value = dbPath
		}
		values = append(values, styles.ConfigValue{Key: s.Key, Value: s.Value})
	}
	return values
}

func runConfigWrite(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	if configWriteDefaults {
		cfg = config.DefaultConfig()
	}

	if configWriteOutput != "" {
		if err := config.WriteConfigOrdered(cfg, configWriteOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", configWriteOutput)
		return nil
	}

	data, err := config.EncodeConfig(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		out, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys, result.Sections))
	return nil
}
