package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/dom"
	"github.com/bnema/themesync/internal/infrastructure/persistence"
	"github.com/bnema/themesync/internal/infrastructure/persistence/memory"
)

var (
	renderStored string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render <file.html|->",
	Short: "Apply the theme to an HTML page and print the result",
	Long: `Parse an HTML page, run the same start sequence a browser would (resolve,
apply to the root element, synchronize toggle controls) and print the page.

The environment defaults to the stored preference and the detected system
color scheme. Use --stored and --system to supply it instead:

  themesync render index.html --stored none --system dark
  themesync render - < index.html > themed.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderStored, "stored", "",
		"stored preference to assume (dark, light, none); default reads the store")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	store, err := renderStore(ctx, renderStored, app.Store.Key())
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	ctrl := app.NewController(doc, store, nil)
	defer ctrl.Close()

	ctrl.Start(ctx)
	doc.MarkReady()

	if renderOutput == "" {
		return doc.Render(cmd.OutOrStdout())
	}

	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := doc.Render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// renderStore returns nil (use the persistent store) or an in-memory store
// holding the assumed preference.
func renderStore(ctx context.Context, value, key string) (port.PreferenceStore, error) {
	switch value {
	case "":
		return nil, nil
	case "none":
		return persistence.NewPreferenceStore(memory.NewPreferenceRepository(), key), nil
	}

	theme, err := entity.ParseTheme(value)
	if err != nil {
		return nil, fmt.Errorf("--stored: %w", err)
	}
	repo := memory.NewPreferenceRepository()
	if err := repo.Set(ctx, entity.NewStoredPreference(key, theme)); err != nil {
		return nil, err
	}
	return persistence.NewPreferenceStore(repo, key), nil
}

func readDocument(stdin io.Reader, path string) (*dom.Document, error) {
	if path == "-" {
		doc, err := dom.Parse(stdin)
		if err != nil {
			return nil, fmt.Errorf("parse stdin: %w", err)
		}
		return doc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
