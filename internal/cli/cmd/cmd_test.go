package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
)

const samplePage = `<!DOCTYPE html>
<html lang="en"><head><title>t</title></head>
<body><button class="theme-toggle"></button></body></html>`

// runCLI executes the root command in an isolated XDG environment.
func runCLI(t *testing.T, dbPath string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", dbPath))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		appOpts = appOptsZero
		renderStored = ""
		renderOutput = ""
		togglePlain = false
		resolvePlain = false
		configWriteDefaults = false
		configWriteOutput = ""
		genDocsOutputDir = ""
		genDocsFormat = "man"
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

var appOptsZero = appOpts

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("GTK_THEME", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	return root
}

func TestRender_NoStoredFollowsSystem(t *testing.T) {
	root := isolateXDG(t)
	page := filepath.Join(root, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(samplePage), 0o600))

	out := runCLI(t, filepath.Join(root, "prefs.db"), "render", page, "--system", "dark", "--stored", "none")

	assert.Contains(t, out, `data-theme="dark"`)
	assert.Contains(t, out, `aria-pressed="true"`)
	assert.Contains(t, out, `aria-label="Switch to light mode"`)
	assert.Contains(t, out, `title="Toggle theme"`)
}

func TestRender_StoredWinsOverSystem(t *testing.T) {
	root := isolateXDG(t)
	page := filepath.Join(root, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(samplePage), 0o600))
	dest := filepath.Join(root, "out.html")

	runCLI(t, filepath.Join(root, "prefs.db"), "render", page, "--system", "dark", "--stored", "light", "-o", dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-theme="light"`)
	assert.Contains(t, string(data), `aria-pressed="false"`)
}

func TestToggleAndResolve_PersistAcrossRuns(t *testing.T) {
	root := isolateXDG(t)
	db := filepath.Join(root, "prefs.db")

	assert.Equal(t, "light", strings.TrimSpace(runCLI(t, db, "resolve", "--plain", "--system", "light")))
	assert.Equal(t, "dark", strings.TrimSpace(runCLI(t, db, "toggle", "--plain", "--system", "light")))

	// The stored choice now wins over the system.
	assert.Equal(t, "dark", strings.TrimSpace(runCLI(t, db, "resolve", "--plain", "--system", "light")))
	assert.Equal(t, "light", strings.TrimSpace(runCLI(t, db, "toggle", "--plain", "--system", "dark")))
	assert.Equal(t, "light", strings.TrimSpace(runCLI(t, db, "resolve", "--plain", "--system", "dark")))
}

func TestConfigSchemaCommand(t *testing.T) {
	root := isolateXDG(t)
	out := runCLI(t, filepath.Join(root, "prefs.db"), "config", "schema")
	assert.Contains(t, out, `"poll_interval"`)
}

func TestConfigWriteCommand(t *testing.T) {
	root := isolateXDG(t)
	out := runCLI(t, filepath.Join(root, "prefs.db"), "config", "write", "--defaults")
	assert.Contains(t, out, "[toggles]")
	assert.Contains(t, out, "poll_interval")
	assert.Contains(t, out, "5s")

	dest := filepath.Join(root, "written.toml")
	runCLI(t, filepath.Join(root, "prefs.db"), "config", "write", "-o", dest)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[storage]")
}

func TestGenDocs_Markdown(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "docs")

	out := runCLI(t, filepath.Join(root, "prefs.db"), "gen-docs", "--format", "markdown", "--output", dir)

	assert.Contains(t, out, "themesync_toggle.md")
	assert.FileExists(t, filepath.Join(dir, "themesync.md"))
	assert.FileExists(t, filepath.Join(dir, "themesync_render.md"))
}

func TestDoctor_ReportsDetectors(t *testing.T) {
	root := isolateXDG(t)
	out := runCLI(t, filepath.Join(root, "prefs.db"), "doctor", "--system", "dark")

	assert.Contains(t, out, "Doctor")
	assert.Contains(t, out, "override")
	assert.Contains(t, out, "prefs.db")
	assert.Contains(t, out, "schema version 1")
	assert.FileExists(t, filepath.Join(root, "prefs.db"))
}

func TestRenderStore(t *testing.T) {
	ctx := context.Background()

	store, err := renderStore(ctx, "", "theme")
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = renderStore(ctx, "none", "theme")
	require.NoError(t, err)
	_, ok := store.Load(ctx)
	assert.False(t, ok)

	store, err = renderStore(ctx, "dark", "theme")
	require.NoError(t, err)
	theme, ok := store.Load(ctx)
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeDark, theme)

	_, err = renderStore(ctx, "Dark", "theme")
	require.ErrorIs(t, err, entity.ErrInvalidTheme)
}

func TestTogglePage(t *testing.T) {
	assert.Contains(t, togglePage(port.ToggleSelector{Class: "a", ID: "b"}), `class="a" id="b"`)
	page := togglePage(port.ToggleSelector{ID: `x"y`})
	assert.NotContains(t, page, "class=")
	assert.Contains(t, page, `id="x&#34;y"`)
}
