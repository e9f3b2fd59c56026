package themer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/colorscheme"
	"github.com/bnema/themesync/internal/infrastructure/dom"
	"github.com/bnema/themesync/internal/infrastructure/persistence"
	"github.com/bnema/themesync/internal/infrastructure/persistence/memory"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head><title>blog</title></head>
<body>
  <header><button class="theme-toggle" type="button"></button></header>
  <footer><button id="theme-toggle" type="button"></button></footer>
</body>
</html>`

type harness struct {
	doc      *dom.Document
	repo     *memory.PreferenceRepository
	system   *colorscheme.StaticDetector
	monitor  *colorscheme.Monitor
	ctrl     *Controller
	toggleEl *dom.Element
}

func newHarness(t *testing.T, stored string, systemDark bool) *harness {
	t.Helper()
	ctx := context.Background()

	doc, err := dom.ParseString(page)
	require.NoError(t, err)

	repo := memory.NewPreferenceRepository()
	if stored != "" {
		require.NoError(t, repo.Set(ctx, &entity.StoredPreference{Key: "theme", Value: stored}))
	}

	system := colorscheme.NewStaticDetector(systemDark)
	monitor := colorscheme.NewMonitor(system)

	opts := DefaultOptions()
	h := &harness{
		doc:     doc,
		repo:    repo,
		system:  system,
		monitor: monitor,
		ctrl:    New(doc, persistence.NewPreferenceStore(repo, ""), monitor, opts),
	}
	h.toggleEl = doc.Elements(opts.Selector)[0]
	t.Cleanup(h.ctrl.Close)
	return h
}

func (h *harness) rootTheme(t *testing.T) string {
	t.Helper()
	v, ok := h.doc.RootAttribute("data-theme")
	require.True(t, ok)
	return v
}

func (h *harness) stored(t *testing.T) (string, bool) {
	t.Helper()
	pref, err := h.repo.Get(context.Background(), "theme")
	require.NoError(t, err)
	if pref == nil {
		return "", false
	}
	return pref.Value, true
}

func (h *harness) assertToggles(t *testing.T, glyph, pressed string) {
	t.Helper()
	for _, el := range h.doc.Elements(DefaultOptions().Selector) {
		assert.Equal(t, glyph, el.Text())
		got, _ := el.Attribute("aria-pressed")
		assert.Equal(t, pressed, got)
	}
}

func TestStart_AppliesBeforeReady(t *testing.T) {
	h := newHarness(t, "", true)

	theme := h.ctrl.Start(context.Background())

	assert.Equal(t, entity.ThemeDark, theme)
	assert.Equal(t, "dark", h.rootTheme(t))
	// Toggles untouched until the document is interactive
	assert.Empty(t, h.toggleEl.Text())
	_, hasPressed := h.toggleEl.Attribute("aria-pressed")
	assert.False(t, hasPressed)
}

func TestScenario1_NoStoredSystemDark(t *testing.T) {
	h := newHarness(t, "", true)

	h.ctrl.Start(context.Background())
	h.doc.MarkReady()

	assert.Equal(t, "dark", h.rootTheme(t))
	h.assertToggles(t, "☀️", "true")
	label, _ := h.toggleEl.Attribute("aria-label")
	assert.Equal(t, "Switch to light mode", label)
	title, _ := h.toggleEl.Attribute("title")
	assert.Equal(t, "Toggle theme", title)
}

func TestScenario2_StoredLightWinsOverSystemDark(t *testing.T) {
	h := newHarness(t, "light", true)

	h.ctrl.Start(context.Background())
	h.doc.MarkReady()

	assert.Equal(t, "light", h.rootTheme(t))
	h.assertToggles(t, "🌙", "false")
}

func TestScenario3_ClickLightToDark(t *testing.T) {
	h := newHarness(t, "", false)
	h.ctrl.Start(context.Background())
	h.doc.MarkReady()
	require.Equal(t, "light", h.rootTheme(t))

	h.toggleEl.Click()

	assert.Equal(t, "dark", h.rootTheme(t))
	stored, ok := h.stored(t)
	assert.True(t, ok)
	assert.Equal(t, "dark", stored)
	h.assertToggles(t, "☀️", "true")
}

func TestScenario4_SystemChangeIgnoredWithStoredPreference(t *testing.T) {
	h := newHarness(t, "dark", true)
	h.ctrl.Start(context.Background())
	h.doc.MarkReady()

	h.system.Set(false)
	h.monitor.Refresh()

	assert.Equal(t, "dark", h.rootTheme(t))
	h.assertToggles(t, "☀️", "true")
}

func TestScenario5_SystemChangeFollowedWithoutStoredPreference(t *testing.T) {
	h := newHarness(t, "", false)
	h.ctrl.Start(context.Background())
	h.doc.MarkReady()
	require.Equal(t, "light", h.rootTheme(t))

	h.system.Set(true)
	h.monitor.Refresh()

	assert.Equal(t, "dark", h.rootTheme(t))
	h.assertToggles(t, "☀️", "true")
	_, ok := h.stored(t)
	assert.False(t, ok, "system changes must never write the stored preference")
}

func TestClickThenSystemChangeIsIgnored(t *testing.T) {
	h := newHarness(t, "", false)
	h.ctrl.Start(context.Background())
	h.doc.MarkReady()

	h.toggleEl.Click() // light -> dark, now a manual override
	h.system.Set(true)
	h.monitor.Refresh()
	h.system.Set(false)
	h.monitor.Refresh()

	assert.Equal(t, "dark", h.rootTheme(t))
}

func TestEveryToggleIsWired(t *testing.T) {
	h := newHarness(t, "", false)
	h.ctrl.Start(context.Background())
	h.doc.MarkReady()

	elems := h.doc.Elements(DefaultOptions().Selector)
	require.Len(t, elems, 2)

	elems[0].Click()
	assert.Equal(t, "dark", h.rootTheme(t))
	elems[1].Click()
	assert.Equal(t, "light", h.rootTheme(t))
	h.assertToggles(t, "🌙", "false")
}

func TestStorageUnavailable_TogglesStillWork(t *testing.T) {
	h := newHarness(t, "", true)
	h.repo.Err = errors.New("storage disabled")

	h.ctrl.Start(context.Background())
	h.doc.MarkReady()
	assert.Equal(t, "dark", h.rootTheme(t))

	h.toggleEl.Click()
	assert.Equal(t, "light", h.rootTheme(t))
	h.toggleEl.Click()
	assert.Equal(t, "dark", h.rootTheme(t))
	h.assertToggles(t, "☀️", "true")
}

func TestNilSystemPreference_DefaultsLight(t *testing.T) {
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	ctrl := New(doc, nil, nil, DefaultOptions())
	t.Cleanup(ctrl.Close)

	assert.Equal(t, entity.ThemeLight, ctrl.Start(context.Background()))
	doc.MarkReady()

	doc.Elements(DefaultOptions().Selector)[0].Click()
	theme, ok := ctrl.Theme()
	assert.True(t, ok)
	assert.Equal(t, entity.ThemeDark, theme)
}

func TestStart_ReadyDocumentWiresImmediately(t *testing.T) {
	h := newHarness(t, "", true)
	h.doc.MarkReady()

	h.ctrl.Start(context.Background())

	h.assertToggles(t, "☀️", "true")
}

func TestStart_Twice(t *testing.T) {
	h := newHarness(t, "", true)
	h.ctrl.Start(context.Background())
	h.doc.MarkReady()

	h.toggleEl.Click()
	assert.Equal(t, entity.ThemeLight, h.ctrl.Start(context.Background()))

	// A second Start must not attach a second handler
	h.toggleEl.Click()
	assert.Equal(t, "dark", h.rootTheme(t))
}

func TestClose_DetachesListeners(t *testing.T) {
	h := newHarness(t, "", false)
	h.ctrl.Start(context.Background())
	h.doc.MarkReady()

	h.ctrl.Close()
	h.ctrl.Close()

	h.toggleEl.Click()
	assert.Equal(t, "light", h.rootTheme(t))

	h.system.Set(true)
	h.monitor.Refresh()
	assert.Equal(t, "light", h.rootTheme(t))
}

func TestCloseBeforeReady_NeverWires(t *testing.T) {
	h := newHarness(t, "", false)
	h.ctrl.Start(context.Background())
	h.ctrl.Close()
	h.doc.MarkReady()

	assert.Empty(t, h.toggleEl.Text())
	h.toggleEl.Click()
	assert.Equal(t, "light", h.rootTheme(t))
}

func TestSubscribe_SeesEveryChange(t *testing.T) {
	h := newHarness(t, "", false)
	var seen []entity.Theme
	h.ctrl.Subscribe(func(theme entity.Theme) { seen = append(seen, theme) })

	h.ctrl.Start(context.Background())
	h.doc.MarkReady()
	h.toggleEl.Click()

	assert.Equal(t, []entity.Theme{entity.ThemeLight, entity.ThemeDark}, seen)
}

func TestConcurrentToggles_AreSerialized(t *testing.T) {
	h := newHarness(t, "", false)
	ctx := context.Background()
	h.ctrl.Start(ctx)
	h.doc.MarkReady()

	const n = 50
	var wg sync.WaitGroup
	outs := make(chan bool, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := h.ctrl.Toggle(ctx)
			outs <- out.Previous != out.Current
		}()
	}
	wg.Wait()
	close(outs)

	for flipped := range outs {
		assert.True(t, flipped)
	}
	// An even number of flips lands back where it started.
	assert.Equal(t, "light", h.rootTheme(t))
	stored, ok := h.stored(t)
	assert.True(t, ok)
	assert.Equal(t, "light", stored)
	h.assertToggles(t, "🌙", "false")
}

func TestSystemChange_IgnoredWithUnrecognizedStoredValue(t *testing.T) {
	h := newHarness(t, "blue", false)
	ctx := context.Background()
	h.ctrl.Start(ctx)
	h.doc.MarkReady()
	// The resolver falls through to the system signal for an unknown value.
	require.Equal(t, "light", h.rootTheme(t))

	_, applied := h.ctrl.SystemChanged(ctx, true)

	assert.False(t, applied)
	assert.Equal(t, "light", h.rootTheme(t))
	h.assertToggles(t, "🌙", "false")
	stored, _ := h.stored(t)
	assert.Equal(t, "blue", stored)
}

func TestToggle_UnknownRootValueFlipsToDark(t *testing.T) {
	h := newHarness(t, "", true)
	ctx := context.Background()
	h.ctrl.Start(ctx)
	h.doc.MarkReady()
	h.doc.SetRootAttribute("data-theme", "sepia")

	out := h.ctrl.Toggle(ctx)

	assert.Equal(t, entity.ThemeDark, out.Current)
	assert.Equal(t, "dark", h.rootTheme(t))
}
