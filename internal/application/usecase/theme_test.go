package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/port/mocks"
	"github.com/bnema/themesync/internal/application/themestate"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/infrastructure/dom"
)

const togglePage = `<html><body>
<button class="theme-toggle"></button>
<button id="theme-toggle"></button>
</body></html>`

var toggleSelector = port.ToggleSelector{Class: "theme-toggle", ID: "theme-toggle"}

type fixture struct {
	doc    *dom.Document
	state  *themestate.State
	store  *mocks.MockPreferenceStore
	system *mocks.MockSystemPreference

	resolve *ResolveThemeUseCase
	apply   *ApplyThemeUseCase
	sync    *SyncTogglesUseCase
	toggle  *ToggleThemeUseCase
	follow  *FollowSystemThemeUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	doc, err := dom.ParseString(togglePage)
	require.NoError(t, err)

	f := &fixture{
		doc:    doc,
		state:  themestate.New(doc, ""),
		store:  mocks.NewMockPreferenceStore(t),
		system: mocks.NewMockSystemPreference(t),
	}
	f.resolve = NewResolveThemeUseCase(f.store, f.system)
	f.apply = NewApplyThemeUseCase(f.state)
	f.sync = NewSyncTogglesUseCase(doc, toggleSelector, entity.DefaultToggleLabels())
	f.toggle = NewToggleThemeUseCase(f.state, f.resolve, f.apply, f.sync, f.store)
	f.follow = NewFollowSystemThemeUseCase(f.store, f.apply, f.sync)
	return f
}

func (f *fixture) rootTheme(t *testing.T) string {
	t.Helper()
	v, ok := f.doc.RootAttribute("data-theme")
	require.True(t, ok, "data-theme must be set")
	return v
}

func assertToggles(t *testing.T, doc *dom.Document, glyph, label, pressed string) {
	t.Helper()
	elems := doc.Elements(toggleSelector)
	require.NotEmpty(t, elems)
	for _, el := range elems {
		assert.Equal(t, glyph, el.Text())
		got, _ := el.Attribute("aria-label")
		assert.Equal(t, label, got)
		got, _ = el.Attribute("aria-pressed")
		assert.Equal(t, pressed, got)
		got, _ = el.Attribute("title")
		assert.Equal(t, "Toggle theme", got)
	}
}

func TestResolveTheme_TruthTable(t *testing.T) {
	tests := []struct {
		name        string
		stored      entity.Theme
		hasStored   bool
		prefersDark bool
		want        entity.Theme
		wantSource  string
	}{
		{"absent, system dark", "", false, true, entity.ThemeDark, SourceSystem},
		{"absent, system light", "", false, false, entity.ThemeLight, SourceSystem},
		{"stored dark, system dark", entity.ThemeDark, true, true, entity.ThemeDark, SourceStored},
		{"stored dark, system light", entity.ThemeDark, true, false, entity.ThemeDark, SourceStored},
		{"stored light, system dark", entity.ThemeLight, true, true, entity.ThemeLight, SourceStored},
		{"stored light, system light", entity.ThemeLight, true, false, entity.ThemeLight, SourceStored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockPreferenceStore(t)
			system := mocks.NewMockSystemPreference(t)
			store.EXPECT().Load(mock.Anything).Return(tt.stored, tt.hasStored)
			if !tt.hasStored {
				system.EXPECT().PrefersDark().Return(tt.prefersDark, true)
			}

			got := NewResolveThemeUseCase(store, system).Resolve(context.Background())

			assert.Equal(t, tt.want, got.Theme)
			assert.Equal(t, tt.wantSource, got.Source)
		})
	}
}

func TestResolveTheme_UnsupportedSignalDefaultsLight(t *testing.T) {
	store := mocks.NewMockPreferenceStore(t)
	system := mocks.NewMockSystemPreference(t)
	store.EXPECT().Load(mock.Anything).Return("", false)
	system.EXPECT().PrefersDark().Return(false, false)

	got := NewResolveThemeUseCase(store, system).Resolve(context.Background())

	assert.Equal(t, entity.ThemeLight, got.Theme)
	assert.Equal(t, SourceFallback, got.Source)
}

func TestResolveTheme_NilDependencies(t *testing.T) {
	got := NewResolveThemeUseCase(nil, nil).Execute(context.Background())
	assert.Equal(t, entity.ThemeLight, got)
}

func TestResolveTheme_Idempotent(t *testing.T) {
	store := mocks.NewMockPreferenceStore(t)
	system := mocks.NewMockSystemPreference(t)
	store.EXPECT().Load(mock.Anything).Return("", false).Times(2)
	system.EXPECT().PrefersDark().Return(true, true).Times(2)
	uc := NewResolveThemeUseCase(store, system)

	first := uc.Execute(context.Background())
	second := uc.Execute(context.Background())

	assert.Equal(t, first, second)
}

func TestApplyTheme_SetsRootAttribute(t *testing.T) {
	for _, theme := range []entity.Theme{entity.ThemeDark, entity.ThemeLight} {
		t.Run(theme.String(), func(t *testing.T) {
			f := newFixture(t)
			f.apply.Execute(context.Background(), theme)
			assert.Equal(t, theme.String(), f.rootTheme(t))
		})
	}
}

func TestSyncToggles_Dark(t *testing.T) {
	f := newFixture(t)

	n := f.sync.Execute(context.Background(), entity.ThemeDark)

	assert.Equal(t, 2, n)
	assertToggles(t, f.doc, "☀️", "Switch to light mode", "true")
}

func TestSyncToggles_Light(t *testing.T) {
	f := newFixture(t)

	f.sync.Execute(context.Background(), entity.ThemeLight)

	assertToggles(t, f.doc, "🌙", "Switch to dark mode", "false")
}

func TestSyncToggles_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sync.Execute(ctx, entity.ThemeDark)
	once := f.doc.String()
	f.sync.Execute(ctx, entity.ThemeDark)

	assert.Equal(t, once, f.doc.String())
}

func TestSyncToggles_NoControls(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><p>none</p></body></html>`)
	require.NoError(t, err)
	uc := NewSyncTogglesUseCase(doc, toggleSelector, entity.DefaultToggleLabels())

	assert.Equal(t, 0, uc.Execute(context.Background(), entity.ThemeDark))
}

func TestToggleTheme_LightToDark(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.apply.Execute(ctx, entity.ThemeLight)
	f.store.EXPECT().Save(mock.Anything, entity.ThemeDark).Return(true).Once()

	out := f.toggle.Execute(ctx)

	assert.Equal(t, entity.ThemeLight, out.Previous)
	assert.Equal(t, entity.ThemeDark, out.Current)
	assert.True(t, out.Persisted)
	assert.Equal(t, "dark", f.rootTheme(t))
	assertToggles(t, f.doc, "☀️", "Switch to light mode", "true")
}

func TestToggleTheme_StoreFailureStillApplies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.apply.Execute(ctx, entity.ThemeDark)
	f.store.EXPECT().Save(mock.Anything, entity.ThemeLight).Return(false).Once()

	out := f.toggle.Execute(ctx)

	assert.False(t, out.Persisted)
	assert.Equal(t, "light", f.rootTheme(t))
	assertToggles(t, f.doc, "🌙", "Switch to dark mode", "false")
}

func TestToggleTheme_MissingAttributeFallsBackToResolver(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(mock.Anything).Return("", false).Once()
	f.system.EXPECT().PrefersDark().Return(true, true).Once()
	f.store.EXPECT().Save(mock.Anything, entity.ThemeLight).Return(true).Once()

	out := f.toggle.Execute(context.Background())

	assert.Equal(t, entity.ThemeDark, out.Previous)
	assert.Equal(t, "light", f.rootTheme(t))
}

func TestFollowSystemTheme_NoStoredPreference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.apply.Execute(ctx, entity.ThemeLight)
	f.store.EXPECT().Present(mock.Anything).Return(false).Once()

	theme, applied := f.follow.Execute(ctx, true)

	assert.True(t, applied)
	assert.Equal(t, entity.ThemeDark, theme)
	assert.Equal(t, "dark", f.rootTheme(t))
	assertToggles(t, f.doc, "☀️", "Switch to light mode", "true")
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFollowSystemTheme_StoredPreferenceWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.apply.Execute(ctx, entity.ThemeDark)
	f.store.EXPECT().Present(mock.Anything).Return(true).Once()

	_, applied := f.follow.Execute(ctx, false)

	assert.False(t, applied)
	assert.Equal(t, "dark", f.rootTheme(t))
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestApplyTheme_IgnoresUnknownTheme(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.apply.Execute(ctx, entity.ThemeDark)

	f.apply.Execute(ctx, entity.Theme("sepia"))

	assert.Equal(t, "dark", f.rootTheme(t))
}

func TestToggleTheme_UnknownAttributeCountsAsLight(t *testing.T) {
	f := newFixture(t)
	f.doc.SetRootAttribute("data-theme", "sepia")
	f.store.EXPECT().Save(mock.Anything, entity.ThemeDark).Return(true).Once()

	out := f.toggle.Execute(context.Background())

	assert.Equal(t, entity.ThemeLight, out.Previous)
	assert.Equal(t, "dark", f.rootTheme(t))
	f.system.AssertNotCalled(t, "PrefersDark")
}
