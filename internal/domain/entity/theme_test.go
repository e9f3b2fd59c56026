package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		raw     string
		want    Theme
		wantErr bool
	}{
		{raw: "dark", want: ThemeDark},
		{raw: "light", want: ThemeLight},
		{raw: "", wantErr: true},
		{raw: "Dark", wantErr: true},
		{raw: " dark", wantErr: true},
		{raw: "auto", wantErr: true},
		{raw: "null", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTheme(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTheme_Opposite(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Opposite())
	assert.Equal(t, ThemeDark, ThemeLight.Opposite())
}

func TestThemeFromPrefersDark(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeFromPrefersDark(true))
	assert.Equal(t, ThemeLight, ThemeFromPrefersDark(false))
}

func TestTheme_Valid(t *testing.T) {
	assert.True(t, ThemeDark.Valid())
	assert.True(t, ThemeLight.Valid())
	assert.False(t, Theme("sepia").Valid())
}

func TestToggleLabels_AppearanceFor(t *testing.T) {
	labels := DefaultToggleLabels()

	dark := labels.AppearanceFor(ThemeDark)
	assert.Equal(t, "☀️", dark.Glyph)
	assert.Equal(t, "Switch to light mode", dark.Label)
	assert.True(t, dark.Pressed)
	assert.Equal(t, "true", dark.PressedValue())
	assert.Equal(t, "Toggle theme", dark.Hint)

	light := labels.AppearanceFor(ThemeLight)
	assert.Equal(t, "🌙", light.Glyph)
	assert.Equal(t, "Switch to dark mode", light.Label)
	assert.False(t, light.Pressed)
	assert.Equal(t, "false", light.PressedValue())
	assert.Equal(t, "Toggle theme", light.Hint)
}

func TestStoredPreference_Theme(t *testing.T) {
	pref := NewStoredPreference(DefaultPreferenceKey, ThemeDark)
	got, err := pref.Theme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)
	assert.Equal(t, "theme", pref.Key)

	_, err = (&StoredPreference{Key: "theme", Value: "garbage"}).Theme()
	assert.ErrorIs(t, err, ErrInvalidTheme)

	var missing *StoredPreference
	_, err = missing.Theme()
	assert.ErrorIs(t, err, ErrInvalidTheme)
}
