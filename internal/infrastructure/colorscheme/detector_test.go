package colorscheme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDetector(t *testing.T) {
	tests := []struct {
		value     string
		available bool
		wantDark  bool
	}{
		{value: "", available: false},
		{value: "Adwaita:dark", available: true, wantDark: true},
		{value: "Yaru-Dark", available: true, wantDark: true},
		{value: "Adwaita", available: true, wantDark: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d := &EnvDetector{getenv: func(string) string { return tt.value }}

			assert.Equal(t, tt.available, d.Available())
			prefersDark, ok := d.Detect()
			assert.Equal(t, tt.available, ok)
			assert.Equal(t, tt.wantDark, prefersDark)
		})
	}
}

func TestGsettingsDetector(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		err      error
		wantDark bool
		wantOk   bool
	}{
		{name: "prefer-dark", output: "'prefer-dark'\n", wantDark: true, wantOk: true},
		{name: "prefer-light", output: "'prefer-light'\n", wantDark: false, wantOk: true},
		{name: "default", output: "'default'\n", wantDark: false, wantOk: true},
		{name: "unknown", output: "'sepia'\n", wantOk: false},
		{name: "command fails", err: errors.New("no schema"), wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &GsettingsDetector{
				run: func(_ context.Context, name string, args ...string) ([]byte, error) {
					assert.Equal(t, "gsettings", name)
					assert.Equal(t, []string{"get", "org.gnome.desktop.interface", "color-scheme"}, args)
					return []byte(tt.output), tt.err
				},
				available: func(string) bool { return true },
			}

			prefersDark, ok := d.Detect()
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.wantDark, prefersDark)
		})
	}
}

func TestDefaultsDetector(t *testing.T) {
	dark := &DefaultsDetector{
		goos: "darwin",
		run: func(context.Context, string, ...string) ([]byte, error) {
			return []byte("Dark\n"), nil
		},
	}
	assert.True(t, dark.Available())
	prefersDark, ok := dark.Detect()
	assert.True(t, ok)
	assert.True(t, prefersDark)

	// Missing key means light mode
	light := &DefaultsDetector{
		goos: "darwin",
		run: func(context.Context, string, ...string) ([]byte, error) {
			return nil, errors.New("does not exist")
		},
	}
	prefersDark, ok = light.Detect()
	assert.True(t, ok)
	assert.False(t, prefersDark)

	assert.False(t, (&DefaultsDetector{goos: "linux"}).Available())
}

func TestParseOverride(t *testing.T) {
	for _, v := range []string{"", "system", "default"} {
		d, err := ParseOverride(v)
		require.NoError(t, err)
		assert.Nil(t, d)
	}

	d, err := ParseOverride("dark")
	require.NoError(t, err)
	prefersDark, ok := d.Detect()
	assert.True(t, ok)
	assert.True(t, prefersDark)

	d, err = ParseOverride("prefer-light")
	require.NoError(t, err)
	prefersDark, _ = d.Detect()
	assert.False(t, prefersDark)

	d.Set(true)
	prefersDark, _ = d.Detect()
	assert.True(t, prefersDark)

	_, err = ParseOverride("sepia")
	assert.Error(t, err)
}
