package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/port/mocks"
	"github.com/bnema/themesync/internal/domain/entity"
)

type detectorList []port.ColorSchemeDetector

func (l detectorList) Detectors() []port.ColorSchemeDetector { return l }

func newDetector(t *testing.T, name string, priority int, available bool) *mocks.MockColorSchemeDetector {
	d := mocks.NewMockColorSchemeDetector(t)
	d.EXPECT().Name().Return(name)
	d.EXPECT().Priority().Return(priority)
	d.EXPECT().Available().Return(available)
	return d
}

func TestCheckColorScheme_FirstAnswerDecides(t *testing.T) {
	env := newDetector(t, "env", 20, false)
	gsettings := newDetector(t, "gsettings", 10, true)
	gsettings.EXPECT().Detect().Return(true, true)
	defaults := newDetector(t, "defaults", 10, true)
	defaults.EXPECT().Detect().Return(false, true)

	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Load(mock.Anything).Return("", false)
	system := mocks.NewMockSystemPreference(t)
	system.EXPECT().PrefersDark().Return(true, true)

	uc := NewCheckColorSchemeUseCase(detectorList{env, gsettings, defaults}, NewResolveThemeUseCase(store, system))
	out := uc.Execute(context.Background())

	require.Len(t, out.Detectors, 3)
	assert.Equal(t, DetectorCheck{Name: "env", Priority: 20}, out.Detectors[0])
	assert.Equal(t, DetectorCheck{Name: "gsettings", Priority: 10, Available: true, Answered: true, PrefersDark: true, Decides: true}, out.Detectors[1])
	assert.False(t, out.Detectors[2].Decides)
	assert.True(t, out.Detectors[2].Answered)
	assert.False(t, out.Fallback)
	assert.Equal(t, ThemeResolution{Theme: entity.ThemeDark, Source: SourceSystem}, out.Resolution)
}

func TestCheckColorScheme_NoAnswerFallsBack(t *testing.T) {
	gsettings := newDetector(t, "gsettings", 10, true)
	gsettings.EXPECT().Detect().Return(false, false)

	uc := NewCheckColorSchemeUseCase(detectorList{gsettings}, nil)
	out := uc.Execute(context.Background())

	assert.True(t, out.Fallback)
	assert.False(t, out.Detectors[0].Answered)
	assert.Equal(t, ThemeResolution{Theme: entity.ThemeLight, Source: SourceFallback}, out.Resolution)
}

func TestCheckColorScheme_StoredPreferenceResolution(t *testing.T) {
	store := mocks.NewMockPreferenceStore(t)
	store.EXPECT().Load(mock.Anything).Return(entity.ThemeDark, true)

	uc := NewCheckColorSchemeUseCase(detectorList{}, NewResolveThemeUseCase(store, nil))
	out := uc.Execute(context.Background())

	assert.Empty(t, out.Detectors)
	assert.True(t, out.Fallback)
	assert.Equal(t, SourceStored, out.Resolution.Source)
}
