package usecase

import (
	"context"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// FollowSystemThemeUseCase reacts to a system color scheme change.
// It only acts while the user has no explicit stored preference.
type FollowSystemThemeUseCase struct {
	store port.PreferenceStore
	apply *ApplyThemeUseCase
	sync  *SyncTogglesUseCase
}

// NewFollowSystemThemeUseCase creates a new system-follow use case.
func NewFollowSystemThemeUseCase(store port.PreferenceStore, apply *ApplyThemeUseCase, sync *SyncTogglesUseCase) *FollowSystemThemeUseCase {
	return &FollowSystemThemeUseCase{
		store: store,
		apply: apply,
		sync:  sync,
	}
}

// Execute applies the theme matching prefersDark unless a stored preference exists.
// Returns the applied theme and true, or false when the change was ignored.
// Never writes the stored preference.
func (uc *FollowSystemThemeUseCase) Execute(ctx context.Context, prefersDark bool) (entity.Theme, bool) {
	log := logging.FromContext(ctx)

	// Any stored value counts, even one the resolver would ignore.
	if uc.store != nil && uc.store.Present(ctx) {
		log.Debug().
			Bool("prefers_dark", prefersDark).
			Msg("system theme change ignored, manual preference set")
		return "", false
	}

	theme := entity.ThemeFromPrefersDark(prefersDark)
	ctx = logging.WithTheme(ctx, theme.String())
	uc.apply.Execute(ctx, theme)
	if uc.sync != nil {
		uc.sync.Execute(ctx, theme)
	}

	logging.FromContext(ctx).Info().Msg("following system theme change")
	return theme, true
}
