package usecase

import (
	"context"

	"github.com/bnema/themesync/internal/application/themestate"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// ApplyThemeUseCase writes the active theme onto the document root.
type ApplyThemeUseCase struct {
	state *themestate.State
}

// NewApplyThemeUseCase creates a new applicator.
func NewApplyThemeUseCase(state *themestate.State) *ApplyThemeUseCase {
	return &ApplyThemeUseCase{state: state}
}

// Execute sets the document theme state. Unknown themes leave it untouched.
func (uc *ApplyThemeUseCase) Execute(ctx context.Context, theme entity.Theme) {
	log := logging.FromContext(ctx)

	if !theme.Valid() {
		log.Debug().Str("theme", theme.String()).Msg("refusing to apply unknown theme")
		return
	}
	uc.state.Set(theme)

	log.Debug().
		Str("attribute", uc.state.Attribute()).
		Str("theme", theme.String()).
		Msg("theme applied to document root")
}
