package usecase

import (
	"context"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/application/themestate"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// ToggleThemeUseCase handles a click on a toggle control: it flips the
// theme and records the result as the user's explicit choice.
type ToggleThemeUseCase struct {
	state    *themestate.State
	resolver *ResolveThemeUseCase
	apply    *ApplyThemeUseCase
	sync     *SyncTogglesUseCase
	store    port.PreferenceStore
}

// NewToggleThemeUseCase creates a new toggle use case.
func NewToggleThemeUseCase(
	state *themestate.State,
	resolver *ResolveThemeUseCase,
	apply *ApplyThemeUseCase,
	sync *SyncTogglesUseCase,
	store port.PreferenceStore,
) *ToggleThemeUseCase {
	return &ToggleThemeUseCase{
		state:    state,
		resolver: resolver,
		apply:    apply,
		sync:     sync,
		store:    store,
	}
}

// ToggleThemeOutput describes the outcome of a toggle.
type ToggleThemeOutput struct {
	Previous entity.Theme
	Current  entity.Theme
	// Persisted is false when the store rejected the write; the toggle still applies.
	Persisted bool
}

// Execute flips the active theme, applies it, persists it and resyncs the toggles.
func (uc *ToggleThemeUseCase) Execute(ctx context.Context) ToggleThemeOutput {
	log := logging.FromContext(ctx)

	current, ok := uc.state.Get()
	switch raw, present := uc.state.Raw(); {
	case ok:
	case present && raw != "":
		// Anything other than dark on the root counts as light.
		current = entity.ThemeLight
		log.Debug().Str("value", raw).Msg("unknown document theme, treating as light")
	default:
		// Only reachable if the early apply never happened.
		current = uc.resolver.Execute(ctx)
		log.Debug().Str("theme", current.String()).Msg("document theme missing, using resolved theme")
	}

	next := current.Opposite()
	uc.apply.Execute(ctx, next)

	persisted := false
	if uc.store != nil {
		persisted = uc.store.Save(ctx, next)
	}
	if !persisted {
		log.Warn().Str("theme", next.String()).Msg("theme preference not persisted")
	}

	if uc.sync != nil {
		uc.sync.Execute(ctx, next)
	}

	log.Info().
		Str("from", current.String()).
		Str("to", next.String()).
		Msg("theme toggled")

	return ToggleThemeOutput{
		Previous:  current,
		Current:   next,
		Persisted: persisted,
	}
}
