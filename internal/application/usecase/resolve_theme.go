// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// Resolution sources.
const (
	SourceStored   = "stored"
	SourceSystem   = "system"
	SourceFallback = "fallback"
)

// ThemeResolution is a resolved theme and what decided it.
type ThemeResolution struct {
	Theme  entity.Theme
	Source string
}

// ResolveThemeUseCase computes the active theme from the stored preference,
// falling back to the system signal.
type ResolveThemeUseCase struct {
	store  port.PreferenceStore
	system port.SystemPreference
}

// NewResolveThemeUseCase creates a resolver. Either dependency may be nil,
// which reads as "nothing stored" and "system signal unsupported".
func NewResolveThemeUseCase(store port.PreferenceStore, system port.SystemPreference) *ResolveThemeUseCase {
	return &ResolveThemeUseCase{
		store:  store,
		system: system,
	}
}

// Execute returns the theme to apply.
func (uc *ResolveThemeUseCase) Execute(ctx context.Context) entity.Theme {
	return uc.Resolve(ctx).Theme
}

// Resolve returns the theme along with the source that decided it.
// A stored preference always wins; otherwise dark iff the system prefers dark.
func (uc *ResolveThemeUseCase) Resolve(ctx context.Context) ThemeResolution {
	log := logging.FromContext(ctx)

	if uc.store != nil {
		if theme, ok := uc.store.Load(ctx); ok {
			log.Debug().Str("theme", theme.String()).Msg("theme resolved from stored preference")
			return ThemeResolution{Theme: theme, Source: SourceStored}
		}
	}

	if uc.system != nil {
		if prefersDark, ok := uc.system.PrefersDark(); ok {
			theme := entity.ThemeFromPrefersDark(prefersDark)
			log.Debug().Str("theme", theme.String()).Msg("theme resolved from system preference")
			return ThemeResolution{Theme: theme, Source: SourceSystem}
		}
	}

	log.Debug().Msg("no stored or system preference, defaulting to light")
	return ThemeResolution{Theme: entity.ThemeLight, Source: SourceFallback}
}
