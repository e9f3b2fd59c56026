package usecase

import (
	"context"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/bnema/themesync/internal/domain/entity"
	"github.com/bnema/themesync/internal/logging"
)

// SyncTogglesUseCase brings every toggle control in line with a theme.
type SyncTogglesUseCase struct {
	doc      port.Document
	selector port.ToggleSelector
	labels   entity.ToggleLabels
}

// NewSyncTogglesUseCase creates a new control synchronizer.
func NewSyncTogglesUseCase(doc port.Document, selector port.ToggleSelector, labels entity.ToggleLabels) *SyncTogglesUseCase {
	return &SyncTogglesUseCase{
		doc:      doc,
		selector: selector,
		labels:   labels,
	}
}

// Selector returns the toggle convention this synchronizer matches.
func (uc *SyncTogglesUseCase) Selector() port.ToggleSelector {
	return uc.selector
}

// Appearance returns what every toggle shows for theme.
func (uc *SyncTogglesUseCase) Appearance(theme entity.Theme) entity.ToggleAppearance {
	return uc.labels.AppearanceFor(theme)
}

// Execute updates glyph, accessible name, pressed flag and hint of each toggle.
// Returns the number of controls updated; zero controls is not an error.
func (uc *SyncTogglesUseCase) Execute(ctx context.Context, theme entity.Theme) int {
	log := logging.FromContext(ctx)

	appearance := uc.labels.AppearanceFor(theme)
	controls := uc.doc.Toggles(uc.selector)

	for _, control := range controls {
		control.SetText(appearance.Glyph)
		control.SetAttribute(entity.AttrAriaLabel, appearance.Label)
		control.SetAttribute(entity.AttrAriaPressed, appearance.PressedValue())
		control.SetAttribute(entity.AttrTitle, appearance.Hint)
	}

	log.Debug().
		Str("theme", theme.String()).
		Int("controls", len(controls)).
		Msg("toggle controls synchronized")

	return len(controls)
}
