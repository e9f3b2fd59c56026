package port

import (
	"context"

	"github.com/bnema/themesync/internal/domain/entity"
)

// PreferenceStore reads and writes the user's explicit theme choice.
// Storage failures are absorbed by implementations: Load reports absence
// and Save reports false, so callers never see an error.
type PreferenceStore interface {
	// Load returns the stored theme, or false when nothing valid is stored.
	Load(ctx context.Context) (entity.Theme, bool)

	// Present reports whether any non-empty value is stored, valid theme or not.
	// False when the store is unavailable.
	Present(ctx context.Context) bool

	// Save persists the theme. Returns false if the store rejected the write.
	Save(ctx context.Context, theme entity.Theme) bool
}
