package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/domain/entity"
)

// ThemeRenderer renders resolved themes and toggle appearances.
type ThemeRenderer struct {
	theme *Theme
}

// NewThemeRenderer creates a new theme renderer.
func NewThemeRenderer(theme *Theme) *ThemeRenderer {
	return &ThemeRenderer{theme: theme}
}

// ThemeBadge renders a theme name with its icon.
func (r *ThemeRenderer) ThemeBadge(theme entity.Theme) string {
	return r.theme.Badge.Render(fmt.Sprintf("%s %s", ThemeIcon(theme.IsDark()), theme))
}

// RenderResolution renders the resolved theme and the source that decided it.
func (r *ThemeRenderer) RenderResolution(theme entity.Theme, source string) string {
	return fmt.Sprintf("\n  %s  %s %s\n",
		r.ThemeBadge(theme),
		r.theme.Subtle.Render("from"),
		r.theme.BadgeMuted.Render(source),
	)
}

// RenderToggle renders the outcome of a toggle.
func (r *ThemeRenderer) RenderToggle(previous, current entity.Theme, persisted bool) string {
	arrow := lipgloss.NewStyle().Foreground(r.theme.Muted).Render(IconCursor)
	line := fmt.Sprintf("\n  %s %s %s\n", r.theme.BadgeMuted.Render(previous.String()), arrow, r.ThemeBadge(current))
	if persisted {
		return line + fmt.Sprintf("  %s %s\n", r.theme.SuccessStyle.Render(IconCheck), r.theme.Subtle.Render("preference saved"))
	}
	return line + fmt.Sprintf("  %s %s\n",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.WarningStyle.Render("preference not saved, storage unavailable"),
	)
}

// RenderAppearance renders what toggle controls show for a theme.
func (r *ThemeRenderer) RenderAppearance(appearance entity.ToggleAppearance) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	rows := [][2]string{
		{"text", appearance.Glyph},
		{"aria-label", appearance.Label},
		{"aria-pressed", appearance.PressedValue()},
		{"title", appearance.Hint},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s", keyStyle.Render(fmt.Sprintf("%-13s", row[0])), valStyle.Render(row[1])))
	}
	return strings.Join(lines, "\n")
}
