package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigValue is one effective configuration entry.
type ConfigValue struct {
	Key   string
	Value string
}

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path header.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if path == "" {
		path = "(defaults, no config file)"
	}
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderValues renders the effective values, keys aligned.
func (r *ConfigRenderer) RenderValues(values []ConfigValue) string {
	width := 0
	for _, v := range values {
		width = max(width, len(v.Key))
	}

	keyStyle := r.theme.Normal.Bold(true)
	valStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	for _, v := range values {
		value := v.Value
		if value == "" {
			value = r.theme.Subtle.Render(`""`)
		} else {
			value = valStyle.Render(fmt.Sprintf("%q", value))
		}
		sb.WriteString(fmt.Sprintf("    %s  %s\n", keyStyle.Render(fmt.Sprintf("%-*s", width, v.Key)), value))
	}
	return sb.String()
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
