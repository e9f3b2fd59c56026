package styles

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/domain/entity"
)

// ConfigSchemaRenderer renders the documentation of every config key.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render lists keys grouped by section. Sections in sectionOrder come
// first; any other section follows in order of first appearance.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo, sectionOrder []string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	order := append([]string(nil), sectionOrder...)
	bySection := make(map[string][]entity.ConfigKeyInfo)
	width := 0
	for _, k := range keys {
		if _, seen := bySection[k.Section]; !seen && !slices.Contains(order, k.Section) {
			order = append(order, k.Section)
		}
		bySection[k.Section] = append(bySection[k.Section], k)
		width = max(width, len(k.Key))
	}

	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconConfig), r.theme.Title.Render("Configuration keys"))
	blocks := []string{title}
	for _, section := range order {
		if sectionKeys := bySection[section]; len(sectionKeys) > 0 {
			blocks = append(blocks, r.renderSection(section, sectionKeys, width))
		}
	}
	return strings.Join(blocks, "\n\n")
}

// RenderJSON renders the keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo, width int) string {
	lines := make([]string, 0, len(keys)+1)
	lines = append(lines, r.theme.BoxHeader.Render(name))
	for _, k := range keys {
		lines = append(lines, r.renderKey(k, width))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

// renderKey prints "key  type  default" then the description and any
// constraint on an indented second line.
func (r *ConfigSchemaRenderer) renderKey(k entity.ConfigKeyInfo, width int) string {
	def := k.Default
	if def == "" {
		def = `""`
	}
	head := fmt.Sprintf("%s  %s  %s",
		r.theme.Normal.Bold(true).Render(fmt.Sprintf("%-*s", width, k.Key)),
		r.theme.Subtle.Render(k.Type),
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(def))

	detail := k.Description
	switch {
	case len(k.Values) > 0:
		detail += " (" + strings.Join(k.Values, " | ") + ")"
	case k.Range != "":
		detail += " (" + k.Range + ")"
	}
	return head + "\n" + strings.Repeat(" ", 2) + r.theme.Subtle.Render(detail)
}
