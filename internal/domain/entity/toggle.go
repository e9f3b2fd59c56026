package entity

// Accessibility attribute names written on every toggle control.
const (
	AttrAriaLabel   = "aria-label"
	AttrAriaPressed = "aria-pressed"
	AttrTitle       = "title"
)

// ToggleLabels holds the text a toggle shows for each theme.
// Glyph and label describe the action the control performs, not the current state.
type ToggleLabels struct {
	DarkGlyph  string // shown while dark: switches to light
	LightGlyph string // shown while light: switches to dark
	DarkLabel  string
	LightLabel string
	Hint       string
}

// DefaultToggleLabels returns the stock sun/moon glyphs and English labels.
func DefaultToggleLabels() ToggleLabels {
	return ToggleLabels{
		DarkGlyph:  "☀️",
		LightGlyph: "🌙",
		DarkLabel:  "Switch to light mode",
		LightLabel: "Switch to dark mode",
		Hint:       "Toggle theme",
	}
}

// ToggleAppearance is the full visual and accessibility state of one toggle control.
// It has no state of its own; it is derived from the current theme.
type ToggleAppearance struct {
	Glyph   string
	Label   string
	Pressed bool
	Hint    string
}

// PressedValue returns the aria-pressed attribute value.
func (a ToggleAppearance) PressedValue() string {
	if a.Pressed {
		return "true"
	}
	return "false"
}

// AppearanceFor derives the toggle appearance for the given theme.
func (l ToggleLabels) AppearanceFor(theme Theme) ToggleAppearance {
	if theme.IsDark() {
		return ToggleAppearance{
			Glyph:   l.DarkGlyph,
			Label:   l.DarkLabel,
			Pressed: true,
			Hint:    l.Hint,
		}
	}
	return ToggleAppearance{
		Glyph:   l.LightGlyph,
		Label:   l.LightLabel,
		Pressed: false,
		Hint:    l.Hint,
	}
}
