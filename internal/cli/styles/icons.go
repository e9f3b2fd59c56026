package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGo        = "" // go gopher

	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconDesktop  = "" // desktop
	IconDoctor   = "" // stethoscope
	IconCursor   = "" // chevron-right

	IconSun  = "" // sun
	IconMoon = "" // moon
)

// ThemeIcon returns the icon for a theme.
func ThemeIcon(dark bool) string {
	if dark {
		return IconMoon
	}
	return IconSun
}
