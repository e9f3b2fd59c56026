package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/application/usecase"
)

// DoctorRenderer renders the doctor report.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a doctor renderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// DoctorReport collects every check.
type DoctorReport struct {
	ConfigFile  string
	ConfigErr   error
	Database    string
	DatabaseErr error
	// SchemaVersion is the last applied migration.
	SchemaVersion int64
	ColorScheme   usecase.CheckColorSchemeOutput
}

// OK reports whether nothing needs attention.
func (r DoctorReport) OK() bool {
	return r.ConfigErr == nil && r.DatabaseErr == nil
}

// Render renders the full report.
func (r *DoctorRenderer) Render(report DoctorReport) string {
	sections := []string{
		r.renderFiles(report),
		r.renderDetectors(report.ColorScheme),
	}
	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report.OK()), "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderFiles(report DoctorReport) string {
	lines := []string{
		r.renderCheck("Config", report.ConfigFile, report.ConfigErr),
		r.renderCheck("Database", report.Database, report.DatabaseErr),
	}
	if report.DatabaseErr == nil {
		lines = append(lines, "  "+r.theme.Subtle.Render(fmt.Sprintf("schema version %d", report.SchemaVersion)))
	}
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Files", r.theme.Highlight.Render(IconConfig)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderCheck(name, path string, err error) string {
	if path == "" {
		path = "(none)"
	}
	if err != nil {
		return fmt.Sprintf("%s %s %s\n  %s",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Normal.Render(name),
			r.theme.Subtle.Render(path),
			r.theme.ErrorStyle.Render(err.Error()))
	}
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Normal.Render(name),
		r.theme.Subtle.Render(path))
}

func (r *DoctorRenderer) renderDetectors(out usecase.CheckColorSchemeOutput) string {
	lines := make([]string, 0, len(out.Detectors)+3)

	for _, d := range out.Detectors {
		lines = append(lines, r.renderDetector(d))
	}
	if out.Fallback {
		lines = append(lines, fmt.Sprintf("%s %s",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Normal.Render("no detector answered, the system reads as light")))
	}

	res := out.Resolution
	lines = append(lines, "", fmt.Sprintf("%s %s %s",
		r.theme.Subtle.Render("Resolved"),
		r.theme.Highlight.Render(ThemeIcon(res.Theme.IsDark())+" "+res.Theme.String()),
		r.theme.Subtle.Render("via "+res.Source)))

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Color scheme", r.theme.Highlight.Render(IconDesktop)))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderDetector(d usecase.DetectorCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	var status string

	switch {
	case !d.Available:
		icon = IconX
		statusStyle = r.theme.Subtle
		status = "unavailable"
	case !d.Answered:
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		status = "no answer"
	case d.PrefersDark:
		status = "dark"
	default:
		status = "light"
	}

	line := fmt.Sprintf("%s %s %s %s",
		statusStyle.Render(icon),
		r.theme.Normal.Render(d.Name),
		r.theme.Subtle.Render(fmt.Sprintf("(priority %d)", d.Priority)),
		r.theme.BadgeMuted.Render(statusStyle.Render(status)))
	if d.Decides {
		line += " " + r.theme.Highlight.Render(IconCursor+" in use")
	}
	return line
}
