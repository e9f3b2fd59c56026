// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/themesync/internal/application/usecase"
	"github.com/bnema/themesync/internal/cli/styles"
	"github.com/bnema/themesync/internal/domain/entity"
)

const maxWatchEvents = 8

// ThemeController is the part of themer.Controller the watch view drives.
type ThemeController interface {
	Toggle(ctx context.Context) usecase.ToggleThemeOutput
	Theme() (entity.Theme, bool)
	Resolve(ctx context.Context) usecase.ThemeResolution
	Appearance(theme entity.Theme) entity.ToggleAppearance
}

// SystemChangedMsg reports a system color scheme change. Send it after the
// controller has handled the change.
type SystemChangedMsg struct {
	PrefersDark bool
	Source      string
}

// ConfigReloadedMsg reports a config file reload and the keys it changed.
type ConfigReloadedMsg struct {
	Changed []string
}

type toggledMsg struct {
	out usecase.ToggleThemeOutput
}

type refreshedMsg struct{}

// WatchModel is the Bubble Tea model for the live theme view.
type WatchModel struct {
	help     help.Model
	keys     styles.WatchKeyMap
	theme    *styles.Theme
	renderer *styles.ThemeRenderer

	ctx     context.Context
	ctrl    ThemeController
	refresh func()
	now     func() time.Time

	current entity.Theme
	source  string
	events  []string
	width   int
}

// NewWatchModel creates the live view. refresh re-queries the system
// preference and may be nil.
func NewWatchModel(ctx context.Context, ctrl ThemeController, refresh func()) WatchModel {
	m := WatchModel{
		keys:    styles.DefaultWatchKeyMap(),
		ctx:     ctx,
		ctrl:    ctrl,
		refresh: refresh,
		now:     time.Now,
		width:   80,
	}
	current, ok := ctrl.Theme()
	if !ok {
		current = ctrl.Resolve(ctx).Theme
	}
	m.setTheme(current)
	m.source = ctrl.Resolve(ctx).Source
	return m
}

func (m *WatchModel) setTheme(theme entity.Theme) {
	m.current = theme
	m.theme = styles.NewTheme(theme)
	m.renderer = styles.NewThemeRenderer(m.theme)
	showAll := m.help.ShowAll
	m.help = styles.NewStyledHelp(m.theme)
	m.help.ShowAll = showAll
}

func (m *WatchModel) logEvent(format string, args ...any) {
	line := fmt.Sprintf("%s  %s", m.now().Format("15:04:05"), fmt.Sprintf(format, args...))
	m.events = append(m.events, line)
	if len(m.events) > maxWatchEvents {
		m.events = m.events[len(m.events)-maxWatchEvents:]
	}
}

// Current returns the theme shown by the view.
func (m WatchModel) Current() entity.Theme {
	return m.current
}

// Events returns the recent event lines, oldest first.
func (m WatchModel) Events() []string {
	return m.events
}

// Init implements tea.Model.
func (WatchModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggle()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.redetect()
		}
		return m, nil

	case toggledMsg:
		m.setTheme(msg.out.Current)
		m.source = usecase.SourceStored
		if msg.out.Persisted {
			m.logEvent("toggle  %s -> %s", msg.out.Previous, msg.out.Current)
		} else {
			m.logEvent("toggle  %s -> %s (not saved)", msg.out.Previous, msg.out.Current)
		}
		return m, nil

	case SystemChangedMsg:
		want := entity.ThemeFromPrefersDark(msg.PrefersDark)
		current, _ := m.ctrl.Theme()
		if current == want && current != m.current {
			m.setTheme(current)
			m.source = usecase.SourceSystem
			m.logEvent("system  %s via %s, applied", want, msg.Source)
		} else if current == want {
			m.logEvent("system  %s via %s", want, msg.Source)
		} else {
			m.logEvent("system  %s via %s, ignored (stored %s)", want, msg.Source, current)
		}
		return m, nil

	case ConfigReloadedMsg:
		if len(msg.Changed) == 0 {
			m.logEvent("config  reloaded, no changes")
		} else {
			m.logEvent("config  %s changed, restart to apply", strings.Join(msg.Changed, ", "))
		}
		return m, nil

	case refreshedMsg:
		return m, nil
	}

	return m, nil
}

func (m WatchModel) toggle() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return toggledMsg{out: ctrl.Toggle(ctx)}
	}
}

// redetect runs off the update loop: the refresh may Send messages back.
func (m WatchModel) redetect() tea.Cmd {
	refresh := m.refresh
	if refresh == nil {
		return nil
	}
	return func() tea.Msg {
		refresh()
		return refreshedMsg{}
	}
}

// View implements tea.Model.
func (m WatchModel) View() string {
	t := m.theme

	header := t.Title.Render("themesync") + "  " + t.Subtle.Render("live theme")
	status := fmt.Sprintf("%s  %s %s",
		m.renderer.ThemeBadge(m.current),
		t.Subtle.Render("from"),
		t.BadgeMuted.Render(m.source),
	)

	toggleBox := t.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.Subtitle.Render("toggle controls"),
		m.renderer.RenderAppearance(m.ctrl.Appearance(m.current)),
	))

	var events string
	if len(m.events) == 0 {
		events = t.Subtle.Render("waiting for changes...")
	} else {
		lines := make([]string, 0, len(m.events))
		for _, e := range m.events {
			lines = append(lines, t.Normal.Render(e))
		}
		events = strings.Join(lines, "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		status,
		"",
		toggleBox,
		"",
		events,
		"",
		m.help.View(m.keys),
	) + "\n"
}

// Ensure interface compliance.
var _ tea.Model = WatchModel{}
