// Package colorscheme provides the desktop's live color scheme signal:
// priority-ordered detectors, a monitor that notifies on change, and a
// watcher that tells the monitor when to look again.
package colorscheme

import (
	"sort"
	"sync"

	"github.com/bnema/themesync/internal/application/port"
)

// sourceFallback indicates no detector provided the preference.
const sourceFallback = "fallback"

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(port.ColorSchemePreference)
}

// Monitor queries detectors by priority and notifies subscribers when the
// resolved preference flips. It implements port.SystemPreference.
type Monitor struct {
	mu          sync.RWMutex
	detectors   []port.ColorSchemeDetector
	current     port.ColorSchemePreference
	initialized bool
	callbacks   []*callbackWrapper
}

// NewMonitor creates a monitor with the given detectors.
func NewMonitor(detectors ...port.ColorSchemeDetector) *Monitor {
	m := &Monitor{
		detectors: make([]port.ColorSchemeDetector, 0, len(detectors)),
	}
	m.detectors = append(m.detectors, detectors...)
	return m
}

// NewDefaultMonitor registers the stock desktop detectors plus an optional override.
func NewDefaultMonitor(override *StaticDetector) *Monitor {
	m := NewMonitor(NewEnvDetector(), NewGsettingsDetector(), NewDefaultsDetector())
	if override != nil {
		m.RegisterDetector(override)
	}
	return m
}

// RegisterDetector adds a detector. It takes part in the next Resolve or Refresh.
func (m *Monitor) RegisterDetector(detector port.ColorSchemeDetector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.detectors = append(m.detectors, detector)
}

// Detectors returns the registered detectors, highest priority first.
func (m *Monitor) Detectors() []port.ColorSchemeDetector {
	m.mu.RLock()
	sorted := make([]port.ColorSchemeDetector, len(m.detectors))
	copy(sorted, m.detectors)
	m.mu.RUnlock()

	sortByPriority(sorted)
	return sorted
}

// Resolve queries the detectors without touching the recorded state.
func (m *Monitor) Resolve() port.ColorSchemePreference {
	m.mu.RLock()
	sorted := make([]port.ColorSchemeDetector, len(m.detectors))
	copy(sorted, m.detectors)
	m.mu.RUnlock()

	return resolve(sorted)
}

// resolve tries detectors from highest to lowest priority.
// With no answer it reports light, the same as an unsupported media query.
func resolve(detectors []port.ColorSchemeDetector) port.ColorSchemePreference {
	sortByPriority(detectors)

	for _, detector := range detectors {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{
		PrefersDark: false,
		Source:      sourceFallback,
	}
}

// Current returns the last recorded preference, resolving it on first use.
func (m *Monitor) Current() port.ColorSchemePreference {
	m.mu.RLock()
	if m.initialized {
		defer m.mu.RUnlock()
		return m.current
	}
	m.mu.RUnlock()

	pref := m.Resolve()

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		m.current = pref
		m.initialized = true
	}
	return m.current
}

// Refresh re-evaluates the detectors. Subscribers are called, outside the lock,
// only when the dark/light answer differs from the recorded one. The first
// Refresh records a baseline without notifying.
func (m *Monitor) Refresh() port.ColorSchemePreference {
	newPref := m.Resolve()

	m.mu.Lock()
	changed := m.initialized && newPref.PrefersDark != m.current.PrefersDark
	m.current = newPref
	m.initialized = true
	var callbacks []*callbackWrapper
	if changed {
		callbacks = make([]*callbackWrapper, len(m.callbacks))
		copy(callbacks, m.callbacks)
	}
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(newPref)
	}

	return newPref
}

// OnChange registers a callback for preference changes.
// Returns a function to unregister the callback.
func (m *Monitor) OnChange(callback func(port.ColorSchemePreference)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	m.callbacks = append(m.callbacks, wrapper)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		for i, cb := range m.callbacks {
			if cb == wrapper {
				m.callbacks = append(m.callbacks[:i], m.callbacks[i+1:]...)
				return
			}
		}
	}
}

// PrefersDark implements port.SystemPreference.
func (m *Monitor) PrefersDark() (prefersDark, ok bool) {
	pref := m.Current()
	return pref.PrefersDark, pref.Source != sourceFallback
}

// Subscribe implements port.SystemPreference.
func (m *Monitor) Subscribe(callback func(prefersDark bool)) func() {
	// Record a baseline so the first Refresh after subscribing can report a change.
	m.Current()
	return m.OnChange(func(pref port.ColorSchemePreference) {
		callback(pref.PrefersDark)
	})
}

func sortByPriority(detectors []port.ColorSchemeDetector) {
	sort.SliceStable(detectors, func(i, j int) bool {
		return detectors[i].Priority() > detectors[j].Priority()
	})
}

var (
	_ port.SystemPreference          = (*Monitor)(nil)
	_ port.ColorSchemeDetectorSource = (*Monitor)(nil)
)
