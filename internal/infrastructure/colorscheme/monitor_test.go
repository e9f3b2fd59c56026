package colorscheme

import (
	"sync"
	"testing"

	"github.com/bnema/themesync/internal/application/port"
	"github.com/stretchr/testify/assert"
)

// mockDetector implements port.ColorSchemeDetector for testing.
type mockDetector struct {
	mu          sync.Mutex
	name        string
	priority    int
	available   bool
	prefersDark bool
	detectOk    bool
}

func (m *mockDetector) Name() string    { return m.name }
func (m *mockDetector) Priority() int   { return m.priority }
func (m *mockDetector) Available() bool { return m.available }
func (m *mockDetector) Detect() (bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.prefersDark, m.detectOk
}

func (m *mockDetector) set(prefersDark bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefersDark = prefersDark
}

func lightDetector() *mockDetector {
	return &mockDetector{name: "test", priority: 50, available: true, prefersDark: false, detectOk: true}
}

func TestMonitor_DetectorPriority(t *testing.T) {
	low := &mockDetector{name: "low", priority: 10, available: true, prefersDark: true, detectOk: true}
	high := &mockDetector{name: "high", priority: 100, available: true, prefersDark: false, detectOk: true}

	// Register low first, high second (order shouldn't matter)
	monitor := NewMonitor(low, high)

	pref := monitor.Resolve()

	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "high", pref.Source)
}

func TestMonitor_DetectorsSortedByPriority(t *testing.T) {
	low := &mockDetector{name: "low", priority: 10}
	high := &mockDetector{name: "high", priority: 100}
	mid := &mockDetector{name: "mid", priority: 20}
	m := NewMonitor(low, high, mid)

	var names []string
	for _, d := range m.Detectors() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"high", "mid", "low"}, names)

	// The registration order is untouched.
	m.RegisterDetector(&mockDetector{name: "top", priority: 200})
	assert.Equal(t, "top", m.Detectors()[0].Name())
}

func TestMonitor_SkipsUnavailableDetector(t *testing.T) {
	monitor := NewMonitor(
		&mockDetector{name: "unavailable", priority: 100, available: false, detectOk: true},
		&mockDetector{name: "available", priority: 10, available: true, prefersDark: true, detectOk: true},
	)

	pref := monitor.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "available", pref.Source)
}

func TestMonitor_SkipsFailedDetection(t *testing.T) {
	monitor := NewMonitor(
		&mockDetector{name: "failing", priority: 100, available: true, detectOk: false},
		&mockDetector{name: "succeeding", priority: 10, available: true, prefersDark: true, detectOk: true},
	)

	pref := monitor.Resolve()

	assert.True(t, pref.PrefersDark)
	assert.Equal(t, "succeeding", pref.Source)
}

func TestMonitor_FallbackIsLightAndUnsupported(t *testing.T) {
	monitor := NewMonitor(&mockDetector{name: "fail", priority: 100, available: true, detectOk: false})

	pref := monitor.Resolve()
	assert.False(t, pref.PrefersDark)
	assert.Equal(t, "fallback", pref.Source)

	prefersDark, ok := monitor.PrefersDark()
	assert.False(t, prefersDark)
	assert.False(t, ok)
}

func TestMonitor_PrefersDarkSupported(t *testing.T) {
	monitor := NewMonitor(&mockDetector{name: "test", priority: 1, available: true, prefersDark: true, detectOk: true})

	prefersDark, ok := monitor.PrefersDark()
	assert.True(t, prefersDark)
	assert.True(t, ok)
}

func TestMonitor_FirstRefreshIsBaseline(t *testing.T) {
	monitor := NewMonitor(lightDetector())

	var calls int
	monitor.OnChange(func(port.ColorSchemePreference) { calls++ })

	monitor.Refresh()
	assert.Equal(t, 0, calls)
}

func TestMonitor_OnChange(t *testing.T) {
	detector := lightDetector()
	monitor := NewMonitor(detector)
	monitor.Refresh()

	var callbackPref port.ColorSchemePreference
	var callbackCount int
	monitor.OnChange(func(pref port.ColorSchemePreference) {
		callbackPref = pref
		callbackCount++
	})

	// Same preference - callback should NOT be called
	monitor.Refresh()
	assert.Equal(t, 0, callbackCount)

	detector.set(true)
	monitor.Refresh()
	assert.Equal(t, 1, callbackCount)
	assert.True(t, callbackPref.PrefersDark)

	detector.set(false)
	monitor.Refresh()
	assert.Equal(t, 2, callbackCount)
	assert.False(t, callbackPref.PrefersDark)
}

func TestMonitor_SubscribeAndCancel(t *testing.T) {
	detector := lightDetector()
	monitor := NewMonitor(detector)

	var seen []bool
	cancel := monitor.Subscribe(func(prefersDark bool) { seen = append(seen, prefersDark) })

	// Subscribe recorded the light baseline, so this refresh is a change
	detector.set(true)
	monitor.Refresh()
	assert.Equal(t, []bool{true}, seen)

	cancel()
	detector.set(false)
	monitor.Refresh()
	assert.Equal(t, []bool{true}, seen)
}

func TestMonitor_CurrentIsCached(t *testing.T) {
	detector := lightDetector()
	monitor := NewMonitor(detector)

	assert.False(t, monitor.Current().PrefersDark)

	detector.set(true)
	assert.False(t, monitor.Current().PrefersDark, "Current must not requery until Refresh")
	assert.True(t, monitor.Refresh().PrefersDark)
	assert.True(t, monitor.Current().PrefersDark)
}

func TestMonitor_ConcurrentAccess(_ *testing.T) {
	monitor := NewMonitor(lightDetector())

	var wg sync.WaitGroup
	const goroutines = 10

	for i := 0; i < goroutines; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				monitor.Resolve()
				monitor.PrefersDark()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				monitor.Refresh()
			}
		}()
		go func(id int) {
			defer wg.Done()
			monitor.RegisterDetector(&mockDetector{
				name:        "concurrent",
				priority:    id,
				available:   true,
				prefersDark: id%2 == 0,
				detectOk:    true,
			})
		}(i)
	}

	wg.Wait()
	// Test passes if no race conditions detected
}

func TestMonitor_ImplementsInterface(_ *testing.T) {
	var _ port.SystemPreference = NewMonitor()
}
