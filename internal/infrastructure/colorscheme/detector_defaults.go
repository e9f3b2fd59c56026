package colorscheme

import (
	"context"
	"runtime"
	"strings"
)

const (
	detectorNameDefaults = "AppleInterfaceStyle"
	priorityDefaults     = 10
)

// DefaultsDetector detects the macOS appearance through `defaults read`.
// The AppleInterfaceStyle key only exists while dark mode is on.
type DefaultsDetector struct {
	run  commandRunner
	goos string
}

// NewDefaultsDetector creates a new macOS defaults-based detector.
func NewDefaultsDetector() *DefaultsDetector {
	return &DefaultsDetector{run: execRunner, goos: runtime.GOOS}
}

// Name implements port.ColorSchemeDetector.
func (*DefaultsDetector) Name() string {
	return detectorNameDefaults
}

// Priority implements port.ColorSchemeDetector.
func (*DefaultsDetector) Priority() int {
	return priorityDefaults
}

// Available implements port.ColorSchemeDetector.
func (d *DefaultsDetector) Available() bool {
	return d.goos == "darwin"
}

// Detect implements port.ColorSchemeDetector.
func (d *DefaultsDetector) Detect() (prefersDark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	output, err := d.run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		// Key doesn't exist = light mode
		return false, true
	}
	return strings.TrimSpace(string(output)) == "Dark", true
}
