package colorscheme

import (
	"fmt"
	"strings"
	"sync/atomic"
)

const (
	detectorNameStatic = "override"
	priorityStatic     = 100
)

// StaticDetector reports a fixed preference, set from the command line or config.
// It can be flipped at runtime to simulate a system change.
type StaticDetector struct {
	prefersDark atomic.Bool
}

// NewStaticDetector creates a detector that always answers prefersDark.
func NewStaticDetector(prefersDark bool) *StaticDetector {
	d := &StaticDetector{}
	d.prefersDark.Store(prefersDark)
	return d
}

// ParseOverride maps "dark"/"light" (also "prefer-dark"/"prefer-light") to a detector.
// An empty value or "system" returns nil: no override.
func ParseOverride(value string) (*StaticDetector, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "system", "default":
		return nil, nil
	case "dark", "prefer-dark":
		return NewStaticDetector(true), nil
	case "light", "prefer-light":
		return NewStaticDetector(false), nil
	default:
		return nil, fmt.Errorf("invalid system override %q: want dark, light or system", value)
	}
}

// Name implements port.ColorSchemeDetector.
func (*StaticDetector) Name() string {
	return detectorNameStatic
}

// Priority implements port.ColorSchemeDetector.
func (*StaticDetector) Priority() int {
	return priorityStatic
}

// Available implements port.ColorSchemeDetector.
func (*StaticDetector) Available() bool {
	return true
}

// Detect implements port.ColorSchemeDetector.
func (d *StaticDetector) Detect() (prefersDark, ok bool) {
	return d.prefersDark.Load(), true
}

// Set changes the reported preference. Call Monitor.Refresh to propagate it.
func (d *StaticDetector) Set(prefersDark bool) {
	d.prefersDark.Store(prefersDark)
}
