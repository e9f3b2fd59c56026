package port

// ColorSchemePreference represents the resolved system color scheme preference.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	// "fallback" means no detector answered.
	Source string
}

// ColorSchemeDetector detects the environment's color scheme preference.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 100+: Explicit overrides (command line)
	//   -  20+: Environment variables
	//   -  10+: Desktop settings queries (gsettings, defaults)
	Priority() int

	// Available returns true if this detector can be used.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// SystemPreference is the live "prefers dark" signal of the hosting environment.
// Implementations never fail: an unsupported signal reads as (false, false)
// and subscribing to it yields a no-op cancel function.
type SystemPreference interface {
	// PrefersDark reads the signal. ok is false when the environment cannot answer.
	PrefersDark() (prefersDark bool, ok bool)

	// Subscribe registers a callback for change notifications.
	// Returns a function that cancels the subscription.
	Subscribe(callback func(prefersDark bool)) (cancel func())
}

// ColorSchemeDetectorSource exposes the detectors behind a system preference,
// highest priority first.
type ColorSchemeDetectorSource interface {
	Detectors() []ColorSchemeDetector
}
