package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the full dotted path to the config key (e.g., "toggles.hint")
	Key string `json:"key"`

	// Type is the value type (e.g., "string", "duration")
	Type string `json:"type"`

	// Default is the default value as a string representation
	Default string `json:"default"`

	Description string `json:"description"`

	// Values contains valid enum values, empty if not an enum
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints (e.g., ">=0")
	Range string `json:"range,omitempty"`

	// Section groups related keys (e.g., "Toggles", "Logging")
	Section string `json:"section"`
}
