package config

import "time"

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile,
// then environment, then command-line flags.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Backend BackendConfig `json:"backend"`
	Quiz    QuizConfig    `json:"quiz"`
	UI      UIConfig      `json:"ui"`
	Log     LogConfig     `json:"log"`
}

type BackendConfig struct {
	BaseURL           string `json:"base_url"`            // Default: http://localhost:8000
	TimeoutMs         int    `json:"timeout_ms"`          // Default: 60000 (0 disables the timeout)
	RequestsPerSecond int    `json:"requests_per_second"` // Default: 0 (unlimited)
}

type QuizConfig struct {
	Count int `json:"count"` // Default: 4
}

type UIConfig struct {
	TickIntervalMs   int    `json:"tick_interval_ms"`   // Default: 300
	MaxResultsHeight int    `json:"max_results_height"` // Default: 12
	ColorPrimary     string `json:"color_primary"`      // Default: "63"
	ColorMajor       string `json:"color_major"`        // Default: "196"
	ColorModerate    string `json:"color_moderate"`     // Default: "214"
	ColorMinor       string `json:"color_minor"`        // Default: "42"
	ColorMuted       string `json:"color_muted"`        // Default: "241"
}

type LogConfig struct {
	// File is the diagnostic log path. Empty means <home>/.config/pharmtui/pharmtui.log.
	File  string `json:"file"`
	Level string `json:"level"` // Default: "info"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:           "http://localhost:8000",
			TimeoutMs:         60000,
			RequestsPerSecond: 0,
		},
		Quiz: QuizConfig{
			Count: 4,
		},
		UI: UIConfig{
			TickIntervalMs:   300,
			MaxResultsHeight: 12,
			ColorPrimary:     "63",
			ColorMajor:       "196",
			ColorModerate:    "214",
			ColorMinor:       "42",
			ColorMuted:       "241",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// RequestTimeout returns the per-request timeout, or 0 when disabled.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutMs) * time.Millisecond
}

// TickInterval returns the UI animation tick interval.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.UI.TickIntervalMs) * time.Millisecond
}
