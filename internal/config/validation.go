package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	// Backend validation
	if c.Backend.BaseURL == "" {
		errs = append(errs, "backend.base_url must not be empty")
	} else if u, err := url.Parse(c.Backend.BaseURL); err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, "backend.base_url must be an absolute http(s) URL")
	}
	if c.Backend.TimeoutMs < 0 {
		errs = append(errs, "backend.timeout_ms must be >= 0")
	}
	if c.Backend.RequestsPerSecond < 0 {
		errs = append(errs, "backend.requests_per_second must be >= 0")
	}

	// Quiz validation
	if c.Quiz.Count < 1 {
		errs = append(errs, "quiz.count must be >= 1")
	}

	// UI validation
	if c.UI.TickIntervalMs < 1 {
		errs = append(errs, "ui.tick_interval_ms must be >= 1")
	}
	if c.UI.MaxResultsHeight < 1 {
		errs = append(errs, "ui.max_results_height must be >= 1")
	}
	colors := []struct{ key, value string }{
		{"ui.color_primary", c.UI.ColorPrimary},
		{"ui.color_major", c.UI.ColorMajor},
		{"ui.color_moderate", c.UI.ColorModerate},
		{"ui.color_minor", c.UI.ColorMinor},
		{"ui.color_muted", c.UI.ColorMuted},
	}
	for _, color := range colors {
		if color.value == "" {
			errs = append(errs, color.key+" must not be empty")
		}
	}

	// Log validation
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, "log.level must be one of debug, info, warn, error")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
