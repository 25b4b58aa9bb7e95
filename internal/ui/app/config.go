package app

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the layout constants and timings of the page behavior.
type Config struct {
	HeaderOffset     float64
	ProbeBias        float64
	ScrollThreshold  float64
	MobileBreakpoint float64

	ScrollDebounce time.Duration
	ResizeDebounce time.Duration
	IconSwapDelay  time.Duration
	SubmitDelay    time.Duration
	SuccessDismiss time.Duration

	ThemeStorageKey string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		HeaderOffset:     80,
		ProbeBias:        150,
		ScrollThreshold:  100,
		MobileBreakpoint: 768,
		ScrollDebounce:   10 * time.Millisecond,
		ResizeDebounce:   250 * time.Millisecond,
		IconSwapDelay:    150 * time.Millisecond,
		SubmitDelay:      2000 * time.Millisecond,
		SuccessDismiss:   5000 * time.Millisecond,
		ThemeStorageKey:  "theme",
	}
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ThemeStorageKey) == "" {
		return fmt.Errorf("config: theme storage key is required")
	}
	if c.MobileBreakpoint <= 0 {
		return fmt.Errorf("config: mobile breakpoint must be positive")
	}
	durations := map[string]time.Duration{
		"scroll debounce": c.ScrollDebounce,
		"resize debounce": c.ResizeDebounce,
		"icon swap delay": c.IconSwapDelay,
		"submit delay":    c.SubmitDelay,
		"success dismiss": c.SuccessDismiss,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("config: %s must be positive", name)
		}
	}
	return nil
}
