package probe

import (
	"errors"
	"fmt"
	"time"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config controls which sections are collected and how the result is
// emitted.
type Config struct {
	// Sections to collect, in report order. Must be registered names.
	Sections []string
	// Format selects the renderer: FormatText or FormatJSON.
	Format string
	// ListenAddr, when non-empty, switches to exporter mode and serves
	// metrics on this address instead of printing once.
	ListenAddr string
	// PoolSize bounds the number of concurrently running section probes.
	PoolSize int
	// Timeout bounds each individual section probe.
	Timeout time.Duration
}

// DefaultConfig returns the configuration of a bare invocation: the sync
// section only, text output, one-shot mode.
func DefaultConfig() *Config {
	return &Config{
		Sections: []string{SectionSync},
		Format:   FormatText,
		PoolSize: 2,
		Timeout:  3 * time.Second,
	}
}

// VerifyConfig checks config against the built-in section set and returns
// the first problem found.
func VerifyConfig(config *Config) error {
	if config == nil {
		return errors.New("config is nil")
	}
	if len(config.Sections) == 0 {
		return errors.New("no sections requested")
	}
	known := make(map[string]struct{}, 4)
	for _, name := range DefaultRegistry().Names() {
		known[name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(config.Sections))
	for _, name := range config.Sections {
		if _, ok := known[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSection, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("section requested twice: %s", name)
		}
		seen[name] = struct{}{}
	}
	if config.Format != FormatText && config.Format != FormatJSON {
		return fmt.Errorf("unknown format: %q", config.Format)
	}
	if config.PoolSize <= 0 {
		return fmt.Errorf("pool size must be positive, got %d", config.PoolSize)
	}
	if config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", config.Timeout)
	}
	return nil
}
