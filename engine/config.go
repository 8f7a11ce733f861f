package engine

import "github.com/coregx/chardet/prober"

// Config controls coordinator behavior: which language families are
// worth racing multi-byte probers for, and how much input the
// coordinator is allowed to buffer before forcing a verdict.
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.LanguageFilter = prober.Japanese | prober.NonCJK
//	c, err := engine.New(config)
type Config struct {
	// LanguageFilter restricts which MBCS group members are registered.
	// Default: prober.AllLanguages
	LanguageFilter prober.LanguageFilter

	// MaxInputBytes caps how many bytes Feed will accumulate across the
	// probers it owns before the coordinator should be closed by the
	// caller. Coordinator itself does not enforce this; it's advisory
	// for callers streaming unbounded input.
	// Default: 512 * 1024
	MaxInputBytes int
}

// DefaultConfig returns a configuration that races every language family
// with a generous input cap.
func DefaultConfig() Config {
	return Config{
		LanguageFilter: prober.AllLanguages,
		MaxInputBytes:  512 * 1024,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - LanguageFilter: nonzero subset of prober.AllLanguages
//   - MaxInputBytes: 1 to 64 MiB
func (c Config) Validate() error {
	if c.LanguageFilter == 0 || c.LanguageFilter&^prober.AllLanguages != 0 {
		return &ConfigError{Field: "LanguageFilter", Message: "must be a nonzero subset of prober.AllLanguages"}
	}
	if c.MaxInputBytes < 1 || c.MaxInputBytes > 64*1024*1024 {
		return &ConfigError{Field: "MaxInputBytes", Message: "must be between 1 and 64 MiB"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "chardet: invalid config: " + e.Field + ": " + e.Message
}
