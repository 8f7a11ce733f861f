package chardet

import "github.com/coregx/chardet/engine"

// Config controls Detector behavior. See engine.Config for field docs.
type Config = engine.Config

// DefaultConfig returns a configuration that races every language family.
func DefaultConfig() Config { return engine.DefaultConfig() }

// ConfigError represents an invalid configuration parameter.
type ConfigError = engine.ConfigError
