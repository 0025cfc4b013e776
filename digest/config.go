// Package digest holds the process wide configuration and logging
// used by the digest dispatch packages.
package digest

import (
	"context"
	"strings"
)

// Global
var (
	// globalConfig for digestbridge
	globalConfig = NewConfig()

	// ConfigEnvPrefix is prepended to option names to find their
	// environment variable
	ConfigEnvPrefix = "DIGESTBRIDGE_"
)

// ConfigInfo is the process wide options
type ConfigInfo struct {
	LogLevel          LogLevel
	UseJSONLog        bool
	LogFile           string // Log everything to this file
	LogFileMaxSize    int    // Megabytes before the log file is rotated
	LogFileMaxBackups int    // Rotated log files to keep
	LogFileCompress   bool
	OutputBase64      bool // Print digests as base64 rather than hex
}

// NewConfig creates a new config with everything set to the default
// value.  These are the ultimate defaults and are overridden by the
// command line flags.
func NewConfig() *ConfigInfo {
	c := new(ConfigInfo)

	// Set any values which aren't the zero for the type
	c.LogLevel = LogLevelNotice
	c.LogFileMaxSize = 100
	c.LogFileMaxBackups = 3

	return c
}

type configContextKeyType struct{}

// Context key for config
var configContextKey = configContextKeyType{}

// GetConfig returns the global or context sensitive config
func GetConfig(ctx context.Context) *ConfigInfo {
	if ctx == nil {
		return globalConfig
	}
	c := ctx.Value(configContextKey)
	if c == nil {
		return globalConfig
	}
	return c.(*ConfigInfo)
}

// AddConfig returns a mutable config structure based on a shallow
// copy of that found in ctx and returns a new context with that added
// to it.
func AddConfig(ctx context.Context) (context.Context, *ConfigInfo) {
	c := GetConfig(ctx)
	cCopy := new(ConfigInfo)
	*cCopy = *c
	newCtx := context.WithValue(ctx, configContextKey, cCopy)
	return newCtx, cCopy
}

// OptionToEnv converts an option name, e.g. "log-file" into an
// environment name "DIGESTBRIDGE_LOG_FILE"
func OptionToEnv(name string) string {
	return ConfigEnvPrefix + strings.ToUpper(strings.Replace(name, "-", "_", -1))
}
