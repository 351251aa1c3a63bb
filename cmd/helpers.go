package cmd

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/config"
	"github.com/deskpilot/deskpilot/internal/platform"
)

// newLogger builds a stderr console logger at the configured level, so
// log lines never mix with the structured output on stdout.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// capturer binds a snapshot capture to a provider and config.
func capturer(provider *platform.Provider, cfg config.Config) func() ([]ax.Node, error) {
	return func() ([]ax.Node, error) {
		return ax.Capture(provider.Accessor, cfg.SnapshotLimit, cfg.SnapshotDepth)
	}
}

// StringParam extracts a string parameter from MCP tool arguments.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// IntParam extracts an int parameter from MCP tool arguments.
// JSON numbers arrive as float64.
func IntParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// BoolParam extracts a bool parameter from MCP tool arguments.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
