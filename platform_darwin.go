//go:build darwin

package main

// Registers the macOS platform provider.
import _ "github.com/deskpilot/deskpilot/internal/platform/darwin"
