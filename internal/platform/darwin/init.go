//go:build darwin && cgo

package darwin

import "github.com/deskpilot/deskpilot/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Accessor:    NewAccessor(),
			Inputter:    NewInputter(),
			Highlighter: NewHighlighter(),
		}, nil
	}
}
