package ax

import (
	"strconv"

	"github.com/deskpilot/deskpilot/internal/platform"
)

// Node is one interesting element extracted from the focused window. ID is
// the element identity hash rendered as a string, a client-visible label
// only, never a handle back into the tree.
type Node struct {
	ID      string        `json:"id"      yaml:"id"`
	Role    string        `json:"role"    yaml:"role"`
	Title   string        `json:"title"   yaml:"title"`
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Frame   platform.Rect `json:"frame"   yaml:"frame"`
}

// Defaults for Capture. The snapshot has to stay small: it is shipped to
// the planning service on every instruction.
const (
	DefaultCaptureLimit = 120
	DefaultCaptureDepth = 3
)

// titleOf resolves an element's display title via the priority chain:
// title, label value, value, description, help. The first non-empty string
// (or numeric value rendered as a string) wins.
func titleOf(acc platform.Accessor, el platform.Element) string {
	for _, attr := range []string{
		platform.AttrTitle,
		platform.AttrLabelValue,
		platform.AttrValue,
		platform.AttrDescription,
		platform.AttrHelp,
	} {
		if s, ok := acc.Attribute(el, attr).AsText(); ok && s != "" {
			return s
		}
	}
	return ""
}

// Capture walks the focused window and returns a flat, bounded list of
// interesting elements in breadth-first discovery order. Zero matching
// elements is a valid, successful empty result; the only failure states are
// missing permission, no focused application, and no focused window.
func Capture(acc platform.Accessor, limit, maxDepth int) ([]Node, error) {
	if !acc.Trusted() {
		return nil, ErrAccessibilityDisabled
	}
	if limit <= 0 {
		limit = DefaultCaptureLimit
	}
	if maxDepth < 0 {
		maxDepth = DefaultCaptureDepth
	}

	app, err := acc.FocusedApplication()
	if err != nil || app == nil {
		return nil, ErrNoFocusedApp
	}
	win, err := acc.FocusedWindow(app)
	if err != nil || win == nil {
		return nil, ErrNoFocusedWindow
	}

	nodes := []Node{}
	Walk(acc, win, maxDepth, func(el platform.Element, depth int) bool {
		raw, _ := acc.Attribute(el, platform.AttrRole).AsString()
		role, interesting := MapRole(raw)
		if !interesting {
			return true
		}

		// An element with no explicit enabled state is assumed interactive.
		enabled := true
		if b, ok := acc.Attribute(el, platform.AttrEnabled).AsBool(); ok {
			enabled = b
		}
		frame, ok := acc.Frame(el)
		if !ok {
			frame = platform.Rect{}
		}

		nodes = append(nodes, Node{
			ID:      strconv.FormatUint(el.Hash(), 16),
			Role:    role,
			Title:   titleOf(acc, el),
			Enabled: enabled,
			Frame:   frame,
		})
		return len(nodes) < limit
	})

	return nodes, nil
}
