package ax

import (
	"strings"

	"github.com/deskpilot/deskpilot/internal/platform"
)

// Locate resolves a free-text label to exactly one live element. The walk
// is rooted at the focused application rather than the focused window (the
// target may sit outside the active window, e.g. a menu bar item) and runs
// without a depth bound, because the target can be arbitrarily deep in an
// unfamiliar application.
//
// Matching is a bidirectional case-insensitive substring test: a short
// model-provided label matches a longer real title and vice versa. When
// preferredRoles is non-empty, elements whose role is known but not in the
// set are excluded from matching; their subtrees are still searched, since
// a non-matching container may hold a matching descendant. The first match
// in breadth-first order wins: ambiguous labels resolve to the element
// discovered earliest, not to a scored best match.
func Locate(acc platform.Accessor, label string, preferredRoles map[string]bool) (platform.Element, error) {
	if !acc.Trusted() {
		return nil, ErrAccessibilityDisabled
	}

	query := strings.ToLower(strings.TrimSpace(label))
	if query == "" {
		return nil, &NotFoundError{Label: label}
	}

	app, err := acc.FocusedApplication()
	if err != nil || app == nil {
		return nil, ErrNoFocusedApp
	}

	var found platform.Element
	Walk(acc, app, -1, func(el platform.Element, depth int) bool {
		if len(preferredRoles) > 0 {
			raw, _ := acc.Attribute(el, platform.AttrRole).AsString()
			if role, known := MapRole(raw); known && !preferredRoles[role] {
				// Role filtering prunes matches, not subtrees.
				return true
			}
		}

		title := strings.ToLower(titleOf(acc, el))
		if title == "" {
			return true
		}
		if strings.Contains(title, query) || strings.Contains(query, title) {
			found = el
			return false
		}
		return true
	})

	if found == nil {
		return nil, &NotFoundError{Label: label}
	}
	return found, nil
}
