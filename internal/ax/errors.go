package ax

import (
	"errors"
	"fmt"
)

// ErrAccessibilityDisabled means the process has not been granted
// accessibility permission by the OS. Fatal to the whole instruction and
// never retried automatically; the user must grant permission out-of-band.
var ErrAccessibilityDisabled = errors.New("accessibility permission not granted")

// ErrNoFocusedApp means no application currently holds input focus, or the
// platform call to resolve it failed. Transient; usually resolved by the
// user switching focus and re-submitting.
var ErrNoFocusedApp = errors.New("no focused application")

// ErrNoFocusedWindow means the focused application has no focused window.
var ErrNoFocusedWindow = errors.New("focused application has no focused window")

// NotFoundError reports that a label did not match any live element.
type NotFoundError struct {
	Label string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no element found matching %q", e.Label)
}

// ConfirmationRequiredError is a deliberate pause, not a failure: the
// resolved target looked destructive and the caller must re-invoke with
// confirmed=true after explicit user assent.
type ConfirmationRequiredError struct {
	Target      string
	Description string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("%q looks destructive; confirm to %s", e.Target, e.Description)
}

// ActionFailedError reports that the primary action API failed and, for
// clicks, the synthetic-input fallback failed too or was impossible.
type ActionFailedError struct {
	Action string
	Target string
	Reason string
}

func (e *ActionFailedError) Error() string {
	return fmt.Sprintf("%s %q failed: %s", e.Action, e.Target, e.Reason)
}
