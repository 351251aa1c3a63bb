package plan

import (
	"fmt"
	"strings"
)

// Actions the planning service may return.
const (
	ActionAnswer = "answer"
	ActionClick  = "click"
	ActionType   = "type"
	ActionFocus  = "focus"
)

// Decision is the planning service's structured output: which action to
// take, against which element, with what text.
type Decision struct {
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
	Text   string `json:"text,omitempty"`
}

var allowedActions = map[string]bool{
	ActionAnswer: true,
	ActionClick:  true,
	ActionType:   true,
	ActionFocus:  true,
}

// Validate normalizes the action name and checks the per-action field
// requirements: target for click/type/focus, text for type.
func (d *Decision) Validate() error {
	d.Action = strings.ToLower(strings.TrimSpace(d.Action))
	if !allowedActions[d.Action] {
		return fmt.Errorf("unsupported action %q (expected answer, click, type, or focus)", d.Action)
	}
	switch d.Action {
	case ActionClick, ActionFocus:
		if strings.TrimSpace(d.Target) == "" {
			return fmt.Errorf("action %q requires a target", d.Action)
		}
	case ActionType:
		if strings.TrimSpace(d.Target) == "" {
			return fmt.Errorf("action %q requires a target", d.Action)
		}
		if d.Text == "" {
			return fmt.Errorf("action %q requires text", d.Action)
		}
	}
	return nil
}
