package ax

import (
	"fmt"
	"strings"
	"time"

	"github.com/deskpilot/deskpilot/internal/platform"
)

// Action kinds understood by the Performer. These mirror the planning
// service's decision vocabulary.
const (
	ActionAnswer = "answer"
	ActionClick  = "click"
	ActionType   = "type"
	ActionFocus  = "focus"
)

// Action is a structured decision to enact against the live UI.
type Action struct {
	Name   string
	Target string
	Text   string
}

// Describe renders the action as a short human-readable phrase, used for
// the highlight tag and confirmation prompts.
func (a Action) Describe() string {
	switch a.Name {
	case ActionClick:
		return fmt.Sprintf("click %q", a.Target)
	case ActionType:
		return fmt.Sprintf("type %q into %q", a.Text, a.Target)
	case ActionFocus:
		return fmt.Sprintf("focus %q", a.Target)
	default:
		return a.Name
	}
}

// destructiveKeywords flags targets whose labels suggest irreversible
// consequences.
var destructiveKeywords = []string{
	"delete", "remove", "erase", "destroy", "discard", "quit", "close", "kill",
}

// IsDestructive reports whether a target label trips the destructive-keyword
// gate.
func IsDestructive(label string) bool {
	l := strings.ToLower(label)
	for _, kw := range destructiveKeywords {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

// defaultSyntheticDelay spaces the synthetic pointer events of the click
// fallback to emulate human timing.
const defaultSyntheticDelay = 60 * time.Millisecond

// Performer enacts action decisions against the focused application's UI.
type Performer struct {
	acc            platform.Accessor
	in             platform.Inputter
	hl             platform.Highlighter
	syntheticDelay time.Duration
}

// NewPerformer creates a Performer over the given platform backends.
func NewPerformer(p *platform.Provider) *Performer {
	return &Performer{
		acc:            p.Accessor,
		in:             p.Inputter,
		hl:             p.Highlighter,
		syntheticDelay: defaultSyntheticDelay,
	}
}

// Perform resolves the action's target and executes it. The destructive
// gate fires before any mutation: a destructive-looking target with
// confirmed=false returns ConfirmationRequiredError and takes no further
// action. The highlight is emitted either way as a dry-run indicator.
func (p *Performer) Perform(act Action, confirmed bool) error {
	switch act.Name {
	case ActionAnswer:
		// Nothing to perform.
		return nil
	case ActionClick, ActionType, ActionFocus:
	default:
		return fmt.Errorf("unknown action %q", act.Name)
	}

	var preferred map[string]bool
	if act.Name == ActionType {
		preferred = TextInputRoles
	}
	el, err := Locate(p.acc, act.Target, preferred)
	if err != nil {
		return err
	}

	frame, hasFrame := p.acc.Frame(el)
	if p.hl != nil {
		// Best-effort dry-run indicator, not gated by the destructive check.
		_ = p.hl.Flash(frame, act.Describe())
	}

	if IsDestructive(act.Target) && !confirmed {
		return &ConfirmationRequiredError{Target: act.Target, Description: act.Describe()}
	}

	switch act.Name {
	case ActionClick:
		return p.click(el, act, frame, hasFrame)
	case ActionType:
		return p.typeInto(el, act)
	default:
		return p.focus(el, act)
	}
}

// click tries the primary accessibility press first, then falls back to a
// synthetic move/press/release at the element's frame center.
func (p *Performer) click(el platform.Element, act Action, frame platform.Rect, hasFrame bool) error {
	if err := p.acc.PerformAction(el, platform.ActionPress); err == nil {
		return nil
	}
	if !hasFrame {
		return &ActionFailedError{
			Action: act.Name,
			Target: act.Target,
			Reason: "press failed and element has no frame for a synthetic click",
		}
	}

	x, y := frame.Center()
	steps := []struct {
		name string
		fn   func(x, y int) error
	}{
		{"move", p.in.MoveMouse},
		{"press", p.in.PressMouse},
		{"release", p.in.ReleaseMouse},
	}
	for i, step := range steps {
		if err := step.fn(x, y); err != nil {
			return &ActionFailedError{
				Action: act.Name,
				Target: act.Target,
				Reason: fmt.Sprintf("synthetic %s at (%d, %d): %v", step.name, x, y, err),
			}
		}
		if i < len(steps)-1 {
			time.Sleep(p.syntheticDelay)
		}
	}
	return nil
}

// typeInto focuses the element best-effort, then writes its value. Only the
// value write is fatal.
func (p *Performer) typeInto(el platform.Element, act Action) error {
	_ = p.acc.SetAttribute(el, platform.AttrFocused, platform.BoolValue(true))
	if err := p.acc.SetAttribute(el, platform.AttrValue, platform.StringValue(act.Text)); err != nil {
		return &ActionFailedError{
			Action: act.Name,
			Target: act.Target,
			Reason: fmt.Sprintf("failed to set value: %v", err),
		}
	}
	return nil
}

func (p *Performer) focus(el platform.Element, act Action) error {
	if err := p.acc.SetAttribute(el, platform.AttrFocused, platform.BoolValue(true)); err != nil {
		return &ActionFailedError{
			Action: act.Name,
			Target: act.Target,
			Reason: fmt.Sprintf("failed to set focus: %v", err),
		}
	}
	return nil
}
