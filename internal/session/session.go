// Package session orchestrates one assistant session: capture a
// snapshot, ask the planning service, enact its decision, and hold at
// most one action awaiting confirmation.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/plan"
)

// ErrSuperseded is returned for an instruction whose work was
// abandoned because a newer instruction arrived while it ran.
var ErrSuperseded = errors.New("superseded by a newer instruction")

// Planner asks the planning service for a decision.
type Planner interface {
	Plan(ctx context.Context, instruction string, snapshot []ax.Node) (*plan.Result, error)
}

// Performer enacts a resolved action against the live UI.
type Performer interface {
	Perform(act ax.Action, confirmed bool) error
}

// Capturer produces the snapshot attached to planning requests.
type Capturer func() ([]ax.Node, error)

// Status classifies an instruction's outcome.
type Status string

const (
	StatusAnswered  Status = "answered"
	StatusPerformed Status = "performed"
	StatusPending   Status = "pending"
	StatusCanceled  Status = "canceled"
	StatusFailed    Status = "failed"
)

// Result is the user-facing outcome of one instruction.
type Result struct {
	ID      string
	Status  Status
	Text    string
	Action  *ax.Action
	Pending *ax.Action
}

// Session runs at most one instruction at a time. A new instruction
// cancels the in-flight one and invalidates any pending action.
type Session struct {
	log       zerolog.Logger
	planner   Planner
	performer Performer
	capture   Capturer

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	pending *ax.Action
}

// New builds a session around the given collaborators.
func New(planner Planner, performer Performer, capture Capturer, log zerolog.Logger) *Session {
	return &Session{
		log:       log,
		planner:   planner,
		performer: performer,
		capture:   capture,
	}
}

// Pending returns the action currently awaiting confirmation, if any.
func (s *Session) Pending() *ax.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Submit runs one instruction to completion. The words "confirm" and
// "cancel" resolve the pending action instead of starting a new cycle.
// Failures from the core surface as a readable Result, not an error;
// the error return is reserved for superseded or canceled work.
func (s *Session) Submit(ctx context.Context, instruction string) (*Result, error) {
	id := uuid.NewString()
	log := s.log.With().Str("instruction_id", id).Logger()

	switch strings.ToLower(strings.TrimSpace(instruction)) {
	case "confirm":
		return s.confirmPending(id, log)
	case "cancel":
		return s.cancelPending(id, log)
	}

	ctx, gen := s.begin(ctx)
	log.Debug().Str("instruction", instruction).Msg("instruction started")

	snapshot, captureErr := s.capture()
	if captureErr != nil {
		log.Warn().Err(captureErr).Msg("snapshot capture failed, planning without screen context")
		snapshot = nil
	}
	if err := s.stillCurrent(ctx, gen); err != nil {
		return nil, err
	}

	res, err := s.planner.Plan(ctx, instruction, snapshot)
	if serr := s.stillCurrent(ctx, gen); serr != nil {
		return nil, serr
	}
	if err != nil {
		log.Warn().Err(err).Msg("planning failed")
		return s.failure(id, fmt.Sprintf("planning failed: %v", err), captureErr), nil
	}

	if res.Tool == nil {
		text := res.Response
		if text == "" {
			text = "the assistant had nothing to say"
		}
		return s.withCaptureNote(&Result{ID: id, Status: StatusAnswered, Text: text}, captureErr), nil
	}

	act := toAction(res.Tool)
	err = s.performer.Perform(act, false)
	if serr := s.stillCurrent(ctx, gen); serr != nil {
		return nil, serr
	}

	var confirm *ax.ConfirmationRequiredError
	if errors.As(err, &confirm) {
		s.setPending(gen, &act)
		log.Info().Str("target", act.Target).Msg("action held for confirmation")
		return &Result{
			ID:      id,
			Status:  StatusPending,
			Text:    fmt.Sprintf("%v, or \"cancel\" to discard", confirm),
			Pending: &act,
		}, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("action", act.Name).Msg("action failed")
		return s.failure(id, userMessage(err), captureErr), nil
	}

	log.Info().Str("action", act.Name).Str("target", act.Target).Msg("action performed")
	return s.withCaptureNote(&Result{
		ID:     id,
		Status: StatusPerformed,
		Text:   "done: " + act.Describe(),
		Action: &act,
	}, captureErr), nil
}

func (s *Session) confirmPending(id string, log zerolog.Logger) (*Result, error) {
	s.mu.Lock()
	act := s.pending
	s.pending = nil
	s.mu.Unlock()

	if act == nil {
		return &Result{ID: id, Status: StatusFailed, Text: "nothing is waiting for confirmation"}, nil
	}
	if err := s.performer.Perform(*act, true); err != nil {
		log.Warn().Err(err).Str("target", act.Target).Msg("confirmed action failed")
		return &Result{ID: id, Status: StatusFailed, Text: userMessage(err)}, nil
	}
	log.Info().Str("target", act.Target).Msg("confirmed action performed")
	return &Result{ID: id, Status: StatusPerformed, Text: "done: " + act.Describe(), Action: act}, nil
}

func (s *Session) cancelPending(id string, log zerolog.Logger) (*Result, error) {
	s.mu.Lock()
	act := s.pending
	s.pending = nil
	s.mu.Unlock()

	if act == nil {
		return &Result{ID: id, Status: StatusFailed, Text: "nothing is waiting for confirmation"}, nil
	}
	log.Info().Str("target", act.Target).Msg("pending action discarded")
	return &Result{ID: id, Status: StatusCanceled, Text: "canceled: " + act.Describe()}, nil
}

// begin starts a new instruction cycle: cancels any in-flight one,
// discards the pending action, and returns a cancellable context plus
// the cycle's generation number.
func (s *Session) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.gen++
	s.pending = nil
	return ctx, s.gen
}

func (s *Session) stillCurrent(ctx context.Context, gen uint64) error {
	s.mu.Lock()
	current := s.gen == gen
	s.mu.Unlock()
	if !current {
		return ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// setPending stores the action only if its cycle is still the latest.
func (s *Session) setPending(gen uint64, act *ax.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.pending = act
	}
}

func (s *Session) failure(id, text string, captureErr error) *Result {
	return s.withCaptureNote(&Result{ID: id, Status: StatusFailed, Text: text}, captureErr)
}

// withCaptureNote appends the snapshot failure reason so the user
// understands why the model lacked screen context.
func (s *Session) withCaptureNote(r *Result, captureErr error) *Result {
	if captureErr != nil {
		r.Text += fmt.Sprintf(" (screen context unavailable: %v)", captureErr)
	}
	return r
}

func toAction(d *plan.Decision) ax.Action {
	return ax.Action{Name: d.Action, Target: d.Target, Text: d.Text}
}

// userMessage turns a core failure into readable text.
func userMessage(err error) string {
	var nf *ax.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("could not find %q on screen", nf.Label)
	}
	var af *ax.ActionFailedError
	if errors.As(err, &af) {
		return af.Error()
	}
	switch {
	case errors.Is(err, ax.ErrAccessibilityDisabled):
		return "accessibility permission is not granted; enable it in system settings and try again"
	case errors.Is(err, ax.ErrNoFocusedApp):
		return "no application is focused; click into the app you want to control and try again"
	case errors.Is(err, ax.ErrNoFocusedWindow):
		return "the focused application has no focused window"
	}
	return err.Error()
}
