package ax

import (
	"fmt"

	"github.com/deskpilot/deskpilot/internal/platform"
)

// fakeElement is an in-memory accessibility tree node for tests. Fields
// mirror what the real backend exposes: an identity hash, a bag of named
// attributes, ordered children, and an optional frame.
type fakeElement struct {
	hash     uint64
	attrs    map[string]platform.Value
	children []*fakeElement
	frame    *platform.Rect

	// Failure injection and call recording for action tests.
	setErrs    map[string]error
	performErr error
	sets       map[string]platform.Value
	performed  []string
}

func (e *fakeElement) Hash() uint64 { return e.hash }

var nextFakeHash uint64

// elem builds a node with the given raw role and title. A zero role or
// title leaves the attribute absent.
func elem(role, title string, children ...*fakeElement) *fakeElement {
	nextFakeHash++
	e := &fakeElement{
		hash:     nextFakeHash,
		attrs:    make(map[string]platform.Value),
		children: children,
		sets:     make(map[string]platform.Value),
	}
	if role != "" {
		e.attrs[platform.AttrRole] = platform.StringValue(role)
	}
	if title != "" {
		e.attrs[platform.AttrTitle] = platform.StringValue(title)
	}
	return e
}

func (e *fakeElement) withAttr(name string, v platform.Value) *fakeElement {
	e.attrs[name] = v
	return e
}

func (e *fakeElement) withFrame(x, y, w, h float64) *fakeElement {
	e.frame = &platform.Rect{X: x, Y: y, W: w, H: h}
	return e
}

func (e *fakeElement) withSetError(attr string, err error) *fakeElement {
	if e.setErrs == nil {
		e.setErrs = make(map[string]error)
	}
	e.setErrs[attr] = err
	return e
}

func (e *fakeElement) withPerformError(err error) *fakeElement {
	e.performErr = err
	return e
}

// fakeAccessor serves a fixed tree. app is the focused-application root,
// win the focused window within it.
type fakeAccessor struct {
	trusted bool
	app     *fakeElement
	win     *fakeElement
}

func newFakeAccessor(app, win *fakeElement) *fakeAccessor {
	return &fakeAccessor{trusted: true, app: app, win: win}
}

func (f *fakeAccessor) Trusted() bool { return f.trusted }

func (f *fakeAccessor) FocusedApplication() (platform.Element, error) {
	if f.app == nil {
		return nil, fmt.Errorf("no focused application")
	}
	return f.app, nil
}

func (f *fakeAccessor) FocusedWindow(app platform.Element) (platform.Element, error) {
	if f.win == nil {
		return nil, fmt.Errorf("no focused window")
	}
	return f.win, nil
}

func (f *fakeAccessor) Attribute(el platform.Element, name string) platform.Value {
	fe := el.(*fakeElement)
	if v, ok := fe.attrs[name]; ok {
		return v
	}
	return platform.Absent
}

func (f *fakeAccessor) Children(el platform.Element) []platform.Element {
	fe := el.(*fakeElement)
	out := make([]platform.Element, len(fe.children))
	for i, c := range fe.children {
		out[i] = c
	}
	return out
}

func (f *fakeAccessor) Frame(el platform.Element) (platform.Rect, bool) {
	fe := el.(*fakeElement)
	if fe.frame == nil {
		return platform.Rect{}, false
	}
	return *fe.frame, true
}

func (f *fakeAccessor) SetAttribute(el platform.Element, name string, v platform.Value) error {
	fe := el.(*fakeElement)
	if err := fe.setErrs[name]; err != nil {
		return err
	}
	fe.sets[name] = v
	return nil
}

func (f *fakeAccessor) PerformAction(el platform.Element, action string) error {
	fe := el.(*fakeElement)
	if fe.performErr != nil {
		return fe.performErr
	}
	fe.performed = append(fe.performed, action)
	return nil
}

// fakeInputter records synthetic pointer events in order.
type fakeInputter struct {
	events []string
	failOn string
}

func (f *fakeInputter) record(kind string, x, y int) error {
	if f.failOn == kind {
		return fmt.Errorf("injected %s failure", kind)
	}
	f.events = append(f.events, fmt.Sprintf("%s(%d,%d)", kind, x, y))
	return nil
}

func (f *fakeInputter) MoveMouse(x, y int) error    { return f.record("move", x, y) }
func (f *fakeInputter) PressMouse(x, y int) error   { return f.record("press", x, y) }
func (f *fakeInputter) ReleaseMouse(x, y int) error { return f.record("release", x, y) }

// fakeHighlighter records flash labels.
type fakeHighlighter struct {
	flashes []string
}

func (f *fakeHighlighter) Flash(r platform.Rect, label string) error {
	f.flashes = append(f.flashes, label)
	return nil
}
