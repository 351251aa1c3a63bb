package platform

// Standard accessibility attribute names. The darwin backend passes these
// through to the AX API verbatim; the fake accessor used in tests keys its
// attribute maps by the same names.
const (
	AttrRole        = "AXRole"
	AttrTitle       = "AXTitle"
	AttrLabelValue  = "AXLabelValue"
	AttrValue       = "AXValue"
	AttrDescription = "AXDescription"
	AttrHelp        = "AXHelp"
	AttrEnabled     = "AXEnabled"
	AttrFocused     = "AXFocused"
)

// ActionPress is the primary activation action for buttons and similar
// controls.
const ActionPress = "AXPress"

// Element is an opaque borrowed handle to one node in an externally owned
// accessibility tree. The tree belongs to whatever application holds input
// focus; handles are only valid for the duration of the traversal or action
// call that produced them and must not be cached across instructions.
type Element interface {
	// Hash returns the platform identity hash for this node. Two handles
	// with equal hashes observed during a single traversal refer to the
	// same node. Equal hashes say nothing about attribute equality across
	// time; the tree may mutate between reads.
	Hash() uint64
}

// Accessor is a thin typed wrapper over the platform accessibility API.
// Attribute reads fail soft: a missing attribute yields an Absent value,
// never an error. Only SetAttribute and PerformAction mutate the target
// application's live state.
type Accessor interface {
	// Trusted reports whether the process has been granted accessibility
	// permission by the OS.
	Trusted() bool

	// FocusedApplication returns a handle to the application that currently
	// holds input focus.
	FocusedApplication() (Element, error)

	// FocusedWindow returns the focused window of the given application.
	FocusedWindow(app Element) (Element, error)

	// Attribute reads one attribute. One call, one platform round trip.
	Attribute(el Element, name string) Value

	// Children returns the ordered child elements, possibly empty.
	Children(el Element) []Element

	// Frame returns the element's bounding rectangle in screen points.
	Frame(el Element) (Rect, bool)

	// SetAttribute writes one attribute on the live element.
	SetAttribute(el Element, name string, v Value) error

	// PerformAction invokes a named accessibility action on the element.
	PerformAction(el Element, action string) error
}

// Inputter synthesizes low-level pointer events. Used as the fallback when
// the primary accessibility action fails.
type Inputter interface {
	MoveMouse(x, y int) error
	PressMouse(x, y int) error
	ReleaseMouse(x, y int) error
}

// Highlighter shows a transient visual marker over a screen rectangle,
// tagged with a short description of the pending action. Best-effort; the
// caller ignores failures.
type Highlighter interface {
	Flash(r Rect, label string) error
}
