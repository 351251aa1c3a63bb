package platform

import "strconv"

// Rect is a screen rectangle in points.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// IsZero reports whether the rectangle is the zero rectangle.
func (r Rect) IsZero() bool {
	return r.X == 0 && r.Y == 0 && r.W == 0 && r.H == 0
}

// Center returns the rectangle's center point in screen coordinates.
func (r Rect) Center() (x, y int) {
	return int(r.X + r.W/2), int(r.Y + r.H/2)
}

// ValueKind discriminates the variants of Value.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindString
	KindBool
	KindNumber
	KindRect
	KindElement
	KindElementList
)

// Value is the result of reading one accessibility attribute. The platform
// API returns untyped values per attribute name; Value carries an explicit
// tag so callers assert the variant they expect instead of casting blindly.
// A missing attribute is KindAbsent, never an error.
type Value struct {
	Kind  ValueKind
	Str   string
	Bool  bool
	Num   float64
	Rect  Rect
	Elem  Element
	Elems []Element
}

// Absent is the value of a missing attribute.
var Absent = Value{Kind: KindAbsent}

// StringValue wraps s as a Value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// BoolValue wraps b as a Value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue wraps n as a Value.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// AsString returns the string variant, or "" and false for any other kind.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// AsText returns a textual rendering of the value: strings pass through,
// numbers are formatted. Other kinds report false.
func (v Value) AsText() (string, bool) {
	switch v.Kind {
	case KindString:
		return v.Str, true
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64), true
	default:
		return "", false
	}
}

// AsBool returns the boolean variant, with ok false for any other kind.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.Bool, true
}

// AsElement returns the element variant, or nil and false.
func (v Value) AsElement() (Element, bool) {
	if v.Kind != KindElement || v.Elem == nil {
		return nil, false
	}
	return v.Elem, true
}
