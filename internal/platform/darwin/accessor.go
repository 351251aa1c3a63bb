//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>

// Copy one attribute value. Returns NULL when the attribute is missing or
// the element is stale; the AX API reports both via status codes.
static CFTypeRef ax_copy_attr(AXUIElementRef el, const char *name) {
    CFStringRef cfName = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
    if (!cfName) return NULL;
    CFTypeRef out = NULL;
    AXError err = AXUIElementCopyAttributeValue(el, cfName, &out);
    CFRelease(cfName);
    if (err != kAXErrorSuccess) return NULL;
    return out;
}

static AXUIElementRef ax_focused_application() {
    AXUIElementRef systemWide = AXUIElementCreateSystemWide();
    if (!systemWide) return NULL;
    CFTypeRef app = NULL;
    AXError err = AXUIElementCopyAttributeValue(systemWide, kAXFocusedApplicationAttribute, &app);
    CFRelease(systemWide);
    if (err != kAXErrorSuccess) return NULL;
    return (AXUIElementRef)app;
}

static int ax_copy_frame(AXUIElementRef el, CGRect *rect) {
    CFTypeRef v = ax_copy_attr(el, "AXFrame");
    if (!v) return -1;
    int ok = (CFGetTypeID(v) == AXValueGetTypeID()) &&
             AXValueGetValue((AXValueRef)v, kAXValueTypeCGRect, rect);
    CFRelease(v);
    return ok ? 0 : -1;
}

static int ax_set_string(AXUIElementRef el, const char *name, const char *value) {
    CFStringRef cfName = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
    CFStringRef cfValue = CFStringCreateWithCString(NULL, value, kCFStringEncodingUTF8);
    if (!cfName || !cfValue) {
        if (cfName) CFRelease(cfName);
        if (cfValue) CFRelease(cfValue);
        return -1;
    }
    AXError err = AXUIElementSetAttributeValue(el, cfName, cfValue);
    CFRelease(cfName);
    CFRelease(cfValue);
    return err == kAXErrorSuccess ? 0 : -1;
}

static int ax_set_bool(AXUIElementRef el, const char *name, int value) {
    CFStringRef cfName = CFStringCreateWithCString(NULL, name, kCFStringEncodingUTF8);
    if (!cfName) return -1;
    AXError err = AXUIElementSetAttributeValue(el, cfName, value ? kCFBooleanTrue : kCFBooleanFalse);
    CFRelease(cfName);
    return err == kAXErrorSuccess ? 0 : -1;
}

static int ax_perform(AXUIElementRef el, const char *action) {
    CFStringRef cfAction = CFStringCreateWithCString(NULL, action, kCFStringEncodingUTF8);
    if (!cfAction) return -1;
    AXError err = AXUIElementPerformAction(el, cfAction);
    CFRelease(cfAction);
    return err == kAXErrorSuccess ? 0 : -1;
}

// Type inspection helpers for the tagged-union conversion on the Go side.
static int cf_is_string(CFTypeRef v)  { return CFGetTypeID(v) == CFStringGetTypeID(); }
static int cf_is_bool(CFTypeRef v)    { return CFGetTypeID(v) == CFBooleanGetTypeID(); }
static int cf_is_number(CFTypeRef v)  { return CFGetTypeID(v) == CFNumberGetTypeID(); }
static int cf_is_array(CFTypeRef v)   { return CFGetTypeID(v) == CFArrayGetTypeID(); }
static int cf_is_element(CFTypeRef v) { return CFGetTypeID(v) == AXUIElementGetTypeID(); }
static int cf_is_rect(CFTypeRef v) {
    return CFGetTypeID(v) == AXValueGetTypeID() &&
           AXValueGetType((AXValueRef)v) == kAXValueTypeCGRect;
}

static int cf_string_copy(CFTypeRef v, char *buf, int len) {
    return CFStringGetCString((CFStringRef)v, buf, len, kCFStringEncodingUTF8) ? 0 : -1;
}

static long cf_string_max_len(CFTypeRef v) {
    return CFStringGetMaximumSizeForEncoding(CFStringGetLength((CFStringRef)v), kCFStringEncodingUTF8) + 1;
}

static int cf_bool_value(CFTypeRef v) {
    return CFBooleanGetValue((CFBooleanRef)v) ? 1 : 0;
}

static double cf_number_value(CFTypeRef v) {
    double out = 0;
    CFNumberGetValue((CFNumberRef)v, kCFNumberDoubleType, &out);
    return out;
}

static int cf_rect_value(CFTypeRef v, CGRect *rect) {
    return AXValueGetValue((AXValueRef)v, kAXValueTypeCGRect, rect) ? 0 : -1;
}

static long cf_array_count(CFTypeRef v) {
    return CFArrayGetCount((CFArrayRef)v);
}

static CFTypeRef cf_array_get(CFTypeRef v, long i) {
    return CFArrayGetValueAtIndex((CFArrayRef)v, i);
}

static unsigned long cf_hash(CFTypeRef v) {
    return (unsigned long)CFHash(v);
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/deskpilot/deskpilot/internal/platform"
)

// axElement wraps a retained AXUIElementRef. The ref is released when the
// wrapper is garbage collected; callers must not hold wrappers across
// instructions (the underlying node may vanish at any time regardless).
type axElement struct {
	ref  C.AXUIElementRef
	hash uint64
}

func (e *axElement) Hash() uint64 { return e.hash }

// wrapElement takes ownership of an already-retained ref.
func wrapElement(ref C.AXUIElementRef) *axElement {
	el := &axElement{ref: ref, hash: uint64(C.cf_hash(C.CFTypeRef(ref)))}
	runtime.SetFinalizer(el, func(e *axElement) {
		C.CFRelease(C.CFTypeRef(e.ref))
	})
	return el
}

// wrapBorrowed retains a ref owned by a containing CF collection and wraps it.
func wrapBorrowed(ref C.AXUIElementRef) *axElement {
	C.CFRetain(C.CFTypeRef(ref))
	return wrapElement(ref)
}

func axRef(el platform.Element) (C.AXUIElementRef, bool) {
	ae, ok := el.(*axElement)
	if !ok || ae == nil {
		return nil, false
	}
	return ae.ref, true
}

// Accessor implements platform.Accessor on top of the macOS AX API.
type Accessor struct{}

// NewAccessor creates a new macOS accessor.
func NewAccessor() *Accessor {
	return &Accessor{}
}

func (a *Accessor) Trusted() bool {
	return IsAccessibilityTrusted()
}

func (a *Accessor) FocusedApplication() (platform.Element, error) {
	ref := C.ax_focused_application()
	if ref == nil {
		return nil, fmt.Errorf("no focused application")
	}
	return wrapElement(ref), nil
}

func (a *Accessor) FocusedWindow(app platform.Element) (platform.Element, error) {
	ref, ok := axRef(app)
	if !ok {
		return nil, fmt.Errorf("invalid application handle")
	}
	cName := C.CString("AXFocusedWindow")
	defer C.free(unsafe.Pointer(cName))
	v := C.ax_copy_attr(ref, cName)
	if v == nil {
		return nil, fmt.Errorf("focused application has no focused window")
	}
	if C.cf_is_element(v) == 0 {
		C.CFRelease(v)
		return nil, fmt.Errorf("focused application has no focused window")
	}
	return wrapElement(C.AXUIElementRef(v)), nil
}

func (a *Accessor) Attribute(el platform.Element, name string) platform.Value {
	ref, ok := axRef(el)
	if !ok {
		return platform.Absent
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	v := C.ax_copy_attr(ref, cName)
	if v == nil {
		return platform.Absent
	}
	out := convertValue(v)
	// Element values keep their own retain via wrapElement; everything else
	// is copied out, so the container ref can go.
	if out.Kind != platform.KindElement {
		C.CFRelease(v)
	}
	return out
}

// convertValue maps a CFTypeRef onto the Value tagged union. Unrecognized
// CF types come back as Absent rather than a guessed variant.
func convertValue(v C.CFTypeRef) platform.Value {
	switch {
	case C.cf_is_string(v) != 0:
		return platform.StringValue(goString(v))
	case C.cf_is_bool(v) != 0:
		return platform.BoolValue(C.cf_bool_value(v) != 0)
	case C.cf_is_number(v) != 0:
		return platform.NumberValue(float64(C.cf_number_value(v)))
	case C.cf_is_rect(v) != 0:
		var rect C.CGRect
		if C.cf_rect_value(v, &rect) != 0 {
			return platform.Absent
		}
		return platform.Value{Kind: platform.KindRect, Rect: goRect(rect)}
	case C.cf_is_element(v) != 0:
		return platform.Value{Kind: platform.KindElement, Elem: wrapElement(C.AXUIElementRef(v))}
	case C.cf_is_array(v) != 0:
		count := int(C.cf_array_count(v))
		elems := make([]platform.Element, 0, count)
		for i := 0; i < count; i++ {
			item := C.cf_array_get(v, C.long(i))
			if item != nil && C.cf_is_element(item) != 0 {
				elems = append(elems, wrapBorrowed(C.AXUIElementRef(item)))
			}
		}
		return platform.Value{Kind: platform.KindElementList, Elems: elems}
	default:
		return platform.Absent
	}
}

func (a *Accessor) Children(el platform.Element) []platform.Element {
	v := a.Attribute(el, "AXChildren")
	if v.Kind != platform.KindElementList {
		return nil
	}
	return v.Elems
}

func (a *Accessor) Frame(el platform.Element) (platform.Rect, bool) {
	ref, ok := axRef(el)
	if !ok {
		return platform.Rect{}, false
	}
	var rect C.CGRect
	if C.ax_copy_frame(ref, &rect) != 0 {
		return platform.Rect{}, false
	}
	return goRect(rect), true
}

func (a *Accessor) SetAttribute(el platform.Element, name string, v platform.Value) error {
	ref, ok := axRef(el)
	if !ok {
		return fmt.Errorf("invalid element handle")
	}
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	switch v.Kind {
	case platform.KindString:
		cValue := C.CString(v.Str)
		defer C.free(unsafe.Pointer(cValue))
		if C.ax_set_string(ref, cName, cValue) != 0 {
			return fmt.Errorf("failed to set %s", name)
		}
	case platform.KindBool:
		b := C.int(0)
		if v.Bool {
			b = 1
		}
		if C.ax_set_bool(ref, cName, b) != 0 {
			return fmt.Errorf("failed to set %s", name)
		}
	default:
		return fmt.Errorf("unsupported value kind %d for attribute %s", v.Kind, name)
	}
	return nil
}

func (a *Accessor) PerformAction(el platform.Element, action string) error {
	ref, ok := axRef(el)
	if !ok {
		return fmt.Errorf("invalid element handle")
	}
	cAction := C.CString(action)
	defer C.free(unsafe.Pointer(cAction))
	if C.ax_perform(ref, cAction) != 0 {
		return fmt.Errorf("action %s failed", action)
	}
	return nil
}

func goString(v C.CFTypeRef) string {
	maxLen := C.cf_string_max_len(v)
	if maxLen <= 0 {
		return ""
	}
	buf := (*C.char)(C.malloc(C.size_t(maxLen)))
	defer C.free(unsafe.Pointer(buf))
	if C.cf_string_copy(v, buf, C.int(maxLen)) != 0 {
		return ""
	}
	return C.GoString(buf)
}

func goRect(r C.CGRect) platform.Rect {
	return platform.Rect{
		X: float64(r.origin.x),
		Y: float64(r.origin.y),
		W: float64(r.size.width),
		H: float64(r.size.height),
	}
}
