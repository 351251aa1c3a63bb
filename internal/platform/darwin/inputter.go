//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework ApplicationServices -framework Foundation
#include <CoreGraphics/CoreGraphics.h>

static int cg_mouse_event(CGEventType type, float x, float y) {
    CGPoint point = CGPointMake(x, y);
    CGEventRef ev = CGEventCreateMouseEvent(NULL, type, point, kCGMouseButtonLeft);
    if (!ev) return -1;
    CGEventPost(kCGHIDEventTap, ev);
    CFRelease(ev);
    return 0;
}

static int cg_move(float x, float y)    { return cg_mouse_event(kCGEventMouseMoved, x, y); }
static int cg_press(float x, float y)   { return cg_mouse_event(kCGEventLeftMouseDown, x, y); }
static int cg_release(float x, float y) { return cg_mouse_event(kCGEventLeftMouseUp, x, y); }
*/
import "C"

import "fmt"

// Inputter implements platform.Inputter using CGEvent synthesis.
type Inputter struct{}

// NewInputter creates a new macOS inputter.
func NewInputter() *Inputter {
	return &Inputter{}
}

func (inp *Inputter) MoveMouse(x, y int) error {
	if C.cg_move(C.float(x), C.float(y)) != 0 {
		return fmt.Errorf("failed to move mouse to (%d, %d)", x, y)
	}
	return nil
}

func (inp *Inputter) PressMouse(x, y int) error {
	if C.cg_press(C.float(x), C.float(y)) != 0 {
		return fmt.Errorf("failed to press mouse at (%d, %d)", x, y)
	}
	return nil
}

func (inp *Inputter) ReleaseMouse(x, y int) error {
	if C.cg_release(C.float(x), C.float(y)) != 0 {
		return fmt.Errorf("failed to release mouse at (%d, %d)", x, y)
	}
	return nil
}
