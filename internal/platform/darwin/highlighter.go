//go:build darwin

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework CoreFoundation -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>

// Show a borderless, non-activating overlay window over the given screen
// rect for duration_ms, then close it. Runs the runloop while the window is
// up; CLI invocations have no NSApplication event loop of their own.
static void show_highlight(float x, float y, float w, float h, const char *label, int duration_ms) {
    @autoreleasepool {
        // AX coordinates are top-left origin; AppKit is bottom-left.
        NSScreen *screen = [NSScreen screens].firstObject;
        CGFloat screenH = screen ? screen.frame.size.height : 0;
        NSRect frame = NSMakeRect(x, screenH - y - h, w, h);

        NSWindow *win = [[NSWindow alloc] initWithContentRect:frame
                                                    styleMask:NSWindowStyleMaskBorderless
                                                      backing:NSBackingStoreBuffered
                                                        defer:NO];
        win.opaque = NO;
        win.backgroundColor = [NSColor clearColor];
        win.level = NSScreenSaverWindowLevel;
        win.ignoresMouseEvents = YES;

        NSView *content = win.contentView;
        content.wantsLayer = YES;
        content.layer.borderWidth = 3.0;
        content.layer.borderColor = [NSColor systemYellowColor].CGColor;
        content.layer.cornerRadius = 4.0;

        if (label && label[0] != '\0') {
            NSTextField *tag = [NSTextField labelWithString:[NSString stringWithUTF8String:label]];
            tag.textColor = [NSColor whiteColor];
            tag.backgroundColor = [NSColor colorWithWhite:0 alpha:0.7];
            tag.drawsBackground = YES;
            tag.font = [NSFont systemFontOfSize:11];
            [tag sizeToFit];
            [content addSubview:tag];
        }

        [win orderFrontRegardless];
        CFRunLoopRunInMode(kCFRunLoopDefaultMode, duration_ms / 1000.0, false);
        [win orderOut:nil];
    }
}
*/
import "C"

import (
	"time"
	"unsafe"

	"github.com/deskpilot/deskpilot/internal/platform"
)

// highlightDuration is how long the overlay stays on screen.
const highlightDuration = 600 * time.Millisecond

// Highlighter implements platform.Highlighter with a transient AppKit
// overlay window.
type Highlighter struct{}

// NewHighlighter creates a new macOS highlighter.
func NewHighlighter() *Highlighter {
	return &Highlighter{}
}

func (hl *Highlighter) Flash(r platform.Rect, label string) error {
	if r.IsZero() {
		return nil
	}
	cLabel := C.CString(label)
	defer C.free(unsafe.Pointer(cLabel))
	C.show_highlight(C.float(r.X), C.float(r.Y), C.float(r.W), C.float(r.H),
		cLabel, C.int(highlightDuration.Milliseconds()))
	return nil
}
