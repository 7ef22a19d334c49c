//go:build darwin
// +build darwin

package listener

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices

#include <CoreGraphics/CoreGraphics.h>
#include <ApplicationServices/ApplicationServices.h>

extern void goKeyDownCallback(int keycode);
extern void goModifierDownCallback(int keycode);

// Track previous modifier flags to detect key down vs key up
static CGEventFlags previousFlags = 0;

static CGEventRef eventCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon) {
    if (type == kCGEventKeyDown) {
        CGKeyCode keycode = (CGKeyCode)CGEventGetIntegerValueField(event, kCGKeyboardEventKeycode);
        // Holding a key down counts as one press
        int isRepeat = (int)CGEventGetIntegerValueField(event, kCGKeyboardEventAutorepeat);
        if (!isRepeat) {
            goKeyDownCallback((int)keycode);
        }
    } else if (type == kCGEventFlagsChanged) {
        // Modifier keys (Shift, Ctrl, Command, Option) arrive as flag
        // changes; a newly set flag means key down.
        CGEventFlags currentFlags = CGEventGetFlags(event);
        CGKeyCode keycode = (CGKeyCode)CGEventGetIntegerValueField(event, kCGKeyboardEventKeycode);

        CGEventFlags diff = currentFlags ^ previousFlags;
        int isKeyDown = (currentFlags & diff) != 0;

        if (isKeyDown) {
            goModifierDownCallback((int)keycode);
        }

        previousFlags = currentFlags;
    }
    return event;
}

static CFMachPortRef createEventTap() {
    CGEventMask eventMask = CGEventMaskBit(kCGEventKeyDown) | CGEventMaskBit(kCGEventFlagsChanged);
    CFMachPortRef eventTap = CGEventTapCreate(
        kCGSessionEventTap,
        kCGHeadInsertEventTap,
        kCGEventTapOptionListenOnly,
        eventMask,
        eventCallback,
        NULL
    );
    return eventTap;
}

static int isEventTapValid(CFMachPortRef eventTap) {
    return eventTap != NULL;
}

static int checkAccessibilityPermissions() {
    return AXIsProcessTrusted();
}

static void runEventLoop(CFMachPortRef eventTap) {
    CFRunLoopSourceRef runLoopSource = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, eventTap, 0);
    CFRunLoopAddSource(CFRunLoopGetCurrent(), runLoopSource, kCFRunLoopCommonModes);
    CGEventTapEnable(eventTap, true);
    CFRunLoopRun();
}
*/
import "C"
import (
	"errors"
	"sync"
)

var (
	eventChan chan Event
	mu        sync.Mutex
	running   bool
)

func emit(code int) {
	name := KeyName(code)
	ev := Event{Code: code, Name: name, Modifier: IsModifier(name)}

	mu.Lock()
	defer mu.Unlock()
	if eventChan != nil {
		select {
		case eventChan <- ev:
		default:
			// Channel full, drop the event
		}
	}
}

//export goKeyDownCallback
func goKeyDownCallback(keycode C.int) {
	emit(int(keycode))
}

//export goModifierDownCallback
func goModifierDownCallback(keycode C.int) {
	emit(int(keycode))
}

// CheckAccessibilityPermissions returns true if the process may observe
// keyboard events.
func CheckAccessibilityPermissions() bool {
	return C.checkAccessibilityPermissions() != 0
}

// Start begins capturing key presses and returns the event channel.
func Start() (<-chan Event, error) {
	mu.Lock()
	defer mu.Unlock()

	if running {
		return nil, errors.New("listener already running")
	}

	if !CheckAccessibilityPermissions() {
		return nil, errors.New("accessibility permissions not granted - please enable in System Preferences > Privacy & Security > Accessibility")
	}

	eventChan = make(chan Event, 1000)

	go func() {
		eventTap := C.createEventTap()
		if C.isEventTapValid(eventTap) == 0 {
			return
		}
		mu.Lock()
		running = true
		mu.Unlock()
		C.runEventLoop(eventTap)
	}()

	return eventChan, nil
}

// Stop stops capturing and closes the event channel.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if eventChan != nil {
		close(eventChan)
		eventChan = nil
	}
	running = false
}
