//go:build !darwin
// +build !darwin

package listener

import "errors"

// ErrUnsupported is returned on platforms without a capture backend.
var ErrUnsupported = errors.New("keyboard capture is only supported on macOS")

// CheckAccessibilityPermissions always reports false on unsupported
// platforms.
func CheckAccessibilityPermissions() bool {
	return false
}

// Start is unavailable on this platform.
func Start() (<-chan Event, error) {
	return nil, ErrUnsupported
}

// Stop is a no-op on this platform.
func Stop() {}
