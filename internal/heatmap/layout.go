package heatmap

import "strings"

// Rows is the QWERTY reference layout rendered by the heatmap, top row first.
// Labels are canonical and stable; the resolver reconciles them against
// whatever spelling the recorder used.
var Rows = [][]string{
	{"Escape", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12"},
	{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "=", "Backspace"},
	{"Tab", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", "\\"},
	{"CapsLock", "a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'", "Return"},
	{"ShiftLeft", "z", "x", "c", "v", "b", "n", "m", ",", ".", "/", "ShiftRight"},
	{"ControlLeft", "MetaLeft", "Alt", "Space", "AltGr", "MetaRight", "ControlRight"},
}

var displayNames = map[string]string{
	"Escape":       "ESC",
	"Backspace":    "⌫",
	"Tab":          "TAB",
	"CapsLock":     "CAPS",
	"Return":       "⏎",
	"Enter":        "⏎",
	"ShiftLeft":    "⇧",
	"ShiftRight":   "⇧",
	"ControlLeft":  "CTRL",
	"ControlRight": "CTRL",
	"MetaLeft":     "⌘",
	"MetaRight":    "⌘",
	"Alt":          "ALT",
	"AltGr":        "ALT",
	"Space":        "SPACE",
	"UpArrow":      "↑",
	"DownArrow":    "↓",
	"LeftArrow":    "←",
	"RightArrow":   "→",
}

// DisplayName returns the short text shown on a key cap. Labels without a
// dedicated glyph fall back to their upper-cased form.
func DisplayName(label string) string {
	if name, ok := displayNames[label]; ok {
		return name
	}
	return strings.ToUpper(label)
}

var keyWidths = map[string]int{
	"Backspace":    8,
	"Tab":          5,
	"CapsLock":     6,
	"Return":       8,
	"Enter":        8,
	"ShiftLeft":    8,
	"ShiftRight":   10,
	"Space":        30,
	"ControlLeft":  6,
	"ControlRight": 6,
	"MetaLeft":     5,
	"MetaRight":    5,
	"Alt":          5,
	"AltGr":        5,
	"Escape":       4,
}

// KeyWidth returns the display width class for a key, in character cells.
func KeyWidth(label string) int {
	if w, ok := keyWidths[label]; ok {
		return w
	}
	if strings.HasPrefix(label, "F") && len(label) <= 3 {
		return 3
	}
	return 4
}
