// Package listener captures keyboard events system-wide and emits them as
// named key presses in the recorder vocabulary stored by kitmap.
package listener

// Event is one observed key press.
type Event struct {
	Code     int
	Name     string
	Modifier bool
}

// modifierNames are the keys that form combos when held.
var modifierNames = map[string]bool{
	"ShiftLeft":    true,
	"ShiftRight":   true,
	"ControlLeft":  true,
	"ControlRight": true,
	"Alt":          true,
	"AltGr":        true,
	"MetaLeft":     true,
	"MetaRight":    true,
}

// IsModifier reports whether a key name is a combo-forming modifier.
func IsModifier(name string) bool {
	return modifierNames[name]
}
