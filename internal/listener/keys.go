package listener

import "fmt"

// keyNames maps macOS virtual keycodes to the recorder vocabulary persisted
// in the database: letters as Key<LETTER>, top-row digits as Num<DIGIT>,
// named punctuation, and explicit left/right modifiers. This is the
// vocabulary the heatmap resolver reconciles layout labels against.
var keyNames = map[int]string{
	0:  "KeyA",
	1:  "KeyS",
	2:  "KeyD",
	3:  "KeyF",
	4:  "KeyH",
	5:  "KeyG",
	6:  "KeyZ",
	7:  "KeyX",
	8:  "KeyC",
	9:  "KeyV",
	11: "KeyB",
	12: "KeyQ",
	13: "KeyW",
	14: "KeyE",
	15: "KeyR",
	16: "KeyY",
	17: "KeyT",
	18: "Num1",
	19: "Num2",
	20: "Num3",
	21: "Num4",
	22: "Num6",
	23: "Num5",
	24: "Equal",
	25: "Num9",
	26: "Num7",
	27: "Minus",
	28: "Num8",
	29: "Num0",
	30: "RightBracket",
	31: "KeyO",
	32: "KeyU",
	33: "LeftBracket",
	34: "KeyI",
	35: "KeyP",
	36: "Return",
	37: "KeyL",
	38: "KeyJ",
	39: "Quote",
	40: "KeyK",
	41: "SemiColon",
	42: "BackSlash",
	43: "Comma",
	44: "Slash",
	45: "KeyN",
	46: "KeyM",
	47: "Dot",
	48: "Tab",
	49: "Space",
	50: "BackQuote",
	51: "Backspace",
	53: "Escape",
	54: "MetaRight",
	55: "MetaLeft",
	56: "ShiftLeft",
	57: "CapsLock",
	58: "Alt",
	59: "ControlLeft",
	60: "ShiftRight",
	61: "AltGr",
	62: "ControlRight",
	63: "Function",
	96: "F5",
	97: "F6",
	98: "F7",
	99: "F3",

	100: "F8",
	101: "F9",
	103: "F11",
	109: "F10",
	111: "F12",
	114: "Insert",
	115: "Home",
	116: "PageUp",
	117: "Delete",
	118: "F4",
	119: "End",
	120: "F2",
	121: "PageDown",
	122: "F1",
	123: "LeftArrow",
	124: "RightArrow",
	125: "DownArrow",
	126: "UpArrow",
}

// KeyName returns the recorded name for a keycode. Unknown codes get a
// stable synthetic name so nothing is silently dropped.
func KeyName(code int) string {
	if name, ok := keyNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", code)
}
