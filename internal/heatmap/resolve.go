// Package heatmap turns a recorded key-frequency map into the cells of a
// keyboard heatmap: it reconciles layout labels against the recorder's
// key-name vocabulary and grades each key onto a sixteen-step heat ramp.
package heatmap

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// candidateFunc produces one lookup spelling for a canonical layout label.
// An empty result means the rule does not apply to that label.
type candidateFunc func(label string) string

// candidates is the ordered list of spellings tried against the frequency
// map; the first hit wins. Order matters: an exact entry always beats a case
// variant. A new recorder convention is supported by appending a generator
// here and covering it in resolve_test.go.
//
// Note the last rule only covers single-character labels via the "Key"
// prefix (layout "a" vs recorded "KeyA"). Digit and punctuation labels have
// no equivalent rule, so "1" never finds a "Num1" entry and "," never finds
// "Comma"; those keys read as unpressed. Kept as recorded behavior.
var candidates = []candidateFunc{
	func(label string) string { return label },
	strings.ToUpper,
	strings.ToLower,
	titleCase,
	keyPrefixed,
}

func titleCase(label string) string {
	r, size := utf8.DecodeRuneInString(label)
	if size == 0 {
		return label
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(label[size:])
}

func keyPrefixed(label string) string {
	if utf8.RuneCountInString(label) != 1 {
		return ""
	}
	return "Key" + strings.ToUpper(label)
}

// Resolve returns the press count recorded for a layout label, trying each
// candidate spelling in order. A label with no matching entry resolves to
// zero: a key that was never pressed is a normal state, not an error.
// Negative counts violate the snapshot contract and are clamped to zero.
func Resolve(label string, freq map[string]int64) int64 {
	for _, candidate := range candidates {
		name := candidate(label)
		if name == "" {
			continue
		}
		if count, ok := freq[name]; ok {
			if count < 0 {
				return 0
			}
			return count
		}
	}
	return 0
}
