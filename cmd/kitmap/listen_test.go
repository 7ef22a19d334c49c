package main

import "testing"

func TestComboName(t *testing.T) {
	tests := []struct {
		name string
		held map[string]bool
		key  string
		want string
	}{
		{"single_modifier", map[string]bool{"MetaLeft": true}, "KeyC", "MetaLeft+KeyC"},
		{"modifiers_sorted", map[string]bool{"ShiftLeft": true, "MetaLeft": true}, "KeyS", "MetaLeft+ShiftLeft+KeyS"},
		{"three_modifiers", map[string]bool{"ControlLeft": true, "Alt": true, "ShiftLeft": true}, "Delete", "Alt+ControlLeft+ShiftLeft+Delete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := comboName(tt.held, tt.key); got != tt.want {
				t.Errorf("comboName() = %q, want %q", got, tt.want)
			}
		})
	}
}
