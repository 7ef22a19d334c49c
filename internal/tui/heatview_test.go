package tui

import (
	"strings"
	"testing"
)

func TestCenterPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"even_padding", "AB", 4, " AB "},
		{"odd_padding", "A", 4, " A  "},
		{"exact_fit", "CAPS", 4, "CAPS"},
		{"truncates", "CONTROL", 4, "CONT"},
		{"glyph", "⌫", 3, " ⌫ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := centerPad(tt.input, tt.width); got != tt.want {
				t.Errorf("centerPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderHeatmapContainsAllRows(t *testing.T) {
	out := renderHeatmap(map[string]int64{"Space": 100})

	for _, want := range []string{"ESC", "TAB", "CAPS", "SPACE", "⇧", "⌘"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected heatmap to contain %q", want)
		}
	}
}

func TestRenderHeatmapEmptySnapshot(t *testing.T) {
	out := renderHeatmap(map[string]int64{})

	if out == "" {
		t.Fatal("Expected non-empty heatmap for empty snapshot")
	}
	if !strings.Contains(out, "SPACE") {
		t.Error("Expected full layout even with no data")
	}
}

func TestRenderLegendCoversRamp(t *testing.T) {
	legend := renderLegend()

	if !strings.Contains(legend, "cold") || !strings.Contains(legend, "hot") {
		t.Error("Expected legend endpoints")
	}
	if got := strings.Count(legend, "█"); got != len(bucketColors) {
		t.Errorf("Expected %d legend swatches, got %d", len(bucketColors), got)
	}
}
