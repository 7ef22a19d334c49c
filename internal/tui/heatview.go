package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/twilightdev/kitmap/internal/heatmap"
)

// bucketColors is the sixteen-step cold-to-hot ramp, indexed by severity
// bucket. Bucket 0 is the unpressed grey.
var bucketColors = [heatmap.BucketCount]lipgloss.Color{
	"238", // 0: no activity
	"17", "18", "19", "26", "32",
	"37", "36", "42", "76", "112",
	"148", "184", "214", "202", "196",
}

// renderHeatmap draws the keyboard grid, one colored cap per layout key.
func renderHeatmap(freq map[string]int64) string {
	hm := heatmap.New(freq)

	var b strings.Builder
	for i, row := range hm.Cells() {
		if i > 0 {
			b.WriteString("\n")
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			style := lipgloss.NewStyle().Foreground(bucketColors[cell.Bucket])
			if cell.Bucket >= heatmap.BucketCount/2 {
				style = style.Bold(true)
			}
			b.WriteString(style.Render(centerPad(cell.Display, cell.Width)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(renderLegend())
	return b.String()
}

func renderLegend() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("cold "))
	for _, color := range bucketColors {
		b.WriteString(lipgloss.NewStyle().Foreground(color).Render("█"))
	}
	b.WriteString(labelStyle.Render(" hot"))
	return b.String()
}

// centerPad centers text in a fixed-width cap, truncating if the glyph text
// is wider than the cap.
func centerPad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
