// Package tui is the interactive terminal preview: keyboard heatmap, stat
// panels, and a fuzzy-filterable top-keys table.
package tui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/twilightdev/kitmap/internal/stats"
	"github.com/twilightdev/kitmap/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// statsMsg carries a freshly computed snapshot into the model.
type statsMsg struct {
	stats *stats.AllStats
	err   error
}

// Model is the bubbletea model for the preview screen.
type Model struct {
	store     *storage.Store
	stats     *stats.AllStats
	err       error
	width     int
	filtering bool
	filter    string
}

// New creates the preview model over a store.
func New(store *storage.Store) Model {
	return Model{store: store}
}

// Init kicks off the first snapshot computation.
func (m Model) Init() tea.Cmd {
	return m.fetchStats
}

// fetchStats computes a fresh snapshot. Each fetch is a complete,
// consistent recomputation; the view never mixes two snapshots.
func (m Model) fetchStats() tea.Msg {
	if m.store == nil {
		return statsMsg{err: errors.New("no data store available")}
	}
	snapshot, err := stats.New(m.store).CalculateAll()
	return statsMsg{stats: snapshot, err: err}
}

// Update handles key presses and incoming snapshots.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.fetchStats
		case "/":
			m.filtering = true
			m.filter = ""
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case statsMsg:
		m.stats = msg.stats
		m.err = msg.err
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
		}
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
	}
	return m, nil
}

// View renders the whole preview screen.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}
	if m.stats == nil {
		return labelStyle.Render("Calculating statistics...") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("⌨ kitmap · keyboard statistics"))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(renderHeatmap(m.stats.KeyFrequencyMap)))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		panelStyle.Render(m.renderGeneralPanel()),
		panelStyle.Render(m.renderSpecialPanel()),
		panelStyle.Render(m.renderSpeedPanel()),
	))
	b.WriteString("\n")

	b.WriteString(panelStyle.Render(m.renderTopKeys()))
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(filterStyle.Render("filter: " + m.filter + "▌"))
	} else {
		b.WriteString(helpStyle.Render("r refresh · / filter · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderGeneralPanel() string {
	s := m.stats
	lines := []string{
		statLine("Total keys", formatNumber(s.TotalKeys)),
		statLine("Combos", formatNumber(s.TotalCombos)),
		statLine("Sessions", formatNumber(s.TotalSessions)),
		statLine("Unique keys", formatNumber(s.UniqueKeysUsed)),
		statLine("Time (min)", fmt.Sprintf("%.1f", s.TotalTimeMinutes)),
	}
	if s.MostActiveHour != nil && s.MostActiveHour.Count > 0 {
		lines = append(lines, statLine("Busiest hour", fmt.Sprintf("%02d:00", s.MostActiveHour.Hour)))
	}
	if s.MostActiveDay != nil && s.MostActiveDay.Count > 0 {
		lines = append(lines, statLine("Busiest day", s.MostActiveDay.Day))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSpecialPanel() string {
	s := m.stats
	return strings.Join([]string{
		statLine("Space", formatNumber(s.SpacebarCount)),
		statLine("Enter", formatNumber(s.EnterCount)),
		statLine("Backspace", formatNumber(s.BackspaceCount)),
		statLine("Tab", formatNumber(s.TabCount)),
		statLine("Escape", formatNumber(s.EscapeCount)),
		statLine("Arrows", formatNumber(s.ArrowKeysCount)),
		statLine("Modifiers", formatNumber(s.ModifierKeysCount)),
	}, "\n")
}

func (m Model) renderSpeedPanel() string {
	s := m.stats
	return strings.Join([]string{
		statLine("Avg CPM", fmt.Sprintf("%.1f", s.AverageTypingSpeed)),
		statLine("Max CPM", fmt.Sprintf("%.1f", s.MaxTypingSpeed)),
		statLine("Keys/min", fmt.Sprintf("%.1f", s.KeysPerMinuteAvg)),
		statLine("Keys/session", fmt.Sprintf("%.1f", s.AverageKeysPerSession)),
	}, "\n")
}

func (m Model) renderTopKeys() string {
	entries := m.rankedKeys()
	if len(entries) == 0 {
		if m.filter != "" {
			return labelStyle.Render("no keys match " + m.filter)
		}
		return labelStyle.Render("no keys recorded yet")
	}
	if len(entries) > 10 {
		entries = entries[:10]
	}

	maxCount := entries[0].Count
	for _, e := range entries {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("TOP KEYS"))
	b.WriteString("\n")
	for i, e := range entries {
		bar := renderBar(e.Count, maxCount, 30)
		b.WriteString(fmt.Sprintf("%2d. %-14s %8s %s", i+1, e.Name, formatNumber(e.Count), bar))
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// rankedKeys lists recorded keys by count, optionally narrowed by the fuzzy
// filter query.
func (m Model) rankedKeys() []storage.KeyCount {
	entries := make([]storage.KeyCount, 0, len(m.stats.KeyFrequencyMap))
	for name, count := range m.stats.KeyFrequencyMap {
		entries = append(entries, storage.KeyCount{Name: name, Count: count})
	}

	if m.filter != "" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		matches := fuzzy.Find(m.filter, names)
		filtered := make([]storage.KeyCount, len(matches))
		for i, match := range matches {
			filtered[i] = entries[match.Index]
		}
		entries = filtered
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// renderBar draws a usage bar proportional to count/max, at most width cells.
func renderBar(count, max int64, width int) string {
	if max <= 0 || count <= 0 {
		return ""
	}
	n := int(float64(count) / float64(max) * float64(width))
	if n < 1 {
		n = 1
	}
	return valueStyle.Render(strings.Repeat("█", n))
}

func statLine(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-13s", label)) + valueStyle.Render(value)
}

// formatNumber renders a count compactly: 999, 1.5K, 2.3M.
func formatNumber(n int64) string {
	switch {
	case n >= 1000000:
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	case n >= 1000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
