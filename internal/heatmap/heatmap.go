package heatmap

// KeyCell is the render tuple for one physical key: everything a view needs
// to draw the cap and color it.
type KeyCell struct {
	Label     string
	Display   string
	Width     int
	Count     int64
	Intensity float64
	Bucket    int
}

// Heatmap grades the reference layout against one immutable frequency
// snapshot. The snapshot's global maximum is computed once at construction;
// per-key lookups never rescan the map.
type Heatmap struct {
	freq map[string]int64
	max  int64
}

// New builds a Heatmap over a frequency snapshot. The map is read, never
// mutated; negative values (an upstream contract violation) are ignored when
// locating the maximum and clamp to zero on lookup.
func New(freq map[string]int64) *Heatmap {
	var max int64 = 1
	for _, count := range freq {
		if count > max {
			max = count
		}
	}
	return &Heatmap{freq: freq, max: max}
}

// Cell resolves one layout label into its render tuple.
func (h *Heatmap) Cell(label string) KeyCell {
	count := Resolve(label, h.freq)
	intensity := Intensity(count, h.max)
	return KeyCell{
		Label:     label,
		Display:   DisplayName(label),
		Width:     KeyWidth(label),
		Count:     count,
		Intensity: intensity,
		Bucket:    Bucket(intensity),
	}
}

// Cells renders the whole layout, row by row in display order.
func (h *Heatmap) Cells() [][]KeyCell {
	rows := make([][]KeyCell, len(Rows))
	for i, row := range Rows {
		cells := make([]KeyCell, len(row))
		for j, label := range row {
			cells[j] = h.Cell(label)
		}
		rows[i] = cells
	}
	return rows
}

// Max reports the normalization ceiling, floored at 1.
func (h *Heatmap) Max() int64 {
	return h.max
}
