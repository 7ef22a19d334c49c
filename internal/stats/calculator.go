// Package stats aggregates the recorded keyboard data into a single
// immutable snapshot consumed by the terminal and web previews.
package stats

import (
	"fmt"

	"github.com/twilightdev/kitmap/internal/storage"
)

// KeyStats is one key's share of all recorded presses.
type KeyStats struct {
	KeyName    string  `json:"key_name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ComboStats is one modifier+key combination with its count.
type ComboStats struct {
	Combo string `json:"combo"`
	Count int64  `json:"count"`
}

// HourlyStats is activity within one hour of day.
type HourlyStats struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

// DailyStats is activity on one weekday.
type DailyStats struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// AllStats is the full statistics snapshot for one render. Field names are
// the wire contract of GET /api/stats and the embedded dashboard.
type AllStats struct {
	TotalKeys             int64            `json:"total_keys"`
	TotalCombos           int64            `json:"total_combos"`
	TotalSessions         int64            `json:"total_sessions"`
	TotalTimeMinutes      float64          `json:"total_time_minutes"`
	MostPressedKey        *KeyStats        `json:"most_pressed_key"`
	MostPressedCombo      *ComboStats      `json:"most_pressed_combo"`
	TopKeys               []KeyStats       `json:"top_keys"`
	TopCombos             []ComboStats     `json:"top_combos"`
	SpacebarCount         int64            `json:"spacebar_count"`
	EnterCount            int64            `json:"enter_count"`
	BackspaceCount        int64            `json:"backspace_count"`
	DeleteCount           int64            `json:"delete_count"`
	EscapeCount           int64            `json:"escape_count"`
	TabCount              int64            `json:"tab_count"`
	ArrowKeysCount        int64            `json:"arrow_keys_count"`
	ModifierKeysCount     int64            `json:"modifier_keys_count"`
	LetterKeysCount       int64            `json:"letter_keys_count"`
	NumberKeysCount       int64            `json:"number_keys_count"`
	SpecialKeysCount      int64            `json:"special_keys_count"`
	HourlyDistribution    []HourlyStats    `json:"hourly_distribution"`
	DailyDistribution     []DailyStats     `json:"daily_distribution"`
	MostActiveHour        *HourlyStats     `json:"most_active_hour"`
	MostActiveDay         *DailyStats      `json:"most_active_day"`
	AverageKeysPerSession float64          `json:"average_keys_per_session"`
	AverageTypingSpeed    float64          `json:"average_typing_speed"`
	MaxTypingSpeed        float64          `json:"max_typing_speed"`
	KeyFrequencyMap       map[string]int64 `json:"key_frequency_map"`
	FirstRecorded         string           `json:"first_recorded,omitempty"`
	LastRecorded          string           `json:"last_recorded,omitempty"`
	UniqueKeysUsed        int64            `json:"unique_keys_used"`
	KeysPerMinuteAvg      float64          `json:"keys_per_minute_avg"`
}

// Calculator derives an AllStats snapshot from the store.
type Calculator struct {
	store *storage.Store
}

// New returns a calculator over the given store.
func New(store *storage.Store) *Calculator {
	return &Calculator{store: store}
}

// CalculateAll builds the complete snapshot. Every derived value is computed
// here once; renderers never go back to the database.
func (c *Calculator) CalculateAll() (*AllStats, error) {
	totalKeys, err := c.store.TotalKeyEvents()
	if err != nil {
		return nil, fmt.Errorf("failed to count key events: %w", err)
	}
	totalCombos, err := c.store.TotalCombos()
	if err != nil {
		return nil, fmt.Errorf("failed to count combos: %w", err)
	}
	totalSessions, err := c.store.TotalSessions()
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	totalMinutes, err := c.store.TotalSessionMinutes()
	if err != nil {
		return nil, fmt.Errorf("failed to sum session time: %w", err)
	}

	topKeys, err := c.topKeys(20, totalKeys)
	if err != nil {
		return nil, err
	}
	topCombos, err := c.topCombos(10)
	if err != nil {
		return nil, err
	}

	var mostPressedKey *KeyStats
	if len(topKeys) > 0 {
		mostPressedKey = &topKeys[0]
	}
	var mostPressedCombo *ComboStats
	if len(topCombos) > 0 {
		mostPressedCombo = &topCombos[0]
	}

	special, err := c.specialKeyCounts()
	if err != nil {
		return nil, err
	}

	modifierCount, err := c.store.ModifierCount()
	if err != nil {
		return nil, fmt.Errorf("failed to count modifiers: %w", err)
	}
	letterCount, err := c.store.LetterCount()
	if err != nil {
		return nil, fmt.Errorf("failed to count letters: %w", err)
	}
	numberCount, err := c.store.NumberCount()
	if err != nil {
		return nil, fmt.Errorf("failed to count numbers: %w", err)
	}

	hourly, err := c.hourlyDistribution()
	if err != nil {
		return nil, err
	}
	daily, err := c.dailyDistribution()
	if err != nil {
		return nil, err
	}

	var mostActiveHour *HourlyStats
	for i := range hourly {
		if mostActiveHour == nil || hourly[i].Count > mostActiveHour.Count {
			mostActiveHour = &hourly[i]
		}
	}
	var mostActiveDay *DailyStats
	for i := range daily {
		if mostActiveDay == nil || daily[i].Count > mostActiveDay.Count {
			mostActiveDay = &daily[i]
		}
	}

	avgSpeed, maxSpeed, err := c.store.TypingSpeed()
	if err != nil {
		return nil, fmt.Errorf("failed to read typing speed: %w", err)
	}

	freq, err := c.store.KeyFrequencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to build frequency map: %w", err)
	}

	first, err := c.store.FirstRecorded()
	if err != nil {
		return nil, fmt.Errorf("failed to read first timestamp: %w", err)
	}
	last, err := c.store.LastRecorded()
	if err != nil {
		return nil, fmt.Errorf("failed to read last timestamp: %w", err)
	}

	uniqueKeys, err := c.store.UniqueKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to count unique keys: %w", err)
	}

	avgKeysPerSession := 0.0
	if totalSessions > 0 {
		avgKeysPerSession = float64(totalKeys) / float64(totalSessions)
	}
	keysPerMinute := 0.0
	if totalMinutes > 0 {
		keysPerMinute = float64(totalKeys) / totalMinutes
	}

	return &AllStats{
		TotalKeys:             totalKeys,
		TotalCombos:           totalCombos,
		TotalSessions:         totalSessions,
		TotalTimeMinutes:      totalMinutes,
		MostPressedKey:        mostPressedKey,
		MostPressedCombo:      mostPressedCombo,
		TopKeys:               topKeys,
		TopCombos:             topCombos,
		SpacebarCount:         special.spacebar,
		EnterCount:            special.enter,
		BackspaceCount:        special.backspace,
		DeleteCount:           special.delete_,
		EscapeCount:           special.escape,
		TabCount:              special.tab,
		ArrowKeysCount:        special.arrows,
		ModifierKeysCount:     modifierCount,
		LetterKeysCount:       letterCount,
		NumberKeysCount:       numberCount,
		SpecialKeysCount:      totalKeys - letterCount - numberCount - modifierCount,
		HourlyDistribution:    hourly,
		DailyDistribution:     daily,
		MostActiveHour:        mostActiveHour,
		MostActiveDay:         mostActiveDay,
		AverageKeysPerSession: avgKeysPerSession,
		AverageTypingSpeed:    avgSpeed,
		MaxTypingSpeed:        maxSpeed,
		KeyFrequencyMap:       freq,
		FirstRecorded:         first,
		LastRecorded:          last,
		UniqueKeysUsed:        uniqueKeys,
		KeysPerMinuteAvg:      keysPerMinute,
	}, nil
}

func (c *Calculator) topKeys(limit int, total int64) ([]KeyStats, error) {
	counts, err := c.store.TopKeys(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top keys: %w", err)
	}
	keys := make([]KeyStats, len(counts))
	for i, kc := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(kc.Count) / float64(total) * 100
		}
		keys[i] = KeyStats{KeyName: kc.Name, Count: kc.Count, Percentage: pct}
	}
	return keys, nil
}

func (c *Calculator) topCombos(limit int) ([]ComboStats, error) {
	counts, err := c.store.TopCombos(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top combos: %w", err)
	}
	combos := make([]ComboStats, len(counts))
	for i, cc := range counts {
		combos[i] = ComboStats{Combo: cc.Combo, Count: cc.Count}
	}
	return combos, nil
}

type specialCounts struct {
	spacebar, enter, backspace, delete_, escape, tab, arrows int64
}

func (c *Calculator) specialKeyCounts() (specialCounts, error) {
	var sc specialCounts

	sum := func(names ...string) (int64, error) {
		var total int64
		for _, name := range names {
			n, err := c.store.KeyEventCount(name)
			if err != nil {
				return 0, fmt.Errorf("failed to count %s: %w", name, err)
			}
			total += n
		}
		return total, nil
	}

	var err error
	if sc.spacebar, err = sum("Space"); err != nil {
		return sc, err
	}
	// Recorders disagree on the big key's name.
	if sc.enter, err = sum("Return", "Enter"); err != nil {
		return sc, err
	}
	if sc.backspace, err = sum("Backspace"); err != nil {
		return sc, err
	}
	if sc.delete_, err = sum("Delete"); err != nil {
		return sc, err
	}
	if sc.escape, err = sum("Escape"); err != nil {
		return sc, err
	}
	if sc.tab, err = sum("Tab"); err != nil {
		return sc, err
	}
	if sc.arrows, err = sum("UpArrow", "DownArrow", "LeftArrow", "RightArrow"); err != nil {
		return sc, err
	}
	return sc, nil
}

func (c *Calculator) hourlyDistribution() ([]HourlyStats, error) {
	counts, err := c.store.HourlyCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly counts: %w", err)
	}
	hourly := make([]HourlyStats, len(counts))
	for i, hc := range counts {
		hourly[i] = HourlyStats{Hour: hc.Hour, Count: hc.Count}
	}
	return hourly, nil
}

func (c *Calculator) dailyDistribution() ([]DailyStats, error) {
	counts, err := c.store.DailyCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}
	daily := make([]DailyStats, len(counts))
	for i, dc := range counts {
		daily[i] = DailyStats{Day: dc.Day, Count: dc.Count}
	}
	return daily, nil
}
