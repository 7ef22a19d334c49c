package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/twilightdev/kitmap/internal/storage"
)

func newSeededStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCalculateAllEmpty(t *testing.T) {
	store := newSeededStore(t)
	calc := New(store)

	stats, err := calc.CalculateAll()
	if err != nil {
		t.Fatalf("CalculateAll failed: %v", err)
	}

	if stats.TotalKeys != 0 {
		t.Errorf("Expected 0 total keys, got %d", stats.TotalKeys)
	}
	if stats.MostPressedKey != nil {
		t.Errorf("Expected nil most pressed key, got %+v", stats.MostPressedKey)
	}
	if stats.MostPressedCombo != nil {
		t.Errorf("Expected nil most pressed combo, got %+v", stats.MostPressedCombo)
	}
	if len(stats.HourlyDistribution) != 24 {
		t.Errorf("Expected 24 hourly entries, got %d", len(stats.HourlyDistribution))
	}
	if len(stats.DailyDistribution) != 7 {
		t.Errorf("Expected 7 daily entries, got %d", len(stats.DailyDistribution))
	}
	if stats.AverageKeysPerSession != 0 {
		t.Errorf("Expected 0 avg keys per session, got %f", stats.AverageKeysPerSession)
	}
	if stats.KeysPerMinuteAvg != 0 {
		t.Errorf("Expected 0 keys per minute, got %f", stats.KeysPerMinuteAvg)
	}
	if stats.FirstRecorded != "" || stats.LastRecorded != "" {
		t.Errorf("Expected empty timestamps, got %q / %q", stats.FirstRecorded, stats.LastRecorded)
	}
	if len(stats.KeyFrequencyMap) != 0 {
		t.Errorf("Expected empty frequency map, got %d entries", len(stats.KeyFrequencyMap))
	}
}

func TestCalculateAllTotalsAndTops(t *testing.T) {
	store := newSeededStore(t)
	now := time.Now()

	for i := 0; i < 6; i++ {
		store.RecordKeyEvent("Space", "Space", false, now)
	}
	for i := 0; i < 3; i++ {
		store.RecordKeyEvent("KeyE", "KeyE", false, now)
	}
	store.RecordKeyEvent("Return", "Return", false, now)
	store.RecordCombo("MetaLeft+KeyC", now)
	store.RecordCombo("MetaLeft+KeyC", now)
	store.RecordCombo("ShiftLeft+KeyA", now)

	stats, err := New(store).CalculateAll()
	if err != nil {
		t.Fatalf("CalculateAll failed: %v", err)
	}

	if stats.TotalKeys != 10 {
		t.Errorf("Expected 10 total keys, got %d", stats.TotalKeys)
	}
	if stats.TotalCombos != 3 {
		t.Errorf("Expected 3 combos, got %d", stats.TotalCombos)
	}
	if stats.MostPressedKey == nil || stats.MostPressedKey.KeyName != "Space" {
		t.Fatalf("Expected Space as most pressed, got %+v", stats.MostPressedKey)
	}
	if stats.MostPressedKey.Count != 6 {
		t.Errorf("Expected most pressed count 6, got %d", stats.MostPressedKey.Count)
	}
	if stats.MostPressedKey.Percentage != 60 {
		t.Errorf("Expected 60%%, got %f", stats.MostPressedKey.Percentage)
	}
	if stats.MostPressedCombo == nil || stats.MostPressedCombo.Combo != "MetaLeft+KeyC" {
		t.Fatalf("Expected MetaLeft+KeyC as top combo, got %+v", stats.MostPressedCombo)
	}
	if len(stats.TopKeys) != 3 {
		t.Errorf("Expected 3 top keys, got %d", len(stats.TopKeys))
	}
	if stats.SpacebarCount != 6 {
		t.Errorf("Expected spacebar count 6, got %d", stats.SpacebarCount)
	}
	if stats.EnterCount != 1 {
		t.Errorf("Expected enter count 1, got %d", stats.EnterCount)
	}
	if stats.UniqueKeysUsed != 3 {
		t.Errorf("Expected 3 unique keys, got %d", stats.UniqueKeysUsed)
	}
	if stats.KeyFrequencyMap["Space"] != 6 {
		t.Errorf("Expected frequency map Space=6, got %d", stats.KeyFrequencyMap["Space"])
	}
}

func TestCalculateAllEnterCountsBothSpellings(t *testing.T) {
	store := newSeededStore(t)
	now := time.Now()

	store.RecordKeyEvent("Return", "Return", false, now)
	store.RecordKeyEvent("Enter", "Enter", false, now)

	stats, err := New(store).CalculateAll()
	if err != nil {
		t.Fatalf("CalculateAll failed: %v", err)
	}

	if stats.EnterCount != 2 {
		t.Errorf("Expected enter count 2 across spellings, got %d", stats.EnterCount)
	}
}

func TestCalculateAllCategories(t *testing.T) {
	store := newSeededStore(t)
	now := time.Now()

	// One bare letter, one digit, one modifier, one special.
	store.RecordKeyEvent("a", "a", false, now)
	store.RecordKeyEvent("1", "1", false, now)
	store.RecordKeyEvent("ShiftLeft", "ShiftLeft", true, now)
	store.RecordKeyEvent("Escape", "Escape", false, now)

	stats, err := New(store).CalculateAll()
	if err != nil {
		t.Fatalf("CalculateAll failed: %v", err)
	}

	if stats.LetterKeysCount != 1 {
		t.Errorf("Expected 1 letter key, got %d", stats.LetterKeysCount)
	}
	if stats.NumberKeysCount != 1 {
		t.Errorf("Expected 1 number key, got %d", stats.NumberKeysCount)
	}
	if stats.ModifierKeysCount != 1 {
		t.Errorf("Expected 1 modifier key, got %d", stats.ModifierKeysCount)
	}
	if stats.SpecialKeysCount != 1 {
		t.Errorf("Expected 1 special key, got %d", stats.SpecialKeysCount)
	}
}

func TestCalculateAllArrowKeys(t *testing.T) {
	store := newSeededStore(t)
	now := time.Now()

	for _, name := range []string{"UpArrow", "DownArrow", "LeftArrow", "RightArrow", "UpArrow"} {
		store.RecordKeyEvent(name, name, false, now)
	}

	stats, err := New(store).CalculateAll()
	if err != nil {
		t.Fatalf("CalculateAll failed: %v", err)
	}

	if stats.ArrowKeysCount != 5 {
		t.Errorf("Expected 5 arrow presses, got %d", stats.ArrowKeysCount)
	}
}

func TestCalculateAllDistributionsAndAverages(t *testing.T) {
	store := newSeededStore(t)

	ts := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC) // Monday, 14:00
	for i := 0; i < 4; i++ {
		store.RecordKeyEvent("Space", "Space", false, ts)
	}

	start := ts.Add(-2 * time.Minute)
	id, err := store.StartSession(start)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if err := store.EndSession(id, 4, ts); err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}

	store.RecordTypingSample(120, ts)
	store.RecordTypingSample(180, ts)

	stats, err := New(store).CalculateAll()
	if err != nil {
		t.Fatalf("CalculateAll failed: %v", err)
	}

	if stats.MostActiveHour == nil || stats.MostActiveHour.Hour != 14 {
		t.Errorf("Expected most active hour 14, got %+v", stats.MostActiveHour)
	}
	if stats.MostActiveDay == nil || stats.MostActiveDay.Day != "Monday" {
		t.Errorf("Expected most active day Monday, got %+v", stats.MostActiveDay)
	}
	if stats.AverageKeysPerSession != 4 {
		t.Errorf("Expected 4 keys per session, got %f", stats.AverageKeysPerSession)
	}
	if stats.AverageTypingSpeed != 150 {
		t.Errorf("Expected avg speed 150, got %f", stats.AverageTypingSpeed)
	}
	if stats.MaxTypingSpeed != 180 {
		t.Errorf("Expected max speed 180, got %f", stats.MaxTypingSpeed)
	}
	if stats.TotalTimeMinutes < 1.9 || stats.TotalTimeMinutes > 2.1 {
		t.Errorf("Expected ~2 minutes of session time, got %f", stats.TotalTimeMinutes)
	}
	if stats.KeysPerMinuteAvg < 1.9 || stats.KeysPerMinuteAvg > 2.1 {
		t.Errorf("Expected ~2 keys per minute, got %f", stats.KeysPerMinuteAvg)
	}
}
