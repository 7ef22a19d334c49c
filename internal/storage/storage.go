// Package storage persists recorded keyboard activity in a local SQLite
// database: raw key events, modifier combos, recording sessions, and
// periodic typing-speed samples.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the SQLite database holding all recorded keyboard data.
type Store struct {
	db *sql.DB
}

// KeyCount is a key name with its press count.
type KeyCount struct {
	Name  string
	Count int64
}

// ComboCount is a combo string with its press count.
type ComboCount struct {
	Combo string
	Count int64
}

// HourCount is the number of key events recorded in one hour of day.
type HourCount struct {
	Hour  int
	Count int64
}

// DayCount is the number of key events recorded on one weekday (Monday = 0).
type DayCount struct {
	Day   string
	Count int64
}

// DefaultPath returns the database location in the user's config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(configDir, "kitmap", "kitmap.db"), nil
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists. WAL mode keeps the listener's writes cheap.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordKeyEvent stores one key press. Hour and weekday columns are
// denormalized at write time so distribution queries stay index-only.
// Weekday is zero-based from Monday.
func (s *Store) RecordKeyEvent(code, name string, isModifier bool, ts time.Time) error {
	mod := 0
	if isModifier {
		mod = 1
	}
	weekday := (int(ts.Weekday()) + 6) % 7
	_, err := s.db.Exec(
		`INSERT INTO key_events (key_code, key_name, is_modifier, timestamp, hour, day_of_week)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		code, name, mod, ts.Format(time.RFC3339), ts.Hour(), weekday,
	)
	return err
}

// RecordCombo stores one modifier+key combination, e.g. "MetaLeft+KeyC".
func (s *Store) RecordCombo(combo string, ts time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO key_combos (combo, timestamp) VALUES (?, ?)",
		combo, ts.Format(time.RFC3339),
	)
	return err
}

// StartSession opens a new recording session and returns its row id.
func (s *Store) StartSession(ts time.Time) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO sessions (uuid, start_time, total_keys) VALUES (?, ?, 0)",
		uuid.NewString(), ts.Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// EndSession closes a session with its final key total.
func (s *Store) EndSession(id int64, totalKeys int64, ts time.Time) error {
	_, err := s.db.Exec(
		"UPDATE sessions SET end_time = ?, total_keys = ? WHERE id = ?",
		ts.Format(time.RFC3339), totalKeys, id,
	)
	return err
}

// RecordTypingSample stores one typing-speed measurement in characters per
// minute.
func (s *Store) RecordTypingSample(charsPerMinute float64, ts time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO typing_samples (chars_per_minute, timestamp) VALUES (?, ?)",
		charsPerMinute, ts.Format(time.RFC3339),
	)
	return err
}

// ClearAll deletes every recorded row and compacts the database.
func (s *Store) ClearAll() error {
	_, err := s.db.Exec(
		`DELETE FROM key_events;
		 DELETE FROM key_combos;
		 DELETE FROM sessions;
		 DELETE FROM typing_samples;
		 VACUUM;`,
	)
	return err
}

func (s *Store) count(query string, args ...any) (int64, error) {
	var n int64
	err := s.db.QueryRow(query, args...).Scan(&n)
	return n, err
}

// TotalKeyEvents returns the number of recorded key presses.
func (s *Store) TotalKeyEvents() (int64, error) {
	return s.count("SELECT COUNT(*) FROM key_events")
}

// TotalCombos returns the number of recorded key combinations.
func (s *Store) TotalCombos() (int64, error) {
	return s.count("SELECT COUNT(*) FROM key_combos")
}

// TotalSessions returns the number of recording sessions.
func (s *Store) TotalSessions() (int64, error) {
	return s.count("SELECT COUNT(*) FROM sessions")
}

// TotalSessionMinutes sums the duration of all finished sessions.
func (s *Store) TotalSessionMinutes() (float64, error) {
	var minutes float64
	err := s.db.QueryRow(
		`SELECT COALESCE(SUM(
			CAST((julianday(end_time) - julianday(start_time)) * 24 * 60 AS REAL)
		 ), 0.0) FROM sessions WHERE end_time IS NOT NULL`,
	).Scan(&minutes)
	return minutes, err
}

// TopKeys returns the most pressed keys in descending order.
func (s *Store) TopKeys(limit int) ([]KeyCount, error) {
	rows, err := s.db.Query(
		`SELECT key_name, COUNT(*) AS cnt FROM key_events
		 GROUP BY key_name ORDER BY cnt DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []KeyCount
	for rows.Next() {
		var k KeyCount
		if err := rows.Scan(&k.Name, &k.Count); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// TopCombos returns the most pressed combos in descending order.
func (s *Store) TopCombos(limit int) ([]ComboCount, error) {
	rows, err := s.db.Query(
		`SELECT combo, COUNT(*) AS cnt FROM key_combos
		 GROUP BY combo ORDER BY cnt DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var combos []ComboCount
	for rows.Next() {
		var c ComboCount
		if err := rows.Scan(&c.Combo, &c.Count); err != nil {
			return nil, err
		}
		combos = append(combos, c)
	}
	return combos, rows.Err()
}

// KeyEventCount returns how many times one exact key name was pressed.
func (s *Store) KeyEventCount(name string) (int64, error) {
	return s.count("SELECT COUNT(*) FROM key_events WHERE key_name = ?", name)
}

// ModifierCount returns the number of modifier key presses.
func (s *Store) ModifierCount() (int64, error) {
	return s.count("SELECT COUNT(*) FROM key_events WHERE is_modifier = 1")
}

// LetterCount returns presses recorded under a bare single-letter name.
func (s *Store) LetterCount() (int64, error) {
	return s.count("SELECT COUNT(*) FROM key_events WHERE key_name GLOB '[A-Za-z]'")
}

// NumberCount returns presses of digit keys, including the recorder's Num
// and Key spellings.
func (s *Store) NumberCount() (int64, error) {
	return s.count(
		`SELECT COUNT(*) FROM key_events
		 WHERE key_name GLOB '[0-9]' OR key_name LIKE 'Num%' OR key_name LIKE 'Key%'`,
	)
}

// HourlyCounts returns 24 entries, one per hour of day, zero-filled.
func (s *Store) HourlyCounts() ([]HourCount, error) {
	rows, err := s.db.Query(
		"SELECT hour, COUNT(*) FROM key_events GROUP BY hour ORDER BY hour",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byHour := make(map[int]int64)
	for rows.Next() {
		var hour int
		var count int64
		if err := rows.Scan(&hour, &count); err != nil {
			return nil, err
		}
		byHour[hour] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts := make([]HourCount, 24)
	for h := 0; h < 24; h++ {
		counts[h] = HourCount{Hour: h, Count: byHour[h]}
	}
	return counts, nil
}

var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DailyCounts returns 7 entries, Monday first, zero-filled.
func (s *Store) DailyCounts() ([]DayCount, error) {
	rows, err := s.db.Query(
		"SELECT day_of_week, COUNT(*) FROM key_events GROUP BY day_of_week ORDER BY day_of_week",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byDay := make(map[int]int64)
	for rows.Next() {
		var day int
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		byDay[day] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	counts := make([]DayCount, 7)
	for d := 0; d < 7; d++ {
		counts[d] = DayCount{Day: dayNames[d], Count: byDay[d]}
	}
	return counts, nil
}

// TypingSpeed returns the average and maximum recorded typing speed in
// characters per minute. Zero values when no samples exist.
func (s *Store) TypingSpeed() (avg, max float64, err error) {
	err = s.db.QueryRow(
		`SELECT COALESCE(AVG(chars_per_minute), 0.0), COALESCE(MAX(chars_per_minute), 0.0)
		 FROM typing_samples`,
	).Scan(&avg, &max)
	return avg, max, err
}

// KeyFrequencyMap returns press counts per key name, the heatmap's input
// snapshot.
func (s *Store) KeyFrequencyMap() (map[string]int64, error) {
	rows, err := s.db.Query(
		"SELECT key_name, COUNT(*) FROM key_events GROUP BY key_name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	freq := make(map[string]int64)
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		freq[name] = count
	}
	return freq, rows.Err()
}

// FirstRecorded returns the timestamp of the earliest key event, or "" when
// nothing has been recorded.
func (s *Store) FirstRecorded() (string, error) {
	return s.timestampEdge("ASC")
}

// LastRecorded returns the timestamp of the most recent key event, or ""
// when nothing has been recorded.
func (s *Store) LastRecorded() (string, error) {
	return s.timestampEdge("DESC")
}

func (s *Store) timestampEdge(order string) (string, error) {
	var ts string
	err := s.db.QueryRow(
		"SELECT timestamp FROM key_events ORDER BY timestamp " + order + " LIMIT 1",
	).Scan(&ts)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return ts, err
}

// UniqueKeys returns the number of distinct key names ever recorded.
func (s *Store) UniqueKeys() (int64, error) {
	return s.count("SELECT COUNT(DISTINCT key_name) FROM key_events")
}
