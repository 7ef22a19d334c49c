package storage

import "database/sql"

// initSchema creates all tables and indexes if they don't exist yet.
func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS key_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		key_code TEXT NOT NULL,
		key_name TEXT NOT NULL,
		is_modifier INTEGER NOT NULL DEFAULT 0,
		timestamp TEXT NOT NULL,
		hour INTEGER NOT NULL,
		day_of_week INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS key_combos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		combo TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT,
		total_keys INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS typing_samples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		chars_per_minute REAL NOT NULL,
		timestamp TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_key_events_key_name ON key_events(key_name);
	CREATE INDEX IF NOT EXISTS idx_key_events_timestamp ON key_events(timestamp);
	CREATE INDEX IF NOT EXISTS idx_key_events_hour ON key_events(hour);
	CREATE INDEX IF NOT EXISTS idx_key_combos_combo ON key_combos(combo);
	CREATE INDEX IF NOT EXISTS idx_typing_samples_timestamp ON typing_samples(timestamp);
	`

	_, err := db.Exec(schema)
	return err
}
