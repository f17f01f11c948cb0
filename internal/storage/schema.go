// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for drinks, activity samples, and body profiles.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS drinks (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		category TEXT NOT NULL,
		volume_cl REAL NOT NULL,
		strength_percent REAL NOT NULL,
		units REAL NOT NULL,
		consumed_at DATETIME NOT NULL,
		is_template INTEGER NOT NULL DEFAULT 0,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS activity_samples (
		id TEXT PRIMARY KEY,
		recorded_at DATETIME NOT NULL,
		walking_steps REAL NOT NULL,
		dancing_steps REAL NOT NULL,
		total_steps REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS profiles (
		user_id TEXT PRIMARY KEY,
		age INTEGER,
		gender TEXT,
		height_cm REAL,
		weight_kg REAL,
		activity_level TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_drinks_user ON drinks(user_id);
	CREATE INDEX IF NOT EXISTS idx_drinks_consumed ON drinks(consumed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_drinks_user_consumed ON drinks(user_id, consumed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_activity_recorded ON activity_samples(recorded_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
