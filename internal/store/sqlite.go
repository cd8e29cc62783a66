package store

import (
	"database/sql"
	"time"

	_ "github.com/glebarez/sqlite"

	"github.com/young1lin/tilegrid/grid"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// PressRecord represents one stored tile press
type PressRecord struct {
	Layout    string
	TileID    grid.ID
	Label     string
	Position  grid.Position
	Timestamp time.Time
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db := &DB{DB: sqlDB}

	// Create tables
	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS focus (
		layout TEXT PRIMARY KEY,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS presses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		layout TEXT NOT NULL,
		tile_id TEXT NOT NULL,
		label TEXT NOT NULL,
		x INTEGER NOT NULL,
		y INTEGER NOT NULL,
		timestamp INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_presses_layout ON presses(layout, timestamp DESC);
	`

	_, err := db.Exec(query)
	return err
}

// SaveFocus saves or updates the focused position of a layout
func (db *DB) SaveFocus(layout string, pos grid.Position) error {
	query := `
	INSERT INTO focus (layout, x, y, updated_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(layout) DO UPDATE SET
		x = excluded.x,
		y = excluded.y,
		updated_at = excluded.updated_at
	`

	_, err := db.Exec(query, layout, pos.X, pos.Y, time.Now().Unix())
	return err
}

// LoadFocus retrieves the saved focus of a layout
func (db *DB) LoadFocus(layout string) (grid.Position, bool, error) {
	var pos grid.Position
	err := db.QueryRow("SELECT x, y FROM focus WHERE layout = ?", layout).Scan(&pos.X, &pos.Y)
	if err == sql.ErrNoRows {
		return grid.Position{}, false, nil
	}
	if err != nil {
		return grid.Position{}, false, err
	}
	return pos, true, nil
}

// RecordPress stores a tile press
func (db *DB) RecordPress(record PressRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	query := `
	INSERT INTO presses (layout, tile_id, label, x, y, timestamp)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(
		query,
		record.Layout,
		string(record.TileID),
		record.Label,
		record.Position.X,
		record.Position.Y,
		record.Timestamp.UnixNano(),
	)

	return err
}

// RecentPresses retrieves the newest presses of a layout
func (db *DB) RecentPresses(layout string, limit int) ([]PressRecord, error) {
	query := `
	SELECT layout, tile_id, label, x, y, timestamp
	FROM presses
	WHERE layout = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := db.Query(query, layout, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PressRecord
	for rows.Next() {
		var r PressRecord
		var id string
		var ts int64
		if err := rows.Scan(&r.Layout, &id, &r.Label, &r.Position.X, &r.Position.Y, &ts); err != nil {
			return nil, err
		}
		r.TileID = grid.ID(id)
		r.Timestamp = time.Unix(0, ts)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// PressCount returns how many presses were stored for a layout
func (db *DB) PressCount(layout string) (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM presses WHERE layout = ?", layout).Scan(&count)
	return count, err
}

// ClearPresses deletes the press history of a layout
func (db *DB) ClearPresses(layout string) error {
	_, err := db.Exec("DELETE FROM presses WHERE layout = ?", layout)
	return err
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
