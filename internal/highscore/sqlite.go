package highscore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore is the file-backed Store implementation.
type SQLiteStore struct {
	db       *sql.DB
	readOnly bool
}

var _ Store = (*SQLiteStore)(nil)

// Open creates or opens the highscore database at the given path. It
// creates parent directories as needed and runs migrations. Failures are
// reported as ErrUnavailable so callers can degrade gracefully.
func Open(dbPath string, readOnly bool) (*SQLiteStore, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: cannot expand home directory: %v", ErrUnavailable, err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: cannot create directory %s: %v", ErrUnavailable, dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open database: %v", ErrUnavailable, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: cannot connect to database: %v", ErrUnavailable, err)
	}

	store := &SQLiteStore{db: db, readOnly: readOnly}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migration failed: %v", ErrUnavailable, err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS highscores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			player TEXT NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(level, player)
		);
		CREATE INDEX IF NOT EXISTS idx_highscores_level ON highscores(level, moves);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ReadOnly reports whether the store was opened read-only.
func (s *SQLiteStore) ReadOnly() bool {
	return s.readOnly
}

// SupportsPlayerNameChange reports true: the file-backed store owns the
// local player identity.
func (s *SQLiteStore) SupportsPlayerNameChange() bool {
	return true
}

// Set stores the record, keeping only the strictly lower move count for
// an existing (level, player) pair. Ties keep the earlier record.
func (s *SQLiteStore) Set(rec Record) error {
	if s.readOnly {
		return ErrReadOnly
	}

	_, err := s.db.Exec(
		`INSERT INTO highscores (level, player, moves) VALUES (?, ?, ?)
		 ON CONFLICT(level, player) DO UPDATE
		 SET moves = excluded.moves, created_at = CURRENT_TIMESTAMP
		 WHERE excluded.moves < highscores.moves`,
		rec.Level, rec.Player, rec.Moves,
	)
	if err != nil {
		return fmt.Errorf("highscore: cannot save record: %w", err)
	}
	return nil
}

// ForLevel returns the best record for the level, or nil when none
// exists. Ties on move count resolve to the earlier record.
func (s *SQLiteStore) ForLevel(levelNumber int) (*Record, error) {
	var rec Record
	var createdAt any

	err := s.db.QueryRow(
		`SELECT level, player, moves, created_at
		 FROM highscores
		 WHERE level = ?
		 ORDER BY moves ASC, created_at ASC
		 LIMIT 1`,
		levelNumber,
	).Scan(&rec.Level, &rec.Player, &rec.Moves, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot query record: %w", err)
	}

	rec.CreatedAt = parseTime(createdAt)
	return &rec, nil
}

// Top returns up to limit records, best level-by-level order: ascending
// level, then ascending moves.
func (s *SQLiteStore) Top(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT level, player, moves, created_at
		 FROM highscores
		 ORDER BY level ASC, moves ASC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt any
		if err := rows.Scan(&rec.Level, &rec.Player, &rec.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("highscore: cannot scan row: %w", err)
		}
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("highscore: row iteration error: %w", err)
	}

	return records, nil
}

// PlayerName returns the stored local player name, or "" when unset.
func (s *SQLiteStore) PlayerName() (string, error) {
	var name string
	err := s.db.QueryRow(
		`SELECT value FROM settings WHERE key = 'player_name'`,
	).Scan(&name)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("highscore: cannot query player name: %w", err)
	}
	return name, nil
}

// SetPlayerName stores the local player name.
func (s *SQLiteStore) SetPlayerName(name string) error {
	if s.readOnly {
		return ErrReadOnly
	}

	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES ('player_name', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		name,
	)
	if err != nil {
		return fmt.Errorf("highscore: cannot save player name: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
