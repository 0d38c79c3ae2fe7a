package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS geocode_cache (
	key        TEXT PRIMARY KEY,
	city       TEXT NOT NULL,
	state      TEXT NOT NULL,
	cbsa       TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_geocode_cache_city_state ON geocode_cache(city, state);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) GetCBSA(ctx context.Context, city, state string) (string, bool, error) {
	var cbsa string
	err := s.db.QueryRowContext(ctx,
		`SELECT cbsa FROM geocode_cache WHERE key = ?`,
		cacheKey(city, state),
	).Scan(&cbsa)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, eris.Wrap(err, "sqlite: get cbsa")
	}
	return cbsa, true, nil
}

func (s *SQLiteStore) PutCBSA(ctx context.Context, city, state, cbsa string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO geocode_cache (key, city, state, cbsa, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET cbsa = excluded.cbsa, updated_at = excluded.updated_at`,
		cacheKey(city, state), city, state, cbsa, time.Now().UTC(),
	)
	return eris.Wrap(err, "sqlite: put cbsa")
}
