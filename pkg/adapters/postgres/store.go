// Package postgres persists navigation snapshots in a PostgreSQL table.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/lib/pq"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "navstack_snapshots"

// Store implements ports.SnapshotStore on PostgreSQL.
// One row per key; the snapshot itself is stored as JSONB.
type Store struct {
	db    *sql.DB
	table string
}

type Option func(*Store)

// WithTable overrides DefaultTable.
func WithTable(table string) Option {
	return func(s *Store) {
		if table != "" {
			s.table = table
		}
	}
}

// Open connects to dsn with the lib/pq driver.
func Open(dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	return NewFromDB(db, opts...), nil
}

// NewFromDB creates a store over an existing pool.
func NewFromDB(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, table: DefaultTable}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) ident() string {
	return pq.QuoteIdentifier(s.table)
}

// Migrate creates the snapshot table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	key          TEXT PRIMARY KEY,
	container_id TEXT NOT NULL,
	snapshot     JSONB NOT NULL,
	saved_at     TIMESTAMPTZ NOT NULL
)`, s.ident())
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", s.table, err)
	}
	return nil
}

// Save upserts the snapshot under key.
func (s *Store) Save(ctx context.Context, key string, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (key, container_id, snapshot, saved_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO UPDATE
SET container_id = EXCLUDED.container_id, snapshot = EXCLUDED.snapshot, saved_at = EXCLUDED.saved_at`, s.ident())

	if _, err := s.db.ExecContext(ctx, query, key, snap.ContainerID, data, snap.SavedAt); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load retrieves the snapshot stored under key.
func (s *Store) Load(ctx context.Context, key string) (*domain.Snapshot, error) {
	query := fmt.Sprintf(`SELECT snapshot FROM %s WHERE key = $1`, s.ident())

	var data []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// Delete removes the row for key.
func (s *Store) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, s.ident())
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// List returns every key, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT key FROM %s ORDER BY key`, s.ident())
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
