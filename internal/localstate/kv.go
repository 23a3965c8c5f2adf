package localstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Well-known keys.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

// KV is a durable string-keyed byte store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// DBTX lets a Repository run on the database or inside an Update.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository is the SQLite-backed KV. A missing key reads as (nil, nil).
type Repository struct {
	db DBTX
}

// NewRepository binds a repository to db, which may be a *sql.DB or a *sql.Tx.
func NewRepository(db DBTX) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// Entry describes one stored key without exposing its value.
type Entry struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// Entries lists the stored keys in key order.
func (r *Repository) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT key, length(value), CAST(strftime('%s', updated_at) AS INTEGER)
		FROM kv ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var unix int64
		if err := rows.Scan(&e.Key, &e.Size, &unix); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		e.UpdatedAt = time.Unix(unix, 0).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// Reset forgets the session, the cached user and the theme in one statement.
func (r *Repository) Reset(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM kv`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset kv: %w", err)
	}
	return res.RowsAffected()
}

// Store combines a database handle with transactional multi-key writes.
type Store struct {
	*Repository
	db *sql.DB
}

// NewStore wraps an open, migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{Repository: NewRepository(db), db: db}
}

// OpenStore opens the database at path and wraps it.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewStore(db), nil
}

// Update runs fn against a repository bound to one transaction. Nothing fn
// wrote survives unless it returns nil.
func (s *Store) Update(ctx context.Context, fn func(ctx context.Context, r *Repository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin kv update: %w", err)
	}
	// No-op after Commit; also runs when fn panics.
	defer func() { _ = tx.Rollback() }()

	if err := fn(ctx, NewRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit kv update: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
