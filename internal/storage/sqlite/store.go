// Package sqlite provides the SQLite-backed character and item repositories.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/repositories/items"
	"github.com/mrredcon/ballroom/internal/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store owns the database handle shared by both repositories
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, dnderr.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, dnderr.Wrap(err, "open sqlite db")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, dnderr.Wrap(err, "ping sqlite db")
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, dnderr.Wrap(err, "run migrations")
	}

	return &Store{
		sqlDB: sqlDB,
		now:   func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Characters returns the character repository backed by this store
func (s *Store) Characters() characters.Repository {
	return &characterStore{store: s}
}

// Items returns the item repository backed by this store
func (s *Store) Items() items.Repository {
	return &itemStore{store: s}
}

func constraintCode(err error) (int, bool) {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code(), true
	}
	return 0, false
}

// isNameClash reports a violation of a name_key unique index. A clashing
// id is a primary key violation and is reported separately.
func isNameClash(err error) bool {
	if code, ok := constraintCode(err); ok && code != sqlite3lib.SQLITE_CONSTRAINT {
		return code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	return constraintMessage(err, ".name_key")
}

func isIDClash(err error) bool {
	if code, ok := constraintCode(err); ok && code != sqlite3lib.SQLITE_CONSTRAINT {
		return code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return constraintMessage(err, ".id")
}

// constraintMessage matches "UNIQUE constraint failed: <table><column>" when
// only the primary result code is available
func constraintMessage(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") && strings.Contains(msg, column)
}

func isForeignKeyViolation(err error) bool {
	code, ok := constraintCode(err)
	return ok && code == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
}

func isCheckViolation(err error) bool {
	code, ok := constraintCode(err)
	return ok && code == sqlite3lib.SQLITE_CONSTRAINT_CHECK
}

// rollback discards tx after a failed step; the original error wins
func rollback(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		return fmt.Errorf("%w (rollback: %v)", err, rbErr)
	}
	return err
}
