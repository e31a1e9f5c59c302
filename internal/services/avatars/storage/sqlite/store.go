// Package sqlite provides a SQLite-backed seed storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/avatars/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/avatars/internal/services/avatars/storage"
	"github.com/louisbranch/avatars/internal/services/avatars/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists seed state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite seed store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ReplaceSeed deletes the stored generation and inserts the given one in a
// single transaction.
func (s *Store) ReplaceSeed(ctx context.Context, avatars []storage.SeedAvatar, banners []storage.SeedBanner) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM seed_avatars`); err != nil {
		return fmt.Errorf("clear seed avatars: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM seed_banners`); err != nil {
		return fmt.Errorf("clear seed banners: %w", err)
	}

	avatarStmt, err := tx.PrepareContext(ctx, `INSERT INTO seed_avatars (id, category, seed, url) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare seed avatar insert: %w", err)
	}
	defer avatarStmt.Close()
	for _, avatar := range avatars {
		id := strings.TrimSpace(avatar.ID)
		if id == "" {
			return fmt.Errorf("seed avatar id is required")
		}
		if _, err := avatarStmt.ExecContext(ctx, id, avatar.Category, avatar.Seed, avatar.URL); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("seed avatar %s: %w", id, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("insert seed avatar %s: %w", id, err)
		}
	}

	bannerStmt, err := tx.PrepareContext(ctx, `INSERT INTO seed_banners (id, category, type, value, thumbnail) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare seed banner insert: %w", err)
	}
	defer bannerStmt.Close()
	for _, banner := range banners {
		id := strings.TrimSpace(banner.ID)
		if id == "" {
			return fmt.Errorf("seed banner id is required")
		}
		if _, err := bannerStmt.ExecContext(ctx, id, banner.Category, banner.Type, banner.Value, banner.Thumbnail); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("seed banner %s: %w", id, storage.ErrAlreadyExists)
			}
			return fmt.Errorf("insert seed banner %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace seed: %w", err)
	}
	return nil
}

// ListSeedAvatars returns stored avatars, optionally limited to one category.
func (s *Store) ListSeedAvatars(ctx context.Context, category string) ([]storage.SeedAvatar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, category, seed, url
		   FROM seed_avatars
		  WHERE ? = '' OR category = ? COLLATE NOCASE
		  ORDER BY id ASC`,
		strings.TrimSpace(category),
		strings.TrimSpace(category),
	)
	if err != nil {
		return nil, fmt.Errorf("list seed avatars: %w", err)
	}
	defer rows.Close()

	avatars := make([]storage.SeedAvatar, 0)
	for rows.Next() {
		var avatar storage.SeedAvatar
		if err := rows.Scan(&avatar.ID, &avatar.Category, &avatar.Seed, &avatar.URL); err != nil {
			return nil, fmt.Errorf("list seed avatars: %w", err)
		}
		avatars = append(avatars, avatar)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list seed avatars: %w", err)
	}
	return avatars, nil
}

// ListSeedBanners returns stored banners, optionally limited to one category.
func (s *Store) ListSeedBanners(ctx context.Context, category string) ([]storage.SeedBanner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, category, type, value, thumbnail
		   FROM seed_banners
		  WHERE ? = '' OR category = ? COLLATE NOCASE
		  ORDER BY id ASC`,
		strings.TrimSpace(category),
		strings.TrimSpace(category),
	)
	if err != nil {
		return nil, fmt.Errorf("list seed banners: %w", err)
	}
	defer rows.Close()

	banners := make([]storage.SeedBanner, 0)
	for rows.Next() {
		var banner storage.SeedBanner
		if err := rows.Scan(&banner.ID, &banner.Category, &banner.Type, &banner.Value, &banner.Thumbnail); err != nil {
			return nil, fmt.Errorf("list seed banners: %w", err)
		}
		banners = append(banners, banner)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list seed banners: %w", err)
	}
	return banners, nil
}

// GetSeedAvatar returns one stored avatar by id.
func (s *Store) GetSeedAvatar(ctx context.Context, id string) (storage.SeedAvatar, error) {
	if err := ctx.Err(); err != nil {
		return storage.SeedAvatar{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.SeedAvatar{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.SeedAvatar{}, fmt.Errorf("seed avatar id is required")
	}

	var avatar storage.SeedAvatar
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, category, seed, url FROM seed_avatars WHERE id = ?`,
		id,
	).Scan(&avatar.ID, &avatar.Category, &avatar.Seed, &avatar.URL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.SeedAvatar{}, storage.ErrNotFound
		}
		return storage.SeedAvatar{}, fmt.Errorf("get seed avatar: %w", err)
	}
	return avatar, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.SeedStore = (*Store)(nil)
