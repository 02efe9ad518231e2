package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/optouthub/optouthub-go/internal/migrations"
)

// SuppressionCache is a local sqlite copy of a suppression list, keyed by
// normalized email hash. The CLI fills it from an export download and
// scrubs files against it offline.
type SuppressionCache struct {
	db *sql.DB
}

func OpenSuppressionCache(ctx context.Context, path string) (*SuppressionCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open suppression cache: %w", err)
	}
	if err := migrations.Apply(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate suppression cache: %w", err)
	}
	return &SuppressionCache{db: db}, nil
}

// ReplaceAll swaps the cached list for the given hashes in one transaction,
// so a failed sync never leaves a half-replaced list behind.
func (c *SuppressionCache) ReplaceAll(ctx context.Context, hashes []string) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM suppression`); err != nil {
		return fmt.Errorf("failed to clear suppression cache: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO suppression (hash) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, hash := range hashes {
		if _, err := stmt.ExecContext(ctx, hash); err != nil {
			return fmt.Errorf("failed to insert hash: %w", err)
		}
	}

	return tx.Commit()
}

func (c *SuppressionCache) Contains(ctx context.Context, hash string) (bool, error) {
	var one int
	err := c.db.QueryRowContext(ctx, `SELECT 1 FROM suppression WHERE hash = ?`, hash).Scan(&one)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to query suppression cache: %w", err)
	}
	return true, nil
}

func (c *SuppressionCache) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM suppression`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count suppression cache: %w", err)
	}
	return count, nil
}

// SetMeta records sync bookkeeping, e.g. the export id and completion time
// of the last pull.
func (c *SuppressionCache) SetMeta(ctx context.Context, key, value string) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO sync_meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to set meta: %w", err)
	}
	return nil
}

func (c *SuppressionCache) GetMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM sync_meta WHERE key = ?`, key).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return "", nil
	case err != nil:
		return "", fmt.Errorf("failed to get meta: %w", err)
	}
	return value, nil
}

func (c *SuppressionCache) Close() error {
	return c.db.Close()
}
