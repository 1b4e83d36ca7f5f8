package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/undefineddevelopers/skillexchange/internal/dbx"
)

// SQLiteRepository stores session state in the credentials table of the
// local SQLite database.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, r.db, key, value)
}

// SetMany writes several keys in one transaction when backed by *sql.DB,
// so either all of them land or none do. With a transactional handle the
// writes simply share it.
func (r *SQLiteRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	write := func(ctx context.Context, db dbx.DBTX) error {
		for key, value := range values {
			if err := set(ctx, db, key, value); err != nil {
				return err
			}
		}
		return nil
	}

	if db, ok := r.db.(*sql.DB); ok {
		return dbx.WithTx(ctx, db, nil, write)
	}
	return write(ctx, r.db)
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
