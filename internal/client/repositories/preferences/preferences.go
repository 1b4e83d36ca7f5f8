// Package preferences persists UI settings in their own table, kept apart
// from session state so that logging out never touches them.
package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/undefineddevelopers/skillexchange/internal/dbx"
)

// Theme is the closed set of UI theme preferences.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// ErrInvalidTheme is returned when a write carries a value outside the
// closed set.
var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme validates a user-supplied theme value.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeAuto:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

const keyTheme = "theme"

// SQLiteRepository stores preferences in the preferences table of the local
// SQLite database.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Theme returns the stored preference. An absent or unparseable value falls
// back to ThemeAuto.
func (r *SQLiteRepository) Theme(ctx context.Context) (Theme, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, keyTheme).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ThemeAuto, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get theme preference: %w", err)
	}
	theme, err := ParseTheme(value)
	if err != nil {
		return ThemeAuto, nil
	}
	return theme, nil
}

// SetTheme persists the preference, rejecting values outside the closed set.
func (r *SQLiteRepository) SetTheme(ctx context.Context, theme Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, keyTheme, string(theme))
	if err != nil {
		return fmt.Errorf("failed to set theme preference: %w", err)
	}
	return nil
}
