package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/model"
)

// GetSettings returns the persisted settings. On a fresh database it
// persists and returns the defaults, so callers always see a complete
// settings row and the default category list.
func (s *SQLiteStorage) GetSettings(ctx context.Context) (*model.Settings, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		settings model.Settings
		budget   string
		theme    string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT name, budget, payday, theme FROM settings WHERE id = 1
	`).Scan(&settings.Name, &budget, &settings.Payday, &theme)
	if errors.Is(err, sql.ErrNoRows) {
		defaults := model.DefaultSettings()
		if saveErr := s.SaveSettings(ctx, &defaults); saveErr != nil {
			return nil, fmt.Errorf("failed to seed default settings: %w", saveErr)
		}
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	settings.Budget, err = decimal.NewFromString(budget)
	if err != nil {
		return nil, fmt.Errorf("corrupt budget value: %w", err)
	}
	settings.Theme = model.Theme(theme)

	settings.Categories, err = s.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings upserts the singleton settings row and replaces the
// category list in the same transaction.
func (s *SQLiteStorage) SaveSettings(ctx context.Context, settings *model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSettings(settings); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (id, name, budget, payday, theme)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			budget = excluded.budget,
			payday = excluded.payday,
			theme = excluded.theme
	`, settings.Name, settings.Budget.String(), settings.Payday, string(settings.Theme))
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	for i, name := range settings.Categories {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO categories (name, position) VALUES (?, ?)
		`, name, i); err != nil {
			return fmt.Errorf("failed to insert category %q: %w", name, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) listCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}
