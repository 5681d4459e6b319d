package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/common"
	"github.com/elias000000000/bg/internal/model"
)

// SaveTransaction inserts a single ledger entry.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	createdAt := txn.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, description, amount, category, occurred_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, txn.ID, txn.Description, txn.Amount.String(), txn.Category, txn.OccurredAt.UTC(), createdAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
	}
	return nil
}

// DeleteTransaction removes a live ledger entry by ID. Archived entries are
// part of a closed period and cannot be deleted.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM transactions WHERE id = ? AND archived_period_start IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// ListLedger returns the live ledger, oldest entries first. Entries closed
// out by rollover are excluded.
func (s *SQLiteStorage) ListLedger(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, amount, category, occurred_at, created_at, archived_period_start
		FROM transactions
		WHERE archived_period_start IS NULL
		ORDER BY occurred_at, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// ListAllTransactions returns every transaction ever recorded, live and
// archived, oldest first.
func (s *SQLiteStorage) ListAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, amount, category, occurred_at, created_at, archived_period_start
		FROM transactions
		ORDER BY occurred_at, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var amount string
		var archivedStart sql.NullTime
		if err := rows.Scan(&txn.ID, &txn.Description, &amount, &txn.Category, &txn.OccurredAt, &txn.CreatedAt, &archivedStart); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for transaction %s: %w", txn.ID, err)
		}
		txn.Amount = parsed
		if archivedStart.Valid {
			start := archivedStart.Time
			txn.ArchivedPeriodStart = &start
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
