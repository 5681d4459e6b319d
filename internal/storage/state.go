package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elias000000000/bg/internal/model"
)

// ExportState materializes the full application state as a single value:
// settings, the complete transaction history, and the archive.
func (s *SQLiteStorage) ExportState(ctx context.Context) (*model.State, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.ListAllTransactions(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.ListPeriodRecords(ctx)
	if err != nil {
		return nil, err
	}

	return &model.State{
		Settings:     *settings,
		Transactions: transactions,
		Records:      records,
	}, nil
}

// ImportState replaces the entire database contents with the given state.
// Each transaction's archived marker is restored exactly as exported, so
// the live ledger after import matches the ledger before export. The
// marker is never re-derived from the archive's date ranges: an entry
// back-dated into an already closed period is live until the next close
// and must stay live across a round-trip.
func (s *SQLiteStorage) ImportState(ctx context.Context, state *model.State) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if state == nil {
		return fmt.Errorf("%w: state", ErrNilParameter)
	}
	if err := validateSettings(&state.Settings); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"transactions", "archive", "categories", "settings"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (id, name, budget, payday, theme)
		VALUES (1, ?, ?, ?, ?)
	`, state.Settings.Name, state.Settings.Budget.String(), state.Settings.Payday, string(state.Settings.Theme))
	if err != nil {
		return fmt.Errorf("failed to restore settings: %w", err)
	}
	for i, name := range state.Settings.Categories {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO categories (name, position) VALUES (?, ?)
		`, name, i); err != nil {
			return fmt.Errorf("failed to restore category %q: %w", name, err)
		}
	}

	for i := range state.Records {
		record := &state.Records[i]
		if err = validatePeriodRecord(record); err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO archive (
				label, start_date, end_date,
				budget_at_close, spent_at_close, saved_amount,
				transaction_count, closed_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, record.Label, record.Start.UTC(), record.End.UTC(),
			record.BudgetAtClose.String(), record.SpentAtClose.String(), record.SavedAmount.String(),
			record.TransactionCount, closedAtOrNow(record.ClosedAt)); err != nil {
			return fmt.Errorf("failed to restore period record %q: %w", record.Label, err)
		}
	}

	for i := range state.Transactions {
		txn := &state.Transactions[i]
		if err = validateTransaction(txn); err != nil {
			return err
		}
		var archivedStart any
		if txn.ArchivedPeriodStart != nil {
			archivedStart = txn.ArchivedPeriodStart.UTC()
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO transactions (id, description, amount, category, occurred_at, created_at, archived_period_start)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, txn.ID, txn.Description, txn.Amount.String(), txn.Category,
			txn.OccurredAt.UTC(), txn.CreatedAt.UTC(), archivedStart); err != nil {
			return fmt.Errorf("failed to restore transaction %s: %w", txn.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	slog.Info("Imported application state",
		"transactions", len(state.Transactions),
		"records", len(state.Records))
	return nil
}

// ResetLedger wipes all transactions and archived periods but keeps the
// user's settings and categories.
func (s *SQLiteStorage) ResetLedger(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"transactions", "archive"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}

	slog.Info("Ledger reset, settings preserved")
	return nil
}
