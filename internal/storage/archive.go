package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/model"
)

// AppendPeriodRecord inserts a closed-period snapshot. A record for the same
// date range is silently ignored; the return value reports whether a new row
// was written.
func (s *SQLiteStorage) AppendPeriodRecord(ctx context.Context, record *model.PeriodRecord) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validatePeriodRecord(record); err != nil {
		return false, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO archive (
			label, start_date, end_date,
			budget_at_close, spent_at_close, saved_amount,
			transaction_count, closed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.Label, record.Start.UTC(), record.End.UTC(),
		record.BudgetAtClose.String(), record.SpentAtClose.String(), record.SavedAmount.String(),
		record.TransactionCount, closedAtOrNow(record.ClosedAt))
	if err != nil {
		return false, fmt.Errorf("failed to insert period record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}
	return rows > 0, nil
}

// ListPeriodRecords returns every archived period in chronological order.
func (s *SQLiteStorage) ListPeriodRecords(ctx context.Context) ([]model.PeriodRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT label, start_date, end_date,
			budget_at_close, spent_at_close, saved_amount,
			transaction_count, closed_at
		FROM archive
		ORDER BY start_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanPeriodRecords(rows)
}

// ClosePeriod archives a period atomically: the record insert and the
// marking of its transactions commit together or not at all. When the
// period was already archived nothing is changed and false is returned,
// which makes repeated rollover passes idempotent.
func (s *SQLiteStorage) ClosePeriod(ctx context.Context, record *model.PeriodRecord, transactionIDs []string) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validatePeriodRecord(record); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		INSERT OR IGNORE INTO archive (
			label, start_date, end_date,
			budget_at_close, spent_at_close, saved_amount,
			transaction_count, closed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, record.Label, record.Start.UTC(), record.End.UTC(),
		record.BudgetAtClose.String(), record.SpentAtClose.String(), record.SavedAmount.String(),
		record.TransactionCount, closedAtOrNow(record.ClosedAt))
	if err != nil {
		return false, fmt.Errorf("failed to insert period record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}
	if rows == 0 {
		// Already closed by an earlier pass.
		return false, nil
	}

	for _, id := range transactionIDs {
		if _, err = tx.ExecContext(ctx, `
			UPDATE transactions SET archived_period_start = ? WHERE id = ?
		`, record.Start.UTC(), id); err != nil {
			return false, fmt.Errorf("failed to archive transaction %s: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit period close: %w", err)
	}
	return true, nil
}

func scanPeriodRecords(rows *sql.Rows) ([]model.PeriodRecord, error) {
	var records []model.PeriodRecord
	for rows.Next() {
		var (
			record model.PeriodRecord
			budget string
			spent  string
			saved  string
		)
		if err := rows.Scan(&record.Label, &record.Start, &record.End,
			&budget, &spent, &saved, &record.TransactionCount, &record.ClosedAt); err != nil {
			return nil, fmt.Errorf("failed to scan period record: %w", err)
		}
		var err error
		if record.BudgetAtClose, err = decimal.NewFromString(budget); err != nil {
			return nil, fmt.Errorf("corrupt budget in record %q: %w", record.Label, err)
		}
		if record.SpentAtClose, err = decimal.NewFromString(spent); err != nil {
			return nil, fmt.Errorf("corrupt spent in record %q: %w", record.Label, err)
		}
		if record.SavedAmount, err = decimal.NewFromString(saved); err != nil {
			return nil, fmt.Errorf("corrupt saved in record %q: %w", record.Label, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate archive: %w", err)
	}
	return records, nil
}

func closedAtOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
