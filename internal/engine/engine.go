// Package engine implements the budget accounting core: per-period
// aggregation of the ledger, remaining/saved balances, the low-balance
// alert, and the idempotent rollover of elapsed periods into the archive.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/model"
	"github.com/elias000000000/bg/internal/period"
	"github.com/elias000000000/bg/internal/service"
)

// LowBalanceThreshold is the remaining balance below which the low-balance
// alert fires. Not a user setting; isolated here so promoting it to one is
// a single change.
var LowBalanceThreshold = decimal.NewFromInt(200)

// SpentInPeriod sums the amounts of all transactions that occurred inside
// the period, boundaries inclusive.
func SpentInPeriod(txns []model.Transaction, p model.Period) decimal.Decimal {
	spent := decimal.Zero
	for _, txn := range txns {
		if p.Contains(txn.OccurredAt) {
			spent = spent.Add(txn.Amount)
		}
	}
	return spent
}

// Remaining returns budget minus spend for the period. The result is
// unclamped and may be negative; it feeds the low-balance alert.
func Remaining(budget decimal.Decimal, txns []model.Transaction, p model.Period) decimal.Decimal {
	return budget.Sub(SpentInPeriod(txns, p))
}

// Saved clamps a remaining balance to zero for reporting. "Saved" is never
// negative even when the period overspent.
func Saved(remaining decimal.Decimal) decimal.Decimal {
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsLowBalance reports whether the unclamped remaining balance has dropped
// below the alert threshold.
func IsLowBalance(remaining decimal.Decimal) bool {
	return remaining.LessThan(LowBalanceThreshold)
}

// CategoryTotals aggregates period spend per category. Categories with no
// transactions in the period are omitted, never zero-filled.
func CategoryTotals(txns []model.Transaction, p model.Period) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if !p.Contains(txn.OccurredAt) {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// Engine orchestrates accounting over the persisted state.
type Engine struct {
	storage service.Storage
}

// New creates an accounting engine backed by the given storage.
func New(storage service.Storage) *Engine {
	return &Engine{storage: storage}
}

// Status computes the current period's view for the given reference time:
// spend, remaining (unclamped), saved (clamped), the low-balance flag, and
// per-category totals.
func (e *Engine) Status(ctx context.Context, reference time.Time) (*service.PeriodStatus, error) {
	settings, err := e.storage.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	current, err := period.Containing(reference, settings.Payday)
	if err != nil {
		return nil, fmt.Errorf("failed to derive current period: %w", err)
	}

	ledger, err := e.storage.ListLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	remaining := Remaining(settings.Budget, ledger, current)

	return &service.PeriodStatus{
		Period:       current,
		Budget:       settings.Budget,
		Spent:        SpentInPeriod(ledger, current),
		Remaining:    remaining,
		Saved:        Saved(remaining),
		LowBalance:   IsLowBalance(remaining),
		ByCategory:   CategoryTotals(ledger, current),
		Transactions: ledger,
	}, nil
}

// Rollover closes every period that ended strictly before the period
// containing reference. A period is archived only when it has at least one
// transaction and no record for its date range exists yet, so running
// rollover twice with the same reference never duplicates archive entries.
// Archived transactions leave the live ledger.
func (e *Engine) Rollover(ctx context.Context, reference time.Time) (*service.RolloverResult, error) {
	settings, err := e.storage.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	current, err := period.Containing(reference, settings.Payday)
	if err != nil {
		return nil, fmt.Errorf("failed to derive current period: %w", err)
	}

	ledger, err := e.storage.ListLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	if len(ledger) == 0 {
		return &service.RolloverResult{}, nil
	}

	earliest := ledger[0].OccurredAt
	for _, txn := range ledger[1:] {
		if txn.OccurredAt.Before(earliest) {
			earliest = txn.OccurredAt
		}
	}

	periods, err := period.Between(earliest, reference, settings.Payday)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate periods: %w", err)
	}

	result := &service.RolloverResult{}
	for _, p := range periods {
		if !p.End.Before(current.Start) {
			break
		}

		var ids []string
		for _, txn := range ledger {
			if p.Contains(txn.OccurredAt) {
				ids = append(ids, txn.ID)
			}
		}
		if len(ids) == 0 {
			// Periods without activity produce no record.
			result.Skipped++
			continue
		}

		spent := SpentInPeriod(ledger, p)
		record := model.PeriodRecord{
			Label:            p.Label,
			Start:            p.Start,
			End:              p.End,
			BudgetAtClose:    settings.Budget,
			SpentAtClose:     spent,
			SavedAmount:      Saved(settings.Budget.Sub(spent)),
			TransactionCount: len(ids),
			ClosedAt:         time.Now().UTC(),
		}

		appended, err := e.storage.ClosePeriod(ctx, &record, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to close period %s: %w", p.Label, err)
		}
		if appended {
			result.Archived = append(result.Archived, record)
			slog.Info("archived elapsed period",
				"period", p.Label,
				"spent", spent.String(),
				"transactions", len(ids))
		}
	}

	return result, nil
}
