package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/period"
	"github.com/elias000000000/bg/internal/service"
)

// BuildExportRows produces the flat tabular export shape: every transaction
// ever recorded, live and archived, oldest first. No formatting happens
// here; consumers render the rows however they like.
func (e *Engine) BuildExportRows(ctx context.Context) ([]service.ExportRow, error) {
	settings, err := e.storage.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	txns, err := e.storage.ListAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	rows := make([]service.ExportRow, 0, len(txns))
	for _, txn := range txns {
		p, err := period.Containing(txn.OccurredAt, settings.Payday)
		if err != nil {
			return nil, fmt.Errorf("failed to derive period for transaction %s: %w", txn.ID, err)
		}
		rows = append(rows, service.ExportRow{
			Date:        txn.OccurredAt,
			Description: txn.Description,
			Category:    txn.Category,
			Amount:      txn.Amount,
			PeriodLabel: p.Label,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	return rows, nil
}

// BuildReportSummary produces the category-grouped export shape: one
// subtotal per category present in the history plus the grand total.
func (e *Engine) BuildReportSummary(ctx context.Context) (*service.ReportSummary, error) {
	txns, err := e.storage.ListAllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := &service.ReportSummary{
		ByCategory: make(map[string]service.CategorySummary),
		GrandTotal: decimal.Zero,
		Count:      len(txns),
	}

	for _, txn := range txns {
		cat := summary.ByCategory[txn.Category]
		cat.Count++
		cat.Amount = cat.Amount.Add(txn.Amount)
		summary.ByCategory[txn.Category] = cat

		summary.GrandTotal = summary.GrandTotal.Add(txn.Amount)

		if summary.DateRange.Start.IsZero() || txn.OccurredAt.Before(summary.DateRange.Start) {
			summary.DateRange.Start = txn.OccurredAt
		}
		if txn.OccurredAt.After(summary.DateRange.End) {
			summary.DateRange.End = txn.OccurredAt
		}
	}

	return summary, nil
}
