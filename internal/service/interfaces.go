// Package service defines the interfaces and shared value types for all
// application services.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/model"
)

// Storage defines the contract for the persistence layer. Every mutation is
// a synchronous write-through: it is durable before the call returns.
type Storage interface {
	// Ledger operations. The live ledger holds the current period's
	// transactions; entries closed out by rollover stay on disk but are
	// excluded from it.
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	ListLedger(ctx context.Context) ([]model.Transaction, error)
	ListAllTransactions(ctx context.Context) ([]model.Transaction, error)

	// Settings operations.
	GetSettings(ctx context.Context) (*model.Settings, error)
	SaveSettings(ctx context.Context, settings *model.Settings) error

	// Archive operations.
	AppendPeriodRecord(ctx context.Context, record *model.PeriodRecord) (bool, error)
	ListPeriodRecords(ctx context.Context) ([]model.PeriodRecord, error)
	ClosePeriod(ctx context.Context, record *model.PeriodRecord, transactionIDs []string) (bool, error)

	// State snapshot operations.
	ExportState(ctx context.Context) (*model.State, error)
	ImportState(ctx context.Context, state *model.State) error
	ResetLedger(ctx context.Context) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}

// ReportWriter sends the structured export to an external destination.
type ReportWriter interface {
	Write(ctx context.Context, rows []ExportRow, records []model.PeriodRecord, summary *ReportSummary) error
}

// PeriodStatus is the computed view of the current period: the raw
// remaining balance (unclamped, used for the low-balance alert) alongside
// the clamped saved amount reported to the user.
type PeriodStatus struct {
	ByCategory   map[string]decimal.Decimal
	Transactions []model.Transaction
	Period       model.Period
	Budget       decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	Saved        decimal.Decimal
	LowBalance   bool
}

// RolloverResult summarizes one rollover pass.
type RolloverResult struct {
	Archived []model.PeriodRecord
	Skipped  int // elapsed periods without activity, not archived
}

// DateRange represents a time period with start and end dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// CategorySummary contains aggregated statistics for a category.
type CategorySummary struct {
	Count  int
	Amount decimal.Decimal
}

// ReportSummary contains the category-grouped totals consumed by the
// structured export: per-category subtotals and the grand total. The engine
// builds it; export collaborators only format it.
type ReportSummary struct {
	ByCategory map[string]CategorySummary
	DateRange  DateRange
	GrandTotal decimal.Decimal
	Count      int
}

// ExportRow is one transaction in the flat tabular export shape.
type ExportRow struct {
	Date        time.Time
	Description string
	Category    string
	PeriodLabel string
	Amount      decimal.Decimal
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
