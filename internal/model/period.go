package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a contiguous date range between consecutive paydays. Start and
// End are both inclusive and normalized to midnight UTC. Periods are derived
// on demand from the payday anchor; they are never stored directly.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether a timestamp falls inside the period. Comparison
// is on the calendar date, so a transaction late on the period's last day
// still belongs to it.
func (p Period) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Equal reports whether two periods cover the same date range.
func (p Period) Equal(other Period) bool {
	return p.Start.Equal(other.Start) && p.End.Equal(other.End)
}

// PeriodRecord is the immutable snapshot of a closed period. Records are
// created exactly once when rollover observes that a period has elapsed and
// are never edited afterwards.
type PeriodRecord struct {
	Start            time.Time
	End              time.Time
	ClosedAt         time.Time
	Label            string
	BudgetAtClose    decimal.Decimal
	SpentAtClose     decimal.Decimal
	SavedAmount      decimal.Decimal
	TransactionCount int
}
