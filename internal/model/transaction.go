package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single dated spending entry in the ledger.
// Transactions are immutable once created; the only lifecycle operation
// besides creation is deletion by ID.
type Transaction struct {
	OccurredAt time.Time
	CreatedAt  time.Time
	// ArchivedPeriodStart is the start date of the closed period this
	// entry was archived into, nil while the entry is live. It is part of
	// the serialized state and restored verbatim: a back-dated entry that
	// was still live at export time stays live after import.
	ArchivedPeriodStart *time.Time
	ID                  string
	Description         string
	Category            string // snapshot of the category label, never a foreign key
	Amount              decimal.Decimal
}

// Archived reports whether the transaction belongs to a closed period.
func (t *Transaction) Archived() bool {
	return t.ArchivedPeriodStart != nil
}

// NewTransaction creates a ledger entry with a fresh ID. Validation happens
// at the boundary; this constructor only assembles the value.
func NewTransaction(description string, amount decimal.Decimal, category string, occurredAt time.Time) Transaction {
	return Transaction{
		ID:          uuid.New().String(),
		Description: description,
		Amount:      amount,
		Category:    category,
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now().UTC(),
	}
}
