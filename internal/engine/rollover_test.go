package engine

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/model"
)

func seededStore(t *testing.T, budget int64, entries ...model.Transaction) *mockStorage {
	t.Helper()
	settings := model.DefaultSettings()
	settings.Budget = decimal.NewFromInt(budget)
	store := newMockStorage(settings)
	for _, entry := range entries {
		e := entry
		if err := store.SaveTransaction(context.Background(), &e); err != nil {
			t.Fatalf("SaveTransaction() error = %v", err)
		}
	}
	return store
}

func TestRolloverArchivesElapsedPeriods(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t, 1000,
		txn("250", "Verpflegung", date(2024, time.January, 10)),
		txn("100", "Handyabo", date(2024, time.January, 20)),
		txn("80", "Frisör", date(2024, time.February, 5)),
		txn("30", "Sonstiges", date(2024, time.March, 2)), // current period
	)

	result, err := New(store).Rollover(ctx, date(2024, time.March, 15))
	if err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}
	if len(result.Archived) != 2 {
		t.Fatalf("archived %d periods, want 2", len(result.Archived))
	}

	jan := result.Archived[0]
	if !jan.Start.Equal(date(2024, time.January, 1)) || !jan.End.Equal(date(2024, time.January, 31)) {
		t.Errorf("first record covers %v..%v", jan.Start, jan.End)
	}
	if !jan.SpentAtClose.Equal(decimal.NewFromInt(350)) {
		t.Errorf("January spent = %s, want 350", jan.SpentAtClose)
	}
	if !jan.SavedAmount.Equal(decimal.NewFromInt(650)) {
		t.Errorf("January saved = %s, want 650", jan.SavedAmount)
	}
	if jan.TransactionCount != 2 {
		t.Errorf("January transaction count = %d, want 2", jan.TransactionCount)
	}

	feb := result.Archived[1]
	if !feb.SpentAtClose.Equal(decimal.NewFromInt(80)) {
		t.Errorf("February spent = %s, want 80", feb.SpentAtClose)
	}

	// The live ledger now holds only the current period's transaction.
	ledger, err := store.ListLedger(ctx)
	if err != nil {
		t.Fatalf("ListLedger() error = %v", err)
	}
	if len(ledger) != 1 {
		t.Fatalf("live ledger has %d entries, want 1", len(ledger))
	}
	if !ledger[0].Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("remaining entry amount = %s, want 30", ledger[0].Amount)
	}
}

func TestRolloverIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t, 500,
		txn("120", "Verpflegung", date(2024, time.January, 8)),
	)
	eng := New(store)
	ref := date(2024, time.February, 10)

	first, err := eng.Rollover(ctx, ref)
	if err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}
	if len(first.Archived) != 1 {
		t.Fatalf("first pass archived %d, want 1", len(first.Archived))
	}

	second, err := eng.Rollover(ctx, ref)
	if err != nil {
		t.Fatalf("second Rollover() error = %v", err)
	}
	if len(second.Archived) != 0 {
		t.Errorf("second pass archived %d, want 0", len(second.Archived))
	}

	records, err := store.ListPeriodRecords(ctx)
	if err != nil {
		t.Fatalf("ListPeriodRecords() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("archive has %d records after two passes, want 1", len(records))
	}
}

func TestRolloverSkipsEmptyPeriods(t *testing.T) {
	ctx := context.Background()
	// Activity in January and April only; February and March are empty.
	store := seededStore(t, 400,
		txn("90", "Eltern", date(2024, time.January, 12)),
		txn("15", "Sonstiges", date(2024, time.April, 3)),
	)

	result, err := New(store).Rollover(ctx, date(2024, time.May, 1))
	if err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}
	if len(result.Archived) != 2 {
		t.Fatalf("archived %d periods, want 2", len(result.Archived))
	}
	if result.Skipped != 2 {
		t.Errorf("skipped %d empty periods, want 2", result.Skipped)
	}

	records, err := store.ListPeriodRecords(ctx)
	if err != nil {
		t.Fatalf("ListPeriodRecords() error = %v", err)
	}
	for _, r := range records {
		if r.TransactionCount == 0 {
			t.Errorf("empty period %s must not be archived", r.Label)
		}
	}
}

func TestRolloverNothingElapsed(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t, 300,
		txn("50", "Verpflegung", date(2024, time.June, 2)),
	)

	result, err := New(store).Rollover(ctx, date(2024, time.June, 20))
	if err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}
	if len(result.Archived) != 0 {
		t.Errorf("archived %d periods, want 0", len(result.Archived))
	}

	ledger, err := store.ListLedger(ctx)
	if err != nil {
		t.Fatalf("ListLedger() error = %v", err)
	}
	if len(ledger) != 1 {
		t.Errorf("ledger must be untouched, got %d entries", len(ledger))
	}
}

func TestRolloverEmptyLedger(t *testing.T) {
	store := seededStore(t, 300)
	result, err := New(store).Rollover(context.Background(), date(2024, time.June, 20))
	if err != nil {
		t.Fatalf("Rollover() error = %v", err)
	}
	if len(result.Archived) != 0 || result.Skipped != 0 {
		t.Errorf("empty ledger must be a no-op, got %+v", result)
	}
}
