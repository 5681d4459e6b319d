package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/common"
	"github.com/elias000000000/bg/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func createTestTransaction(num int, amount string, occurredAt time.Time) model.Transaction {
	return model.Transaction{
		ID:          fmt.Sprintf("txn-%03d", num),
		Description: fmt.Sprintf("Einkauf #%d", num),
		Amount:      decimal.RequireFromString(amount),
		Category:    "Verpflegung",
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestSQLiteStorage_SaveAndListLedger(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		txn := createTestTransaction(i+1, "10.50", base.Add(time.Duration(i)*time.Hour))
		if err := store.SaveTransaction(ctx, &txn); err != nil {
			t.Fatalf("Failed to save transaction: %v", err)
		}
	}

	ledger, err := store.ListLedger(ctx)
	if err != nil {
		t.Fatalf("Failed to list ledger: %v", err)
	}
	if len(ledger) != 3 {
		t.Errorf("Expected 3 transactions, got %d", len(ledger))
	}
	for i := 1; i < len(ledger); i++ {
		if ledger[i].OccurredAt.Before(ledger[i-1].OccurredAt) {
			t.Errorf("Ledger not in chronological order at index %d", i)
		}
	}
	if !ledger[0].Amount.Equal(decimal.RequireFromString("10.50")) {
		t.Errorf("Amount did not round-trip: got %s", ledger[0].Amount)
	}
}

func TestSQLiteStorage_SaveTransactionValidation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		txn  *model.Transaction
		name string
	}{
		{name: "nil transaction", txn: nil},
		{name: "missing ID", txn: &model.Transaction{Category: "Fonds", OccurredAt: time.Now()}},
		{name: "missing date", txn: &model.Transaction{ID: "x", Category: "Fonds"}},
		{name: "missing category", txn: &model.Transaction{ID: "x", OccurredAt: time.Now()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.SaveTransaction(ctx, tt.txn); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestSQLiteStorage_DeleteTransaction(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	txn := createTestTransaction(1, "25.00", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	if err := store.SaveTransaction(ctx, &txn); err != nil {
		t.Fatalf("Failed to save transaction: %v", err)
	}

	if err := store.DeleteTransaction(ctx, txn.ID); err != nil {
		t.Errorf("Failed to delete transaction: %v", err)
	}

	ledger, err := store.ListLedger(ctx)
	if err != nil {
		t.Fatalf("Failed to list ledger: %v", err)
	}
	if len(ledger) != 0 {
		t.Errorf("Expected empty ledger after delete, got %d entries", len(ledger))
	}

	// Deleting again reports not found.
	err = store.DeleteTransaction(ctx, txn.ID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStorage_DeleteArchivedTransactionFails(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	txn := createTestTransaction(1, "40.00", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	if err := store.SaveTransaction(ctx, &txn); err != nil {
		t.Fatalf("Failed to save transaction: %v", err)
	}

	record := &model.PeriodRecord{
		Label:            "January 2024",
		Start:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:              time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		BudgetAtClose:    decimal.NewFromInt(500),
		SpentAtClose:     decimal.RequireFromString("40.00"),
		SavedAmount:      decimal.RequireFromString("460.00"),
		TransactionCount: 1,
	}
	closed, err := store.ClosePeriod(ctx, record, []string{txn.ID})
	if err != nil {
		t.Fatalf("Failed to close period: %v", err)
	}
	if !closed {
		t.Fatal("Expected period to be closed")
	}

	err = store.DeleteTransaction(ctx, txn.ID)
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for archived transaction, got %v", err)
	}

	// Archived entries remain reachable via the full history.
	all, err := store.ListAllTransactions(ctx)
	if err != nil {
		t.Fatalf("Failed to list all transactions: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected archived transaction in history, got %d entries", len(all))
	}
}

func TestSQLiteStorage_SettingsDefaults(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	settings, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("Failed to get settings: %v", err)
	}
	if settings.Payday != 1 {
		t.Errorf("Expected default payday 1, got %d", settings.Payday)
	}
	if settings.Theme != model.ThemeStandard {
		t.Errorf("Expected standard theme, got %s", settings.Theme)
	}
	if len(settings.Categories) != len(model.DefaultCategories) {
		t.Errorf("Expected %d default categories, got %d", len(model.DefaultCategories), len(settings.Categories))
	}
	if !settings.Budget.IsZero() {
		t.Errorf("Expected zero default budget, got %s", settings.Budget)
	}
}

func TestSQLiteStorage_SaveSettingsRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	settings := model.DefaultSettings()
	settings.Name = "Elias"
	settings.Budget = decimal.RequireFromString("1250.75")
	settings.Payday = 15
	settings.Theme = model.ThemeMint
	settings.Categories = []string{"Miete", "Essen", "Sparen"}

	if err := store.SaveSettings(ctx, &settings); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}

	got, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("Failed to get settings: %v", err)
	}
	if got.Name != "Elias" {
		t.Errorf("Name mismatch: got %q", got.Name)
	}
	if !got.Budget.Equal(settings.Budget) {
		t.Errorf("Budget mismatch: got %s", got.Budget)
	}
	if got.Payday != 15 {
		t.Errorf("Payday mismatch: got %d", got.Payday)
	}
	if got.Theme != model.ThemeMint {
		t.Errorf("Theme mismatch: got %s", got.Theme)
	}
	if len(got.Categories) != 3 || got.Categories[0] != "Miete" || got.Categories[2] != "Sparen" {
		t.Errorf("Categories mismatch: got %v", got.Categories)
	}
}

func TestSQLiteStorage_SaveSettingsRejectsInvalid(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.Settings)
		name   string
	}{
		{name: "payday too low", mutate: func(s *model.Settings) { s.Payday = 0 }},
		{name: "payday too high", mutate: func(s *model.Settings) { s.Payday = 29 }},
		{name: "unknown theme", mutate: func(s *model.Settings) { s.Theme = "neon" }},
		{name: "negative budget", mutate: func(s *model.Settings) { s.Budget = decimal.NewFromInt(-1) }},
		{name: "blank category", mutate: func(s *model.Settings) { s.Categories = []string{"Essen", "  "} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := model.DefaultSettings()
			tt.mutate(&settings)
			if err := store.SaveSettings(ctx, &settings); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestSQLiteStorage_MigrateIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Running migrations again on a current database is a no-op.
	if err := store.Migrate(ctx); err != nil {
		t.Errorf("Second migrate failed: %v", err)
	}
}
