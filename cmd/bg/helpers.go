package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/elias000000000/bg/internal/cli"
	"github.com/elias000000000/bg/internal/common"
	"github.com/elias000000000/bg/internal/config"
	"github.com/elias000000000/bg/internal/engine"
	"github.com/elias000000000/bg/internal/model"
	"github.com/elias000000000/bg/internal/service"
	"github.com/elias000000000/bg/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/bg/bg.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openEngine sets up storage, applies the configured theme, and returns an
// engine ready for use. Commands that read or mutate the ledger go through
// this so elapsed periods are always closed first.
func openEngine(ctx context.Context) (*engine.Engine, service.Storage, *model.Settings, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	settings, err := store.GetSettings(ctx)
	if err != nil {
		_ = store.Close()
		return nil, nil, nil, err
	}
	cli.UseTheme(settings.Theme)

	eng := engine.New(store)
	if _, err := eng.Rollover(ctx, time.Now()); err != nil {
		_ = store.Close()
		return nil, nil, nil, common.NewUserError("Could not close elapsed periods", err)
	}

	return eng, store, settings, nil
}

// parseAmount parses a positive money amount from a command argument.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, common.NewValidationError("amount", fmt.Sprintf("%q is not a number", raw))
	}
	if !amount.IsPositive() {
		return decimal.Zero, common.NewValidationError("amount", fmt.Sprintf("must be positive, got %s", amount))
	}
	return amount, nil
}

// parseBudget parses a budget value. Unlike transaction amounts, a budget
// of zero is valid: it simply means every franc spent counts as overspend.
func parseBudget(raw string) (decimal.Decimal, error) {
	budget, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, common.NewValidationError("budget", fmt.Sprintf("%q is not a number", raw))
	}
	if budget.IsNegative() {
		return decimal.Zero, common.NewValidationError("budget", fmt.Sprintf("cannot be negative, got %s", budget))
	}
	return budget, nil
}

// parseDate parses a YYYY-MM-DD flag value, defaulting to now when empty.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, common.NewValidationError("date", fmt.Sprintf("%q is not of the form YYYY-MM-DD", raw))
	}
	return t, nil
}

// persistFailure wraps a durable-store write failure. The in-memory state
// already changed, so the user is warned that the change may not survive a
// restart before the error propagates.
func persistFailure(op string, err error) error {
	fmt.Fprintln(os.Stderr, cli.FormatWarning("The change may not survive a restart."))
	return common.NewPersistenceError(op, err)
}
