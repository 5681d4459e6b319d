// Package storage provides the data persistence layer for the bg application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elias000000000/bg/internal/model"
	"github.com/elias000000000/bg/internal/period"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidRecord      = errors.New("invalid period record")
	ErrInvalidSettings    = errors.New("invalid settings")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.OccurredAt.IsZero() {
		return fmt.Errorf("%w: missing occurrence date", ErrInvalidTransaction)
	}
	if strings.TrimSpace(txn.Category) == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	return nil
}

// validatePeriodRecord validates an archived period record.
func validatePeriodRecord(record *model.PeriodRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if record.Start.IsZero() || record.End.IsZero() {
		return fmt.Errorf("%w: missing period boundaries", ErrInvalidRecord)
	}
	if record.End.Before(record.Start) {
		return fmt.Errorf("%w: end before start", ErrInvalidRecord)
	}
	if strings.TrimSpace(record.Label) == "" {
		return fmt.Errorf("%w: missing label", ErrInvalidRecord)
	}
	return nil
}

// validateSettings validates settings before persisting them.
func validateSettings(settings *model.Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings", ErrNilParameter)
	}
	if err := period.ValidatePayday(settings.Payday); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, err.Error())
	}
	if !model.ValidTheme(settings.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidSettings, settings.Theme)
	}
	if settings.Budget.IsNegative() {
		return fmt.Errorf("%w: budget cannot be negative", ErrInvalidSettings)
	}
	for i, name := range settings.Categories {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty category name at position %d", ErrInvalidSettings, i)
		}
	}
	return nil
}
