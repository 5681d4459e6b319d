package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elias000000000/bg/internal/model"
)

func TestExportImportStateRoundTrip(t *testing.T) {
	source, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	settings := model.DefaultSettings()
	settings.Name = "Mira"
	settings.Budget = decimal.NewFromInt(900)
	settings.Payday = 25
	require.NoError(t, source.SaveSettings(ctx, &settings))

	archived := createTestTransaction(1, "55.00", time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	live := createTestTransaction(2, "12.30", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, source.SaveTransaction(ctx, &archived))
	require.NoError(t, source.SaveTransaction(ctx, &live))

	closed, err := source.ClosePeriod(ctx, testRecord(2024, time.January), []string{archived.ID})
	require.NoError(t, err)
	require.True(t, closed)

	state, err := source.ExportState(ctx)
	require.NoError(t, err)
	assert.Len(t, state.Transactions, 2)
	assert.Len(t, state.Records, 1)
	assert.Equal(t, "Mira", state.Settings.Name)

	// Restore into a fresh database.
	target, cleanupTarget := createTestStorage(t)
	defer cleanupTarget()
	require.NoError(t, target.ImportState(ctx, state))

	gotSettings, err := target.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mira", gotSettings.Name)
	assert.Equal(t, 25, gotSettings.Payday)
	assert.True(t, gotSettings.Budget.Equal(decimal.NewFromInt(900)))

	// The archived transaction stays out of the live ledger after import.
	ledger, err := target.ListLedger(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, live.ID, ledger[0].ID)

	all, err := target.ListAllTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	records, err := target.ListPeriodRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "January 2024", records[0].Label)
}

func TestImportStateKeepsBackdatedEntryLive(t *testing.T) {
	source, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Close January with one entry.
	january := createTestTransaction(1, "40.00", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, source.SaveTransaction(ctx, &january))
	closed, err := source.ClosePeriod(ctx, testRecord(2024, time.January), []string{january.ID})
	require.NoError(t, err)
	require.True(t, closed)

	// Back-date a new entry into the already closed period. It was not
	// part of the close, so it is live.
	backdated := createTestTransaction(2, "15.00", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, source.SaveTransaction(ctx, &backdated))

	before, err := source.ListLedger(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	state, err := source.ExportState(ctx)
	require.NoError(t, err)

	target, cleanupTarget := createTestStorage(t)
	defer cleanupTarget()
	require.NoError(t, target.ImportState(ctx, state))

	// The archived marker is restored verbatim, never re-derived from the
	// archive's date ranges, so the back-dated entry is still live.
	after, err := target.ListLedger(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, backdated.ID, after[0].ID)

	all, err := target.ListAllTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportStateReplacesExistingData(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	old := createTestTransaction(99, "5.00", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveTransaction(ctx, &old))

	settings := model.DefaultSettings()
	state := &model.State{Settings: settings}
	require.NoError(t, store.ImportState(ctx, state))

	all, err := store.ListAllTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestResetLedgerKeepsSettings(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	settings := model.DefaultSettings()
	settings.Name = "Jonas"
	settings.Budget = decimal.NewFromInt(600)
	require.NoError(t, store.SaveSettings(ctx, &settings))

	txn := createTestTransaction(1, "33.00", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveTransaction(ctx, &txn))
	_, err := store.AppendPeriodRecord(ctx, testRecord(2024, time.March))
	require.NoError(t, err)

	require.NoError(t, store.ResetLedger(ctx))

	all, err := store.ListAllTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	records, err := store.ListPeriodRecords(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	got, err := store.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jonas", got.Name)
	assert.True(t, got.Budget.Equal(decimal.NewFromInt(600)))
}
