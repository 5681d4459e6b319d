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

func testRecord(year int, month time.Month) *model.PeriodRecord {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return &model.PeriodRecord{
		Label:            start.Format("January 2006"),
		Start:            start,
		End:              end,
		BudgetAtClose:    decimal.NewFromInt(800),
		SpentAtClose:     decimal.RequireFromString("312.40"),
		SavedAmount:      decimal.RequireFromString("487.60"),
		TransactionCount: 7,
		ClosedAt:         end.AddDate(0, 0, 1),
	}
}

func TestAppendPeriodRecord(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	inserted, err := store.AppendPeriodRecord(ctx, testRecord(2024, time.January))
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same date range again is ignored.
	inserted, err = store.AppendPeriodRecord(ctx, testRecord(2024, time.January))
	require.NoError(t, err)
	assert.False(t, inserted)

	records, err := store.ListPeriodRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "January 2024", records[0].Label)
	assert.True(t, records[0].SpentAtClose.Equal(decimal.RequireFromString("312.40")))
	assert.Equal(t, 7, records[0].TransactionCount)
}

func TestListPeriodRecordsChronological(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Insert out of order.
	for _, month := range []time.Month{time.March, time.January, time.February} {
		_, err := store.AppendPeriodRecord(ctx, testRecord(2024, month))
		require.NoError(t, err)
	}

	records, err := store.ListPeriodRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "January 2024", records[0].Label)
	assert.Equal(t, "February 2024", records[1].Label)
	assert.Equal(t, "March 2024", records[2].Label)
}

func TestClosePeriodAtomicity(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	txn := createTestTransaction(1, "60.00", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, store.SaveTransaction(ctx, &txn))

	closed, err := store.ClosePeriod(ctx, testRecord(2024, time.January), []string{txn.ID})
	require.NoError(t, err)
	assert.True(t, closed)

	ledger, err := store.ListLedger(ctx)
	require.NoError(t, err)
	assert.Empty(t, ledger, "closed transactions must leave the live ledger")

	// A second close of the same period changes nothing.
	closed, err = store.ClosePeriod(ctx, testRecord(2024, time.January), []string{txn.ID})
	require.NoError(t, err)
	assert.False(t, closed)

	records, err := store.ListPeriodRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestClosePeriodRejectsInvalidRecord(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	record := testRecord(2024, time.January)
	record.Label = ""
	_, err := store.ClosePeriod(ctx, record, nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)

	record = testRecord(2024, time.January)
	record.End = record.Start.AddDate(0, 0, -5)
	_, err = store.ClosePeriod(ctx, record, nil)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
