package engine

import (
	"context"
	"sort"

	"github.com/elias000000000/bg/internal/common"
	"github.com/elias000000000/bg/internal/model"
)

// mockStorage is an in-memory Storage implementation used by engine tests.
type mockStorage struct {
	settings model.Settings
	archived map[string]bool
	txns     []model.Transaction
	records  []model.PeriodRecord
}

func newMockStorage(settings model.Settings) *mockStorage {
	return &mockStorage{
		settings: settings,
		archived: make(map[string]bool),
	}
}

func (m *mockStorage) SaveTransaction(_ context.Context, txn *model.Transaction) error {
	m.txns = append(m.txns, *txn)
	return nil
}

func (m *mockStorage) DeleteTransaction(_ context.Context, id string) error {
	for i, txn := range m.txns {
		if txn.ID == id {
			m.txns = append(m.txns[:i], m.txns[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (m *mockStorage) ListLedger(_ context.Context) ([]model.Transaction, error) {
	var live []model.Transaction
	for _, txn := range m.txns {
		if !m.archived[txn.ID] {
			live = append(live, txn)
		}
	}
	return live, nil
}

func (m *mockStorage) ListAllTransactions(_ context.Context) ([]model.Transaction, error) {
	out := make([]model.Transaction, len(m.txns))
	copy(out, m.txns)
	return out, nil
}

func (m *mockStorage) GetSettings(_ context.Context) (*model.Settings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockStorage) SaveSettings(_ context.Context, settings *model.Settings) error {
	m.settings = *settings
	return nil
}

func (m *mockStorage) AppendPeriodRecord(_ context.Context, record *model.PeriodRecord) (bool, error) {
	for _, existing := range m.records {
		if existing.Start.Equal(record.Start) && existing.End.Equal(record.End) {
			return false, nil
		}
	}
	m.records = append(m.records, *record)
	return true, nil
}

func (m *mockStorage) ListPeriodRecords(_ context.Context) ([]model.PeriodRecord, error) {
	out := make([]model.PeriodRecord, len(m.records))
	copy(out, m.records)
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (m *mockStorage) ClosePeriod(ctx context.Context, record *model.PeriodRecord, transactionIDs []string) (bool, error) {
	appended, err := m.AppendPeriodRecord(ctx, record)
	if err != nil || !appended {
		return appended, err
	}
	for _, id := range transactionIDs {
		m.archived[id] = true
	}
	for i := range m.txns {
		if m.archived[m.txns[i].ID] && m.txns[i].ArchivedPeriodStart == nil {
			start := record.Start
			m.txns[i].ArchivedPeriodStart = &start
		}
	}
	return true, nil
}

func (m *mockStorage) ExportState(ctx context.Context) (*model.State, error) {
	records, _ := m.ListPeriodRecords(ctx)
	txns, _ := m.ListAllTransactions(ctx)
	return &model.State{Settings: m.settings, Transactions: txns, Records: records}, nil
}

func (m *mockStorage) ImportState(_ context.Context, state *model.State) error {
	m.settings = state.Settings
	m.txns = append([]model.Transaction(nil), state.Transactions...)
	m.records = append([]model.PeriodRecord(nil), state.Records...)
	m.archived = make(map[string]bool)
	for _, txn := range m.txns {
		if txn.Archived() {
			m.archived[txn.ID] = true
		}
	}
	return nil
}

func (m *mockStorage) ResetLedger(_ context.Context) error {
	m.txns = nil
	m.records = nil
	m.archived = make(map[string]bool)
	return nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }

func (m *mockStorage) Close() error { return nil }
