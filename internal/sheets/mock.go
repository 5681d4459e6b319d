package sheets

import (
	"context"
	"sync"

	"github.com/elias000000000/bg/internal/model"
	"github.com/elias000000000/bg/internal/service"
)

// MockWriter is a mock implementation of ReportWriter for testing.
type MockWriter struct {
	WriteFunc      func(ctx context.Context, rows []service.ExportRow, records []model.PeriodRecord, summary *service.ReportSummary) error
	LastSummary    *service.ReportSummary
	LastRows       []service.ExportRow
	WriteCalls     []WriteCall
	WriteCallCount int
	mu             sync.Mutex
}

// WriteCall represents a single call to Write.
type WriteCall struct {
	Error   error
	Summary *service.ReportSummary
	Rows    []service.ExportRow
	Records []model.PeriodRecord
}

// NewMockWriter creates a new mock writer.
func NewMockWriter() *MockWriter {
	return &MockWriter{
		WriteCalls: make([]WriteCall, 0),
	}
}

// Write implements the ReportWriter interface.
func (m *MockWriter) Write(ctx context.Context, rows []service.ExportRow, records []model.PeriodRecord, summary *service.ReportSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCallCount++
	m.LastRows = rows
	m.LastSummary = summary

	var err error
	if m.WriteFunc != nil {
		err = m.WriteFunc(ctx, rows, records, summary)
	}

	m.WriteCalls = append(m.WriteCalls, WriteCall{
		Rows:    rows,
		Records: records,
		Summary: summary,
		Error:   err,
	})

	return err
}

// Reset clears all recorded calls.
func (m *MockWriter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteCallCount = 0
	m.WriteCalls = make([]WriteCall, 0)
	m.LastRows = nil
	m.LastSummary = nil
}

// SetWriteError configures the mock to return an error on the next Write call.
func (m *MockWriter) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.WriteFunc = func(_ context.Context, _ []service.ExportRow, _ []model.PeriodRecord, _ *service.ReportSummary) error {
		return err
	}
}
