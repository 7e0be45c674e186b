package rcclient

import (
	"context"
	"sync"
)

// MockQuerier is a mock implementation of StatsQuerier for testing.
// It records all calls and returns configured responses.
type MockQuerier struct {
	mu sync.Mutex

	// Configured responses
	CoreStatsResponse          any
	CoreStatsError             error
	FilteredResponse           any
	FilteredError              error
	CompletedTransfersResponse any
	CompletedTransfersError    error
	JobStatsResponse           any
	JobStatsError              error

	// Call tracking
	CoreStatsCalls          int
	FilteredCalls           []StatsRequest
	CompletedTransfersCalls []*string
	JobStatsCalls           []JobStatsCall
}

// JobStatsCall records a JobStats call.
type JobStatsCall struct {
	JobID uint64
	Group *string
}

// NewMockQuerier creates a new MockQuerier.
func NewMockQuerier() *MockQuerier {
	return &MockQuerier{}
}

// CoreStats returns the configured CoreStatsResponse.
func (m *MockQuerier) CoreStats(ctx context.Context) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CoreStatsCalls++
	return m.CoreStatsResponse, m.CoreStatsError
}

// CoreStatsFiltered returns the configured FilteredResponse.
func (m *MockQuerier) CoreStatsFiltered(ctx context.Context, req StatsRequest) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FilteredCalls = append(m.FilteredCalls, req)
	return m.FilteredResponse, m.FilteredError
}

// CompletedTransfers returns the configured CompletedTransfersResponse.
func (m *MockQuerier) CompletedTransfers(ctx context.Context, group *string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CompletedTransfersCalls = append(m.CompletedTransfersCalls, group)
	return m.CompletedTransfersResponse, m.CompletedTransfersError
}

// JobStats returns the configured JobStatsResponse.
func (m *MockQuerier) JobStats(ctx context.Context, jobID uint64, group *string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.JobStatsCalls = append(m.JobStatsCalls, JobStatsCall{JobID: jobID, Group: group})
	return m.JobStatsResponse, m.JobStatsError
}

// SetFiltered sets the response for CoreStatsFiltered in a thread-safe way.
func (m *MockQuerier) SetFiltered(resp any, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FilteredResponse = resp
	m.FilteredError = err
}

// FilteredCallCount returns the number of CoreStatsFiltered calls so far.
func (m *MockQuerier) FilteredCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.FilteredCalls)
}

// Verify MockQuerier implements StatsQuerier interface.
var _ StatsQuerier = (*MockQuerier)(nil)
