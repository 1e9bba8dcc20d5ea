package engine

import "time"

// MockTimeProvider is a hand-stepped clock for tests of time-gated behavior:
// laser reload, bomb schedules and the loop's tick deadlines
// It is only touched from the simulation goroutine and carries no lock
type MockTimeProvider struct {
	now time.Time
}

// NewMockTimeProvider starts the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the clock reading
func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// Advance steps the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
