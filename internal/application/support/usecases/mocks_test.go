package usecases

import (
	"context"
	"sync"

	"vbuddy/internal/domain/ticket"
	"vbuddy/internal/shared/logger"
)

type mockLedgerStore struct {
	ReadAllFunc func() ([]ticket.Ticket, error)
	AppendFunc  func(t ticket.Ticket) error

	mu   sync.Mutex
	rows []ticket.Ticket
}

func (m *mockLedgerStore) ReadAll() ([]ticket.Ticket, error) {
	if m.ReadAllFunc != nil {
		return m.ReadAllFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ticket.Ticket, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *mockLedgerStore) Append(t ticket.Ticket) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, t)
	return nil
}

func (m *mockLedgerStore) snapshot() []ticket.Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ticket.Ticket, len(m.rows))
	copy(out, m.rows)
	return out
}

type mockDispatcher struct {
	NotifySupportTeamFunc func(ctx context.Context, t ticket.Ticket) error
	NotifyRequesterFunc   func(ctx context.Context, t ticket.Ticket) error

	mu             sync.Mutex
	supportCalls   []ticket.Ticket
	requesterCalls []ticket.Ticket
}

func (m *mockDispatcher) NotifySupportTeam(ctx context.Context, t ticket.Ticket) error {
	m.mu.Lock()
	m.supportCalls = append(m.supportCalls, t)
	m.mu.Unlock()
	if m.NotifySupportTeamFunc != nil {
		return m.NotifySupportTeamFunc(ctx, t)
	}
	return nil
}

func (m *mockDispatcher) NotifyRequester(ctx context.Context, t ticket.Ticket) error {
	m.mu.Lock()
	m.requesterCalls = append(m.requesterCalls, t)
	m.mu.Unlock()
	if m.NotifyRequesterFunc != nil {
		return m.NotifyRequesterFunc(ctx, t)
	}
	return nil
}

func (m *mockDispatcher) supportCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.supportCalls)
}

func (m *mockDispatcher) requesterCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requesterCalls)
}

type mockTranscript struct {
	AppendFunc func(role, message string) error

	mu      sync.Mutex
	entries [][2]string
}

func (m *mockTranscript) Append(role, message string) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(role, message)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, [2]string{role, message})
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
