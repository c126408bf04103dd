package checkout

import (
	"sync"
	"sync/atomic"

	"github.com/fjod/go_bookstore/internal/domain"
	"github.com/fjod/go_bookstore/internal/inventory"
)

// MockOrderLedger implements OrderLedger for testing; AppendErr makes
// persistence fail to exercise the rollback path.
type MockOrderLedger struct {
	mu        sync.Mutex
	AppendErr error
	Appended  []domain.Order
	nextID    atomic.Int64
}

func (m *MockOrderLedger) NextID() int64 {
	return m.nextID.Add(1)
}

func (m *MockOrderLedger) Append(_ int64, o domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Appended = append(m.Appended, o)
	return nil
}

// RecordingInventory wraps a real ledger and records Restore calls
type RecordingInventory struct {
	*inventory.Ledger

	mu           sync.Mutex
	RestoreCalls [][]domain.ReservationItem
}

func (r *RecordingInventory) Restore(items []domain.ReservationItem) {
	r.mu.Lock()
	r.RestoreCalls = append(r.RestoreCalls, items)
	r.mu.Unlock()
	r.Ledger.Restore(items)
}
