package order

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/fjod/go_bookstore/internal/domain"
)

// MemoryLedger implements Ledger with in-memory storage. Orders are
// copied on the way in and out so a stored order can never be changed
// through a value held by a caller.
type MemoryLedger struct {
	mu     sync.RWMutex
	orders map[int64][]domain.Order

	nextID atomic.Int64
}

// NewMemoryLedger creates a new in-memory order ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		orders: make(map[int64][]domain.Order),
	}
}

func (l *MemoryLedger) NextID() int64 {
	return l.nextID.Add(1)
}

func (l *MemoryLedger) Append(customerID int64, o domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders[customerID] = append(l.orders[customerID], copyOrder(o))
	return nil
}

func (l *MemoryLedger) ListFor(customerID int64) []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stored := l.orders[customerID]
	result := make([]domain.Order, 0, len(stored))
	for _, o := range stored {
		result = append(result, copyOrder(o))
	}
	return result
}

func (l *MemoryLedger) Find(customerID, orderID int64) (domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, o := range l.orders[customerID] {
		if o.ID == orderID {
			return copyOrder(o), nil
		}
	}
	return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID)
}

func (l *MemoryLedger) Drop(customerID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.orders, customerID)
}

func copyOrder(o domain.Order) domain.Order {
	out := o
	out.Items = make([]domain.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}
