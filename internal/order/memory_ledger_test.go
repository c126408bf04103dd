package order

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_bookstore/internal/domain"
)

func sampleOrder(id, customerID int64) domain.Order {
	return domain.Order{
		ID:         id,
		CustomerID: customerID,
		Items: []domain.OrderItem{
			{BookID: 1, Title: "A Game of Thrones", UnitPrice: 20.99, Quantity: 2},
		},
		TotalAmount: 41.98,
		CreatedAt:   time.Now(),
	}
}

func TestMemoryLedger_NextID_StrictlyIncreasing(t *testing.T) {
	ledger := NewMemoryLedger()

	first := ledger.NextID()
	second := ledger.NextID()
	assert.Equal(t, first+1, second)
}

func TestMemoryLedger_NextID_Concurrent(t *testing.T) {
	ledger := NewMemoryLedger()

	const n = 100
	ids := make([]int64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			ids[i] = ledger.NextID()
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "id %d allocated twice", id)
		seen[id] = true
	}
}

func TestMemoryLedger_AppendAndList(t *testing.T) {
	ledger := NewMemoryLedger()

	require.NoError(t, ledger.Append(1, sampleOrder(ledger.NextID(), 1)))
	require.NoError(t, ledger.Append(1, sampleOrder(ledger.NextID(), 1)))
	require.NoError(t, ledger.Append(2, sampleOrder(ledger.NextID(), 2)))

	orders := ledger.ListFor(1)
	require.Len(t, orders, 2)
	assert.Less(t, orders[0].ID, orders[1].ID, "insertion order preserved")

	assert.Empty(t, ledger.ListFor(99))
	assert.NotNil(t, ledger.ListFor(99))
}

func TestMemoryLedger_Find(t *testing.T) {
	ledger := NewMemoryLedger()
	o := sampleOrder(ledger.NextID(), 1)
	require.NoError(t, ledger.Append(1, o))

	found, err := ledger.Find(1, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.TotalAmount, found.TotalAmount)

	_, err = ledger.Find(1, 999)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// An order is only visible under its owning customer
	_, err = ledger.Find(2, o.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryLedger_StoredOrdersAreImmutable(t *testing.T) {
	ledger := NewMemoryLedger()
	o := sampleOrder(ledger.NextID(), 1)
	require.NoError(t, ledger.Append(1, o))

	// Mutating the appended value or a listed copy must not change history
	o.Items[0].UnitPrice = 0.01
	listed := ledger.ListFor(1)
	listed[0].Items[0].Title = "edited"

	stored, err := ledger.Find(1, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 20.99, stored.Items[0].UnitPrice)
	assert.Equal(t, "A Game of Thrones", stored.Items[0].Title)
}

func TestMemoryLedger_Drop(t *testing.T) {
	ledger := NewMemoryLedger()
	require.NoError(t, ledger.Append(1, sampleOrder(ledger.NextID(), 1)))

	ledger.Drop(1)
	assert.Empty(t, ledger.ListFor(1))
}
