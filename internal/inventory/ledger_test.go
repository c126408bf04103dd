package inventory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_bookstore/internal/catalog"
	"github.com/fjod/go_bookstore/internal/domain"
)

func setupLedger(t *testing.T, stocks map[int64]int) (*Ledger, *catalog.MemoryStore) {
	t.Helper()
	store := catalog.NewMemoryStore()
	author, err := store.CreateAuthor(domain.Author{Name: "Test Author"})
	require.NoError(t, err)

	for i := 0; i < len(stocks); i++ {
		// ids are assigned 1..n in creation order
		book, err := store.CreateBook(domain.Book{
			Title:           "Book",
			AuthorID:        author.ID,
			PublicationYear: 2020,
			Price:           10.0,
			Stock:           stocks[int64(i+1)],
		})
		require.NoError(t, err)
		require.Equal(t, int64(i+1), book.ID)
	}
	return NewLedger(store), store
}

func stockOf(t *testing.T, store *catalog.MemoryStore, id int64) int {
	t.Helper()
	book, err := store.GetBook(id)
	require.NoError(t, err)
	return book.Stock
}

func TestLedger_Reserve_Success(t *testing.T) {
	ledger, store := setupLedger(t, map[int64]int{1: 100, 2: 50})

	reserved, err := ledger.Reserve([]domain.ReservationItem{
		{BookID: 1, Quantity: 10},
		{BookID: 2, Quantity: 5},
	})
	require.NoError(t, err)

	require.Len(t, reserved, 2)
	assert.Equal(t, int64(1), reserved[0].BookID)
	assert.Equal(t, 10, reserved[0].Quantity)
	assert.Equal(t, 10.0, reserved[0].UnitPrice)
	assert.NotEmpty(t, reserved[0].Title)

	assert.Equal(t, 90, stockOf(t, store, 1))
	assert.Equal(t, 45, stockOf(t, store, 2))
}

func TestLedger_Reserve_InsufficientStock(t *testing.T) {
	ledger, store := setupLedger(t, map[int64]int{1: 10})

	_, err := ledger.Reserve([]domain.ReservationItem{{BookID: 1, Quantity: 20}})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(1), stockErr.BookID)
	assert.Equal(t, 20, stockErr.Requested)
	assert.Equal(t, 10, stockErr.Available)

	// Stock should be unchanged
	assert.Equal(t, 10, stockOf(t, store, 1))
}

func TestLedger_Reserve_BookNotFound(t *testing.T) {
	ledger, _ := setupLedger(t, map[int64]int{1: 10})

	_, err := ledger.Reserve([]domain.ReservationItem{{BookID: 999, Quantity: 1}})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestLedger_Reserve_LaterItemFails_NothingMutated(t *testing.T) {
	ledger, store := setupLedger(t, map[int64]int{1: 100, 2: 1})

	// Second item exceeds stock; the first must not be decremented
	_, err := ledger.Reserve([]domain.ReservationItem{
		{BookID: 1, Quantity: 10},
		{BookID: 2, Quantity: 5},
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(2), stockErr.BookID)

	assert.Equal(t, 100, stockOf(t, store, 1))
	assert.Equal(t, 1, stockOf(t, store, 2))
}

func TestLedger_Reserve_FirstFailingItemReported(t *testing.T) {
	ledger, _ := setupLedger(t, map[int64]int{1: 0, 2: 0})

	_, err := ledger.Reserve([]domain.ReservationItem{
		{BookID: 2, Quantity: 1},
		{BookID: 1, Quantity: 1},
	})

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(2), stockErr.BookID, "failure must be reported for the first item in input order")
}

func TestLedger_Restore(t *testing.T) {
	ledger, store := setupLedger(t, map[int64]int{1: 10})

	_, err := ledger.Reserve([]domain.ReservationItem{{BookID: 1, Quantity: 4}})
	require.NoError(t, err)
	assert.Equal(t, 6, stockOf(t, store, 1))

	ledger.Restore([]domain.ReservationItem{{BookID: 1, Quantity: 4}})
	assert.Equal(t, 10, stockOf(t, store, 1))
}

func TestLedger_Reserve_Concurrent_NoOversell(t *testing.T) {
	ledger, store := setupLedger(t, map[int64]int{1: 1})

	const callers = 2
	results := make([]error, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			_, results[i] = ledger.Reserve([]domain.ReservationItem{{BookID: 1, Quantity: 1}})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			var stockErr *InsufficientStockError
			require.ErrorAs(t, err, &stockErr)
			assert.Equal(t, 1, stockErr.Requested)
			assert.Equal(t, 0, stockErr.Available)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one reservation must win the last unit")
	assert.Equal(t, 0, stockOf(t, store, 1), "stock never goes negative")
}
