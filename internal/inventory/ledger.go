package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fjod/go_bookstore/internal/domain"
)

var ErrBookNotFound = errors.New("book not found in inventory")

// InsufficientStockError carries both numbers so the serving layer can
// render a precise message.
type InsufficientStockError struct {
	BookID    int64
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for book %d: requested %d, available %d",
		e.BookID, e.Requested, e.Available)
}

// BookSource is the book lookup the ledger depends on: read a book's
// current state and apply a stock delta.
type BookSource interface {
	Lookup(id int64) (domain.Book, bool)
	ApplyStockDelta(id int64, delta int) error
}

// Ledger owns stock mutation during checkout. Reserve and Restore are
// serialized by a single mutex, so the check phase of one caller can
// never interleave with the commit phase of another.
type Ledger struct {
	mu    sync.Mutex
	books BookSource
}

// NewLedger creates a ledger over the given book source
func NewLedger(books BookSource) *Ledger {
	return &Ledger{books: books}
}

// Reserve verifies that every item references an existing book with
// sufficient stock, then decrements stock for all of them. The call is
// all-or-nothing: the first failing item (in input order) aborts it and
// no stock is mutated. On success it returns a snapshot of each book's
// title and price at this moment, in input order. Items are expected to
// be unique by book id, the way a cart keeps them.
func (l *Ledger) Reserve(items []domain.ReservationItem) ([]domain.ReservedItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// First pass: validate all items before touching any stock
	reserved := make([]domain.ReservedItem, 0, len(items))
	for _, item := range items {
		book, exists := l.books.Lookup(item.BookID)
		if !exists {
			return nil, fmt.Errorf("%w: id=%d", ErrBookNotFound, item.BookID)
		}
		if book.Stock < item.Quantity {
			return nil, &InsufficientStockError{
				BookID:    item.BookID,
				Requested: item.Quantity,
				Available: book.Stock,
			}
		}
		reserved = append(reserved, domain.ReservedItem{
			BookID:    book.ID,
			Title:     book.Title,
			UnitPrice: book.Price,
			Quantity:  item.Quantity,
		})
	}

	// Second pass: decrement stock for all items
	for i, item := range items {
		if err := l.books.ApplyStockDelta(item.BookID, -item.Quantity); err != nil {
			// A misbehaving source (e.g. duplicate book ids in the input)
			// failed mid-commit; put back what was already taken.
			for _, done := range items[:i] {
				_ = l.books.ApplyStockDelta(done.BookID, done.Quantity)
			}
			return nil, err
		}
	}

	return reserved, nil
}

// Restore is the inverse of Reserve: it adds the quantities back. Used
// by rollback paths when a step after reservation fails. A book deleted
// since the reservation is skipped.
func (l *Ledger) Restore(items []domain.ReservationItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range items {
		_ = l.books.ApplyStockDelta(item.BookID, item.Quantity)
	}
}
