package order

import (
	"errors"

	"github.com/fjod/go_bookstore/internal/domain"
)

var ErrOrderNotFound = errors.New("order not found")

// Ledger owns the append-only order history and id allocation.
type Ledger interface {
	// NextID allocates a strictly increasing order id, never reused
	NextID() int64

	// Append stores the order under the customer's history. Orders are
	// never mutated after append.
	Append(customerID int64, o domain.Order) error

	// ListFor returns the customer's orders in insertion order, empty
	// slice if none
	ListFor(customerID int64) []domain.Order

	// Find returns the order or ErrOrderNotFound
	Find(customerID, orderID int64) (domain.Order, error)

	// Drop discards the customer's entire history; used when the owning
	// customer is deleted
	Drop(customerID int64)
}
