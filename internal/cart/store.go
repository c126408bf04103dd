package cart

import (
	"errors"

	"github.com/fjod/go_bookstore/internal/domain"
)

var ErrInvalidQuantity = errors.New("item quantity must be positive")

// Store defines the interface for cart storage operations. Carts are
// created lazily: every customer id always resolves to a cart.
type Store interface {
	// Get returns the customer's cart, creating an empty one on first access
	Get(customerID int64) domain.Cart

	// AddItem adds quantity of a book to the cart. If the book is already
	// present the quantities sum instead of creating a second entry.
	AddItem(customerID, bookID int64, quantity int) (domain.Cart, error)

	// UpdateItem replaces the quantity of an existing line item. Adding a
	// book that is not in the cart is a no-op, not an error.
	UpdateItem(customerID, bookID int64, quantity int) (domain.Cart, error)

	// RemoveItem deletes the line item if present, no-op otherwise
	RemoveItem(customerID, bookID int64) domain.Cart

	// Clear empties the cart without deleting the cart object itself
	Clear(customerID int64)

	// Drop deletes the cart entirely; used when the owning customer is deleted
	Drop(customerID int64)
}
