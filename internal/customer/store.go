package customer

import (
	"errors"

	"github.com/fjod/go_bookstore/internal/domain"
)

var ErrCustomerNotFound = errors.New("customer not found")

// Store defines the interface for customer storage operations
type Store interface {
	// Create assigns an id and stores the customer
	Create(c domain.Customer) (domain.Customer, error)

	// Get returns the customer or ErrCustomerNotFound
	Get(id int64) (domain.Customer, error)

	// List returns all customers
	List() []domain.Customer

	// Update overwrites the customer stored under id
	Update(id int64, c domain.Customer) (domain.Customer, error)

	// Delete removes the customer if present
	Delete(id int64) error

	// Exists reports whether a customer with the given id is stored
	Exists(id int64) bool
}
