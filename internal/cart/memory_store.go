package cart

import (
	"fmt"
	"sync"
	"time"

	"github.com/fjod/go_bookstore/internal/domain"
)

// MemoryStore implements Store with in-memory storage. A single lock
// guards the cart map; per-customer operations never interleave.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[int64]*domain.Cart
}

// NewMemoryStore creates a new in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[int64]*domain.Cart),
	}
}

// getOrCreate must be called with the write lock held
func (s *MemoryStore) getOrCreate(customerID int64) *domain.Cart {
	if c, exists := s.carts[customerID]; exists {
		return c
	}
	now := time.Now()
	c := &domain.Cart{
		CustomerID: customerID,
		Items:      nil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.carts[customerID] = c
	return c
}

func (s *MemoryStore) Get(customerID int64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.getOrCreate(customerID))
}

func (s *MemoryStore) AddItem(customerID, bookID int64, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getOrCreate(customerID)
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			c.Items[i].Quantity += quantity
			c.UpdatedAt = time.Now()
			return snapshot(c), nil
		}
	}
	now := time.Now()
	c.Items = append(c.Items, domain.CartItem{BookID: bookID, Quantity: quantity, AddedAt: now})
	c.UpdatedAt = now
	return snapshot(c), nil
}

func (s *MemoryStore) UpdateItem(customerID, bookID int64, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getOrCreate(customerID)
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			break
		}
	}
	return snapshot(c), nil
}

func (s *MemoryStore) RemoveItem(customerID, bookID int64) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getOrCreate(customerID)
	for i, item := range c.Items {
		if item.BookID == bookID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			break
		}
	}
	return snapshot(c)
}

func (s *MemoryStore) Clear(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, exists := s.carts[customerID]; exists {
		c.Items = nil
		c.UpdatedAt = time.Now()
	}
}

func (s *MemoryStore) Drop(customerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, customerID)
}

// snapshot copies the cart so callers never share the stored items slice
func snapshot(c *domain.Cart) domain.Cart {
	out := *c
	out.Items = make([]domain.CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}
