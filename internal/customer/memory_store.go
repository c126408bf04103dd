package customer

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/fjod/go_bookstore/internal/domain"
)

// MemoryStore implements Store with in-memory storage
type MemoryStore struct {
	mu        sync.RWMutex
	customers map[int64]domain.Customer

	nextID atomic.Int64
}

// NewMemoryStore creates a new in-memory customer store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers: make(map[int64]domain.Customer),
	}
}

func (s *MemoryStore) Create(c domain.Customer) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID.Add(1)
	s.customers[c.ID] = c
	return c, nil
}

func (s *MemoryStore) Get(id int64) (domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.customers[id]
	if !exists {
		return domain.Customer{}, fmt.Errorf("%w: id=%d", ErrCustomerNotFound, id)
	}
	return c, nil
}

func (s *MemoryStore) List() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemoryStore) Update(id int64, c domain.Customer) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customers[id]; !exists {
		return domain.Customer{}, fmt.Errorf("%w: id=%d", ErrCustomerNotFound, id)
	}
	c.ID = id
	s.customers[id] = c
	return c, nil
}

func (s *MemoryStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.customers[id]; !exists {
		return fmt.Errorf("%w: id=%d", ErrCustomerNotFound, id)
	}
	delete(s.customers, id)
	return nil
}

func (s *MemoryStore) Exists(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.customers[id]
	return exists
}
