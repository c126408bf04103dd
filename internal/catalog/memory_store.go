package catalog

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fjod/go_bookstore/internal/domain"
)

// MemoryStore implements Store with in-memory storage
type MemoryStore struct {
	mu      sync.RWMutex
	books   map[int64]domain.Book
	authors map[int64]domain.Author

	nextBookID   atomic.Int64
	nextAuthorID atomic.Int64
}

// NewMemoryStore creates a new in-memory catalog store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		books:   make(map[int64]domain.Book),
		authors: make(map[int64]domain.Author),
	}
}

func (s *MemoryStore) CreateBook(book domain.Book) (domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateBook(book); err != nil {
		return domain.Book{}, err
	}

	book.ID = s.nextBookID.Add(1)
	s.books[book.ID] = book
	return book, nil
}

func (s *MemoryStore) GetBook(id int64) (domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, exists := s.books[id]
	if !exists {
		return domain.Book{}, fmt.Errorf("%w: id=%d", ErrBookNotFound, id)
	}
	return book, nil
}

func (s *MemoryStore) ListBooks() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Book, 0, len(s.books))
	for _, book := range s.books {
		result = append(result, book)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemoryStore) UpdateBook(id int64, book domain.Book) (domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[id]; !exists {
		return domain.Book{}, fmt.Errorf("%w: id=%d", ErrBookNotFound, id)
	}
	if err := s.validateBook(book); err != nil {
		return domain.Book{}, err
	}

	book.ID = id
	s.books[id] = book
	return book, nil
}

func (s *MemoryStore) DeleteBook(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.books[id]; !exists {
		return fmt.Errorf("%w: id=%d", ErrBookNotFound, id)
	}
	delete(s.books, id)
	return nil
}

func (s *MemoryStore) BooksByAuthor(authorID int64) []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Book
	for _, book := range s.books {
		if book.AuthorID == authorID {
			result = append(result, book)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// validateBook must be called with the lock held
func (s *MemoryStore) validateBook(book domain.Book) error {
	if book.PublicationYear > time.Now().Year() {
		return fmt.Errorf("%w: publication year %d is in the future", ErrInvalidBook, book.PublicationYear)
	}
	if book.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidBook)
	}
	if book.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidBook)
	}
	if _, exists := s.authors[book.AuthorID]; !exists {
		return fmt.Errorf("%w: id=%d", ErrAuthorNotFound, book.AuthorID)
	}
	return nil
}

func (s *MemoryStore) CreateAuthor(author domain.Author) (domain.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author.ID = s.nextAuthorID.Add(1)
	s.authors[author.ID] = author
	return author, nil
}

func (s *MemoryStore) GetAuthor(id int64) (domain.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	author, exists := s.authors[id]
	if !exists {
		return domain.Author{}, fmt.Errorf("%w: id=%d", ErrAuthorNotFound, id)
	}
	return author, nil
}

func (s *MemoryStore) ListAuthors() []domain.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Author, 0, len(s.authors))
	for _, author := range s.authors {
		result = append(result, author)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (s *MemoryStore) UpdateAuthor(id int64, author domain.Author) (domain.Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.authors[id]; !exists {
		return domain.Author{}, fmt.Errorf("%w: id=%d", ErrAuthorNotFound, id)
	}
	author.ID = id
	s.authors[id] = author
	return author, nil
}

func (s *MemoryStore) DeleteAuthor(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.authors[id]; !exists {
		return fmt.Errorf("%w: id=%d", ErrAuthorNotFound, id)
	}
	for _, book := range s.books {
		if book.AuthorID == id {
			return fmt.Errorf("%w: id=%d", ErrAuthorHasBooks, id)
		}
	}
	delete(s.authors, id)
	return nil
}

// Lookup returns the book by id; second return is false when it does not
// exist. Satisfies the inventory ledger's book source.
func (s *MemoryStore) Lookup(id int64) (domain.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, exists := s.books[id]
	return book, exists
}

// ApplyStockDelta adjusts the stock of a book in place. The resulting
// stock must not go below zero.
func (s *MemoryStore) ApplyStockDelta(id int64, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, exists := s.books[id]
	if !exists {
		return fmt.Errorf("%w: id=%d", ErrBookNotFound, id)
	}
	if book.Stock+delta < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidBook)
	}
	book.Stock += delta
	s.books[id] = book
	return nil
}
