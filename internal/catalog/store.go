package catalog

import (
	"errors"

	"github.com/fjod/go_bookstore/internal/domain"
)

// Common errors returned by the store
var (
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorHasBooks = errors.New("author still has books in the catalog")
	ErrInvalidBook    = errors.New("invalid book")
)

// Store defines the interface for catalog storage operations
type Store interface {
	// CreateBook assigns an id and stores the book. The referenced author
	// must exist and the publication year must not be in the future.
	CreateBook(book domain.Book) (domain.Book, error)

	// GetBook returns the book or ErrBookNotFound
	GetBook(id int64) (domain.Book, error)

	// ListBooks returns all books
	ListBooks() []domain.Book

	// UpdateBook overwrites the book stored under id
	UpdateBook(id int64, book domain.Book) (domain.Book, error)

	// DeleteBook removes the book if present
	DeleteBook(id int64) error

	// BooksByAuthor returns all books referencing the given author
	BooksByAuthor(authorID int64) []domain.Book

	// CreateAuthor assigns an id and stores the author
	CreateAuthor(author domain.Author) (domain.Author, error)

	// GetAuthor returns the author or ErrAuthorNotFound
	GetAuthor(id int64) (domain.Author, error)

	// ListAuthors returns all authors
	ListAuthors() []domain.Author

	// UpdateAuthor overwrites the author stored under id
	UpdateAuthor(id int64, author domain.Author) (domain.Author, error)

	// DeleteAuthor removes the author; fails with ErrAuthorHasBooks while
	// any book still references them
	DeleteAuthor(id int64) error
}
