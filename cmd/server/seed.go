package main

import (
	"github.com/fjod/go_bookstore/internal/cart"
	"github.com/fjod/go_bookstore/internal/catalog"
	"github.com/fjod/go_bookstore/internal/customer"
	"github.com/fjod/go_bookstore/internal/domain"
)

// seedSampleData loads a small starter catalog so a fresh process is
// usable straight away.
func seedSampleData(cat catalog.Store, customers customer.Store, carts cart.Store) error {
	rowling, err := cat.CreateAuthor(domain.Author{
		Name:      "J.K. Rowling",
		Biography: "British author best known for the Harry Potter series.",
	})
	if err != nil {
		return err
	}
	martin, err := cat.CreateAuthor(domain.Author{
		Name:      "George R.R. Martin",
		Biography: "American novelist and screenwriter, author of A Song of Ice and Fire.",
	})
	if err != nil {
		return err
	}

	books := []domain.Book{
		{Title: "Harry Potter and the Philosopher's Stone", AuthorID: rowling.ID,
			ISBN: "978-0-7475-3269-9", PublicationYear: 1997, Price: 15.99, Stock: 100},
		{Title: "Harry Potter and the Chamber of Secrets", AuthorID: rowling.ID,
			ISBN: "978-0-7475-3849-3", PublicationYear: 1998, Price: 16.99, Stock: 80},
		{Title: "A Game of Thrones", AuthorID: martin.ID,
			ISBN: "978-0-553-10354-0", PublicationYear: 1996, Price: 20.99, Stock: 50},
	}
	created := make([]domain.Book, 0, len(books))
	for _, b := range books {
		stored, err := cat.CreateBook(b)
		if err != nil {
			return err
		}
		created = append(created, stored)
	}

	john, err := customers.Create(domain.Customer{
		Name: "John Doe", Email: "john.doe@example.com", Password: "password123",
	})
	if err != nil {
		return err
	}
	if _, err := customers.Create(domain.Customer{
		Name: "Jane Smith", Email: "jane.smith@example.com", Password: "password456",
	}); err != nil {
		return err
	}

	_, err = carts.AddItem(john.ID, created[0].ID, 2)
	return err
}
