package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Books     *BookHandler
	Authors   *AuthorHandler
	Customers *CustomerHandler
	Cart      *CartHandler
	Orders    *OrdersHandler
}

// NewRouter wires the API routes and global middleware
func NewRouter(h Handlers, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/books", func(r chi.Router) {
			r.Get("/", h.Books.ListBooks)
			r.Post("/", h.Books.CreateBook)
			r.Route("/{bookId}", func(r chi.Router) {
				r.Get("/", h.Books.GetBook)
				r.Put("/", h.Books.UpdateBook)
				r.Delete("/", h.Books.DeleteBook)
			})
		})

		r.Route("/authors", func(r chi.Router) {
			r.Get("/", h.Authors.ListAuthors)
			r.Post("/", h.Authors.CreateAuthor)
			r.Route("/{authorId}", func(r chi.Router) {
				r.Get("/", h.Authors.GetAuthor)
				r.Put("/", h.Authors.UpdateAuthor)
				r.Delete("/", h.Authors.DeleteAuthor)
				r.Get("/books", h.Authors.ListAuthorBooks)
			})
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.Customers.ListCustomers)
			r.Post("/", h.Customers.CreateCustomer)
			r.Route("/{customerId}", func(r chi.Router) {
				r.Get("/", h.Customers.GetCustomer)
				r.Put("/", h.Customers.UpdateCustomer)
				r.Delete("/", h.Customers.DeleteCustomer)

				r.Route("/cart", func(r chi.Router) {
					r.Get("/", h.Cart.GetCart)
					r.Post("/items", h.Cart.AddItem)
					r.Put("/items/{bookId}", h.Cart.UpdateItem)
					r.Delete("/items/{bookId}", h.Cart.RemoveItem)
				})

				r.Route("/orders", func(r chi.Router) {
					r.Post("/", h.Orders.CreateOrder)
					r.Get("/", h.Orders.ListOrders)
					r.Get("/{orderId}", h.Orders.GetOrder)
				})
			})
		})
	})

	return r
}
