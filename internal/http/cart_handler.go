package http

import (
	"encoding/json"
	"net/http"

	"github.com/fjod/go_bookstore/internal/cart"
	"github.com/fjod/go_bookstore/internal/catalog"
	"github.com/fjod/go_bookstore/internal/customer"
	"github.com/fjod/go_bookstore/internal/inventory"
)

type CartHandler struct {
	carts     cart.Store
	catalog   catalog.Store
	customers customer.Store
}

func NewCartHandler(carts cart.Store, cat catalog.Store, customers customer.Store) *CartHandler {
	return &CartHandler{
		carts:     carts,
		catalog:   cat,
		customers: customers,
	}
}

type AddItemRequestDTO struct {
	BookID   int64 `json:"book_id"`
	Quantity int   `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// customerID resolves and verifies the {customerId} URL parameter
func (h *CartHandler) customerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := pathID(w, r, "customerId")
	if !ok {
		return 0, false
	}
	if _, err := h.customers.Get(id); err != nil {
		handleDomainError(w, err)
		return 0, false
	}
	return id, true
}

// GET /api/v1/customers/{customerId}/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.carts.Get(customerID))
}

// POST /api/v1/customers/{customerId}/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	book, err := h.catalog.GetBook(req.BookID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if req.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
		return
	}
	if book.Stock < req.Quantity {
		handleDomainError(w, &inventory.InsufficientStockError{
			BookID:    book.ID,
			Requested: req.Quantity,
			Available: book.Stock,
		})
		return
	}

	updated, err := h.carts.AddItem(customerID, req.BookID, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, updated)
}

// PUT /api/v1/customers/{customerId}/cart/items/{bookId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}
	bookID, ok := pathID(w, r, "bookId")
	if !ok {
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	book, err := h.catalog.GetBook(bookID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if req.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
		return
	}
	if book.Stock < req.Quantity {
		handleDomainError(w, &inventory.InsufficientStockError{
			BookID:    book.ID,
			Requested: req.Quantity,
			Available: book.Stock,
		})
		return
	}

	updated, err := h.carts.UpdateItem(customerID, bookID, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/customers/{customerId}/cart/items/{bookId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}
	bookID, ok := pathID(w, r, "bookId")
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, h.carts.RemoveItem(customerID, bookID))
}
