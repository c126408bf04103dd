package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/go_bookstore/internal/cart"
	"github.com/fjod/go_bookstore/internal/catalog"
	"github.com/fjod/go_bookstore/internal/checkout"
	"github.com/fjod/go_bookstore/internal/customer"
	"github.com/fjod/go_bookstore/internal/inventory"
	"github.com/fjod/go_bookstore/internal/order"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleDomainError converts domain errors to HTTP status codes
func handleDomainError(w http.ResponseWriter, err error) {
	var stockErr *inventory.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		respondError(w, http.StatusConflict, "insufficient_stock", stockErr.Error())
	case errors.Is(err, catalog.ErrBookNotFound),
		errors.Is(err, inventory.ErrBookNotFound),
		errors.Is(err, catalog.ErrAuthorNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, catalog.ErrInvalidBook):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, catalog.ErrAuthorHasBooks):
		respondError(w, http.StatusConflict, "author_has_books", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
