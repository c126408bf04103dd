package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fjod/go_bookstore/internal/cart"
	"github.com/fjod/go_bookstore/internal/customer"
	"github.com/fjod/go_bookstore/internal/domain"
	"github.com/fjod/go_bookstore/internal/order"
)

type CustomerHandler struct {
	customers customer.Store
	carts     cart.Store
	orders    order.Ledger
}

func NewCustomerHandler(customers customer.Store, carts cart.Store, orders order.Ledger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		carts:     carts,
		orders:    orders,
	}
}

type CustomerRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto CustomerRequestDTO) validate(w http.ResponseWriter) bool {
	if dto.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name must not be empty")
		return false
	}
	if dto.Email == "" || !strings.Contains(dto.Email, "@") {
		respondError(w, http.StatusBadRequest, "invalid_email", "email must be a valid address")
		return false
	}
	return true
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !req.validate(w) {
		return
	}

	c, err := h.customers.Create(domain.Customer{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "customerId")
	if !ok {
		return
	}

	c, err := h.customers.Get(id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.customers.List())
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "customerId")
	if !ok {
		return
	}

	var req CustomerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !req.validate(w) {
		return
	}

	c, err := h.customers.Update(id, domain.Customer{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// DeleteCustomer removes the customer together with their cart and
// order history
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "customerId")
	if !ok {
		return
	}

	if err := h.customers.Delete(id); err != nil {
		handleDomainError(w, err)
		return
	}
	h.carts.Drop(id)
	h.orders.Drop(id)
	w.WriteHeader(http.StatusNoContent)
}
