package http

import (
	"fmt"
	"net/http"

	"github.com/fjod/go_bookstore/internal/checkout"
	"github.com/fjod/go_bookstore/internal/customer"
	"github.com/fjod/go_bookstore/internal/order"
)

type OrdersHandler struct {
	checkout  *checkout.Service
	orders    order.Ledger
	customers customer.Store
}

func NewOrdersHandler(svc *checkout.Service, orders order.Ledger, customers customer.Store) *OrdersHandler {
	return &OrdersHandler{
		checkout:  svc,
		orders:    orders,
		customers: customers,
	}
}

// POST /api/v1/customers/{customerId}/orders
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerId")
	if !ok {
		return
	}

	o, err := h.checkout.Checkout(r.Context(), customerID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/customers/%d/orders/%d", customerID, o.ID))
	respondJSON(w, http.StatusCreated, o)
}

// GET /api/v1/customers/{customerId}/orders
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerId")
	if !ok {
		return
	}
	if _, err := h.customers.Get(customerID); err != nil {
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.orders.ListFor(customerID))
}

// GET /api/v1/customers/{customerId}/orders/{orderId}
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "customerId")
	if !ok {
		return
	}
	orderID, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}
	if _, err := h.customers.Get(customerID); err != nil {
		handleDomainError(w, err)
		return
	}

	o, err := h.orders.Find(customerID, orderID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}
