package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fjod/go_bookstore/internal/customer"
	"github.com/fjod/go_bookstore/internal/domain"
)

// CustomerDirectory answers customer-existence checks.
type CustomerDirectory interface {
	Exists(id int64) bool
}

// CartStore is the slice of the cart store the coordinator needs.
type CartStore interface {
	Get(customerID int64) domain.Cart
	Clear(customerID int64)
}

// InventoryReserver reserves stock all-or-nothing and can put it back.
type InventoryReserver interface {
	Reserve(items []domain.ReservationItem) ([]domain.ReservedItem, error)
	Restore(items []domain.ReservationItem)
}

// OrderLedger allocates order ids and persists orders.
type OrderLedger interface {
	NextID() int64
	Append(customerID int64, o domain.Order) error
}

// Service orchestrates a single checkout: cart -> reservation -> order.
// It owns no state; the only externally visible mutation before the
// order exists is the stock decrement inside the reserver's single
// atomic call, so any failure leaves the system exactly as it was.
type Service struct {
	customers CustomerDirectory
	carts     CartStore
	inventory InventoryReserver
	orders    OrderLedger
	logger    zerolog.Logger
}

func NewService(
	customers CustomerDirectory,
	carts CartStore,
	inventory InventoryReserver,
	orders OrderLedger,
	logger zerolog.Logger,
) *Service {
	return &Service{
		customers: customers,
		carts:     carts,
		inventory: inventory,
		orders:    orders,
		logger:    logger,
	}
}

// Checkout converts the customer's cart into a persisted order and
// decrements inventory, or fails leaving all state unchanged.
func (s *Service) Checkout(ctx context.Context, customerID int64) (*domain.Order, error) {
	checkoutID := uuid.New().String()
	logger := s.logger.With().
		Str("checkout_id", checkoutID).
		Int64("customer_id", customerID).
		Logger()

	status := StatusStarted
	if !s.customers.Exists(customerID) {
		return nil, s.abort(logger, &status, fmt.Errorf("%w: id=%d", customer.ErrCustomerNotFound, customerID))
	}

	c := s.carts.Get(customerID)
	if c.IsEmpty() {
		return nil, s.abort(logger, &status, ErrEmptyCart)
	}
	if err := advance(logger, &status, StatusValidated); err != nil {
		return nil, err
	}

	// Cart order is preserved all the way into the order line items
	items := make([]domain.ReservationItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, domain.ReservationItem{BookID: item.BookID, Quantity: item.Quantity})
	}

	reserved, err := s.inventory.Reserve(items)
	if err != nil {
		return nil, s.abort(logger, &status, err)
	}
	if err := advance(logger, &status, StatusReserved); err != nil {
		return nil, err
	}

	o := buildOrder(s.orders.NextID(), customerID, reserved)
	if err := s.orders.Append(customerID, o); err != nil {
		// Stock must never stay decremented for an order that was not
		// durably recorded.
		s.inventory.Restore(items)
		return nil, s.abort(logger, &status, fmt.Errorf("append order: %w", err))
	}
	if err := advance(logger, &status, StatusPersisted); err != nil {
		return nil, err
	}

	s.carts.Clear(customerID)
	if err := advance(logger, &status, StatusCartCleared); err != nil {
		return nil, err
	}
	if err := advance(logger, &status, StatusCompleted); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("order_id", o.ID).
		Float64("total_amount", o.TotalAmount).
		Int("line_items", len(o.Items)).
		Msg("checkout completed")
	return &o, nil
}

func buildOrder(id, customerID int64, reserved []domain.ReservedItem) domain.Order {
	o := domain.Order{
		ID:         id,
		CustomerID: customerID,
		Items:      make([]domain.OrderItem, 0, len(reserved)),
		CreatedAt:  time.Now(),
	}
	for _, r := range reserved {
		o.Items = append(o.Items, domain.OrderItem{
			BookID:    r.BookID,
			Title:     r.Title,
			UnitPrice: r.UnitPrice,
			Quantity:  r.Quantity,
		})
		o.TotalAmount += r.UnitPrice * float64(r.Quantity)
	}
	return o
}

func advance(logger zerolog.Logger, current *Status, next Status) error {
	if !CanTransitionTo(*current, next) {
		return fmt.Errorf("%w: %s -> %s", IllegalTransitionError, *current, next)
	}
	*current = next
	logger.Debug().Str("status", next.String()).Msg("checkout status")
	return nil
}

func (s *Service) abort(logger zerolog.Logger, current *Status, cause error) error {
	*current = StatusAborted
	logger.Info().Err(cause).Msg("checkout aborted")
	return cause
}
