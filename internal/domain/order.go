package domain

import "time"

// OrderItem is a snapshot of a book at the moment of checkout. Title and
// unit price are denormalized so the order stays meaningful even if the
// book is later edited or deleted.
type OrderItem struct {
	BookID    int64   `json:"book_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Order is immutable once created; there is no update operation.
type Order struct {
	ID          int64       `json:"id"`
	CustomerID  int64       `json:"customer_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ReservationItem is a (book, quantity) pair handed to the inventory ledger.
type ReservationItem struct {
	BookID   int64
	Quantity int
}

// ReservedItem is the per-item snapshot returned by a successful
// reservation, used to build order line items.
type ReservedItem struct {
	BookID    int64
	Title     string
	UnitPrice float64
	Quantity  int
}
