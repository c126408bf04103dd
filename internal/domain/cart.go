package domain

import "time"

type Cart struct {
	CustomerID int64      `json:"customer_id"`
	Items      []CartItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	BookID   int64     `json:"book_id"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// IsEmpty reports whether the cart holds no line items.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
