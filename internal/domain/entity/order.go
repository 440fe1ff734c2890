package entity

import "time"

// OrderStatus enumerates an order's fulfillment state. Orders are immutable
// in this system, so only OrderStatusPending is ever written; the remaining
// values are reserved for fulfillment tooling.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ShippingAddress is the destination captured at checkout.
type ShippingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone,omitempty"`
}

// Order is an append-only purchase record keyed by (UserID, ID). The order
// ID doubles as the sort key and is derived from a UUIDv7, so the store's
// native key ordering is creation order and listing newest-first needs no
// application-level sort.
type Order struct {
	UserID          string          `json:"user_id"`
	ID              string          `json:"order_id"` // "ORD-" plus a time-ordered suffix.
	Items           []CartItem      `json:"items"`
	TotalAmount     Money           `json:"total_amount"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
