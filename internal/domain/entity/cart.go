package entity

import "time"

// CartItem is one line in a cart or order. The product's identifying pair
// and display fields are denormalized into the item so the cart and order
// stores never need to re-read the catalog.
type CartItem struct {
	ProductID string `json:"product_id"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Cart is a user's current cart, keyed by user ID in the key-value store.
// Every save replaces the whole document; concurrent saves race
// last-write-wins per the store's native conflict resolution. An absent
// record and an empty item list are equivalent.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// EmptyCart is the canonical representation of "no cart" for reads.
func EmptyCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}}
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}
