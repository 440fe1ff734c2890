package entity

import "time"

// Product is a catalog record. Its identity is the composite pair
// (ID, Category): the key-value store keys products by product_id as the
// partition key and category as the sort key, with no secondary index.
// Two products may share an ID only if their categories differ, though
// generated IDs are random enough to be unique in practice.
type Product struct {
	ID          string    `json:"product_id"` // "PROD-" plus a random suffix.
	Category    string    `json:"category"`   // Sort key; immutable for a given record.
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       Money     `json:"price"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}
