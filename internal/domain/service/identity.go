package service

// IdentityGenerator mints the public identifiers used as storage keys.
// User and product identifiers are unguessable; order identifiers are
// additionally time-ordered so that lexicographic sort-key order matches
// creation order.
type IdentityGenerator interface {
	NewUserID() string
	NewProductID() string
	NewOrderID() (string, error)
}
