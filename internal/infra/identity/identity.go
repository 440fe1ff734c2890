// Package identity mints the public identifiers used as storage keys.
package identity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"storefront/internal/domain/service"
)

type uuidGenerator struct{}

// NewUUIDGenerator returns an IdentityGenerator backed by UUIDs.
func NewUUIDGenerator() service.IdentityGenerator {
	return &uuidGenerator{}
}

// NewUserID returns an unguessable user identifier.
func (g *uuidGenerator) NewUserID() string {
	return "USER-" + compactHex(uuid.New())
}

// NewProductID returns a short product identifier.
func (g *uuidGenerator) NewProductID() string {
	return "PROD-" + compactHex(uuid.New())[:8]
}

// NewOrderID returns a time-ordered order identifier. UUIDv7 embeds a
// millisecond timestamp in its most significant bits, so identifiers sort
// lexicographically in creation order.
func (g *uuidGenerator) NewOrderID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return "ORD-" + compactHex(id), nil
}

func compactHex(id uuid.UUID) string {
	return strings.ToUpper(fmt.Sprintf("%x", id[:]))
}
