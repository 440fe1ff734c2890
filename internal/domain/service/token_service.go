package service

import (
	"errors"
	"time"
)

// Token validation failures. Callers surface both to clients as a single
// "unauthenticated" result; the split exists so logs can tell an expired
// session apart from a forged or mangled token.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token invalid or malformed")
)

// Claims is the validated identity embedded in a bearer token.
type Claims struct {
	UserID   string
	Email    string
	IssuedAt time.Time
	Expiry   time.Time
}

// TokenService defines the interface for issuing and validating signed
// bearer tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// IssueToken creates a signed, tamper-evident token embedding the
	// user's identity, expiring a fixed duration from issuance.
	IssueToken(userID, email string) (string, error)

	// ValidateToken verifies signature and expiry, returning the embedded
	// claims. Failures are ErrTokenExpired or ErrTokenMalformed.
	ValidateToken(token string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
