// Package delivery defines the contract every transport implementation
// (HTTP today, others later) must satisfy.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
