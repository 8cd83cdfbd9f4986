// Package delivery defines the contract every transport surface satisfies so
// the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a servable transport (HTTP today).
type Delivery interface {
	Serve(ctx context.Context) error
}
