// Package delivery defines the contract for inbound transports (HTTP, workers).
package delivery

import "context"

// Delivery is a serving transport managed by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
