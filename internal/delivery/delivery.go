// Package delivery defines the transports that expose the use cases.
package delivery

import "context"

// Delivery is a long-running transport, e.g. the HTTP API server.
type Delivery interface {
	Serve(ctx context.Context) error
}
