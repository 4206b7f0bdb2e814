// Package delivery defines the contract for inbound transports.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP today). Serve blocks until
// the server stops; shutdown happens through the lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
