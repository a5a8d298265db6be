// Package delivery defines the inbound transport contract served by main.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// runner and stopped through its Fx lifecycle hook.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
