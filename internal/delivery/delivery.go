// Package delivery defines the contract every transport entry point implements.
package delivery

import "context"

// Delivery is a serving surface of the application, e.g. the HTTP API. The fx
// app collects all deliveries and serves each one on startup.
type Delivery interface {
	Serve(ctx context.Context) error
}
