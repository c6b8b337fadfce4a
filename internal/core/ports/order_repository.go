// Package ports defines the contracts between the order lifecycle use cases
// and the infrastructure that stores orders and delivers messages.
package ports

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
)

// OrderRepository is typed access to the orders collection. Every method
// touches at most one order document; there are no multi-document
// transactions. Store failures are reported as *errs.StoreFailedError.
type OrderRepository interface {
	// Get returns the order stored under id, or *errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (*order.Order, error)

	// Set writes the full document, replacing any order with the same id.
	Set(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable fields of an existing order over the stored
	// document. dateInitiated is never rewritten. There is no
	// compare-and-swap: the last writer wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// List returns every stored order.
	List(ctx context.Context) ([]*order.Order, error)

	// Count returns the number of stored orders.
	Count(ctx context.Context) (int64, error)
}

// ConnectivityChecker proves the store is reachable by writing the
// diagnostic document (diagnostics/connectivity).
type ConnectivityChecker interface {
	CheckConnectivity(ctx context.Context) error
}
