// Package orderrepo keeps orders in process memory. It backs local runs
// without a database and the HTTP end-to-end tests.
package orderrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
)

// MemoryOrderRepository implements ports.OrderRepository and
// ports.ConnectivityChecker over a map of snapshots. The mutex guards the
// maps only; Get followed by Update is still last-writer-wins.
type MemoryOrderRepository struct {
	mu          sync.RWMutex
	orders      map[string]order.Snapshot
	lastChecked time.Time
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: map[string]order.Snapshot{}}
}

func (r *MemoryOrderRepository) Set(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewStoreFailedError("set order", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[aggregate.ID()] = aggregate.Snapshot()
	return nil
}

// Update overwrites the mutable fields of a stored order and keeps its
// dateInitiated.
func (r *MemoryOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewStoreFailedError("update order", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	next := aggregate.Snapshot()
	next.DateInitiated = stored.DateInitiated
	r.orders[aggregate.ID()] = next
	return nil
}

func (r *MemoryOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreFailedError("get order", err)
	}

	r.mu.RLock()
	snapshot, ok := r.orders[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return order.RestoreOrder(snapshot)
}

// List returns every order sorted by id.
func (r *MemoryOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreFailedError("list orders", err)
	}

	r.mu.RLock()
	snapshots := make([]order.Snapshot, 0, len(r.orders))
	for _, s := range r.orders {
		snapshots = append(snapshots, s)
	}
	r.mu.RUnlock()

	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].ID < snapshots[j].ID })

	orders := make([]*order.Order, 0, len(snapshots))
	for _, s := range snapshots {
		o, err := order.RestoreOrder(s)
		if err != nil {
			return nil, errs.NewStoreFailedError("list orders", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *MemoryOrderRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errs.NewStoreFailedError("count orders", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

// CheckConnectivity records the probe time. The memory store is always
// reachable unless ctx is done.
func (r *MemoryOrderRepository) CheckConnectivity(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errs.NewStoreFailedError("write diagnostics/connectivity", err)
	}

	r.mu.Lock()
	r.lastChecked = time.Now().UTC()
	r.mu.Unlock()
	return nil
}

// LastChecked returns when CheckConnectivity last succeeded.
func (r *MemoryOrderRepository) LastChecked() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastChecked
}
