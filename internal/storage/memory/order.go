// Package memory provides process-local repositories. Data does not survive a
// restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/xenking/satdesk-webhooks/internal/domain/order"
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository over a map guarded by a single
// RWMutex. Stored orders are never shared with callers; every read and write
// goes through a deep copy.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewOrderRepository returns an empty OrderRepository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*order.Order)}
}

// Upsert stores o under its id, replacing any existing order in full.
func (r *OrderRepository) Upsert(_ context.Context, o *order.Order) (bool, error) {
	c := o.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.orders[c.ID]
	r.orders[c.ID] = c
	return replaced, nil
}

// Get returns a copy of the order with the given id.
func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return o.Clone(), nil
}

// List returns copies of all orders with the given status, or every order
// when status is empty. The result is unordered.
func (r *OrderRepository) List(_ context.Context, status order.Status) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, *o.Clone())
	}
	return out, nil
}

// UpdateStatus applies upd to the stored order. RentalID and IMEIs are only
// overwritten when set.
func (r *OrderRepository) UpdateStatus(_ context.Context, id string, upd order.StatusUpdate) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	o.Status = upd.Status
	if upd.RentalID != "" {
		o.RentalID = upd.RentalID
	}
	if upd.IMEIs != nil {
		o.AssignedIMEIs = append([]string(nil), upd.IMEIs...)
	}
	at := upd.At
	o.UpdatedAt = &at
	return o.Clone(), nil
}

// Cancel marks the stored order cancelled with the given reason.
func (r *OrderRepository) Cancel(_ context.Context, id, reason string, at time.Time) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	o.Status = order.StatusCancelled
	o.CancelReason = reason
	cancelledAt, updatedAt := at, at
	o.CancelledAt = &cancelledAt
	o.UpdatedAt = &updatedAt
	return o.Clone(), nil
}

// Len returns the number of stored orders.
func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
