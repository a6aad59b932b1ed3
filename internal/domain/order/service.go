package order

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// DefaultCancelReason is recorded when an operator cancels without a reason.
const DefaultCancelReason = "no reason provided"

// Stats summarizes the order collection at a point in time.
type Stats struct {
	Total       int
	ByStatus    map[Status]int
	Last24Hours int
	Last7Days   int
}

// ReceiveResult holds the stored order and whether it replaced an earlier
// delivery with the same id.
type ReceiveResult struct {
	Order    *Order
	Replaced bool
}

// Service encapsulates order ingestion and operator actions.
type Service struct {
	orders Repository
	now    func() time.Time
}

// NewService creates an order Service over the given repository.
func NewService(orders Repository) *Service {
	return &Service{orders: orders, now: time.Now}
}

// Receive upserts an order produced from a webhook delivery. A delivery with
// a known id replaces the stored order in full.
func (s *Service) Receive(ctx context.Context, o *Order) (*ReceiveResult, error) {
	if o.ID == "" {
		return nil, errors.New("order id is empty")
	}
	o.Source = SourceWebsite
	o.Status = StatusNew
	if o.ReceivedAt.IsZero() {
		o.ReceivedAt = s.now()
	}

	replaced, err := s.orders.Upsert(ctx, o)
	if err != nil {
		return nil, errors.Wrapf(err, "upsert order %q", o.ID)
	}
	return &ReceiveResult{Order: o, Replaced: replaced}, nil
}

// List returns orders newest-first by creation time, optionally filtered by
// exact status.
func (s *Service) List(ctx context.Context, status Status) ([]Order, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	orders, err := s.orders.List(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	sortNewestFirst(orders)
	return orders, nil
}

// Get returns the order with the given id.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.orders.Get(ctx, id)
}

// UpdateStatus changes the status of an order and optionally links it to a
// fulfilled rental and the devices handed out for it. Cancelling is rejected
// with ErrCancelRequired; use Cancel.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status, rentalID string, imeis []string) (*Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if status == StatusCancelled {
		return nil, ErrCancelRequired
	}
	for _, imei := range imeis {
		if err := ValidateIMEI(imei); err != nil {
			return nil, err
		}
	}
	return s.orders.UpdateStatus(ctx, id, StatusUpdate{
		Status:   status,
		RentalID: strings.TrimSpace(rentalID),
		IMEIs:    imeis,
		At:       s.now(),
	})
}

// Cancel marks an order cancelled. The order stays retrievable.
func (s *Service) Cancel(ctx context.Context, id, reason string) (*Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultCancelReason
	}
	return s.orders.Cancel(ctx, id, reason, s.now())
}

// Stats counts orders by status and by creation recency over the whole
// collection.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	orders, err := s.orders.List(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return computeStats(orders, s.now()), nil
}

func computeStats(orders []Order, now time.Time) *Stats {
	st := &Stats{
		Total:    len(orders),
		ByStatus: make(map[Status]int, len(Statuses)),
	}
	for _, status := range Statuses {
		st.ByStatus[status] = 0
	}

	dayAgo := now.Add(-24 * time.Hour)
	weekAgo := now.Add(-7 * 24 * time.Hour)
	for i := range orders {
		st.ByStatus[orders[i].Status]++
		created := orders[i].CreatedAt
		if !created.Before(dayAgo) {
			st.Last24Hours++
		}
		if !created.Before(weekAgo) {
			st.Last7Days++
		}
	}
	return st
}

func sortNewestFirst(orders []Order) {
	slices.SortStableFunc(orders, func(a, b Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
