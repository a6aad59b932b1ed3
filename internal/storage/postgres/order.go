package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/xenking/satdesk-webhooks/internal/domain/order"
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL. Customer,
// rental and payment snapshots are stored as JSONB; the payment total is kept
// in a NUMERIC column and is the source of both amounts on read.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id, order_number, source, status, created_at, received_at,
	customer, rental, payment, total, metadata, raw_payload,
	rental_id, assigned_imeis, updated_at, cancel_reason, cancelled_at`

// Upsert inserts o or replaces the row with the same id in a single
// statement. Lifecycle columns are reset on replace.
func (r *OrderRepository) Upsert(ctx context.Context, o *order.Order) (bool, error) {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return false, errors.Wrap(err, "marshal customer")
	}
	rental, err := json.Marshal(o.Rental)
	if err != nil {
		return false, errors.Wrap(err, "marshal rental")
	}
	payment, err := json.Marshal(o.Payment)
	if err != nil {
		return false, errors.Wrap(err, "marshal payment")
	}
	metadata := o.Metadata
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}
	imeis := o.AssignedIMEIs
	if imeis == nil {
		imeis = []string{}
	}

	const q = `INSERT INTO webhook_orders (` + orderColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (id) DO UPDATE SET
	order_number   = EXCLUDED.order_number,
	source         = EXCLUDED.source,
	status         = EXCLUDED.status,
	created_at     = EXCLUDED.created_at,
	received_at    = EXCLUDED.received_at,
	customer       = EXCLUDED.customer,
	rental         = EXCLUDED.rental,
	payment        = EXCLUDED.payment,
	total          = EXCLUDED.total,
	metadata       = EXCLUDED.metadata,
	raw_payload    = EXCLUDED.raw_payload,
	rental_id      = EXCLUDED.rental_id,
	assigned_imeis = EXCLUDED.assigned_imeis,
	updated_at     = EXCLUDED.updated_at,
	cancel_reason  = EXCLUDED.cancel_reason,
	cancelled_at   = EXCLUDED.cancelled_at
RETURNING (xmax <> 0)`

	var replaced bool
	err = r.pool.QueryRow(ctx, q,
		o.ID, o.OrderNumber, o.Source, string(o.Status), o.CreatedAt, o.ReceivedAt,
		customer, rental, payment, o.Payment.Amount, []byte(metadata), []byte(o.RawPayload),
		o.RentalID, imeis, o.UpdatedAt, o.CancelReason, o.CancelledAt,
	).Scan(&replaced)
	if err != nil {
		return false, errors.Wrapf(err, "upsert order %q", o.ID)
	}
	return replaced, nil
}

// Get returns the order with the given id or order.ErrNotFound.
func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM webhook_orders WHERE id = $1`, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get order %q", id)
	}
	return collectOne(rows, id)
}

// List returns orders with the given status, or all orders when status is
// empty.
func (r *OrderRepository) List(ctx context.Context, status order.Status) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM webhook_orders WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC, id`,
		string(status),
	)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, errors.Wrap(err, "scan orders")
	}
	return orders, nil
}

// UpdateStatus applies upd in a single statement. Empty RentalID and nil
// IMEIs keep the stored values.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, upd order.StatusUpdate) (*order.Order, error) {
	const q = `UPDATE webhook_orders SET
	status         = $2,
	rental_id      = CASE WHEN $3 = '' THEN rental_id ELSE $3 END,
	assigned_imeis = COALESCE($4, assigned_imeis),
	updated_at     = $5
WHERE id = $1
RETURNING ` + orderColumns

	rows, err := r.pool.Query(ctx, q, id, string(upd.Status), upd.RentalID, upd.IMEIs, upd.At)
	if err != nil {
		return nil, errors.Wrapf(err, "update order %q", id)
	}
	return collectOne(rows, id)
}

// Cancel marks the order cancelled. The row is kept.
func (r *OrderRepository) Cancel(ctx context.Context, id, reason string, at time.Time) (*order.Order, error) {
	const q = `UPDATE webhook_orders SET
	status        = 'cancelled',
	cancel_reason = $2,
	cancelled_at  = $3,
	updated_at    = $3
WHERE id = $1
RETURNING ` + orderColumns

	rows, err := r.pool.Query(ctx, q, id, reason, at)
	if err != nil {
		return nil, errors.Wrapf(err, "cancel order %q", id)
	}
	return collectOne(rows, id)
}

func collectOne(rows pgx.Rows, id string) (*order.Order, error) {
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, errors.Wrapf(err, "scan order %q", id)
	}
	return &o, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o                         order.Order
		status                    string
		customer, rental, payment []byte
		metadata, raw             []byte
		total                     decimal.Decimal
		updatedAt, cancelledAt    *time.Time
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.Source, &status, &o.CreatedAt, &o.ReceivedAt,
		&customer, &rental, &payment, &total, &metadata, &raw,
		&o.RentalID, &o.AssignedIMEIs, &updatedAt, &o.CancelReason, &cancelledAt,
	)
	if err != nil {
		return order.Order{}, err
	}
	if err := json.Unmarshal(customer, &o.Customer); err != nil {
		return order.Order{}, errors.Wrap(err, "unmarshal customer")
	}
	if err := json.Unmarshal(rental, &o.Rental); err != nil {
		return order.Order{}, errors.Wrap(err, "unmarshal rental")
	}
	if err := json.Unmarshal(payment, &o.Payment); err != nil {
		return order.Order{}, errors.Wrap(err, "unmarshal payment")
	}
	if o.Customer.EmergencyContacts == nil {
		o.Customer.EmergencyContacts = []order.EmergencyContact{}
	}

	o.Status = order.Status(status)
	o.Rental.EstimatedAmount = total
	o.Payment.Amount = total
	o.Metadata = metadata
	o.RawPayload = raw
	o.CreatedAt = o.CreatedAt.UTC()
	o.ReceivedAt = o.ReceivedAt.UTC()
	if updatedAt != nil {
		t := updatedAt.UTC()
		o.UpdatedAt = &t
	}
	if cancelledAt != nil {
		t := cancelledAt.UTC()
		o.CancelledAt = &t
	}
	return o, nil
}
