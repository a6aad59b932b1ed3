package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/satdesk-webhooks/gen/oas"
	"github.com/xenking/satdesk-webhooks/internal/domain/order"
)

// ListOrders returns orders newest first, optionally filtered by status.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) ([]oas.Order, error) {
	if err := h.authorize(ctx); err != nil {
		return nil, err
	}
	status, _ := params.Status.Get()
	orders, err := h.orders.List(ctx, order.Status(status))
	if err != nil {
		return nil, err
	}
	resp := make([]oas.Order, len(orders))
	for i := range orders {
		resp[i] = toOASOrder(&orders[i])
	}
	return resp, nil
}

// GetOrder returns one order by id.
func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.Order, error) {
	if err := h.authorize(ctx); err != nil {
		return nil, err
	}
	o, err := h.orders.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	resp := toOASOrder(o)
	return &resp, nil
}

// UpdateOrder changes an order's status and optionally links a rental and the
// devices handed out for it.
func (h *Handler) UpdateOrder(ctx context.Context, req *oas.UpdateOrderRequest, params oas.UpdateOrderParams) (*oas.Order, error) {
	if err := h.authorize(ctx); err != nil {
		return nil, err
	}
	rentalID, _ := req.RentalId.Get()
	o, err := h.orders.UpdateStatus(ctx, params.ID, order.Status(req.Status), rentalID, req.Imeis)
	if err != nil {
		return nil, err
	}
	zctx.From(ctx).Info("Order status updated",
		zap.String("order_id", params.ID),
		zap.String("status", string(o.Status)),
	)
	resp := toOASOrder(o)
	return &resp, nil
}

// CancelOrder marks an order cancelled. The order is never removed.
func (h *Handler) CancelOrder(ctx context.Context, req oas.OptCancelOrderRequest, params oas.CancelOrderParams) (*oas.Order, error) {
	if err := h.authorize(ctx); err != nil {
		return nil, err
	}
	var reason string
	if body, ok := req.Get(); ok {
		reason, _ = body.Reason.Get()
	}
	o, err := h.orders.Cancel(ctx, params.ID, reason)
	if err != nil {
		return nil, err
	}
	zctx.From(ctx).Info("Order cancelled",
		zap.String("order_id", params.ID),
		zap.String("reason", o.CancelReason),
	)
	resp := toOASOrder(o)
	return &resp, nil
}

// GetStats counts orders by status and creation recency.
func (h *Handler) GetStats(ctx context.Context) (*oas.OrderStats, error) {
	if err := h.authorize(ctx); err != nil {
		return nil, err
	}
	st, err := h.orders.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &oas.OrderStats{
		Total: st.Total,
		ByStatus: oas.StatusCounts{
			New:        st.ByStatus[order.StatusNew],
			Processing: st.ByStatus[order.StatusProcessing],
			Completed:  st.ByStatus[order.StatusCompleted],
			Cancelled:  st.ByStatus[order.StatusCancelled],
		},
		Last24Hours: st.Last24Hours,
		Last7Days:   st.Last7Days,
	}, nil
}

func toOASOrder(o *order.Order) oas.Order {
	imeis := o.AssignedIMEIs
	if imeis == nil {
		imeis = []string{}
	}
	return oas.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Source:      o.Source,
		Status:      oas.OrderStatus(o.Status),
		CreatedAt:   o.CreatedAt,
		ReceivedAt:  o.ReceivedAt,
		Customer:    toOASCustomer(o.Customer),
		Rental: oas.Rental{
			StartDate:       nilTime(o.Rental.StartDate),
			EndDate:         nilTime(o.Rental.EndDate),
			Duration:        o.Rental.Duration,
			DeviceCount:     o.Rental.DeviceCount,
			Destination:     o.Rental.Destination,
			EstimatedAmount: o.Rental.EstimatedAmount.InexactFloat64(),
		},
		Payment: oas.Payment{
			Method:   o.Payment.Method,
			Status:   o.Payment.Status,
			Amount:   o.Payment.Amount.InexactFloat64(),
			Currency: o.Payment.Currency,
			PaidDate: nilTimePtr(o.Payment.PaidDate),
		},
		Metadata:      rawOrNull(o.Metadata),
		RawPayload:    rawOrNull(o.RawPayload),
		RentalId:      nilString(o.RentalID),
		AssignedImeis: imeis,
		UpdatedAt:     nilTimePtr(o.UpdatedAt),
		CancelReason:  nilString(o.CancelReason),
		CancelledAt:   nilTimePtr(o.CancelledAt),
	}
}

func toOASCustomer(c order.Customer) oas.Customer {
	contacts := make([]oas.EmergencyContact, len(c.EmergencyContacts))
	for i, ec := range c.EmergencyContacts {
		contacts[i] = oas.EmergencyContact{
			Name:         ec.Name,
			Relationship: ec.Relationship,
			Phone:        ec.Phone,
			Email:        ec.Email,
		}
	}
	return oas.Customer{
		Name:      c.Name,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Identity: oas.IdentityDocument{
			Type:   c.Identity.Type,
			Number: c.Identity.Number,
		},
		DateOfBirth: c.DateOfBirth,
		Gender:      c.Gender,
		Address: oas.Address{
			Street:     c.Address.Street,
			City:       c.Address.City,
			State:      c.Address.State,
			PostalCode: c.Address.PostalCode,
			Country:    c.Address.Country,
		},
		EmergencyContacts: contacts,
	}
}

func nilTime(t time.Time) oas.NilDateTime {
	if t.IsZero() {
		return oas.NilDateTime{Null: true}
	}
	return oas.NewNilDateTime(t)
}

func nilTimePtr(t *time.Time) oas.NilDateTime {
	if t == nil {
		return oas.NilDateTime{Null: true}
	}
	return oas.NewNilDateTime(*t)
}

func nilString(s string) oas.NilString {
	if s == "" {
		return oas.NilString{Null: true}
	}
	return oas.NewNilString(s)
}

func rawOrNull(raw json.RawMessage) jx.Raw {
	if len(raw) == 0 || !jx.Valid(raw) {
		return jx.Raw("null")
	}
	return jx.Raw(raw)
}
