package handler

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/satdesk-webhooks/gen/oas"
	"github.com/xenking/satdesk-webhooks/internal/webhook"
)

// deliveryError marks a failure after a delivery was authenticated. It is
// reported as 500 "Failed to process webhook".
type deliveryError struct {
	err error
}

func (e *deliveryError) Error() string { return "process delivery: " + e.err.Error() }
func (e *deliveryError) Unwrap() error { return e.err }

// ReceiveOrder maps an authenticated delivery to an order and upserts it. The
// order is built from the buffered raw body, not the decoded request, so the
// stored payload is byte-for-byte what was signed.
func (h *Handler) ReceiveOrder(ctx context.Context, _ *oas.WebhookPayload) (*oas.WebhookAccepted, error) {
	lg := zctx.From(ctx)

	d, ok := deliveryFromContext(ctx)
	if !ok {
		return nil, &deliveryError{err: errors.New("delivery body not buffered")}
	}

	payload, err := webhook.DecodePayload(d.body)
	if err != nil {
		return nil, h.rejectMalformed(ctx, d, err)
	}
	o, err := webhook.Transform(payload, d.body)
	if err != nil {
		return nil, h.rejectMalformed(ctx, d, err)
	}

	res, err := h.orders.Receive(ctx, o)
	if err != nil {
		d.outcome = outcomeError
		return nil, &deliveryError{err: err}
	}

	kind := "created"
	if res.Replaced {
		kind = "replaced"
	}
	h.upserts.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	d.outcome = outcomeAccepted
	lg.Info("Order received",
		zap.String("order_id", res.Order.ID),
		zap.String("order_number", res.Order.OrderNumber),
		zap.Bool("replaced", res.Replaced),
	)
	return &oas.WebhookAccepted{Success: true, OrderId: res.Order.ID}, nil
}

func (h *Handler) rejectMalformed(ctx context.Context, d *delivery, err error) error {
	d.outcome = outcomeMalformed
	zctx.From(ctx).Error("Malformed webhook payload", zap.Error(err))
	return &deliveryError{err: err}
}

// TestWebhook reports whether a signing secret is configured without
// revealing it.
func (h *Handler) TestWebhook(context.Context) (*oas.WebhookTestResult, error) {
	configured := h.verifier.Configured()
	message := "Webhook endpoint is reachable"
	if !configured {
		message = "Webhook endpoint is reachable but no signing secret is configured; deliveries will be rejected"
	}
	return &oas.WebhookTestResult{
		Success:          true,
		Message:          message,
		SecretConfigured: configured,
		Timestamp:        h.now().UTC(),
	}, nil
}
