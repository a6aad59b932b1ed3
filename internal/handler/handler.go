// Package handler implements the generated ogen API: the webhook receiver and
// the operator order endpoints.
package handler

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/satdesk-webhooks/gen/oas"
	"github.com/xenking/satdesk-webhooks/internal/domain/auth"
	"github.com/xenking/satdesk-webhooks/internal/domain/order"
	"github.com/xenking/satdesk-webhooks/internal/webhook"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// DefaultMaxBodyBytes caps webhook request bodies.
const DefaultMaxBodyBytes = 1 << 20

// HandlerConfig holds non-dependency configuration for the Handler.
type HandlerConfig struct {
	// MaxBodyBytes limits the webhook body size. Zero selects
	// DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// RequireOperator rejects operator requests that carry no verified
	// token. Set it when the SecurityHandler has operator tokens.
	RequireOperator bool
}

// Handler implements the ogen-generated Handler interface on top of the
// order service.
type Handler struct {
	oas.UnimplementedHandler

	orders          *order.Service
	verifier        *webhook.Verifier
	requireOperator bool
	maxBody         int64
	now             func() time.Time

	deliveries metric.Int64Counter
	upserts    metric.Int64Counter
}

// NewHandler constructs a Handler. Counters are registered on meter.
func NewHandler(
	cfg HandlerConfig,
	orders *order.Service,
	verifier *webhook.Verifier,
	meter metric.Meter,
) (*Handler, error) {
	deliveries, err := meter.Int64Counter("webhook.deliveries",
		metric.WithDescription("Webhook deliveries by outcome"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create deliveries counter")
	}
	upserts, err := meter.Int64Counter("orders.upserts",
		metric.WithDescription("Accepted orders by whether they replaced an earlier delivery"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create upserts counter")
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Handler{
		orders:          orders,
		verifier:        verifier,
		requireOperator: cfg.RequireOperator,
		maxBody:         maxBody,
		now:             time.Now,
		deliveries:      deliveries,
		upserts:         upserts,
	}, nil
}

// authorize fails operator requests without a verified token when operator
// authentication is required. The token itself is checked by
// SecurityHandler.HandleOperatorToken.
func (h *Handler) authorize(ctx context.Context) error {
	if !h.requireOperator {
		return nil
	}
	if _, ok := OperatorFromContext(ctx); ok {
		return nil
	}
	return errors.Wrap(auth.ErrUnauthorized, "operator token required")
}
