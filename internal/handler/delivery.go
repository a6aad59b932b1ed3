package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/xenking/satdesk-webhooks/internal/webhook"
	"github.com/xenking/satdesk-webhooks/pkg/httpmiddleware"
)

// DeliveryPath is where the website posts order webhooks.
const DeliveryPath = "/api/webhooks/orders"

// Delivery outcomes recorded on the webhook.deliveries counter.
const (
	outcomeAccepted         = "accepted"
	outcomeInvalidSignature = "invalid_signature"
	outcomeExpired          = "expired"
	outcomeTooLarge         = "too_large"
	outcomeMalformed        = "malformed"
	outcomeError            = "error"
)

// IsDelivery reports whether r is a webhook delivery.
func IsDelivery(r *http.Request) bool {
	return r.Method == http.MethodPost && r.URL.Path == DeliveryPath
}

// delivery is the buffered body of one webhook request. Handlers along the
// way set outcome; it is read once the response is written.
type delivery struct {
	body      []byte
	timestamp string
	outcome   string
}

type deliveryKey struct{}

func deliveryFromContext(ctx context.Context) (*delivery, bool) {
	d, ok := ctx.Value(deliveryKey{}).(*delivery)
	return d, ok
}

// Deliveries returns a middleware that buffers webhook delivery bodies so the
// signature is checked against the exact bytes the sender signed, then hands
// the request on with the body restored. Oversized bodies are rejected before
// authentication. Every delivery's outcome is counted. Other requests pass
// through untouched.
func (h *Handler) Deliveries(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsDelivery(r) {
			next.ServeHTTP(w, r)
			return
		}
		ctx := r.Context()
		lg := zctx.From(ctx)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.record(ctx, outcomeTooLarge)
				lg.Warn("Webhook body too large", zap.Int64("limit", tooLarge.Limit))
				httpmiddleware.WriteError(w, http.StatusRequestEntityTooLarge, "Payload too large")
				return
			}
			h.record(ctx, outcomeError)
			lg.Error("Read webhook body", zap.Error(err))
			httpmiddleware.WriteError(w, http.StatusInternalServerError, "Failed to process webhook")
			return
		}

		d := &delivery{body: body, timestamp: r.Header.Get(webhook.TimestampHeader)}
		r = r.WithContext(context.WithValue(ctx, deliveryKey{}, d))
		r.Body = io.NopCloser(bytes.NewReader(body))

		rec := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		h.record(ctx, d.result(rec.status))
	})
}

// result picks the outcome for a finished delivery. Failures ogen reports
// itself leave outcome unset and are classified by status.
func (d *delivery) result(status int) string {
	if d.outcome != "" {
		return d.outcome
	}
	switch status {
	case http.StatusOK:
		return outcomeAccepted
	case http.StatusUnauthorized:
		return outcomeInvalidSignature
	default:
		return outcomeMalformed
	}
}

// record counts a delivery outcome and labels the server request metrics
// with it.
func (h *Handler) record(ctx context.Context, outcome string) {
	attr := attribute.String("webhook.outcome", outcome)
	h.deliveries.Add(ctx, 1, metric.WithAttributes(attr))
	if l, ok := otelhttp.LabelerFromContext(ctx); ok {
		l.Add(attr)
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusWriter) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

func (s *statusWriter) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
