// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// CancelOrder implements cancelOrder operation.
//
// The order is marked cancelled and stays retrievable.
//
// DELETE /webhooks/orders/{id}
func (UnimplementedHandler) CancelOrder(ctx context.Context, req OptCancelOrderRequest, params CancelOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// Get an order.
//
// GET /webhooks/orders/{id}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// GetStats implements getStats operation.
//
// Order statistics.
//
// GET /webhooks/stats
func (UnimplementedHandler) GetStats(ctx context.Context) (r *OrderStats, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// Orders are returned newest first by creation time.
//
// GET /webhooks/orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r []Order, _ error) {
	return r, ht.ErrNotImplemented
}

// ReceiveOrder implements receiveOrder operation.
//
// The body is authenticated with an HMAC-SHA256 signature over the raw
// bytes and a timestamp no older than the replay window. A delivery for
// a known order id replaces the stored order.
//
// POST /webhooks/orders
func (UnimplementedHandler) ReceiveOrder(ctx context.Context, req *WebhookPayload) (r *WebhookAccepted, _ error) {
	return r, ht.ErrNotImplemented
}

// TestWebhook implements testWebhook operation.
//
// Reports whether a signing secret is configured without revealing it.
//
// GET /webhooks/test
func (UnimplementedHandler) TestWebhook(ctx context.Context) (r *WebhookTestResult, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrder implements updateOrder operation.
//
// Moves the order to new, processing or completed and optionally links
// it to a rental and the devices handed out. Cancelling uses DELETE.
//
// PATCH /webhooks/orders/{id}
func (UnimplementedHandler) UpdateOrder(ctx context.Context, req *UpdateOrderRequest, params UpdateOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
