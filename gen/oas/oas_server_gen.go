// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// CancelOrder implements cancelOrder operation.
	//
	// The order is marked cancelled and stays retrievable.
	//
	// DELETE /webhooks/orders/{id}
	CancelOrder(ctx context.Context, req OptCancelOrderRequest, params CancelOrderParams) (*Order, error)
	// GetOrder implements getOrder operation.
	//
	// Get an order.
	//
	// GET /webhooks/orders/{id}
	GetOrder(ctx context.Context, params GetOrderParams) (*Order, error)
	// GetStats implements getStats operation.
	//
	// Order statistics.
	//
	// GET /webhooks/stats
	GetStats(ctx context.Context) (*OrderStats, error)
	// ListOrders implements listOrders operation.
	//
	// Orders are returned newest first by creation time.
	//
	// GET /webhooks/orders
	ListOrders(ctx context.Context, params ListOrdersParams) ([]Order, error)
	// ReceiveOrder implements receiveOrder operation.
	//
	// The body is authenticated with an HMAC-SHA256 signature over the raw
	// bytes and a timestamp no older than the replay window. A delivery for
	// a known order id replaces the stored order.
	//
	// POST /webhooks/orders
	ReceiveOrder(ctx context.Context, req *WebhookPayload) (*WebhookAccepted, error)
	// TestWebhook implements testWebhook operation.
	//
	// Reports whether a signing secret is configured without revealing it.
	//
	// GET /webhooks/test
	TestWebhook(ctx context.Context) (*WebhookTestResult, error)
	// UpdateOrder implements updateOrder operation.
	//
	// Moves the order to new, processing or completed and optionally links
	// it to a rental and the devices handed out. Cancelling uses DELETE.
	//
	// PATCH /webhooks/orders/{id}
	UpdateOrder(ctx context.Context, req *UpdateOrderRequest, params UpdateOrderParams) (*Order, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
