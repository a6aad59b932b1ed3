package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/satdesk-webhooks/gen/oas"
	"github.com/xenking/satdesk-webhooks/internal/domain/auth"
	"github.com/xenking/satdesk-webhooks/internal/domain/order"
	"github.com/xenking/satdesk-webhooks/internal/webhook"
	"github.com/xenking/satdesk-webhooks/pkg/httpmiddleware"
)

// errorResponse maps an error to a status code and the client-facing message.
func errorResponse(err error) (int, string) {
	var (
		secErr  *ogenerrors.SecurityError
		delErr  *deliveryError
		imeiErr *order.InvalidIMEIError
	)
	switch {
	case errors.Is(err, webhook.ErrRequestExpired):
		return http.StatusUnauthorized, "Request expired"
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.As(err, &secErr):
		return http.StatusUnauthorized, "Invalid signature"
	case errors.As(err, &delErr):
		return http.StatusInternalServerError, "Failed to process webhook"
	case errors.Is(err, order.ErrNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, order.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid status"
	case errors.Is(err, order.ErrCancelRequired):
		return http.StatusBadRequest, "Use DELETE to cancel an order"
	case errors.As(err, &imeiErr):
		return http.StatusBadRequest, imeiErr.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}

// NewError converts handler and security errors to the error envelope.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	code, message := errorResponse(err)
	logError(ctx, code, err)
	return &oas.ErrorStatusCode{
		StatusCode: code,
		Response:   oas.Error{Success: false, Message: message},
	}
}

// HandleError writes the error envelope for failures ogen reports outside a
// handler, such as undecodable parameters or bodies. An undecodable delivery
// body is a processing failure, not a client error.
func HandleError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	var (
		paramsErr *ogenerrors.DecodeParamsError
		bodyErr   *ogenerrors.DecodeRequestError
	)
	code, message := errorResponse(err)
	if code == http.StatusInternalServerError {
		switch {
		case IsDelivery(r):
			message = "Failed to process webhook"
		case errors.As(err, &bodyErr):
			code, message = http.StatusBadRequest, "Invalid request body"
		case errors.As(err, &paramsErr):
			code, message = http.StatusBadRequest, "Invalid request parameters"
		}
	}
	logError(ctx, code, err)
	httpmiddleware.WriteError(w, code, message)
}

// NotFound answers requests for paths the API does not serve.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	httpmiddleware.WriteError(w, http.StatusNotFound, "Not found")
}

func logError(ctx context.Context, code int, err error) {
	lg := zctx.From(ctx)
	if code >= http.StatusInternalServerError {
		lg.Error("Request failed", zap.Int("status", code), zap.Error(err))
		return
	}
	lg.Debug("Request rejected", zap.Int("status", code), zap.Error(err))
}
