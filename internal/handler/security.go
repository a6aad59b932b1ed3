package handler

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/satdesk-webhooks/gen/oas"
	"github.com/xenking/satdesk-webhooks/internal/domain/auth"
	"github.com/xenking/satdesk-webhooks/internal/webhook"
)

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

type operatorKey struct{}

// OperatorFromContext returns the subject of the verified operator token.
func OperatorFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(operatorKey{}).(string)
	return subject, ok
}

// SecurityHandler implements ogen's SecurityHandler interface. Webhook
// deliveries are authenticated by signature and timestamp; operators by an
// optional bearer token.
type SecurityHandler struct {
	verifier *webhook.Verifier
	tokens   *auth.Tokens
}

// NewSecurityHandler creates a SecurityHandler. A nil tokens leaves operator
// tokens unchecked.
func NewSecurityHandler(verifier *webhook.Verifier, tokens *auth.Tokens) *SecurityHandler {
	return &SecurityHandler{verifier: verifier, tokens: tokens}
}

// HandleWebhookSignature verifies the signature against the raw body buffered
// by Handler.Deliveries, then the timestamp. A rejected delivery never
// reaches the decoder.
func (s *SecurityHandler) HandleWebhookSignature(
	ctx context.Context,
	_ oas.OperationName,
	t oas.WebhookSignature,
) (context.Context, error) {
	d, ok := deliveryFromContext(ctx)
	if !ok {
		return ctx, errors.Wrap(webhook.ErrInvalidSignature, "delivery body not buffered")
	}

	err := s.verifier.Verify(d.body, t.APIKey, d.timestamp)
	if err == nil {
		return ctx, nil
	}
	d.outcome = outcomeInvalidSignature
	if errors.Is(err, webhook.ErrRequestExpired) {
		d.outcome = outcomeExpired
	}
	zctx.From(ctx).Warn("Webhook rejected", zap.Error(err))
	return ctx, err
}

// HandleOperatorToken verifies an operator bearer token and stores its
// subject in the context.
func (s *SecurityHandler) HandleOperatorToken(
	ctx context.Context,
	_ oas.OperationName,
	t oas.OperatorToken,
) (context.Context, error) {
	if s.tokens == nil {
		return ctx, nil
	}
	claims, err := s.tokens.Verify(t.Token)
	if err != nil {
		zctx.From(ctx).Warn("Operator token rejected", zap.Error(err))
		return ctx, err
	}
	ctx = context.WithValue(ctx, operatorKey{}, claims.Subject)
	return zctx.With(ctx, zap.String("operator", claims.Subject)), nil
}
