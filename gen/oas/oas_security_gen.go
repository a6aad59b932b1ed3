// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/ogen-go/ogen/ogenerrors"
)

// SecurityHandler is handler for security parameters.
type SecurityHandler interface {
	// HandleOperatorToken handles OperatorToken security.
	// HS256 operator token. Required only when an operator secret is configured.
	HandleOperatorToken(ctx context.Context, operationName OperationName, t OperatorToken) (context.Context, error)
	// HandleWebhookSignature handles WebhookSignature security.
	// Lowercase hex HMAC-SHA256 of the raw body.
	// Sent together with X-Webhook-Timestamp, the Unix time of signing in
	// seconds or milliseconds.
	HandleWebhookSignature(ctx context.Context, operationName OperationName, t WebhookSignature) (context.Context, error)
}

func findAuthorization(h http.Header, prefix string) (string, bool) {
	v, ok := h["Authorization"]
	if !ok {
		return "", false
	}
	for _, vv := range v {
		scheme, value, ok := strings.Cut(vv, " ")
		if !ok || !strings.EqualFold(scheme, prefix) {
			continue
		}
		return value, true
	}
	return "", false
}

// operationRolesOperatorToken is a private map storing roles per operation.
var operationRolesOperatorToken = map[string][]string{
	CancelOrderOperation: []string{},
	GetOrderOperation:    []string{},
	GetStatsOperation:    []string{},
	ListOrdersOperation:  []string{},
	UpdateOrderOperation: []string{},
}

// GetRolesForOperatorToken returns the required roles for the given operation.
//
// This is useful for authorization scenarios where you need to know which roles
// are required for an operation.
//
// Example:
//
//	requiredRoles := GetRolesForOperatorToken(AddPetOperation)
//
// Returns nil if the operation has no role requirements or if the operation is unknown.
func GetRolesForOperatorToken(operation string) []string {
	roles, ok := operationRolesOperatorToken[operation]
	if !ok {
		return nil
	}
	// Return a copy to prevent external modification
	result := make([]string, len(roles))
	copy(result, roles)
	return result
}

// operationRolesWebhookSignature is a private map storing roles per operation.
var operationRolesWebhookSignature = map[string][]string{
	ReceiveOrderOperation: []string{},
}

// GetRolesForWebhookSignature returns the required roles for the given operation.
//
// This is useful for authorization scenarios where you need to know which roles
// are required for an operation.
//
// Example:
//
//	requiredRoles := GetRolesForWebhookSignature(AddPetOperation)
//
// Returns nil if the operation has no role requirements or if the operation is unknown.
func GetRolesForWebhookSignature(operation string) []string {
	roles, ok := operationRolesWebhookSignature[operation]
	if !ok {
		return nil
	}
	// Return a copy to prevent external modification
	result := make([]string, len(roles))
	copy(result, roles)
	return result
}

func (s *Server) securityOperatorToken(ctx context.Context, operationName OperationName, req *http.Request) (context.Context, bool, error) {
	var t OperatorToken
	token, ok := findAuthorization(req.Header, "Bearer")
	if !ok {
		return ctx, false, nil
	}
	t.Token = token
	t.Roles = operationRolesOperatorToken[operationName]
	rctx, err := s.sec.HandleOperatorToken(ctx, operationName, t)
	if errors.Is(err, ogenerrors.ErrSkipServerSecurity) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return rctx, true, err
}

func (s *Server) securityWebhookSignature(ctx context.Context, operationName OperationName, req *http.Request) (context.Context, bool, error) {
	var t WebhookSignature
	const parameterName = "X-Webhook-Signature"
	value := req.Header.Get(parameterName)
	if value == "" {
		return ctx, false, nil
	}
	t.APIKey = value
	t.Roles = operationRolesWebhookSignature[operationName]
	rctx, err := s.sec.HandleWebhookSignature(ctx, operationName, t)
	if errors.Is(err, ogenerrors.ErrSkipServerSecurity) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return rctx, true, err
}

// SecuritySource is provider of security values (tokens, passwords, etc.).
type SecuritySource interface {
	// OperatorToken provides OperatorToken security value.
	// HS256 operator token. Required only when an operator secret is configured.
	OperatorToken(ctx context.Context, operationName OperationName) (OperatorToken, error)
	// WebhookSignature provides WebhookSignature security value.
	// Lowercase hex HMAC-SHA256 of the raw body.
	// Sent together with X-Webhook-Timestamp, the Unix time of signing in
	// seconds or milliseconds.
	WebhookSignature(ctx context.Context, operationName OperationName) (WebhookSignature, error)
}

func (s *Client) securityOperatorToken(ctx context.Context, operationName OperationName, req *http.Request) error {
	t, err := s.sec.OperatorToken(ctx, operationName)
	if err != nil {
		return errors.Wrap(err, "security source \"OperatorToken\"")
	}
	req.Header.Set("Authorization", "Bearer "+t.Token)
	return nil
}
func (s *Client) securityWebhookSignature(ctx context.Context, operationName OperationName, req *http.Request) error {
	t, err := s.sec.WebhookSignature(ctx, operationName)
	if err != nil {
		return errors.Wrap(err, "security source \"WebhookSignature\"")
	}
	req.Header.Set("X-Webhook-Signature", t.APIKey)
	return nil
}
