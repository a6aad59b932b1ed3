// Package webhook authenticates inbound order deliveries from the website and
// turns their payloads into orders.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// Header names carrying the delivery signature and its Unix timestamp.
const (
	SignatureHeader = "X-Webhook-Signature"
	TimestampHeader = "X-Webhook-Timestamp"
)

// DefaultReplayWindow bounds how far a delivery timestamp may be from the
// receiver clock.
const DefaultReplayWindow = 300 * time.Second

// Timestamps at or above this value are Unix milliseconds.
const millisThreshold = 1_000_000_000_000

var (
	// ErrSecretNotConfigured is returned when no shared secret is set.
	// Verification fails closed.
	ErrSecretNotConfigured = errors.New("webhook secret not configured")
	// ErrInvalidSignature is returned when the signature is missing or does
	// not match the body.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrRequestExpired is returned when the timestamp is missing, malformed
	// or outside the replay window.
	ErrRequestExpired = errors.New("webhook request expired")
)

// Verifier checks delivery signatures and timestamps against a shared secret.
type Verifier struct {
	secret []byte
	window time.Duration
	now    func() time.Time
}

// NewVerifier creates a Verifier. A non-positive window selects
// DefaultReplayWindow.
func NewVerifier(secret string, window time.Duration) *Verifier {
	if window <= 0 {
		window = DefaultReplayWindow
	}
	return &Verifier{
		secret: []byte(secret),
		window: window,
		now:    time.Now,
	}
}

// Configured reports whether a shared secret is set.
func (v *Verifier) Configured() bool {
	return len(v.secret) > 0
}

// Verify authenticates a delivery. The signature is checked first; the
// timestamp is checked only for correctly signed bodies. body must be the raw
// request bytes, never a re-encoding.
func (v *Verifier) Verify(body []byte, signature, timestamp string) error {
	if err := v.VerifySignature(body, signature); err != nil {
		return err
	}
	return v.VerifyTimestamp(timestamp)
}

// VerifySignature compares signature with the hex HMAC-SHA256 of body in
// constant time.
func (v *Verifier) VerifySignature(body []byte, signature string) error {
	if !v.Configured() {
		return ErrSecretNotConfigured
	}
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return ErrInvalidSignature
	}
	expected := Sign(v.secret, body)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyTimestamp accepts timestamps within the replay window of the current
// time, boundary included.
func (v *Verifier) VerifyTimestamp(timestamp string) error {
	ts, err := ParseTimestamp(timestamp)
	if err != nil {
		return err
	}
	skew := v.now().Sub(ts)
	if skew < 0 {
		skew = -skew
	}
	if skew > v.window {
		return ErrRequestExpired
	}
	return nil
}

// ParseTimestamp reads a Unix timestamp in seconds, or milliseconds for
// values of 13 digits and more.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrRequestExpired
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return time.Time{}, ErrRequestExpired
	}
	if n >= millisThreshold {
		return time.UnixMilli(n), nil
	}
	return time.Unix(n, 0), nil
}

// Sign returns the lowercase hex HMAC-SHA256 of body under secret.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
