// Package auth issues and verifies operator tokens for the order dashboard.
package auth

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the iss claim of every operator token.
const Issuer = "satdesk-webhooks"

// RoleOperator is the only role the dashboard endpoints accept.
const RoleOperator = "operator"

// ErrUnauthorized is returned for missing, malformed, expired or foreign
// tokens.
var ErrUnauthorized = errors.New("unauthorized")

// Claims are the JWT claims of an operator token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Tokens signs and verifies HS256 operator tokens.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

// NewTokens creates a Tokens with the given signing secret.
func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), now: time.Now}
}

// Issue returns a signed operator token for subject valid for ttl.
func (t *Tokens) Issue(subject string, ttl time.Duration) (string, error) {
	if len(t.secret) == 0 {
		return "", errors.New("operator secret not configured")
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("subject is empty")
	}
	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: RoleOperator,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// Verify parses token and checks signature, issuer, expiry and role.
func (t *Tokens) Verify(token string) (*Claims, error) {
	if len(t.secret) == 0 {
		return nil, ErrUnauthorized
	}
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, errors.Wrapf(ErrUnauthorized, "parse token: %s", err)
	}
	if claims.Role != RoleOperator {
		return nil, errors.Wrapf(ErrUnauthorized, "role %q", claims.Role)
	}
	return &claims, nil
}
