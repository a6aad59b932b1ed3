package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestTokens(secret string) *Tokens {
	tk := NewTokens(secret)
	tk.now = func() time.Time { return tokenNow }
	return tk
}

func TestTokens_IssueVerify(t *testing.T) {
	tk := newTestTokens("operator-secret")

	token, err := tk.Issue("maria", time.Hour)
	require.NoError(t, err)

	claims, err := tk.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Subject)
	assert.Equal(t, RoleOperator, claims.Role)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestTokens_Rejects(t *testing.T) {
	tk := newTestTokens("operator-secret")
	valid, err := tk.Issue("maria", time.Hour)
	require.NoError(t, err)

	expired, err := tk.Issue("maria", -time.Minute)
	require.NoError(t, err)

	foreign, err := newTestTokens("other-secret").Issue("maria", time.Hour)
	require.NoError(t, err)

	wrongRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   "maria",
			ExpiresAt: jwt.NewNumericDate(tokenNow.Add(time.Hour)),
		},
		Role: "viewer",
	}).SignedString([]byte("operator-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer, Subject: "maria"},
		Role:             RoleOperator,
	}).SignedString([]byte("operator-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "foreign secret", token: foreign},
		{name: "wrong role", token: wrongRole},
		{name: "no expiry", token: noExpiry},
		{name: "garbage", token: "not.a.token"},
		{name: "empty", token: ""},
		{name: "tampered", token: valid + "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tk.Verify(tt.token)
			require.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestTokens_NoSecret(t *testing.T) {
	tk := newTestTokens("")
	_, err := tk.Issue("maria", time.Hour)
	require.Error(t, err)
	_, err = tk.Verify("anything")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestTokens_EmptySubject(t *testing.T) {
	_, err := newTestTokens("s").Issue(" ", time.Hour)
	require.Error(t, err)
}
