package webhook

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

var verifyNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestVerifier(secret string) *Verifier {
	v := NewVerifier(secret, 0)
	v.now = func() time.Time { return verifyNow }
	return v
}

func unix(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

func TestSign_KnownVector(t *testing.T) {
	// RFC 4231 test case 2.
	got := Sign([]byte("Jefe"), []byte("what do ya want for nothing?"))
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestVerify(t *testing.T) {
	body := []byte(`{"order":{"orderId":"W-100"}}`)
	validSig := Sign([]byte(testSecret), body)

	tests := []struct {
		name      string
		secret    string
		signature string
		timestamp string
		wantErr   error
	}{
		{
			name:      "valid",
			secret:    testSecret,
			signature: validSig,
			timestamp: unix(verifyNow),
		},
		{
			name:      "secret not configured",
			secret:    "",
			signature: validSig,
			timestamp: unix(verifyNow),
			wantErr:   ErrSecretNotConfigured,
		},
		{
			name:      "wrong signature",
			secret:    testSecret,
			signature: Sign([]byte("other"), body),
			timestamp: unix(verifyNow),
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "missing signature",
			secret:    testSecret,
			timestamp: unix(verifyNow),
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "bad signature is reported before stale timestamp",
			secret:    testSecret,
			signature: "deadbeef",
			timestamp: unix(verifyNow.Add(-time.Hour)),
			wantErr:   ErrInvalidSignature,
		},
		{
			name:      "missing timestamp",
			secret:    testSecret,
			signature: validSig,
			wantErr:   ErrRequestExpired,
		},
		{
			name:      "non numeric timestamp",
			secret:    testSecret,
			signature: validSig,
			timestamp: "yesterday",
			wantErr:   ErrRequestExpired,
		},
		{
			name:      "timestamp exactly at window is accepted",
			secret:    testSecret,
			signature: validSig,
			timestamp: unix(verifyNow.Add(-300 * time.Second)),
		},
		{
			name:      "future timestamp exactly at window is accepted",
			secret:    testSecret,
			signature: validSig,
			timestamp: unix(verifyNow.Add(300 * time.Second)),
		},
		{
			name:      "timestamp past window",
			secret:    testSecret,
			signature: validSig,
			timestamp: unix(verifyNow.Add(-301 * time.Second)),
			wantErr:   ErrRequestExpired,
		},
		{
			name:      "future timestamp past window",
			secret:    testSecret,
			signature: validSig,
			timestamp: unix(verifyNow.Add(301 * time.Second)),
			wantErr:   ErrRequestExpired,
		},
		{
			name:      "milliseconds timestamp",
			secret:    testSecret,
			signature: validSig,
			timestamp: strconv.FormatInt(verifyNow.Add(-10*time.Second).UnixMilli(), 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newTestVerifier(tt.secret).Verify(body, tt.signature, tt.timestamp)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerify_BodyMustBeExact(t *testing.T) {
	v := newTestVerifier(testSecret)
	body := []byte(`{"order": {"orderId": "W-1"}}`)
	sig := Sign([]byte(testSecret), body)

	// Same JSON value, different bytes.
	reencoded := []byte(`{"order":{"orderId":"W-1"}}`)
	require.ErrorIs(t, v.Verify(reencoded, sig, unix(verifyNow)), ErrInvalidSignature)
	require.NoError(t, v.Verify(body, sig, unix(verifyNow)))
}

func TestVerifier_CustomWindow(t *testing.T) {
	v := NewVerifier(testSecret, time.Minute)
	v.now = func() time.Time { return verifyNow }

	require.NoError(t, v.VerifyTimestamp(unix(verifyNow.Add(-time.Minute))))
	require.ErrorIs(t, v.VerifyTimestamp(unix(verifyNow.Add(-61*time.Second))), ErrRequestExpired)
}

func TestVerifier_Configured(t *testing.T) {
	assert.True(t, NewVerifier("s", 0).Configured())
	assert.False(t, NewVerifier("", 0).Configured())
}
