package httpmiddleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/orders", nil)
	req.RemoteAddr = addr
	return req
}

func TestRateLimit_UnderLimit(t *testing.T) {
	handler := RateLimit(RateLimitConfig{Max: 5, Window: time.Minute})(okHandler())

	for i := range 5 {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("192.168.1.1:12345"))

		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	handler := RateLimit(RateLimitConfig{Max: 2, Window: time.Minute})(okHandler())

	for range 2 {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.1:9999"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:9999"))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "rate limit exceeded", body["message"])
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	handler := RateLimit(RateLimitConfig{Max: 1, Window: time.Minute})(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:1"))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.2:1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:2"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_CustomKeyFunc(t *testing.T) {
	handler := RateLimit(RateLimitConfig{
		Max:     1,
		Window:  time.Minute,
		KeyFunc: func(r *http.Request) string { return r.Header.Get("X-Client") },
	})(okHandler())

	for _, client := range []string{"a", "b"} {
		req := requestFrom("10.0.0.1:1")
		req.Header.Set("X-Client", client)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, client)
	}
}

func TestRateLimiter_Evict(t *testing.T) {
	rl := newRateLimiter(RateLimitConfig{Max: 1, Window: time.Second})
	now := time.Now()

	_, _, allowed := rl.reserve("stale", now.Add(-3*time.Second))
	require.True(t, allowed)
	_, _, allowed = rl.reserve("fresh", now)
	require.True(t, allowed)

	rl.evict(now)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "stale")
	assert.Contains(t, rl.clients, "fresh")
}

func TestRateLimitWithCleanup_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	handler := RateLimitWithCleanup(ctx, RateLimitConfig{Max: 1, Window: 10 * time.Millisecond})(okHandler())
	cancel()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:1"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "remote addr", remote: "10.1.1.1:5000", want: "10.1.1.1"},
		{name: "forwarded for first hop", headers: map[string]string{"X-Forwarded-For": "1.1.1.1, 2.2.2.2"}, remote: "10.1.1.1:5000", want: "1.1.1.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "3.3.3.3"}, remote: "10.1.1.1:5000", want: "3.3.3.3"},
		{name: "remote without port", remote: "pipe", want: "pipe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestFrom(tt.remote)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

func TestRateLimit_Skip(t *testing.T) {
	handler := RateLimit(RateLimitConfig{
		Max:    1,
		Window: time.Minute,
		Skip: func(r *http.Request) bool {
			return r.Method == http.MethodPost && r.URL.Path == "/api/webhooks/orders"
		},
	})(okHandler())

	for i := range 150 {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.7:1000"))
		require.Equal(t, http.StatusOK, w.Code, "delivery %d", i+1)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}

	list := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/webhooks/orders", nil)
		req.RemoteAddr = "10.0.0.7:1000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}
	assert.Equal(t, http.StatusOK, list().Code)
	assert.Equal(t, http.StatusTooManyRequests, list().Code)
}
