package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func passing(context.Context) error { return nil }

func failing(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func serve(t *testing.T, endpoint http.HandlerFunc) (int, report) {
	t.Helper()
	w := httptest.NewRecorder()
	endpoint(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body report
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return w.Code, body
}

func runN(p *monitor, n int) {
	for range n {
		p.run(context.Background())
	}
}

func TestLiveEndpoint(t *testing.T) {
	t.Run("no checks", func(t *testing.T) {
		code, body := serve(t, New().LiveEndpoint)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
		assert.Empty(t, body.Checks)
	})

	t.Run("below failure threshold", func(t *testing.T) {
		h := New()
		h.AddLivenessCheck("flaky", time.Second, failing("temporary"))
		runN(h.monitors[0], FailureThreshold-1)

		code, _ := serve(t, h.LiveEndpoint)
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("failing", func(t *testing.T) {
		h := New()
		h.AddLivenessCheck("goroutines", time.Second, failing("too many"))
		h.AddReadinessCheck("postgres", time.Second, failing("connection refused"))
		runN(h.monitors[0], FailureThreshold)
		runN(h.monitors[1], FailureThreshold)

		code, body := serve(t, h.LiveEndpoint)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", body.Status)
		assert.Equal(t, map[string]string{"goroutines": "too many"}, body.Checks)
	})
}

func TestReadyEndpoint(t *testing.T) {
	t.Run("not marked ready", func(t *testing.T) {
		h := New()
		h.AddReadinessCheck("postgres", time.Second, passing)

		code, body := serve(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Contains(t, body.Checks, "_readiness")
	})

	t.Run("ready", func(t *testing.T) {
		h := New()
		h.AddReadinessCheck("postgres", time.Second, passing)
		h.SetReady(true)

		code, body := serve(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "ok", body.Status)
	})

	t.Run("one of two failing", func(t *testing.T) {
		h := New()
		h.AddReadinessCheck("postgres", time.Second, passing)
		h.AddReadinessCheck("secret", time.Second, failing("missing"))
		h.SetReady(true)
		runN(h.monitors[1], FailureThreshold)

		code, body := serve(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, map[string]string{"secret": "missing"}, body.Checks)
	})

	t.Run("drain", func(t *testing.T) {
		h := New()
		h.SetReady(true)
		code, _ := serve(t, h.ReadyEndpoint)
		require.Equal(t, http.StatusOK, code)

		h.SetReady(false)
		code, _ = serve(t, h.ReadyEndpoint)
		assert.Equal(t, http.StatusServiceUnavailable, code)
	})
}

func TestMonitor_Recovers(t *testing.T) {
	down := true
	h := New()
	h.AddLivenessCheck("flaky", time.Second, func(context.Context) error {
		if down {
			return errors.New("down")
		}
		return nil
	})
	p := h.monitors[0]

	runN(p, FailureThreshold)
	msg, failed := p.failure()
	require.True(t, failed)
	assert.Equal(t, "down", msg)

	down = false
	runN(p, SuccessThreshold)
	_, failed = p.failure()
	assert.False(t, failed)
}

func TestIsReady(t *testing.T) {
	h := New()
	h.AddReadinessCheck("postgres", time.Second, failing("down"))
	assert.False(t, h.IsReady())

	h.SetReady(true)
	assert.True(t, h.IsReady(), "checks start healthy")

	runN(h.monitors[0], FailureThreshold)
	assert.False(t, h.IsReady())
}

func TestStartStop_Concurrent(t *testing.T) {
	h := New()
	h.AddLivenessCheck("live", time.Second, failing("err"))
	h.AddReadinessCheck("ready", time.Second, passing)
	h.SetReady(true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.Start(ctx, 5*time.Millisecond)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				h.IsReady()
				h.LiveEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/livez", nil))
				h.ReadyEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", nil))
			}
		}()
	}
	wg.Wait()

	h.Stop()
	h.Stop()
}

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, GoroutineCountCheck(100000)(ctx))
	err := GoroutineCountCheck(0)(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds threshold")

	assert.NoError(t, GCMaxPauseCheck(time.Hour)(ctx))

	assert.NoError(t, PingCheck(passing)(ctx))
	assert.ErrorContains(t, PingCheck(failing("refused"))(ctx), "ping: refused")
}
