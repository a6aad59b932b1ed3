package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	pgzip "github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/xenking/satdesk-webhooks/gen/oas"
	"github.com/xenking/satdesk-webhooks/internal/domain/order"
	"github.com/xenking/satdesk-webhooks/internal/handler"
	"github.com/xenking/satdesk-webhooks/internal/storage/memory"
	"github.com/xenking/satdesk-webhooks/internal/webhook"
	"github.com/xenking/satdesk-webhooks/pkg/httpmiddleware"
)

const testSecret = "whsec_replay"

func writeArchive(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deliveries.ndjson.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func startReceiver(t *testing.T, secret string, middlewares ...httpmiddleware.Middleware) (*httptest.Server, *memory.OrderRepository) {
	t.Helper()
	repo := memory.NewOrderRepository()
	verifier := webhook.NewVerifier(secret, 0)
	h, err := handler.NewHandler(handler.HandlerConfig{}, order.NewService(repo), verifier,
		noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	api, err := oas.NewServer(h, handler.NewSecurityHandler(verifier, nil),
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(handler.HandleError),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(httpmiddleware.Wrap(h.Deliveries(api), middlewares...))
	t.Cleanup(srv.Close)
	return srv, repo
}

func delivery(id, total string) string {
	return `{"order":{"orderId":"` + id + `","orderDate":"2026-03-09"},"customer":{},"rental":{},"payment":{"total":` + total + `}}`
}

func TestReplayer_Run(t *testing.T) {
	srv, repo := startReceiver(t, testSecret)
	archive := writeArchive(t,
		delivery("W-1", "250"),
		"",
		"not json",
		delivery("W-2", "80"),
		delivery("W-1", "300"),
	)

	r := newReplayer(resty.New().SetBaseURL(srv.URL), testSecret, 1)
	report, err := r.Run(context.Background(), []string{archive})
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.Sent)
	assert.Equal(t, int64(0), report.Failed)
	assert.Equal(t, int64(1), report.Skipped)
	assert.Equal(t, int64(2), report.DistinctOrders)
	assert.Equal(t, 2, repo.Len())

	o, err := repo.Get(context.Background(), "W-1")
	require.NoError(t, err)
	assert.Equal(t, "300", o.Rental.EstimatedAmount.String())
}

func TestReplayer_CountsRejections(t *testing.T) {
	srv, repo := startReceiver(t, testSecret)
	archive := writeArchive(t, delivery("W-1", "1"), delivery("W-2", "2"))

	r := newReplayer(resty.New().SetBaseURL(srv.URL), "wrong", 4)
	report, err := r.Run(context.Background(), []string{archive})
	require.NoError(t, err)

	assert.Equal(t, int64(0), report.Sent)
	assert.Equal(t, int64(2), report.Failed)
	assert.Equal(t, 0, repo.Len())
}

func TestReplayer_MissingArchive(t *testing.T) {
	r := newReplayer(resty.New(), testSecret, 1)
	_, err := r.Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing.gz")})
	require.Error(t, err)
}

func TestReplayer_KeepsArchiveOrderPerOrder(t *testing.T) {
	srv, repo := startReceiver(t, testSecret)

	var lines []string
	for total := 1; total <= 50; total++ {
		lines = append(lines, delivery("W-1", strconv.Itoa(total)))
		lines = append(lines, delivery(fmt.Sprintf("W-other-%d", total), strconv.Itoa(total)))
	}
	archive := writeArchive(t, lines...)

	r := newReplayer(resty.New().SetBaseURL(srv.URL), testSecret, 8)
	report, err := r.Run(context.Background(), []string{archive})
	require.NoError(t, err)

	assert.Equal(t, int64(100), report.Sent)
	assert.Equal(t, int64(0), report.Failed)
	assert.Equal(t, 51, repo.Len())

	o, err := repo.Get(context.Background(), "W-1")
	require.NoError(t, err)
	assert.Equal(t, "50", o.Rental.EstimatedAmount.String())
}

func TestPartition(t *testing.T) {
	for _, id := range []string{"W-1", "W-2", "order-9000"} {
		p := partition(id, 8)
		assert.GreaterOrEqual(t, p, 0)
		assert.Less(t, p, 8)
		assert.Equal(t, p, partition(id, 8))
	}
	assert.Equal(t, 0, partition("W-1", 1))
}

func manyDeliveries(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = delivery(fmt.Sprintf("W-%d", i), "10")
	}
	return lines
}

func TestReplayer_DeliveriesBypassRateLimit(t *testing.T) {
	srv, repo := startReceiver(t, testSecret, httpmiddleware.RateLimit(httpmiddleware.RateLimitConfig{
		Max:    100,
		Window: time.Minute,
		Skip:   handler.IsDelivery,
	}))
	archive := writeArchive(t, manyDeliveries(150)...)

	r := newReplayer(newClient(srv.URL, 5*time.Second, 0), testSecret, 4)
	report, err := r.Run(context.Background(), []string{archive})
	require.NoError(t, err)

	assert.Equal(t, int64(150), report.Sent)
	assert.Equal(t, int64(0), report.Failed)
	assert.Equal(t, 150, repo.Len())
}

func TestReplayer_RetriesRateLimited(t *testing.T) {
	srv, repo := startReceiver(t, testSecret, httpmiddleware.RateLimit(httpmiddleware.RateLimitConfig{
		Max:    5,
		Window: 100 * time.Millisecond,
	}))
	archive := writeArchive(t, manyDeliveries(30)...)

	client := newClient(srv.URL, 5*time.Second, 50).
		SetRetryWaitTime(10 * time.Millisecond).
		SetRetryMaxWaitTime(50 * time.Millisecond)
	r := newReplayer(client, testSecret, 4)
	report, err := r.Run(context.Background(), []string{archive})
	require.NoError(t, err)

	assert.Equal(t, int64(30), report.Sent)
	assert.Equal(t, int64(0), report.Failed)
	assert.Equal(t, 30, repo.Len())
}

func TestRetryAfter(t *testing.T) {
	resp := func(header string) *resty.Response {
		h := http.Header{}
		if header != "" {
			h.Set("Retry-After", header)
		}
		return &resty.Response{RawResponse: &http.Response{Header: h}}
	}

	d, err := retryAfter(nil, resp("3"))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)

	for _, header := range []string{"", "soon", "0"} {
		d, err = retryAfter(nil, resp(header))
		require.NoError(t, err)
		assert.Zero(t, d, header)
	}
}
