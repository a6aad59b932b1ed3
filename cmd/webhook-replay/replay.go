package main

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/go-faster/errors"
	"github.com/go-resty/resty/v2"
	pgzip "github.com/klauspost/pgzip"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/satdesk-webhooks/internal/webhook"
)

const (
	deliveryPath  = "/api/webhooks/orders"
	maxLineBytes  = 1 << 20
	bloomCapacity = 1_000_000
	bloomFPR      = 0.001
	progressEvery = 1_000
	queueDepth    = 64
)

// Report summarises a replay run.
type Report struct {
	Sent    int64
	Failed  int64
	Skipped int64
	// DistinctOrders is approximate: ids are tracked in a bloom filter.
	DistinctOrders int64
}

// newClient returns a resty client for the receiver at target. Transport
// errors, 429 and 5xx responses are retried; a Retry-After header sets the
// wait before the next attempt.
func newClient(target string, timeout time.Duration, retries int) *resty.Client {
	return resty.New().
		SetBaseURL(target).
		SetTimeout(timeout).
		SetRetryCount(retries).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(time.Minute).
		SetRetryAfter(retryAfter).
		AddRetryCondition(shouldRetry)
}

func shouldRetry(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
}

// retryAfter reads a Retry-After header given in seconds. Zero falls back to
// resty's backoff.
func retryAfter(_ *resty.Client, r *resty.Response) (time.Duration, error) {
	if r == nil {
		return 0, nil
	}
	secs, err := strconv.Atoi(r.Header().Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0, nil
	}
	return time.Duration(secs) * time.Second, nil
}

type replayer struct {
	client      *resty.Client
	secret      []byte
	concurrency int
	now         func() time.Time

	sent   atomic.Int64
	failed atomic.Int64
}

func newReplayer(client *resty.Client, secret string, concurrency int) *replayer {
	if concurrency < 1 {
		concurrency = 1
	}
	return &replayer{
		client:      client,
		secret:      []byte(secret),
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Run streams every archive in order and delivers its lines on concurrency
// workers. Each order id is pinned to one worker, so deliveries for the same
// order reach the receiver in archive order and the newest one wins.
// Rejected deliveries are counted, not fatal; read errors abort the run.
func (r *replayer) Run(ctx context.Context, archives []string) (Report, error) {
	var (
		report Report
		seen   = bloom.NewWithEstimates(bloomCapacity, bloomFPR)
		queues = make([]chan job, r.concurrency)
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := range queues {
		queue := make(chan job, queueDepth)
		queues[i] = queue
		g.Go(func() error {
			for d := range queue {
				r.deliver(gctx, d.orderID, d.body)
			}
			return nil
		})
	}

	produce := func() error {
		defer func() {
			for _, queue := range queues {
				close(queue)
			}
		}()
		for _, path := range archives {
			err := streamArchive(gctx, path, func(line []byte) error {
				p, err := webhook.DecodePayload(line)
				if err != nil || p.Order == nil {
					report.Skipped++
					slog.Warn("skipping undecodable line", slog.String("archive", path))
					return nil
				}
				id := p.Order.OrderID
				if id == "" {
					id = p.Order.ID
				}
				if !seen.TestAndAddString(id) {
					report.DistinctOrders++
				}

				select {
				case queues[partition(id, len(queues))] <- job{orderID: id, body: bytes.Clone(line)}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return errors.Wrapf(err, "replay %s", path)
			}
		}
		return nil
	}

	err := produce()
	if waitErr := g.Wait(); err == nil {
		err = waitErr
	}
	report.Sent = r.sent.Load()
	report.Failed = r.failed.Load()
	if err != nil {
		return report, err
	}
	return report, ctx.Err()
}

type job struct {
	orderID string
	body    []byte
}

// partition maps an order id to a worker index.
func partition(orderID string, workers int) int {
	return int(xxhash.Sum64String(orderID) % uint64(workers))
}

func (r *replayer) deliver(ctx context.Context, orderID string, body []byte) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(webhook.SignatureHeader, webhook.Sign(r.secret, body)).
		SetHeader(webhook.TimestampHeader, strconv.FormatInt(r.now().Unix(), 10)).
		SetBody(body).
		Post(deliveryPath)

	switch {
	case err != nil:
		r.failed.Add(1)
		slog.Error("delivery failed", slog.String("order_id", orderID), slog.String("error", err.Error()))
	case resp.StatusCode() != http.StatusOK:
		r.failed.Add(1)
		slog.Error("delivery rejected",
			slog.String("order_id", orderID),
			slog.Int("status", resp.StatusCode()),
			slog.String("body", resp.String()),
		)
	default:
		if n := r.sent.Add(1); n%progressEvery == 0 {
			slog.Info("replay progress", slog.Int64("sent", n))
		}
	}
}

// streamArchive opens a gzip-compressed NDJSON file and calls fn for each
// non-empty line. The line slice is reused between calls. An error from fn
// stops the scan.
func streamArchive(ctx context.Context, path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrapf(err, "create gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "scan %s", path)
	}
	return nil
}
