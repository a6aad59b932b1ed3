// Command webhook-replay re-sends archived webhook deliveries to a receiver.
// Archives are gzip-compressed files with one raw delivery body per line.
// Each body is signed again with a fresh timestamp.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"
)

func main() {
	var (
		target      string
		secret      string
		concurrency int
		timeout     time.Duration
		retries     int
	)

	flag.StringVar(&target, "target", "http://localhost:8080", "receiver base URL")
	flag.StringVar(&secret, "secret", "", "webhook signing secret (or WEBHOOK_SECRET env)")
	flag.IntVar(&concurrency, "concurrency", 8, "delivery workers; each order id stays on one worker")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "per-delivery HTTP timeout")
	flag.IntVar(&retries, "retries", 5, "retries per delivery on transport errors, 429 and 5xx responses")
	flag.Parse()

	if secret == "" {
		secret = os.Getenv("WEBHOOK_SECRET")
	}
	if secret == "" {
		slog.Error("webhook secret is required: set --secret or WEBHOOK_SECRET")
		os.Exit(1)
	}
	if flag.NArg() == 0 {
		slog.Error("usage: webhook-replay [flags] archive.ndjson.gz...")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	r := newReplayer(newClient(target, timeout, retries), secret, concurrency)
	report, err := r.Run(ctx, flag.Args())
	if err != nil {
		slog.Error("replay failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("replay completed",
		slog.Int64("sent", report.Sent),
		slog.Int64("failed", report.Failed),
		slog.Int64("skipped", report.Skipped),
		slog.Int64("distinct_orders", report.DistinctOrders),
	)
	if report.Failed > 0 {
		os.Exit(2)
	}
}
