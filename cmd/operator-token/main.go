// Command operator-token issues a bearer token for the operator endpoints.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xenking/satdesk-webhooks/internal/domain/auth"
)

func main() {
	var (
		subject string
		secret  string
		ttl     time.Duration
	)

	flag.StringVar(&subject, "subject", "", "operator name recorded in the token")
	flag.StringVar(&secret, "secret", "", "token signing secret (or SATDESK_OPERATOR_JWT_SECRET env)")
	flag.DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if secret == "" {
		secret = os.Getenv("SATDESK_OPERATOR_JWT_SECRET")
	}
	if secret == "" {
		slog.Error("secret is required: set --secret or SATDESK_OPERATOR_JWT_SECRET")
		os.Exit(1)
	}

	token, err := auth.NewTokens(secret).Issue(subject, ttl)
	if err != nil {
		slog.Error("issue token failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
