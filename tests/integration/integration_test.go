//go:build integration

package integration

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	tc "github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Secrets configured for the api service in docker-compose.yml.
const (
	webhookSecret  = "integration-secret"
	operatorSecret = "integration-operator-secret"
)

var (
	baseURL       string
	httpClient    *http.Client
	operatorToken string
)

// Local copies of the JSON shapes; the suite talks to the container only.

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type acceptedResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type orderResponse struct {
	ID            string           `json:"id"`
	OrderNumber   string           `json:"orderNumber"`
	Source        string           `json:"source"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	Customer      customerResponse `json:"customer"`
	Rental        rentalResponse   `json:"rental"`
	RentalID      *string          `json:"rentalId"`
	AssignedIMEIs []string         `json:"assignedImeis"`
	UpdatedAt     *time.Time       `json:"updatedAt"`
	CancelReason  *string          `json:"cancelReason"`
	CancelledAt   *time.Time       `json:"cancelledAt"`
}

type customerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type rentalResponse struct {
	DeviceCount     int     `json:"deviceCount"`
	EstimatedAmount float64 `json:"estimatedAmount"`
}

type statsResponse struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"byStatus"`
	Last24Hours int            `json:"last24Hours"`
	Last7Days   int            `json:"last7Days"`
}

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	dc, err := tc.NewDockerCompose("docker-compose.yml")
	if err != nil {
		log.Fatalf("compose init: %v", err)
	}

	// Start postgres + api, wait until the API readiness check passes.
	err = dc.
		WaitForService("api", wait.ForHTTP("/readyz").WithPort("8080/tcp")).
		Up(ctx, tc.Wait(true))
	if err != nil {
		log.Fatalf("compose up: %v", err)
	}

	apiContainer, err := dc.ServiceContainer(ctx, "api")
	if err != nil {
		log.Fatalf("api container: %v", err)
	}

	host, err := apiContainer.Host(ctx)
	if err != nil {
		log.Fatalf("host: %v", err)
	}

	mappedPort, err := apiContainer.MappedPort(ctx, "8080/tcp")
	if err != nil {
		log.Fatalf("mapped port: %v", err)
	}

	baseURL = fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
	httpClient = &http.Client{Timeout: 10 * time.Second}
	log.Printf("API available at %s", baseURL)

	operatorToken, err = issueOperatorToken("integration", time.Hour)
	if err != nil {
		log.Fatalf("issue operator token: %v", err)
	}

	result := m.Run()

	stopTimeout := 30 * time.Second
	if err := apiContainer.Stop(ctx, &stopTimeout); err != nil {
		log.Printf("stop api container: %v", err)
	}

	if err := dc.Down(context.Background(), tc.RemoveOrphans(true)); err != nil {
		log.Printf("compose down: %v", err)
	}

	return result
}

// issueOperatorToken mints an HS256 operator token the way cmd/operator-token
// does.
func issueOperatorToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  "satdesk-webhooks",
		"sub":  subject,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"role": "operator",
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(operatorSecret))
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// HTTP helpers.

func do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}

	return resp
}

func newRequest(t *testing.T, method, path string, body []byte) *http.Request {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

func doGet(t *testing.T, path string) *http.Response {
	t.Helper()

	return do(t, newRequest(t, http.MethodGet, path, nil))
}

// doOperator sends an operator request with a valid bearer token.
func doOperator(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var data []byte
	if body != nil {
		var err error
		if data, err = json.Marshal(body); err != nil {
			t.Fatalf("marshal body: %v", err)
		}
	}

	req := newRequest(t, method, path, data)
	req.Header.Set("Authorization", "Bearer "+operatorToken)

	return do(t, req)
}

// deliver posts a webhook body signed with secret at signedAt.
func deliver(t *testing.T, body []byte, secret string, signedAt time.Time) *http.Response {
	t.Helper()

	req := newRequest(t, http.MethodPost, "/api/webhooks/orders", body)
	req.Header.Set("X-Webhook-Signature", sign(secret, body))
	req.Header.Set("X-Webhook-Timestamp", strconv.FormatInt(signedAt.Unix(), 10))

	return do(t, req)
}

func orderPayload(t *testing.T, id string, total float64, orderDate time.Time) []byte {
	t.Helper()

	data, err := json.Marshal(map[string]any{
		"order": map[string]any{
			"orderId":     id,
			"orderNumber": "SD-" + id,
			"orderDate":   orderDate.UTC().Format(time.RFC3339),
		},
		"customer": map[string]any{
			"firstName": "Ana",
			"lastName":  "Silva",
			"email":     "ana@example.com",
		},
		"rental": map[string]any{
			"startDate":   "2026-04-01",
			"endDate":     "2026-04-15",
			"duration":    14,
			"deviceCount": 2,
		},
		"payment": map[string]any{
			"method":   "card",
			"status":   "paid",
			"total":    total,
			"currency": "EUR",
		},
		"metadata": map[string]any{"source": "integration"},
	})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	return data
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	return v
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()

	if resp.StatusCode != want {
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		t.Fatalf("expected %d, got %d (%q)", want, resp.StatusCode, body.Message)
	}
}
