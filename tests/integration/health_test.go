//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestLivez(t *testing.T) {
	resp := doGet(t, "/livez")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeJSON[healthResponse](t, resp)
	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %q", body.Status)
	}
}

func TestReadyz(t *testing.T) {
	resp := doGet(t, "/readyz")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body := decodeJSON[healthResponse](t, resp)
	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %q", body.Status)
	}
}

func TestWebhookTestEndpoint(t *testing.T) {
	resp := doGet(t, "/api/webhooks/test")
	defer resp.Body.Close()

	expectStatus(t, resp, http.StatusOK)

	body := decodeJSON[struct {
		Success          bool `json:"success"`
		SecretConfigured bool `json:"secretConfigured"`
	}](t, resp)
	if !body.Success || !body.SecretConfigured {
		t.Fatalf("expected a configured receiver, got %+v", body)
	}
}
