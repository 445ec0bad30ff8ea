package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(Config{
		BaseURL:   baseURL,
		SecretKey: "sk_test_secret",
	})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	return client
}

func TestInitializeConvertsAmountToKobo(t *testing.T) {
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer sk_test_secret" {
			t.Errorf("missing bearer auth, got %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload failed: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Authorization URL created",
			"data": {
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code": "abc123",
				"reference": "SM20260829120000123456"
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Initialize(context.Background(), InitializeInput{
		Reference: "SM20260829120000123456",
		Amount:    decimal.RequireFromString("95000.00"),
		Currency:  "NGN",
		Email:     "ada@example.com",
	})
	if err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if result.AuthorizationURL != "https://checkout.paystack.com/abc123" {
		t.Fatalf("unexpected authorization url %s", result.AuthorizationURL)
	}
	if gotPayload["amount"] != "9500000" {
		t.Fatalf("expected amount in kobo 9500000, got %v", gotPayload["amount"])
	}
}

func TestVerifyConvertsAmountToMajorUnit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/SM123" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "success",
				"reference": "SM123",
				"amount": 9500000,
				"currency": "NGN",
				"channel": "card"
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Verify(context.Background(), "SM123")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !result.Success() {
		t.Fatalf("expected success, got status %s", result.Status)
	}
	if !result.Amount.Equal(decimal.RequireFromString("95000")) {
		t.Fatalf("expected amount 95000, got %s", result.Amount.String())
	}
}

func TestVerifyFailedTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"status": "abandoned",
				"reference": "SM456",
				"amount": 100000,
				"currency": "NGN"
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Verify(context.Background(), "SM456")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.Success() {
		t.Fatalf("abandoned transaction must not count as success")
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	client := newTestClient(t, "https://api.paystack.co")
	body := []byte(`{"event":"charge.success","data":{"reference":"SM789","status":"success","amount":250000,"currency":"NGN"}}`)

	mac := hmac.New(sha512.New, []byte("sk_test_secret"))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	if err := client.VerifyWebhookSignature(body, signature); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
	if err := client.VerifyWebhookSignature(body, signature+"00"); err != ErrSignatureInvalid {
		t.Fatalf("expected ErrSignatureInvalid for tampered signature, got %v", err)
	}
	if err := client.VerifyWebhookSignature(append(body, ' '), signature); err != ErrSignatureInvalid {
		t.Fatalf("expected ErrSignatureInvalid for tampered body, got %v", err)
	}
}

func TestParseWebhook(t *testing.T) {
	event, err := ParseWebhook([]byte(`{"event":"charge.success","data":{"reference":"SM789","status":"success","amount":250000,"currency":"NGN"}}`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if event.Event != "charge.success" || event.Data.Reference != "SM789" {
		t.Fatalf("unexpected event %+v", event)
	}

	if _, err := ParseWebhook([]byte(`{}`)); err != ErrResponseInvalid {
		t.Fatalf("expected ErrResponseInvalid for empty event, got %v", err)
	}
	if _, err := ParseWebhook([]byte(`not-json`)); err != ErrResponseInvalid {
		t.Fatalf("expected ErrResponseInvalid for bad json, got %v", err)
	}
}

func TestNewClientRequiresSecret(t *testing.T) {
	if _, err := NewClient(Config{}); err != ErrConfigInvalid {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}
