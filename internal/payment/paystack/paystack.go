package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://api.paystack.co"

var (
	ErrConfigInvalid    = errors.New("paystack config invalid")
	ErrRequestFailed    = errors.New("paystack request failed")
	ErrResponseInvalid  = errors.New("paystack response invalid")
	ErrSignatureInvalid = errors.New("paystack signature invalid")
)

// Config holds gateway credentials.
type Config struct {
	BaseURL     string `json:"base_url"`
	SecretKey   string `json:"secret_key"`
	PublicKey   string `json:"public_key"`
	CallbackURL string `json:"callback_url"`
	TimeoutMS   int    `json:"timeout_ms"`
}

// Client is a minimal Paystack API client covering transaction
// initialization and verification.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a gateway client.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, ErrConfigInvalid
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// InitializeInput starts a hosted checkout transaction.
type InitializeInput struct {
	Reference string
	// Amount is in the major currency unit; Paystack expects kobo.
	Amount   decimal.Decimal
	Currency string
	Email    string
	Metadata map[string]interface{}
}

// InitializeResult is the hosted checkout hand-off.
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is the outcome of a transaction lookup.
type VerifyResult struct {
	Status    string
	Reference string
	// Amount is converted back to the major unit.
	Amount   decimal.Decimal
	Currency string
	PaidAt   string
	Channel  string
}

// Success reports whether the transaction settled.
func (r VerifyResult) Success() bool {
	return strings.EqualFold(r.Status, "success")
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Initialize creates a transaction and returns the hosted checkout URL.
func (c *Client) Initialize(ctx context.Context, input InitializeInput) (*InitializeResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Reference) == "" {
		return nil, ErrConfigInvalid
	}
	payload := map[string]interface{}{
		"reference": input.Reference,
		"amount":    input.Amount.Mul(decimal.NewFromInt(100)).Round(0).String(),
		"currency":  input.Currency,
		"email":     input.Email,
	}
	if c.cfg.CallbackURL != "" {
		payload["callback_url"] = c.cfg.CallbackURL
	}
	if len(input.Metadata) > 0 {
		payload["metadata"] = input.Metadata
	}

	data, err := c.post(ctx, "/transaction/initialize", payload)
	if err != nil {
		return nil, err
	}

	var out struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, ErrResponseInvalid
	}
	if out.AuthorizationURL == "" {
		return nil, ErrResponseInvalid
	}
	return &InitializeResult{
		AuthorizationURL: out.AuthorizationURL,
		AccessCode:       out.AccessCode,
		Reference:        out.Reference,
	}, nil
}

// Verify looks up a transaction by reference.
func (c *Client) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrConfigInvalid
	}
	data, err := c.get(ctx, "/transaction/verify/"+reference)
	if err != nil {
		return nil, err
	}

	var out struct {
		Status    string      `json:"status"`
		Reference string      `json:"reference"`
		Amount    json.Number `json:"amount"`
		Currency  string      `json:"currency"`
		PaidAt    string      `json:"paid_at"`
		Channel   string      `json:"channel"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, ErrResponseInvalid
	}

	minor, err := decimal.NewFromString(out.Amount.String())
	if err != nil {
		minor = decimal.Zero
	}
	return &VerifyResult{
		Status:    out.Status,
		Reference: out.Reference,
		Amount:    minor.Div(decimal.NewFromInt(100)),
		Currency:  out.Currency,
		PaidAt:    out.PaidAt,
		Channel:   out.Channel,
	}, nil
}

// VerifyWebhookSignature checks the x-paystack-signature header, an
// HMAC-SHA512 of the raw body keyed with the secret key.
func (c *Client) VerifyWebhookSignature(body []byte, signature string) error {
	mac := hmac.New(sha512.New, []byte(c.cfg.SecretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(strings.TrimSpace(signature))) {
		return ErrSignatureInvalid
	}
	return nil
}

// WebhookEvent is a decoded webhook payload.
type WebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string      `json:"reference"`
		Status    string      `json:"status"`
		Amount    json.Number `json:"amount"`
		Currency  string      `json:"currency"`
	} `json:"data"`
}

// ParseWebhook decodes a webhook body after signature verification.
func ParseWebhook(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, ErrResponseInvalid
	}
	if event.Event == "" {
		return nil, ErrResponseInvalid
	}
	return &event, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, ErrResponseInvalid
	}
	if resp.StatusCode >= http.StatusBadRequest || !envelope.Status {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, envelope.Message)
	}
	return envelope.Data, nil
}
