package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Intent is the gateway's view of a created payment intent. ClientSecret is
// what the frontend needs to complete the payment.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// IntentCreator creates payment intents at the external gateway.
type IntentCreator interface {
	Create(ctx context.Context, amount decimal.Decimal, currency string) (*Intent, error)
}

// PaymentIntents is an HTTP client for the payment-intent gateway.
type PaymentIntents struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// Ensure PaymentIntents implements IntentCreator
var _ IntentCreator = (*PaymentIntents)(nil)

// NewPaymentIntents creates a gateway client.
func NewPaymentIntents(baseURL, secretKey string) *PaymentIntents {
	return &PaymentIntents{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Create asks the gateway for a payment intent. The amount is converted to
// the gateway's minor currency units.
func (g *PaymentIntents) Create(ctx context.Context, amount decimal.Decimal, currency string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount.Mul(decimal.NewFromInt(100)).IntPart(), 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var gwErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &gwErr); err == nil && gwErr.Error.Message != "" {
			return nil, fmt.Errorf("payment gateway: %s", gwErr.Error.Message)
		}
		return nil, fmt.Errorf("payment gateway: unexpected status %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("parse gateway response: %w", err)
	}
	return &intent, nil
}
