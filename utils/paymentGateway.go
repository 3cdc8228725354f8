package utils

import (
	"ecolearner/config"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// PaymentGateway creates payment intents with an upstream processor.
// Amounts are in minor units (cents).
type PaymentGateway interface {
	CreateIntent(amountMinorUnits int64, currency string) (PaymentIntent, error)
}

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type gatewayError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// StripeGateway talks to the Stripe payment-intents API
type StripeGateway struct {
	client *resty.Client
}

func NewStripeGateway(cfg *config.Config) *StripeGateway {
	client := resty.New().
		SetBaseURL(cfg.PaymentApiURL).
		SetAuthToken(cfg.PaymentSecretKey)

	return &StripeGateway{client: client}
}

// CreateIntent creates a payment intent and returns its client secret.
// No retries here; a failed intent is re-initiated by the client.
func (g *StripeGateway) CreateIntent(amountMinorUnits int64, currency string) (PaymentIntent, error) {
	var intent PaymentIntent
	var apiErr gatewayError

	resp, err := g.client.R().
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(map[string]string{
			"amount":                 strconv.FormatInt(amountMinorUnits, 10),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&intent).
		SetError(&apiErr).
		Post("/v1/payment_intents")

	if err != nil {
		return PaymentIntent{}, fmt.Errorf("payment gateway request failed: %w", err)
	}
	if resp.IsError() {
		if apiErr.Error.Message != "" {
			return PaymentIntent{}, fmt.Errorf("payment gateway error: %s", apiErr.Error.Message)
		}
		return PaymentIntent{}, fmt.Errorf("payment gateway error: status %d", resp.StatusCode())
	}
	if intent.ClientSecret == "" {
		return PaymentIntent{}, fmt.Errorf("payment gateway returned no client secret")
	}

	return intent, nil
}
