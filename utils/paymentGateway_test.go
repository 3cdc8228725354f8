package utils_test

import (
	"ecolearner/testutil"
	"ecolearner/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeGatewayCreateIntent(t *testing.T) {
	var gotPath, gotAuth, gotIdempotency, gotAmount, gotCurrency string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")

		_ = r.ParseForm()
		gotAmount = r.PostForm.Get("amount")
		gotCurrency = r.PostForm.Get("currency")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret"}`))
	}))
	defer server.Close()

	cfg := testutil.NewTestConfig()
	cfg.PaymentApiURL = server.URL
	cfg.PaymentSecretKey = "sk_test_abc"

	gateway := utils.NewStripeGateway(cfg)

	intent, err := gateway.CreateIntent(5000, "usd")
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)

	assert.Equal(t, "/v1/payment_intents", gotPath)
	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
	assert.NotEmpty(t, gotIdempotency)
	assert.Equal(t, "5000", gotAmount)
	assert.Equal(t, "usd", gotCurrency)
}

func TestStripeGatewaySurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
	}))
	defer server.Close()

	cfg := testutil.NewTestConfig()
	cfg.PaymentApiURL = server.URL
	cfg.PaymentSecretKey = "sk_test_abc"

	gateway := utils.NewStripeGateway(cfg)

	_, err := gateway.CreateIntent(5000, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Your card was declined.")
}

func TestStripeGatewayRejectsEmptySecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123"}`))
	}))
	defer server.Close()

	cfg := testutil.NewTestConfig()
	cfg.PaymentApiURL = server.URL
	cfg.PaymentSecretKey = "sk_test_abc"

	gateway := utils.NewStripeGateway(cfg)

	_, err := gateway.CreateIntent(5000, "usd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no client secret")
}
