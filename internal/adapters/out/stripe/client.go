// Package stripe implements the payment provider boundary against the
// Stripe REST API. Only payment intent creation is needed; capture and
// webhooks are handled by the front end and the provider.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"parcelpilot/internal/pkg/errs"
)

const (
	paymentIntentsURL = "https://api.stripe.com/v1/payment_intents"
	requestTimeout    = 15 * time.Second
)

// ErrPaymentProviderUnavailable wraps transport and provider-side failures
// so callers can map them to a single upstream error.
var ErrPaymentProviderUnavailable = errors.New("payment provider unavailable")

// Client calls the Stripe payment intents endpoint. It implements
// ports.PaymentProcessor.
type Client struct {
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a Stripe client with the given API secret key.
func NewClient(secretKey string) (*Client, error) {
	if secretKey == "" {
		return nil, errs.NewValueIsRequiredError("secretKey")
	}

	return &Client{
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// CreatePaymentIntent opens a payment intent and returns its client secret.
// Amount is in the currency's minor units, per the provider's convention.
func (c *Client) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	if amountMinorUnits <= 0 {
		return "", errs.NewValueIsOutOfRangeError("amountMinorUnits", amountMinorUnits, 1, nil)
	}
	if currency == "" {
		return "", errs.NewValueIsRequiredError("currency")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinorUnits, 10))
	form.Set("currency", strings.ToLower(currency))
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		paymentIntentsURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPaymentProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var body struct {
		ClientSecret string `json:"client_secret"`
		Error        struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPaymentProviderUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrPaymentProviderUnavailable, body.Error.Message)
	}
	if body.ClientSecret == "" {
		return "", fmt.Errorf("%w: response carried no client secret", ErrPaymentProviderUnavailable)
	}

	return body.ClientSecret, nil
}
