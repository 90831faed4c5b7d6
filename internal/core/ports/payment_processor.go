package ports

import "context"

// PaymentProcessor is the boundary to the external payment provider. The core
// requires only intent creation; capture, webhooks and retries belong to the
// provider and the caller.
type PaymentProcessor interface {
	// CreatePaymentIntent opens a payment of the given amount (in minor
	// units) and currency with the provider and returns the client secret
	// the front end needs to complete it. The call is synchronous; the core
	// does not retry it.
	CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (clientSecret string, err error)
}
