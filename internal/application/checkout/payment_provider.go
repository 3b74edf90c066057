package checkout

import "context"

// PaymentIntent is the provider-side handle for a pending payment.
// ClientSecret is handed to the storefront so the customer can complete the
// payment directly with the provider.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
}

// PaymentProvider abstracts the hosted payment API. The production
// implementation talks to Stripe; tests substitute a fake.
type PaymentProvider interface {
	// CreateIntent registers a pending payment for the given amount.
	// The amount is in the currency's minor unit (cents).
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*PaymentIntent, error)
}
