// Package payment provides payment provider implementations.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/application/checkout"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
	"github.com/Tanner253/BigsAckies-sub001/internal/infrastructure/config"
)

// Ensure StripeProvider implements PaymentProvider
var _ checkout.PaymentProvider = (*StripeProvider)(nil)

// StripeProvider implements PaymentProvider using Stripe payment intents
type StripeProvider struct {
	client *client.API
	logger *zap.Logger
}

// NewStripeProvider creates a Stripe-backed payment provider
func NewStripeProvider(cfg config.StripeConfig, logger *zap.Logger) *StripeProvider {
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)

	return &StripeProvider{
		client: sc,
		logger: logger.Named("stripe"),
	}
}

// CreateIntent registers a payment intent for the given amount in cents.
// Provider errors are logged with detail and surfaced to callers as a
// payment-provider domain error so nothing internal leaks to clients.
func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*checkout.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := p.client.PaymentIntents.New(params)
	if err != nil {
		p.logger.Error("Failed to create payment intent",
			zap.Int64("amount_cents", amountCents),
			zap.String("currency", currency),
			zap.Error(err),
		)
		return nil, shared.ErrPaymentProvider
	}

	return &checkout.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}
