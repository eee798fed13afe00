package payment

import (
	"context"
	"errors"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

var _ Provider = &stripeProvider{}

type stripeProvider struct {
	sc *client.API
}

// NewStripeProvider builds a Provider backed by the Stripe API. The key is
// read once at startup; the handle is read-only afterwards.
func NewStripeProvider(secretKey string) Provider {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &stripeProvider{sc: sc}
}

func (p *stripeProvider) CreateIntent(ctx context.Context, req *IntentRequest) (*IntentResponse, error) {
	intent, err := p.sc.PaymentIntents.New(buildIntentParams(ctx, req))
	if err != nil {
		return nil, err
	}
	return &IntentResponse{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

func buildIntentParams(ctx context.Context, req *IntentRequest) *stripe.PaymentIntentParams {
	params := &stripe.PaymentIntentParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}

// ErrorMessage unwraps the processor's own error text. It is surfaced
// verbatim to the donor, matching what the processor would tell them.
func ErrorMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
