// Package payment is the boundary to the card processor. The rest of the
// code talks to the Provider interface so handlers can be tested without
// network access.
package payment

import "context"

var (
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresConfirmation  = "requires_confirmation"
	StatusRequiresAction        = "requires_action"
	StatusRequiresCapture       = "requires_capture"
	StatusSucceeded             = "succeeded"
	StatusProcessing            = "processing"
	StatusCanceled              = "canceled"
)

// IntentRequest describes a single charge attempt. Amount is an integer
// number of minor currency units; rounding happens before this point.
type IntentRequest struct {
	Amount       int64
	Currency     string
	ReceiptEmail string
	Description  string
	Metadata     map[string]string
}

type IntentResponse struct {
	ID           string
	ClientSecret string
	Status       string
}

// Provider creates payment intents. No deduplication key is sent, so two
// identical requests create two independent intents on the processor side.
type Provider interface {
	CreateIntent(ctx context.Context, req *IntentRequest) (*IntentResponse, error)
}
