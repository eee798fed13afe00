package payment

import (
	"context"
	"errors"
	"testing"

	stripe "github.com/stripe/stripe-go/v74"
)

func TestBuildIntentParams(t *testing.T) {
	req := &IntentRequest{
		Amount:       1000,
		Currency:     "usd",
		ReceiptEmail: "donor@example.com",
		Description:  "Monthly Donation",
		Metadata: map[string]string{
			"donor_name":  "A",
			"donor_email": "donor@example.com",
			"recurring":   "monthly",
		},
	}

	params := buildIntentParams(context.Background(), req)

	if *params.Amount != 1000 {
		t.Fatalf("Wrong amount: %d", *params.Amount)
	}
	if *params.Currency != "usd" {
		t.Fatalf("Wrong currency: %q", *params.Currency)
	}
	if *params.Description != "Monthly Donation" {
		t.Fatalf("Wrong description: %q", *params.Description)
	}
	if *params.ReceiptEmail != "donor@example.com" {
		t.Fatalf("Wrong receipt email: %q", *params.ReceiptEmail)
	}
	if params.Metadata["recurring"] != "monthly" {
		t.Fatalf("Wrong recurring tag: %q", params.Metadata["recurring"])
	}
}

func TestBuildIntentParamsNoEmail(t *testing.T) {
	params := buildIntentParams(context.Background(), &IntentRequest{
		Amount:      50,
		Currency:    "usd",
		Description: "One-Time Donation",
	})
	if params.ReceiptEmail != nil {
		t.Fatal("Receipt email should be omitted when the donor gave none")
	}
}

func TestErrorMessage(t *testing.T) {
	err := &stripe.Error{Msg: "Invalid API Key provided"}
	if msg := ErrorMessage(err); msg != "Invalid API Key provided" {
		t.Fatalf("Wrong processor message: %q", msg)
	}
	if msg := ErrorMessage(errors.New("connection refused")); msg != "connection refused" {
		t.Fatalf("Wrong fallback message: %q", msg)
	}
}
