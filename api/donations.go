package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Care4Youth/care4youth"
	"github.com/Care4Youth/care4youth/internal/config"
	"github.com/Care4Youth/care4youth/payment"
)

// createPaymentIntent validates the donation and asks the processor for a
// payment intent. The returned client secret lets the donate page finish
// the charge with the processor's browser library.
//
// The endpoint is unauthenticated and attaches no idempotency key:
// resubmitting the same form creates a fresh, independent intent.
func (s *API) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req care4youth.DonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorData(w, care4youth.ErrInvalidJSON, http.StatusBadRequest)
		return
	}

	// Floor check happens before any processor call: guaranteed-invalid
	// amounts never cost an API round-trip.
	if req.Amount < care4youth.MinimumDonationCents {
		errorData(w, care4youth.ErrAmountTooSmall, http.StatusBadRequest)
		return
	}

	dtype := care4youth.DonationTypeFromMonthly(req.IsMonthly)
	intent, err := s.payments.CreateIntent(r.Context(), &payment.IntentRequest{
		Amount:       req.AmountCents(),
		Currency:     config.C.Stripe.Currency,
		ReceiptEmail: req.Email,
		Description:  dtype.Description(),
		Metadata: map[string]string{
			"donor_name":  req.Name,
			"donor_email": req.Email,
			"recurring":   string(dtype),
		},
	})
	if err != nil {
		slog.WarnContext(r.Context(), "Couldn't create payment intent", slog.Any("err", err))
		errorData(w, payment.ErrorMessage(err), http.StatusInternalServerError)
		return
	}

	returnData(w, struct {
		ClientSecret string `json:"clientSecret"`
	}{intent.ClientSecret})
}

// donationSettings hands the donate page its processor publishable key and
// the preset giving levels.
func (s *API) donationSettings(w http.ResponseWriter, r *http.Request) {
	returnData(w, struct {
		PublishableKey string                    `json:"publishableKey"`
		Currency       string                    `json:"currency"`
		Tiers          []care4youth.DonationTier `json:"tiers"`
	}{
		PublishableKey: config.C.Stripe.PublishableKey,
		Currency:       config.C.Stripe.Currency,
		Tiers:          care4youth.DonationTiers,
	})
}
