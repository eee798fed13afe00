package care4youth

import "math"

type DonationType string

const (
	DonationTypeOneTime DonationType = "one-time"
	DonationTypeMonthly DonationType = "monthly"
)

func DonationTypeFromMonthly(monthly bool) DonationType {
	if monthly {
		return DonationTypeMonthly
	}
	return DonationTypeOneTime
}

// Description is the human-readable label attached to the payment intent.
func (t DonationType) Description() string {
	if t == DonationTypeMonthly {
		return "Monthly Donation"
	}
	return "One-Time Donation"
}

// DonationRequest is what the donate page sends to the API.
// Amount is in minor currency units (cents). The payment processor only
// accepts integer amounts, so fractional values are rounded before use.
type DonationRequest struct {
	Amount    float64 `json:"amount"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	IsMonthly bool    `json:"isMonthly"`
}

// AmountCents rounds the submitted amount to the nearest integer cent.
func (r *DonationRequest) AmountCents() int64 {
	return int64(math.Round(r.Amount))
}

// MinimumDonationCents is the floor for card transactions. Anything below
// it is rejected locally, without a processor round-trip.
const MinimumDonationCents = 50

type DonationTier struct {
	Title       string `json:"title"`
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description"`
}

// DonationTiers are the preset giving levels shown on the donate page.
var DonationTiers = []DonationTier{
	{Title: "Hope Builder", AmountCents: 2500, Description: "Provides school supplies for one child"},
	{Title: "Dream Supporter", AmountCents: 5000, Description: "Funds a week of meals for a family"},
	{Title: "Life Changer", AmountCents: 10000, Description: "Covers a medical checkup and care package"},
	{Title: "Legacy Creator", AmountCents: 25000, Description: "Creates lasting impact for multiple families"},
}
