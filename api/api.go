// Package api exposes the JSON endpoints consumed by the site's pages:
// donation intent creation, donation settings, newsletter signup and
// volunteer applications.
package api

import (
	"net/http"

	"github.com/Care4Youth/care4youth"
	"github.com/Care4Youth/care4youth/payment"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
)

var decoder *schema.Decoder

func init() {
	decoder = schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")
}

// API holds everything the handlers need. It is read-only after New, so
// the handlers are safe to call concurrently.
type API struct {
	payments payment.Provider
	mailer   care4youth.Mailer
}

// New declares a new API instance. mailer may be nil when SMTP is not
// configured; mail-backed endpoints then return an error.
func New(payments payment.Provider, mailer care4youth.Mailer) *API {
	return &API{payments: payments, mailer: mailer}
}

// Handler is the magic behind the API
func (s *API) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/create-payment-intent", s.createPaymentIntent)
	r.Get("/donation-settings", s.donationSettings)

	r.Post("/newsletter", s.subscribeNewsletter)
	r.Post("/volunteer", s.volunteerApply)

	r.Get("/ping", s.ping)

	return r
}

func (s *API) ping(w http.ResponseWriter, r *http.Request) {
	returnData(w, struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}{"ok", care4youth.Version})
}
