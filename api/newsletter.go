package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Care4Youth/care4youth"
	"github.com/Care4Youth/care4youth/internal/config"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type newsletterForm struct {
	Email string `json:"email"`
}

func (f newsletterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.EmailFormat),
	)
}

// subscribeNewsletter sends the welcome mail for a new subscriber. There is
// no subscriber list kept here; the inbox provider owns it.
func (s *API) subscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	var form newsletterForm
	if err := decoder.Decode(&form, r.Form); err != nil {
		errorData(w, err, http.StatusBadRequest)
		return
	}

	if err := form.Validate(); err != nil {
		errorData(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.mailer == nil {
		errorData(w, care4youth.ErrMailerDisabled, http.StatusInternalServerError)
		return
	}

	msg := &care4youth.MailerMessage{
		To:      form.Email,
		Subject: config.C.Newsletter.Subject,
		PlainContent: fmt.Sprintf(
			"Thank you for subscribing to the %s newsletter!\n\nYou'll get the latest updates, stories, and ways to help, straight to your inbox.",
			config.C.Newsletter.FromName,
		),
	}
	if err := s.mailer.SendEmail(r.Context(), msg); err != nil {
		slog.WarnContext(r.Context(), "Couldn't send newsletter welcome email", slog.Any("err", err))
		errorData(w, "Subscription failed. Please try again.", http.StatusInternalServerError)
		return
	}

	returnData(w, struct {
		Message string `json:"message"`
	}{"Thank you for subscribing!"})
}
