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

type volunteerForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

func (f volunteerForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(2, 64)),
		validation.Field(&f.Email, validation.Required, is.EmailFormat),
		validation.Field(&f.Phone, validation.Length(0, 32)),
		validation.Field(&f.Role, validation.Required, validation.Length(2, 64)),
		validation.Field(&f.Message, validation.Length(0, 2000)),
	)
}

// volunteerApply forwards a volunteer application to the configured inbox.
func (s *API) volunteerApply(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	var form volunteerForm
	if err := decoder.Decode(&form, r.Form); err != nil {
		errorData(w, err, http.StatusBadRequest)
		return
	}

	if err := form.Validate(); err != nil {
		errorData(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.mailer == nil || config.C.Email.VolunteerInbox == "" {
		errorData(w, care4youth.ErrMailerDisabled, http.StatusInternalServerError)
		return
	}

	msg := &care4youth.MailerMessage{
		To:      config.C.Email.VolunteerInbox,
		ReplyTo: form.Email,
		Subject: fmt.Sprintf("Volunteer application: %s (%s)", form.Name, form.Role),
		PlainContent: fmt.Sprintf(
			"Name: %s\nEmail: %s\nPhone: %s\nRole: %s\n\n%s",
			form.Name, form.Email, form.Phone, form.Role, form.Message,
		),
	}
	if err := s.mailer.SendEmail(r.Context(), msg); err != nil {
		slog.WarnContext(r.Context(), "Couldn't forward volunteer application", slog.Any("err", err))
		errorData(w, "Couldn't submit application. Please try again.", http.StatusInternalServerError)
		return
	}

	returnData(w, struct {
		Message string `json:"message"`
	}{"Application received! We'll be in touch soon."})
}
