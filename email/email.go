package email

import (
	"context"
	"net"
	"net/smtp"

	"github.com/Care4Youth/care4youth"
	"github.com/Care4Youth/care4youth/internal/config"
	"github.com/jordan-wright/email"
)

var _ care4youth.Mailer = &emailer{}

type emailer struct {
	host string
	auth smtp.Auth
	from string
}

func (e *emailer) SendEmail(ctx context.Context, msg *care4youth.MailerMessage) error {
	em := email.NewEmail()

	em.From = e.from
	em.To = []string{msg.To}
	if msg.ReplyTo != "" {
		em.ReplyTo = []string{msg.ReplyTo}
	}

	em.Subject = msg.Subject
	em.Text = []byte(msg.PlainContent)
	em.HTML = []byte(msg.HTMLContent)
	return em.Send(e.host, e.auth)
}

func NewMailer() (care4youth.Mailer, error) {
	if !config.C.Email.Enabled() {
		return nil, care4youth.ErrMailerDisabled
	}
	host, _, err := net.SplitHostPort(config.C.Email.Host)
	if err != nil {
		return nil, err
	}
	return &emailer{config.C.Email.Host, smtp.PlainAuth("", config.C.Email.Username, config.C.Email.Password, host), config.C.Email.Username}, nil
}
