package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
)

// ConfigStruct is the glue for all configuration sections
type ConfigStruct struct {
	Common     Common     `toml:"common"`
	Stripe     Stripe     `toml:"stripe"`
	Email      Email      `toml:"email"`
	Newsletter Newsletter `toml:"newsletter"`
}

// Common is the data required for all services
type Common struct {
	Port  int  `toml:"port"`
	Debug bool `toml:"debug"`
}

// Stripe holds the payment processor keys. The secret key stays
// server-side; the publishable key is handed to the donate page.
type Stripe struct {
	SecretKey      string `toml:"secret_key"`
	PublishableKey string `toml:"publishable_key"`
	Currency       string `toml:"currency"`
}

// Email is the data required to send mail over SMTP
type Email struct {
	Host     string `toml:"host"`
	Username string `toml:"username"`
	Password string `toml:"password"`

	// VolunteerInbox receives volunteer applications
	VolunteerInbox string `toml:"volunteer_inbox"`
}

func (e Email) Enabled() bool {
	return e.Host != ""
}

type Newsletter struct {
	FromName string `toml:"from_name"`
	Subject  string `toml:"subject"`
}

// C represents the loaded config
var C ConfigStruct

func Load(path string) error {
	md, err := toml.DecodeFile(path, &C)
	if err != nil {
		return err
	}
	if len(md.Undecoded()) > 0 {
		slog.Warn("NOTE: There were a few undecoded keys")
		spew.Dump(md.Undecoded())
	}

	loadDefaults()
	loadEnvOverrides()
	return nil
}

func loadDefaults() {
	if C.Common.Port == 0 {
		C.Common.Port = 4242
	}
	if C.Stripe.Currency == "" {
		C.Stripe.Currency = "usd"
	}
	if C.Newsletter.FromName == "" {
		C.Newsletter.FromName = "Care4Youth"
	}
	if C.Newsletter.Subject == "" {
		C.Newsletter.Subject = "Welcome to the Care4Youth newsletter"
	}
}

// Env vars win over file values so deployments can keep secrets out of
// the config file entirely.
func loadEnvOverrides() {
	if key := os.Getenv("STRIPE_SECRET_KEY"); key != "" {
		C.Stripe.SecretKey = key
	}
	if key := os.Getenv("STRIPE_PUBLISHABLE_KEY"); key != "" {
		C.Stripe.PublishableKey = key
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			slog.Warn("Invalid PORT override", slog.String("port", port))
		} else {
			C.Common.Port = p
		}
	}
}
