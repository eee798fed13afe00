package config

import (
	"os"
	"path"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	p := path.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	C = ConfigStruct{}
	p := writeConfig(t, `
[common]
port = 8080
debug = true

[stripe]
secret_key = "sk_test_123"
publishable_key = "pk_test_123"
`)
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("PORT", "")

	if err := Load(p); err != nil {
		t.Fatal(err)
	}
	if C.Common.Port != 8080 || !C.Common.Debug {
		t.Fatalf("Wrong common section: %+v", C.Common)
	}
	if C.Stripe.SecretKey != "sk_test_123" {
		t.Fatalf("Wrong stripe secret: %q", C.Stripe.SecretKey)
	}
	if C.Stripe.Currency != "usd" {
		t.Fatalf("Currency should default to usd, got %q", C.Stripe.Currency)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	C = ConfigStruct{}
	p := writeConfig(t, `
[stripe]
secret_key = "sk_from_file"
`)

	t.Setenv("STRIPE_SECRET_KEY", "sk_from_env")
	t.Setenv("PORT", "9999")

	if err := Load(p); err != nil {
		t.Fatal(err)
	}
	if C.Stripe.SecretKey != "sk_from_env" {
		t.Fatalf("Env override should win, got %q", C.Stripe.SecretKey)
	}
	if C.Common.Port != 9999 {
		t.Fatalf("PORT override should win, got %d", C.Common.Port)
	}
}

func TestLoadDefaults(t *testing.T) {
	C = ConfigStruct{}
	p := writeConfig(t, "")
	t.Setenv("PORT", "")

	if err := Load(p); err != nil {
		t.Fatal(err)
	}
	if C.Common.Port != 4242 {
		t.Fatalf("Default port should be 4242, got %d", C.Common.Port)
	}
}
