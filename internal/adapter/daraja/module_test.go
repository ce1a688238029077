package daraja

import (
	"io"
	"log/slog"
	"testing"

	"github.com/techreads/backend/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{
		DarajaBaseURL:        "https://sandbox.safaricom.co.ke",
		DarajaConsumerKey:    "key",
		DarajaConsumerSecret: "secret",
		DarajaShortcode:      "174379",
		DarajaPasskey:        "passkey",
		DarajaCallbackURL:    "https://example.com/api/mpesa/callback",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}
