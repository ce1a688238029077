package daraja

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/techreads/backend/internal/config"
)

// Module exposes the Daraja client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	creds := Credentials{
		ConsumerKey:    p.Config.DarajaConsumerKey,
		ConsumerSecret: p.Config.DarajaConsumerSecret,
		Shortcode:      p.Config.DarajaShortcode,
		Passkey:        p.Config.DarajaPasskey,
		CallbackURL:    p.Config.DarajaCallbackURL,
	}
	return NewHTTPClient(p.Config.DarajaBaseURL, creds, p.Logger)
}
