package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/techreads/backend/internal/config"
)

// Module exposes the mail relay client to the fx graph.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMailer(p mailerParams) (Mailer, error) {
	return NewHTTPMailer(p.Config.MailerAddress, p.Config.MailerAPIKey, p.Config.MailerFrom, p.Logger)
}
