package di

import (
	"github.com/techreads/backend/internal/adapter/daraja"
	"github.com/techreads/backend/internal/adapter/mailer"
	"github.com/techreads/backend/internal/app"
	"github.com/techreads/backend/internal/config"
	"github.com/techreads/backend/internal/logger"
	"github.com/techreads/backend/internal/pkg/auth"
	"github.com/techreads/backend/internal/server/http/handlers"
	"github.com/techreads/backend/internal/server/http/router"
	"github.com/techreads/backend/internal/storage/postgres"
	"github.com/techreads/backend/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		daraja.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(f *app.BookstoreFacade) handlers.BookstoreFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
