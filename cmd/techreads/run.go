package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// run drives the application lifecycle: start the graph, wait for a
// shutdown signal or an internal stop, then tear everything down.
func run(ctx context.Context, app *fx.App, log *slog.Logger) {
	if err := app.Start(ctx); err != nil {
		log.Error("application start failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		log.Error("application stop failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
