package app

import (
	"context"

	"log/slog"

	"github.com/edixon-javier/qargo-coffee-manager/config"
	"github.com/edixon-javier/qargo-coffee-manager/internal/analytics"
	httpapi "github.com/edixon-javier/qargo-coffee-manager/internal/api/http"
	"github.com/edixon-javier/qargo-coffee-manager/internal/apisrv/auth"
	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	db   dependency.Repository
	c    *config.Config
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting qargo coffee manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
			slog.String("err", err.Error()))
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db.Admin())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server",
			slog.String("err", err.Error()))
		return err
	}

	metricsS, err := analytics.New(&a.c.Dashboard, a.db.Orders(), a.db.Cache())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create dashboard service",
			slog.String("err", err.Error()))
		return err
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, a.db, metricsS, authS)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		close(a.done)
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown error",
				slog.String("err", err.Error()))
		}
	}
	a.db.Close()
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
