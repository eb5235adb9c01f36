// Package bootstrap is the startup sequencer: configuration, logger, durable
// store, gateway and session repository are assembled in order, and the
// session is rehydrated from storage before anything evaluates a route.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ariffzainal/inhouse-erp/internal/core/ports"
	"github.com/ariffzainal/inhouse-erp/internal/core/service"
	"github.com/ariffzainal/inhouse-erp/internal/infrastructure/config"
	"github.com/ariffzainal/inhouse-erp/internal/infrastructure/gateway"
	"github.com/ariffzainal/inhouse-erp/internal/infrastructure/storage"
	"github.com/ariffzainal/inhouse-erp/pkg/logger"
)

// App is the assembled client: everything a command needs to act on the
// session.
type App struct {
	Config  *config.Config
	Log     zerolog.Logger
	Store   ports.Store
	Gateway ports.AuthGateway
	Session ports.SessionRepository

	// SessionExpired is closed-over state for the transport interceptor: it
	// flips to true when an authentication rejection forced the session out
	// from under an operation, so the caller can route the user to login.
	sessionExpired bool
}

// Option customises the bootstrap sequence.
type Option func(*options)

type options struct {
	onUnauthorized func()
}

// WithUnauthorizedHook runs fn whenever the backend rejects a credentialled
// call. The interceptor has already cleared the durable token and user when
// fn fires; fn only decides where the user lands next.
func WithUnauthorizedHook(fn func()) Option {
	return func(o *options) { o.onUnauthorized = fn }
}

// Run executes the bootstrap sequence once and returns the assembled App.
// InitAuth completes before Run returns, so the first navigation-guard
// evaluation never observes a partially initialized session. No network
// calls are made.
func Run(ctx context.Context, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	app := &App{Config: cfg, Log: log}

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	app.Store = store

	onUnauthorized := o.onUnauthorized
	if onUnauthorized == nil {
		onUnauthorized = func() {
			app.sessionExpired = true
			log.Info().Str("redirect", "/login").Msg("session expired, login required")
		}
	}

	app.Gateway = gateway.NewClient(gateway.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.HTTPTimeout,
	}, store, onUnauthorized, log)

	session := service.NewSessionService(app.Gateway, store, log)
	session.InitAuth()
	app.Session = session

	return app, nil
}

// SessionExpired reports whether the interceptor forced the session out
// during this process's lifetime.
func (a *App) SessionExpired() bool {
	return a.sessionExpired
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.Store, error) {
	switch cfg.StoreKind {
	case "file", "":
		return storage.NewFileStore(cfg.StateDir, log)
	case "redis":
		return storage.ConnectRedis(ctx, storage.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		}, log)
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.StoreKind)
	}
}
