// Package server wires configuration, storage, services and the HTTP and
// gRPC front ends together and runs them until the process is signalled.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/taskboard/internal/auth"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	gs "github.com/dmitrijs2005/taskboard/internal/server/grpc"
	"github.com/dmitrijs2005/taskboard/internal/server/httpapi"
	"github.com/dmitrijs2005/taskboard/internal/services"
	"github.com/dmitrijs2005/taskboard/internal/suggest"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	store     kv.Storage
	auth      *services.AuthService
	tasks     *services.TaskService
	suggester *suggest.Suggester
	tokens    *auth.TokenIssuer
}

// NewApp opens the configured storage and builds the services. Logs go to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger, err := logging.New(c.LogLevel, c.LogFormat, w)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	if c.SecretKey == config.DefaultSecretKey {
		logger.Warn(ctx, "Token secret is the built-in default, set -s or secret_key")
	}

	store, err := kv.Open(ctx, storageOptions(c))
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	var opts []services.Option
	opts = append(opts, services.WithLogger(logger))
	if c.SimulateLatency {
		opts = append(opts, services.WithLatency(services.DefaultLatency()))
	}

	tokens := auth.NewTokenIssuer(c.SecretKey, c.TokenTTL)

	return &App{
		config:    c,
		logger:    logger,
		store:     store,
		auth:      services.NewAuthService(store, tokens, opts...),
		tasks:     services.NewTaskService(store, opts...),
		suggester: suggest.FromAPIKey(c.GeminiAPIKey, c.GeminiModel, logger),
		tokens:    tokens,
	}, nil
}

func storageOptions(c *config.Config) kv.Options {
	return kv.Options{
		Backend:     c.Storage,
		SQLitePath:  c.SQLitePath,
		PostgresDSN: c.DatabaseDSN,
		S3: kv.S3Options{
			Bucket:       c.S3.Bucket,
			Prefix:       c.S3.Prefix,
			Region:       c.S3.Region,
			AccessKey:    c.S3.AccessKey,
			SecretKey:    c.S3.SecretKey,
			BaseEndpoint: c.S3.BaseEndpoint,
			UsePathStyle: c.S3.UsePathStyle,
		},
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.auth, app.tasks, app.suggester, app.tokens)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.HTTPAddr, app.logger, app.auth, app.tasks, app.suggester, app.tokens)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a front end fails,
// then closes the storage.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)
	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	if app.config.GRPCAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	if app.config.HTTPAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startHTTPServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "storage close failed", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
