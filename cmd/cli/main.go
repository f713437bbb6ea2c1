package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/taskboard/internal/auth"
	"github.com/dmitrijs2005/taskboard/internal/client/cli"
	"github.com/dmitrijs2005/taskboard/internal/client/client"
	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/services"
	"github.com/dmitrijs2005/taskboard/internal/suggest"
)

var version = "dev"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, "text", os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	c, err := newClient(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("taskboard cli %s (%s mode)\n", version, cfg.Mode)
	cli.NewApp(c, cfg, logger, os.Stdin, os.Stdout).Run(ctx)

}

func newClient(ctx context.Context, cfg *config.Config, logger logging.Logger) (client.Client, error) {
	if cfg.Mode == config.ModeRemote {
		c, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", cfg.ServerEndpointAddr, err)
		}
		return c, nil
	}

	store, err := kv.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}

	opts := []services.Option{services.WithLogger(logger)}
	if cfg.SimulateLatency {
		opts = append(opts, services.WithLatency(services.DefaultLatency()))
	}

	return client.NewLocalClient(
		store,
		auth.NewTokenIssuer(cfg.SecretKey, 0),
		suggest.FromAPIKey(cfg.GeminiAPIKey, cfg.GeminiModel, logger),
		opts...,
	), nil
}
