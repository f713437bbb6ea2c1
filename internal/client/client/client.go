package client

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/services"
)

type Client interface {
	services.Auth
	services.Tasks
	Suggest(ctx context.Context, title string) (string, error)
	Ping(ctx context.Context) error
	Close() error
}
