package client

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/auth"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/services"
	"github.com/dmitrijs2005/taskboard/internal/suggest"
)

// LocalClient serves the contracts in-process.
type LocalClient struct {
	*services.AuthService
	*services.TaskService
	suggester *suggest.Suggester
	store     kv.Storage
}

// NewLocalClient takes ownership of store; Close closes it.
func NewLocalClient(store kv.Storage, tokens *auth.TokenIssuer, s *suggest.Suggester, opts ...services.Option) *LocalClient {
	return &LocalClient{
		AuthService: services.NewAuthService(store, tokens, opts...),
		TaskService: services.NewTaskService(store, opts...),
		suggester:   s,
		store:       store,
	}
}

func (c *LocalClient) Suggest(ctx context.Context, title string) (string, error) {
	return c.suggester.Suggest(ctx, title), nil
}

func (c *LocalClient) Ping(ctx context.Context) error {
	_, err := c.store.Get(ctx, "ping")
	return err
}

func (c *LocalClient) Close() error {
	return c.store.Close()
}
