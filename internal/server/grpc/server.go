// Package grpc serves the taskboard.v1.TaskBoard service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/taskboard/internal/api"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/services"
	"google.golang.org/grpc"
)

// Suggester drafts task descriptions.
type Suggester interface {
	Suggest(ctx context.Context, title string) string
}

// TokenVerifier resolves a session token to its user id.
type TokenVerifier interface {
	UserID(token string) (string, error)
}

type GRPCServer struct {
	address   string
	auth      services.Auth
	tasks     services.OwnedTasks
	suggester Suggester
	tokens    TokenVerifier
	logger    logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, a services.Auth, t services.OwnedTasks, s Suggester, tv TokenVerifier) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		auth:      a,
		tasks:     t,
		suggester: s,
		tokens:    tv,
	}
}

// NewServer returns a grpc.Server with the service and its interceptors
// registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	api.RegisterTaskBoardServer(srv, s)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, l net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", l.Addr().String())
	return srv.Serve(l)
}

var _ api.TaskBoardServer = (*GRPCServer)(nil)
