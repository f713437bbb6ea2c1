// Package httpapi exposes the auth and task contracts as a JSON API on gin.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Suggester drafts task descriptions.
type Suggester interface {
	Suggest(ctx context.Context, title string) string
}

// TokenVerifier resolves a session token to its user id.
type TokenVerifier interface {
	UserID(token string) (string, error)
}

type Server struct {
	address   string
	auth      services.Auth
	tasks     services.OwnedTasks
	suggester Suggester
	tokens    TokenVerifier
	logger    logging.Logger
	router    *gin.Engine
}

func NewServer(address string, l logging.Logger, a services.Auth, t services.OwnedTasks, sg Suggester, tv TokenVerifier) *Server {
	s := &Server{
		address:   address,
		auth:      a,
		tasks:     t,
		suggester: sg,
		tokens:    tv,
		logger:    l.With("module", "http_server"),
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger)

	router.GET("/ping", s.handlePing)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
		authGroup.GET("/session", s.handleGetSession)
		authGroup.DELETE("/session", s.handleLogout)
	}

	tasks := router.Group("/tasks", s.requireToken)
	{
		tasks.GET("", s.handleListTasks)
		tasks.POST("", s.handleCreateTask)
		tasks.POST("/suggestions", s.handleSuggest)
		tasks.PUT("/:id", s.handleUpdateTask)
		tasks.DELETE("/:id", s.handleDeleteTask)
	}

	s.router = router
	return s
}

// Handler returns the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{Handler: s.router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String())
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	args := []any{
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	}
	if c.Writer.Status() >= http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", append(args, "errors", c.Errors.String())...)
		return
	}
	s.logger.Debug(c.Request.Context(), "request", args...)
}
