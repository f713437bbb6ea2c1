package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskboard/internal/api"
	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/models"
	"github.com/gin-gonic/gin"
)

const maxBodySize = 1 << 20

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrDuplicateUsername), errors.Is(err, common.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, common.ErrTaskNotFound), errors.Is(err, common.ErrUnknownUser), errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		msg = common.ErrorInternal.Error()
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}

func bind(c *gin.Context, v any) bool {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)
	if err := c.ShouldBindJSON(v); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, api.PingResponse{Status: "OK"})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req api.RegisterRequest
	if !bind(c, &req) {
		return
	}
	sess, err := s.auth.Register(c.Request.Context(), req.Username, req.FullName, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req api.LoginRequest
	if !bind(c, &req) {
		return
	}
	sess, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) handleGetSession(c *gin.Context) {
	sess, err := s.auth.GetSession(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) handleLogout(c *gin.Context) {
	if err := s.auth.Logout(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListTasks(c *gin.Context) {
	userID, ok := actingUser(c, c.Query("userId"))
	if !ok {
		return
	}
	mode, err := models.ParseFilterMode(c.Query("filter"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tasks, err := s.tasks.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Filter(tasks, mode))
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req api.CreateTaskRequest
	if !bind(c, &req) {
		return
	}
	userID, ok := actingUser(c, req.UserID)
	if !ok {
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), userID, req.NewTask())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var req models.TaskUpdate
	if !bind(c, &req) {
		return
	}
	req.ID = c.Param("id")

	task, err := s.tasks.UpdateOwned(c.Request.Context(), c.GetString(userIDKey), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.tasks.DeleteOwned(c.Request.Context(), c.GetString(userIDKey), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSuggest(c *gin.Context) {
	var req api.SuggestRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, api.SuggestResponse{Description: s.suggester.Suggest(c.Request.Context(), req.Title)})
}
