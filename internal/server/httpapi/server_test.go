package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/taskboard/internal/auth"
	"github.com/dmitrijs2005/taskboard/internal/kv"
	"github.com/dmitrijs2005/taskboard/internal/logging"
	"github.com/dmitrijs2005/taskboard/internal/models"
	"github.com/dmitrijs2005/taskboard/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type echoSuggester struct{}

func (echoSuggester) Suggest(_ context.Context, title string) string { return "about " + title }

func newTestServer() http.Handler {
	store := kv.NewMemoryStorage()
	tokens := auth.NewTokenIssuer("test", 0)
	return NewServer(":0", logging.Nop(),
		services.NewAuthService(store, tokens),
		services.NewTaskService(store),
		echoSuggester{}, tokens).Handler()
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func registerUser(t *testing.T, h http.Handler, username string) models.Session {
	t.Helper()
	w := do(t, h, http.MethodPost, "/auth/register", "",
		map[string]string{"username": username, "fullName": username + " Full", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[models.Session](t, w)
}

func TestPing(t *testing.T) {
	w := do(t, newTestServer(), http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK"}`, w.Body.String())
}

func TestAuthRoutes(t *testing.T) {
	h := newTestServer()

	w := do(t, h, http.MethodGet, "/auth/session", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	sess := registerUser(t, h, "alice")
	assert.Equal(t, "alice", sess.User.Username)

	w = do(t, h, http.MethodPost, "/auth/register", "",
		map[string]string{"username": "alice", "fullName": "A", "password": "x"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/auth/register", "", map[string]string{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/auth/login", "", map[string]string{"username": "alice", "password": "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/auth/login", "", map[string]string{"username": "alice", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decodeBody[models.Session](t, w)
	assert.NotEqual(t, sess.Token, login.Token)

	w = do(t, h, http.MethodGet, "/auth/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, login.Token, decodeBody[models.Session](t, w).Token)

	w = do(t, h, http.MethodDelete, "/auth/session", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodDelete, "/auth/session", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, h, http.MethodGet, "/auth/session", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMalformedBody(t *testing.T) {
	h := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskRoutesRequireToken(t *testing.T) {
	h := newTestServer()

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/tasks", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/tasks", "forged", nil).Code)
}

func TestTaskRoutes(t *testing.T) {
	h := newTestServer()
	alice := registerUser(t, h, "alice")
	bob := registerUser(t, h, "bob")

	w := do(t, h, http.MethodPost, "/tasks", alice.Token, map[string]string{"title": "Write docs", "description": "README"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	task := decodeBody[models.Task](t, w)
	assert.Equal(t, alice.User.ID, task.UserID)
	assert.Equal(t, models.StatusPending, task.Status)

	w = do(t, h, http.MethodPost, "/tasks", alice.Token, map[string]string{"title": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodPost, "/tasks", alice.Token, map[string]string{"userId": bob.User.ID, "title": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodGet, "/tasks?userId="+bob.User.ID, alice.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodPut, "/tasks/"+task.ID, alice.Token,
		models.TaskUpdate{Title: "Write docs", Status: models.StatusCompleted, Revision: 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(2), decodeBody[models.Task](t, w).Revision)

	w = do(t, h, http.MethodPut, "/tasks/"+task.ID, alice.Token,
		models.TaskUpdate{Title: "stale", Status: models.StatusPending, Revision: 1})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPut, "/tasks/missing", alice.Token, models.TaskUpdate{Title: "x", Status: models.StatusPending})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodGet, "/tasks?filter=pending", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]models.Task](t, w))

	w = do(t, h, http.MethodGet, "/tasks?filter=completed&userId="+alice.User.ID, alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]models.Task](t, w), 1)

	w = do(t, h, http.MethodGet, "/tasks?filter=someday", alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, http.MethodGet, "/tasks", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/tasks/"+task.ID, alice.Token, nil).Code)
	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/tasks/"+task.ID, alice.Token, nil).Code)
}

func TestSuggestRoute(t *testing.T) {
	h := newTestServer()
	alice := registerUser(t, h, "alice")

	w := do(t, h, http.MethodPost, "/tasks/suggestions", alice.Token, map[string]string{"title": "launch"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"description":"about launch"}`, w.Body.String())
}

func TestUpdateAndDeleteOtherUsersTaskAreForbidden(t *testing.T) {
	h := newTestServer()
	alice := registerUser(t, h, "alice")
	w := do(t, h, http.MethodPost, "/tasks", alice.Token, map[string]string{"title": "Alice's task"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	task := decodeBody[models.Task](t, w)

	bob := registerUser(t, h, "bob")

	w = do(t, h, http.MethodPut, "/tasks/"+task.ID, bob.Token,
		map[string]string{"title": "taken over", "status": "completed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodDelete, "/tasks/"+task.ID, bob.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, h, http.MethodGet, "/tasks", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks := decodeBody[[]models.Task](t, w)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Alice's task", tasks[0].Title)
	assert.EqualValues(t, 1, tasks[0].Revision)

	w = do(t, h, http.MethodPut, "/tasks/"+task.ID, alice.Token,
		map[string]string{"title": "Alice's task", "status": "completed"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, h, http.MethodDelete, "/tasks/"+task.ID, alice.Token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
