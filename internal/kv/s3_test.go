package kv

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeS3 answers path-style object requests from an in-memory map.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := strings.TrimPrefix(r.URL.Path, "/")
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = body
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?>`+
				`<Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	case http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newS3(t *testing.T) (*S3Storage, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3Storage(context.Background(), S3Options{
		Bucket:       "taskboard",
		Prefix:       "state",
		Region:       "us-east-1",
		AccessKey:    "admin",
		SecretKey:    "secretpassword",
		BaseEndpoint: srv.URL,
		UsePathStyle: true,
	})
	require.NoError(t, err)
	return s, fake
}

func TestS3_SetGetRemove(t *testing.T) {
	s, fake := newS3(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tasks", []byte(`[{"id":"1"}]`)))
	require.Contains(t, fake.objects, "taskboard/state/tasks")

	v, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"1"}]`), v)

	require.NoError(t, s.Remove(ctx, "tasks"))
	v, err = s.Get(ctx, "tasks")
	require.NoError(t, err)
	require.Nil(t, v)
	require.NoError(t, s.Close())
}

func TestS3_GetMissingKey(t *testing.T) {
	s, _ := newS3(t)

	v, err := s.Get(context.Background(), "session")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), S3Options{Region: "us-east-1"})
	require.Error(t, err)
}

func TestS3_UpdateFallsBackToGetSet(t *testing.T) {
	s, _ := newS3(t)
	ctx := context.Background()

	require.NoError(t, Update(ctx, s, "users", func(cur []byte) ([]byte, error) {
		require.Nil(t, cur)
		return []byte(`[]`), nil
	}))
	v, err := s.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)
}
