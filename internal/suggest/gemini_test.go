package suggest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generateRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		body, _ := io.ReadAll(r.Body)
		var req generateRequest
		require.NoError(t, json.Unmarshal(body, &req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Draft "},{"text":"the plan."}]}}]}`)
	}))
	defer srv.Close()

	c := NewGeminiClient("secret", "").WithBaseURL(srv.URL + "/")
	got, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Draft the plan.", got)
}

func TestGeminiClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`)
	}))
	defer srv.Close()

	_, err := NewGeminiClient("bad", "gemini-pro").WithBaseURL(srv.URL+"/").Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini generate")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	got, err := NewGeminiClient("k", "").WithBaseURL(srv.URL+"/").Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient("", "").Generate(context.Background(), "x")
	require.Error(t, err)
}
