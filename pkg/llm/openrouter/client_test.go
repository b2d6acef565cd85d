package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path    string
	auth    string
	referer string
	title   string
	body    map[string]any
}

func newServer(t *testing.T, status int, reply string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	got := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		got.referer = r.Header.Get("HTTP-Referer")
		got.title = r.Header.Get("X-Title")
		_ = json.NewDecoder(r.Body).Decode(&got.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("", "", "", "", "")
	require.EqualError(t, err, "openrouter api key is empty")
}

func TestNew_Defaults(t *testing.T) {
	c, err := New("k", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, DefaultModel, c.Model())
}

func TestGenerate_HappyPath(t *testing.T) {
	srv, got := newServer(t, http.StatusOK, `{
		"id": "gen-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "test/model",
		"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Hi there!"}}]
	}`)

	c, err := New("secret", srv.URL, "test/model", "Mr.Cool AI", "https://example.com")
	require.NoError(t, err)

	out, err := c.Generate(context.Background(), "Hello")
	require.NoError(t, err)
	require.Equal(t, "Hi there!", out)

	require.Equal(t, "/chat/completions", got.path)
	require.Equal(t, "Bearer secret", got.auth)
	require.Equal(t, "https://example.com", got.referer)
	require.Equal(t, "Mr.Cool AI", got.title)
	require.Equal(t, "test/model", got.body["model"])

	msgs, ok := got.body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]any)
	require.Equal(t, "user", msg["role"])
	require.Equal(t, "Hello", msg["content"])
}

func TestGenerate_NoChoices(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"id": "gen-2", "object": "chat.completion", "model": "m", "choices": []}`)

	c, err := New("secret", srv.URL, "m", "", "")
	require.NoError(t, err)

	out, err := c.Generate(context.Background(), "Hello")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGenerate_ProviderError(t *testing.T) {
	srv, _ := newServer(t, http.StatusTooManyRequests, `{"error": {"message": "quota exceeded", "code": 429}}`)

	c, err := New("secret", srv.URL, "m", "", "")
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "Hello")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestGenerate_BoundedByCallerContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := New("secret", srv.URL, "m", "", "")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = c.Generate(ctx, "Hello")
	require.Error(t, err)
	require.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	require.Less(t, time.Since(start), 3*time.Second)
}
