package groq_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/fitcoach"
	"github.com/fwojciec/fitcoach/groq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okBody = `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Day 1: Squat 3x10"},"finish_reason":"stop"}]}`

func TestClient_RequestFormat(t *testing.T) {
	t.Parallel()

	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)

		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	temp := 0.7
	client := groq.New("test-api-key", groq.WithBaseURL(srv.URL))
	reply, err := client.Generate(context.Background(), fitcoach.Request{
		Model:        "llama-3.3-70b-versatile",
		SystemPrompt: "You are a coach.",
		Messages: []fitcoach.Message{
			{Role: fitcoach.RoleUser, Content: "Hello"},
			{Role: fitcoach.RoleAssistant, Content: "Hi"},
			{Role: fitcoach.RoleUser, Content: "Plan my week"},
		},
		MaxTokens:   512,
		Temperature: &temp,
	})
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Squat 3x10", reply)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))

	assert.Equal(t, "llama-3.3-70b-versatile", body["model"])
	assert.Equal(t, float64(512), body["max_tokens"])
	assert.Equal(t, 0.7, body["temperature"])

	msgs := body["messages"].([]interface{})
	require.Len(t, msgs, 4)
	msg0 := msgs[0].(map[string]interface{})
	assert.Equal(t, "system", msg0["role"])
	assert.Equal(t, "You are a coach.", msg0["content"])
	msg2 := msgs[2].(map[string]interface{})
	assert.Equal(t, "assistant", msg2["role"])
	assert.Equal(t, "Hi", msg2["content"])
}

func TestClient_DefaultModel(t *testing.T) {
	t.Parallel()

	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	client := groq.New("k", groq.WithBaseURL(srv.URL))
	_, err := client.Generate(context.Background(), fitcoach.Request{
		Messages: []fitcoach.Message{{Role: fitcoach.RoleUser, Content: "Hi"}},
	})
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))
	assert.Equal(t, "moonshotai/kimi-k2-instruct", body["model"])
	assert.NotContains(t, body, "max_tokens")
	assert.NotContains(t, body, "temperature")

	msgs := body["messages"].([]interface{})
	require.Len(t, msgs, 1)
}

func TestClient_WithModelOverridesDefault(t *testing.T) {
	t.Parallel()

	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	client := groq.New("k", groq.WithBaseURL(srv.URL), groq.WithModel("gemma2-9b-it"), groq.WithHTTPClient(srv.Client()))
	_, err := client.Generate(context.Background(), fitcoach.Request{
		Messages: []fitcoach.Message{{Role: fitcoach.RoleUser, Content: "Hi"}},
	})
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))
	assert.Equal(t, "gemma2-9b-it", body["model"])
}

func TestClient_MissingKey(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := groq.New("", groq.WithBaseURL(srv.URL))
	_, err := client.Generate(context.Background(), fitcoach.Request{})
	require.ErrorIs(t, err, fitcoach.ErrMissingCredential)
	assert.False(t, called)
}

func TestClient_InvalidRequest(t *testing.T) {
	t.Parallel()

	temp := 3.0
	client := groq.New("k", groq.WithBaseURL("http://127.0.0.1:0"))
	_, err := client.Generate(context.Background(), fitcoach.Request{Temperature: &temp})
	require.ErrorIs(t, err, fitcoach.ErrValidation)
}

func TestClient_HTTPErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "structured error",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"message":"Invalid API Key","type":"invalid_request_error"}}`,
			wantMsg: "Invalid API Key",
		},
		{
			name:    "rate limit",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"Rate limit reached","type":"tokens"}}`,
			wantMsg: "Rate limit reached",
		},
		{
			name:    "unstructured body",
			status:  http.StatusBadGateway,
			body:    "upstream down",
			wantMsg: "HTTP 502: upstream down",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := groq.New("k", groq.WithBaseURL(srv.URL))
			_, err := client.Generate(context.Background(), fitcoach.Request{
				Messages: []fitcoach.Message{{Role: fitcoach.RoleUser, Content: "Hi"}},
			})
			require.ErrorIs(t, err, fitcoach.ErrRemoteCall)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_EmptyChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := groq.New("k", groq.WithBaseURL(srv.URL))
	_, err := client.Generate(context.Background(), fitcoach.Request{
		Messages: []fitcoach.Message{{Role: fitcoach.RoleUser, Content: "Hi"}},
	})
	require.ErrorIs(t, err, fitcoach.ErrRemoteCall)
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := groq.New("k", groq.WithBaseURL(url))
	_, err := client.Generate(context.Background(), fitcoach.Request{
		Messages: []fitcoach.Message{{Role: fitcoach.RoleUser, Content: "Hi"}},
	})
	require.ErrorIs(t, err, fitcoach.ErrRemoteCall)
}

func TestClient_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := groq.New("k", groq.WithBaseURL(srv.URL))
	_, err := client.Generate(ctx, fitcoach.Request{
		Messages: []fitcoach.Message{{Role: fitcoach.RoleUser, Content: "Hi"}},
	})
	require.ErrorIs(t, err, context.Canceled)
}
