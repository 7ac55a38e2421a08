package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhishek622/interviewly/internal/llm"
	openai "github.com/meguminnnnnnnnn/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresKey(t *testing.T) {
	t.Parallel()
	_, err := NewClient("", llm.Options{})
	assert.Error(t, err)
	_, err = NewGroqClient("", llm.Options{})
	assert.Error(t, err)
}

func TestNewClient_DefaultModels(t *testing.T) {
	t.Parallel()
	c, err := NewClient("sk-test", llm.Options{})
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-4o-mini", c.Name())

	g, err := NewGroqClient("gsk-test", llm.Options{})
	require.NoError(t, err)
	assert.Equal(t, "groq/meta-llama/llama-4-maverick-17b-128e-instruct", g.Name())
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()
	req := buildRequest(llm.Options{Model: "m", Temperature: 0.7, MaxTokens: 100}, "hello")
	assert.Equal(t, "m", req.Model)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[0].Role)
	assert.Equal(t, "hello", req.Messages[0].Content)
	assert.Equal(t, 100, req.MaxTokens)
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, 0.7, *req.Temperature, 1e-6)
}

func TestComplete(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "cmpl-1",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": `["Q1?"]`}},
			},
		})
	}))
	defer srv.Close()

	c, err := newClient("openai", "sk-test", srv.URL, llm.Options{Model: "m"})
	require.NoError(t, err)
	got, err := c.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, `["Q1?"]`, got)
}

func TestComplete_NoChoices(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cmpl-1","choices":[]}`))
	}))
	defer srv.Close()

	c, err := newClient("groq", "gsk-test", srv.URL, llm.Options{Model: "m"})
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), "prompt")
	assert.ErrorContains(t, err, "no choices")
}

func TestComplete_HTTPError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	c, err := newClient("openai", "sk-bad", srv.URL, llm.Options{Model: "m"})
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), "prompt")
	assert.Error(t, err)
}
