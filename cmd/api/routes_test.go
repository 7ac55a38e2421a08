package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhishek622/interviewly/internal/config"
	"github.com/abhishek622/interviewly/internal/generation"
	"github.com/abhishek622/interviewly/internal/handler"
	"github.com/abhishek622/interviewly/internal/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestApp(origins ...string) *application {
	log := zap.NewNop()
	store := session.NewStore(generation.NewPipeline(nil, time.Second, log), log)
	return &application{
		Logger: log,
		Config: &config.Config{
			Env:  "development",
			CORS: config.CORSConfig{TrustedOrigins: origins},
			LLM:  config.LLMConfig{Timeout: time.Second},
		},
		Store:   store,
		Handler: &handler.Handler{Logger: log, Store: store, MaxQuestions: 20},
	}
}

func TestRoutes_HealthCheck(t *testing.T) {
	h := newTestApp("*").routes()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t, `{"message":"Interviewly is up and running!"}`, w.Body.String())
}

func TestRoutes_CORS(t *testing.T) {
	h := newTestApp("http://localhost:5173").routes()

	req := httptest.NewRequest(http.MethodOptions, "/interview/start", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_UnknownSession(t *testing.T) {
	h := newTestApp("*").routes()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/interview/question?session_id=missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewSynthesizer_DegradedWithoutKey(t *testing.T) {
	cfg := &config.LLMConfig{Provider: config.ProviderGemini}
	assert.Nil(t, newSynthesizer(t.Context(), cfg, zap.NewNop()))
}

func TestNewLLMClient_Providers(t *testing.T) {
	cfg := &config.LLMConfig{
		OpenAIKey:    "sk-test",
		GroqKey:      "gsk-test",
		AnthropicKey: "ak-test",
		Temperature:  0.7,
		MaxTokens:    100,
	}
	for provider, want := range map[string]string{
		config.ProviderOpenAI:    "openai/gpt-4o-mini",
		config.ProviderGroq:      "groq/meta-llama/llama-4-maverick-17b-128e-instruct",
		config.ProviderAnthropic: "anthropic/claude-3-5-haiku-latest",
	} {
		cfg.Provider = provider
		client, err := newLLMClient(t.Context(), cfg)
		if assert.NoError(t, err, provider) {
			assert.Equal(t, want, client.Name())
		}
	}

	cfg.Provider = "cohere"
	_, err := newLLMClient(t.Context(), cfg)
	assert.Error(t, err)
}
